// Package demo runs the pattern scenarios and prints their reports.
//
// The runner is the composition root shared by the CLI: it resolves variants by
// name through the pattern registries, exercises them through their interfaces
// only, and reports what it created to the logger and the metrics sink.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/sghaida/gopatterns/abstractfactory"
	"github.com/sghaida/gopatterns/adapter"
	"github.com/sghaida/gopatterns/factorymethod"
	"github.com/sghaida/gopatterns/internal/config"
	"github.com/sghaida/gopatterns/internal/console"
	"github.com/sghaida/gopatterns/internal/logger"
	"github.com/sghaida/gopatterns/internal/metrics"
	"github.com/sghaida/gopatterns/registry"
	"github.com/sghaida/gopatterns/rng"
)

// Runner prints the demos to Out.
type Runner struct {
	out     io.Writer
	log     *slog.Logger
	rand    rng.Source
	metrics metrics.Metrics
	theme   console.Theme

	families  *registry.Registry[abstractfactory.CarFactory]
	companies *registry.Registry[factorymethod.CompanyConstructor]
}

// Option configures a Runner.
type Option func(*Runner)

func WithLogger(l *slog.Logger) Option { return func(r *Runner) { r.log = l } }

func WithRand(src rng.Source) Option { return func(r *Runner) { r.rand = src } }

func WithMetrics(m metrics.Metrics) Option { return func(r *Runner) { r.metrics = m } }

func WithTheme(t console.Theme) Option { return func(r *Runner) { r.theme = t } }

// WithFamilies replaces the car family registry, e.g. to add a family.
func WithFamilies(f *registry.Registry[abstractfactory.CarFactory]) Option {
	return func(r *Runner) { r.families = f }
}

// New returns a runner writing to out. Unset options fall back to a discarding
// logger, a clock-seeded source, Noop metrics and the plain theme.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:       out,
		log:       logger.Discard(),
		metrics:   metrics.Noop{},
		theme:     console.Plain(),
		families:  abstractfactory.Families(),
		companies: factorymethod.Companies(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rand == nil {
		r.rand = rng.New(0)
	}
	return r
}

// All runs every demo in order and stops at the first error.
func (r *Runner) All(cfg config.Config) error {
	steps := []func() error{
		func() error { return r.AbstractFactory(cfg.AbstractFactory) },
		func() error { return r.FactoryMethod(cfg.FactoryMethod) },
		func() error { return r.Adapter(cfg.Adapter) },
	}
	for i, step := range steps {
		if i > 0 {
			r.println("")
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// AbstractFactory prints one report per configured family.
func (r *Runner) AbstractFactory(cfg config.AbstractFactory) error {
	r.println(r.theme.Section("Abstract Factory"))

	for _, name := range cfg.Families {
		factory, err := r.families.Resolve(name)
		if err != nil {
			return fmt.Errorf("abstract factory: %w", err)
		}

		client := abstractfactory.NewClient(factory)
		r.created("car." + name)
		r.created("engine." + name)
		r.log.Debug("family.built",
			"family", name,
			"brand", string(factory.Brand()),
			"compatible", client.Compatible(),
		)

		r.println(r.theme.Line(client.Report()))
	}
	return nil
}

// FactoryMethod prices every configured order.
func (r *Runner) FactoryMethod(cfg config.FactoryMethod) error {
	r.println(r.theme.Section("Factory Method"))

	for i, o := range cfg.Orders {
		ctor, err := r.companies.Resolve(o.Company)
		if err != nil {
			return fmt.Errorf("factory method: order %d: %w", i, err)
		}

		company := ctor(o.Name)
		svc, err := company.Create(o.Param)
		if err != nil {
			return fmt.Errorf("factory method: order %d: %w", i, err)
		}
		r.created("service." + o.Company)

		text, err := svc.Describe(o.Distance)
		if err != nil {
			return fmt.Errorf("factory method: order %d: %w", i, err)
		}
		r.log.Debug("trip.priced", "company", o.Company, "name", o.Name, "param", o.Param, "distance", o.Distance)

		if i > 0 {
			r.println("")
		}
		r.println(r.theme.Line(text))
	}
	return nil
}

// Adapter plays one die roll and one coin flip, then takes one climate reading.
func (r *Runner) Adapter(cfg config.Adapter) error {
	r.println(r.theme.Section("Adapter"))

	gamer := adapter.NewGamer(cfg.Player)

	die, err := adapter.NewDie(cfg.DieEdges, r.rand)
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	r.created("game.die")
	r.println(r.theme.Line("Rolled " + strconv.Itoa(gamer.Play(die)) + " points for player " + gamer.Name()))

	coin := adapter.NewCoinAdapter(adapter.NewCoin(r.rand))
	r.created("game.coin")
	r.println(r.theme.Line("Coin showed " + strconv.Itoa(gamer.Play(coin)) + " for player " + gamer.Name()))

	sensor, err := adapter.NewFahrenheitSensor(cfg.SensorMaxF, r.rand)
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	cc, err := adapter.NewClimateControl(adapter.NewSensorAdapter(sensor), adapter.Celsius(cfg.ThresholdC))
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	r.created("sensor.fahrenheit")

	advice := cc.Advise()
	r.log.Debug("climate.advice", "reading_c", float64(advice.Reading), "action", advice.Action.String())

	r.println("")
	r.println(r.theme.Line(advice.String()))
	return nil
}

func (r *Runner) created(product string) {
	r.metrics.Inc(product)
	r.log.Debug("product.created", "product", product)
}

func (r *Runner) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
