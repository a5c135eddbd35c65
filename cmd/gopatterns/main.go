package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/gopatterns/internal/config"
	"github.com/sghaida/gopatterns/internal/console"
	"github.com/sghaida/gopatterns/internal/demo"
	"github.com/sghaida/gopatterns/internal/logger"
	"github.com/sghaida/gopatterns/internal/metrics"
	"github.com/sghaida/gopatterns/rng"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	seed       uint64
	debug      bool
	metrics    bool
	plain      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "gopatterns",
		Short:         "Runnable design-pattern demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return execute(c, opts, stdout, stderr, func(r *demo.Runner, cfg config.Config) error {
				return r.All(cfg)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML scenario file")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = from config, env or clock)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "structured debug logs on stderr")
	cmd.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "print product counters after the run")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "disable styling")

	cmd.AddCommand(
		newDemoCmd("abstract-factory", "Car families built by abstract factories", opts, stdout, stderr,
			func(r *demo.Runner, cfg config.Config) error { return r.AbstractFactory(cfg.AbstractFactory) }),
		newDemoCmd("factory-method", "Transport services created by factory methods", opts, stdout, stderr,
			func(r *demo.Runner, cfg config.Config) error { return r.FactoryMethod(cfg.FactoryMethod) }),
		newDemoCmd("adapter", "Coin and Fahrenheit sensor behind adapters", opts, stdout, stderr,
			func(r *demo.Runner, cfg config.Config) error { return r.Adapter(cfg.Adapter) }),
		newDemoCmd("all", "Run every demo", opts, stdout, stderr,
			func(r *demo.Runner, cfg config.Config) error { return r.All(cfg) }),
	)
	return cmd
}

type demoFunc func(*demo.Runner, config.Config) error

func newDemoCmd(use, short string, opts *options, stdout, stderr io.Writer, fn demoFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return execute(c, opts, stdout, stderr, fn)
		},
	}
}

// execute is the composition root: config, logger, randomness and metrics are
// built here and handed to the runner.
func execute(c *cobra.Command, opts *options, stdout, stderr io.Writer, fn demoFunc) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if c.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}

	log := logger.Discard()
	if opts.debug {
		log = logger.New(logger.Config{Out: stderr, Debug: true})
	}

	src := rng.New(cfg.Seed)
	log.Debug("run.start", "command", c.Name(), "seed", src.Seed(), "config", opts.configPath)

	theme := console.DefaultTheme()
	if opts.plain {
		theme = console.Plain()
	}

	runnerOpts := []demo.Option{
		demo.WithLogger(log),
		demo.WithRand(src),
		demo.WithTheme(theme),
	}

	var prom *metrics.Prometheus
	if opts.metrics {
		prom, err = metrics.NewPrometheus()
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, demo.WithMetrics(prom))
	}

	if err := fn(demo.New(stdout, runnerOpts...), cfg); err != nil {
		return err
	}

	if prom != nil {
		snap, err := prom.Snapshot()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(stdout)
		_, _ = fmt.Fprintln(stdout, theme.Note("products created: "+metrics.FormatSnapshot(snap)))
	}
	return nil
}
