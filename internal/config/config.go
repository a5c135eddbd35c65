// Package config holds the demo scenario: which families to build, which trips to
// price, who plays the dice game and how the climate control is tuned.
//
// Default reproduces the classic demo output. A YAML file can override any part of
// it, and a few environment variables override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/gopatterns/errs"
)

// Environment variables read by Load.
const (
	EnvSeed       = "GOPATTERNS_SEED"
	EnvPlayer     = "GOPATTERNS_PLAYER"
	EnvThresholdC = "GOPATTERNS_THRESHOLD_C"
)

type Config struct {
	// Seed for the random source. 0 means seed from the clock.
	Seed uint64 `yaml:"seed"`

	AbstractFactory AbstractFactory `yaml:"abstract_factory"`
	FactoryMethod   FactoryMethod   `yaml:"factory_method"`
	Adapter         Adapter         `yaml:"adapter"`
}

type AbstractFactory struct {
	// Families are registry names, e.g. "ford", "audi".
	Families []string `yaml:"families"`
}

type FactoryMethod struct {
	Orders []Order `yaml:"orders"`
}

// Order is one trip priced by one company.
type Order struct {
	// Company is the registry kind: "taxi", "shipping" or "carpool".
	Company string `yaml:"company"`

	// Name is the display name of the company.
	Name string `yaml:"name"`

	// Param is passed to Create: tariff for taxi/shipping, party size for carpool.
	Param float64 `yaml:"param"`

	Distance float64 `yaml:"distance"`
}

type Adapter struct {
	Player     string  `yaml:"player"`
	DieEdges   int     `yaml:"die_edges"`
	SensorMaxF int     `yaml:"sensor_max_f"`
	ThresholdC float64 `yaml:"threshold_c"`
}

// Default returns the built-in scenario.
func Default() Config {
	return Config{
		AbstractFactory: AbstractFactory{
			Families: []string{"ford", "audi"},
		},
		FactoryMethod: FactoryMethod{
			Orders: []Order{
				{Company: "taxi", Name: "Taxi Service", Param: 1, Distance: 15.5},
				{Company: "shipping", Name: "Freight Service", Param: 2, Distance: 150.5},
				{Company: "carpool", Name: "Ride Sharing", Param: 4, Distance: 150},
			},
		},
		Adapter: Adapter{
			Player:     "Steve",
			DieEdges:   6,
			SensorMaxF: 100,
			ThresholdC: 28,
		},
	}
}

// Load returns Default overlaid with the YAML file at path (if path is not empty)
// and with the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(b), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML over Default without reading the environment.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v := strings.TrimSpace(getenv(EnvPlayer)); v != "" {
		cfg.Adapter.Player = v
	}
	if v := strings.TrimSpace(getenv(EnvThresholdC)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvThresholdC, err)
		}
		cfg.Adapter.ThresholdC = f
	}
	return nil
}

// Validate checks the values the pattern packages would reject anyway, so a bad
// file fails before any output is printed.
func (c Config) Validate() error {
	const op = "config.validate"

	for i, o := range c.FactoryMethod.Orders {
		if strings.TrimSpace(o.Company) == "" {
			return fmt.Errorf("config: factory_method.orders[%d].company is required", i)
		}
		if math.IsNaN(o.Distance) || math.IsInf(o.Distance, 0) || o.Distance < 0 {
			return errs.Invalid(op, "factory_method.orders["+strconv.Itoa(i)+"].distance", o.Distance, "must be finite and >= 0")
		}
	}
	if strings.TrimSpace(c.Adapter.Player) == "" {
		return fmt.Errorf("config: adapter.player is required")
	}
	if c.Adapter.DieEdges <= 0 {
		return errs.Invalid(op, "adapter.die_edges", float64(c.Adapter.DieEdges), "must be > 0")
	}
	if c.Adapter.SensorMaxF <= 0 {
		return errs.Invalid(op, "adapter.sensor_max_f", float64(c.Adapter.SensorMaxF), "must be > 0")
	}
	return nil
}
