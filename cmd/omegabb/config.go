package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/unit"
)

// envPrefix prefixes every environment variable read by omegabb,
// e.g. OMEGABB_PARTICLE1 or OMEGABB_PER_CC.
const envPrefix = "OMEGABB"

// Config holds the inputs of one omegabb run. Values come from flags,
// OMEGABB_* environment variables and an optional YAML config file,
// in that order of precedence.
type Config struct {
	Field     float64 `mapstructure:"field"` // T, or G with Gauss
	N1        float64 `mapstructure:"n1"`    // m^-3, or cm^-3 with PerCC
	N2        float64 `mapstructure:"n2"`
	Particle1 string  `mapstructure:"particle1"`
	Particle2 string  `mapstructure:"particle2"`
	Z1        string  `mapstructure:"z1"` // empty → species charge number
	Z2        string  `mapstructure:"z2"`

	Gauss bool `mapstructure:"gauss"`
	PerCC bool `mapstructure:"per-cc"`
	Hz    bool `mapstructure:"hz"`

	LogLevel string `mapstructure:"log-level"`
	Dev      bool   `mapstructure:"dev"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("omegabb", pflag.ContinueOnError)
	fs.Float64P("field", "B", 0, "magnetic field magnitude in tesla (gauss with --gauss)")
	fs.Float64("n1", 0, "number density of species 1 in m^-3 (cm^-3 with --per-cc)")
	fs.Float64("n2", 0, "number density of species 2 in m^-3 (cm^-3 with --per-cc)")
	fs.String("particle1", "", `species 1, e.g. "p+", "D+", "He-4 +1"`)
	fs.String("particle2", "", "species 2")
	fs.String("z1", "", "charge state override for species 1")
	fs.String("z2", "", "charge state override for species 2")
	fs.Bool("gauss", false, "read --field in gauss")
	fs.Bool("per-cc", false, "read densities in cm^-3")
	fs.Bool("hz", false, "print the frequency in Hz instead of rad/s")
	fs.String("config", "", "YAML config file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Bool("dev", false, "human-readable development logging")
	return fs
}

// loadConfig parses args and merges them with the environment and the
// config file named by --config.
func loadConfig(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks for missing or invalid configuration values.
func (c *Config) Validate() error {
	var errs []error
	if c.Particle1 == "" {
		errs = append(errs, errors.New("particle1 is required"))
	}
	if c.Particle2 == "" {
		errs = append(errs, errors.New("particle2 is required"))
	}
	if c.N1 < 0 {
		errs = append(errs, fmt.Errorf("n1 must be >= 0, got %g", c.N1))
	}
	if c.N2 < 0 {
		errs = append(errs, fmt.Errorf("n2 must be >= 0, got %g", c.N2))
	}
	if _, err := parseZ(c.Z1); err != nil {
		errs = append(errs, fmt.Errorf("z1: %w", err))
	}
	if _, err := parseZ(c.Z2); err != nil {
		errs = append(errs, fmt.Errorf("z2: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// parseZ reads an optional charge state; the empty string means none.
func parseZ(s string) (unit.Uniter, error) {
	if s == "" {
		return nil, nil
	}
	z, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return unit.Dimless(z), nil
}
