// Command omegabb prints the Buchsbaum (ion-ion hybrid) frequency of a
// two-ion-species plasma.
//
//	omegabb -B 1 --n1 1e18 --n2 1e18 --particle1 p+ --particle2 D+
//
// Inputs may also come from OMEGABB_* environment variables or a YAML
// file given with --config.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/unit"

	"github.com/sky-flux/formulary"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "omegabb:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "omegabb:", err)
		os.Exit(2)
	}

	os.Exit(execute(cfg, logger, os.Stdout))
}

// execute runs cfg and returns the process exit code. A failure is logged
// before the logger is flushed.
func execute(cfg Config, logger *zap.Logger, out io.Writer) int {
	code := 0
	if err := run(cfg, logger, out); err != nil {
		logger.Error("computation failed", zap.Error(err))
		code = 1
	}
	_ = logger.Sync()
	return code
}

func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// run computes the frequency described by cfg and writes it to out.
func run(cfg Config, logger *zap.Logger, out io.Writer) error {
	b := unit.MagneticFluxDensity(cfg.Field) * unit.Tesla
	if cfg.Gauss {
		b = unit.MagneticFluxDensity(cfg.Field) * formulary.Gauss
	}
	scale := formulary.PerCubicMetre
	if cfg.PerCC {
		scale = formulary.PerCubicCentimetre
	}
	n1 := formulary.NumberDensity(cfg.N1) * scale
	n2 := formulary.NumberDensity(cfg.N2) * scale

	z1, err := parseZ(cfg.Z1)
	if err != nil {
		return fmt.Errorf("z1: %w", err)
	}
	z2, err := parseZ(cfg.Z2)
	if err != nil {
		return fmt.Errorf("z2: %w", err)
	}

	logger.Debug("computing Buchsbaum frequency",
		zap.Float64("B_T", float64(b)),
		zap.Float64("n1_m3", float64(n1)),
		zap.Float64("n2_m3", float64(n2)),
		zap.String("particle1", cfg.Particle1),
		zap.String("particle2", cfg.Particle2),
		zap.String("z1", cfg.Z1),
		zap.String("z2", cfg.Z2),
	)

	w, err := formulary.BuchsbaumFrequency(b, n1, n2, cfg.Particle1, cfg.Particle2,
		formulary.ChargeStates{Z1: z1, Z2: z2})
	if err != nil {
		return err
	}
	if cfg.N1 == 0 && cfg.N2 == 0 {
		logger.Warn("both densities are zero; the Buchsbaum frequency is undefined")
	}

	logger.Info("Buchsbaum frequency",
		zap.Float64("omega_rad_s", float64(w)),
		zap.Float64("f_hz", float64(w.Hertz())),
	)
	if cfg.Hz {
		_, err = fmt.Fprintf(out, "%.6g\n", w.Hertz())
	} else {
		_, err = fmt.Fprintf(out, "%.6g\n", w)
	}
	return err
}
