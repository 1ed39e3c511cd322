// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command pidigits computes the digits of pi or of the square root of 2.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	su "github.com/avdva/pidigits/internal/strutil"
	"github.com/avdva/pidigits/series"
	"github.com/avdva/pidigits/verify"
	"github.com/avdva/pidigits/zf10"
)

const (
	groupSize = 10
)

var formulas = map[string]series.Formula{
	series.Machin.Name:   series.Machin,
	series.Takano.Name:   series.Takano,
	series.ChienLih.Name: series.ChienLih,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck
	series.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	digits, err := compute(ctx, cfg)
	if err != nil {
		logger.Error("computation failed", zap.Error(err))
		return 1
	}
	logger.Info("computed",
		zap.String("algo", cfg.Algo),
		zap.String("backend", cfg.Backend),
		zap.Int("digits", cfg.Digits),
		zap.Duration("elapsed", time.Since(start)),
	)
	if cfg.Group {
		digits = groupFraction(digits)
	}
	fmt.Fprintln(stdout, digits)

	if cfg.Verify {
		return verifyResult(logger, cfg.Algo, digits)
	}
	return 0
}

func newLogger(cfg config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// compute returns the decimal expansion with cfg.Digits digits after the point.
func compute(ctx context.Context, cfg config) (string, error) {
	switch cfg.Algo {
	case "chudnovsky":
		return series.Chudnovsky(ctx, cfg.Digits)
	case "leibniz":
		sum, err := series.GregoryLeibniz(ctx, cfg.Terms)
		if err != nil {
			return "", err
		}
		return series.RatBackend().Decimal(sum, cfg.Digits), nil
	case "arcsin":
		pi, err := series.ArcsinSeries(ctx, cfg.Digits)
		if err != nil {
			return "", err
		}
		return series.RatBackend().Decimal(pi, cfg.Digits), nil
	case "sqrt2":
		root, err := series.Sqrt(ctx, 2, cfg.Digits)
		if err != nil {
			return "", err
		}
		return series.RatBackend().Decimal(root, cfg.Digits), nil
	}
	f, found := formulas[cfg.Algo]
	if !found {
		return "", errors.Wrapf(errBadConfig, "unknown algorithm %q", cfg.Algo)
	}
	if cfg.Backend == "float" {
		// one more digit for the integer part.
		fctx, err := zf10.NewContext(cfg.Digits + cfg.Guard + 1)
		if err != nil {
			return "", err
		}
		return series.Compute(ctx, series.FloatBackend(fctx), f, cfg.Digits, cfg.Workers)
	}
	return series.Compute(ctx, series.RatBackend(), f, cfg.Digits, cfg.Workers)
}

// verifyResult compares digits with the reference and returns the exit code.
// Digits beyond the reference are reported, but do not fail the check.
func verifyResult(logger *zap.Logger, algo, digits string) int {
	piMax, sqrt2Max := verify.MaxDigits()
	check, known := verify.Pi, piMax
	if algo == "sqrt2" {
		check, known = verify.Sqrt2, sqrt2Max
	}
	err := check(digits)
	switch {
	case errors.Is(err, verify.ErrReferenceTooShort):
		logger.Warn("unverifiable beyond the known digits", zap.Int("known", known), zap.Error(err))
	case err != nil:
		logger.Error("verification failed", zap.Error(err))
		return 1
	default:
		logger.Info("verified")
	}
	return 0
}

// groupFraction separates every groupSize fraction digits with a space.
func groupFraction(s string) string {
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		return s
	}
	return whole + "." + su.GroupDigits(frac, groupSize)
}
