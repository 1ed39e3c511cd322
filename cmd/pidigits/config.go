package main

import (
	"flag"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

var (
	errBadConfig = errors.New("bad config")

	algorithms = []string{"machin", "takano", "chienlih", "chudnovsky", "leibniz", "arcsin", "sqrt2"}
	backends   = []string{"rat", "float"}

	// formulas can run on any backend, the other algorithms are rational only.
	formulaAlgorithms = []string{"machin", "takano", "chienlih"}
)

type config struct {
	Digits   int
	Algo     string
	Backend  string
	Workers  int
	Guard    int
	Terms    int
	Verify   bool
	Group    bool
	LogLevel zapcore.Level
}

// loadConfig parses the command line arguments, without the program name.
func loadConfig(args []string, output io.Writer) (config, error) {
	var (
		cfg      config
		logLevel string
	)
	fs := flag.NewFlagSet("pidigits", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Digits, "digits", 100, "number of digits after the point")
	fs.StringVar(&cfg.Algo, "algo", "machin", "algorithm: "+strings.Join(algorithms, ", "))
	fs.StringVar(&cfg.Backend, "backend", "rat", "number backend of "+strings.Join(formulaAlgorithms, ", ")+": "+strings.Join(backends, ", "))
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "max number of terms computed concurrently")
	fs.IntVar(&cfg.Guard, "guard", 10, "extra digits of the float backend precision")
	fs.IntVar(&cfg.Terms, "terms", 1000, "number of terms of the leibniz series")
	fs.BoolVar(&cfg.Verify, "verify", false, "compare the result with the known digits")
	fs.BoolVar(&cfg.Group, "group", false, "group fraction digits by 10")
	fs.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return cfg, errors.Wrap(errBadConfig, err.Error())
	}
	cfg.LogLevel = level
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Digits < 0:
		return errors.Wrapf(errBadConfig, "negative digits: %d", c.Digits)
	case !slices.Contains(algorithms, c.Algo):
		return errors.Wrapf(errBadConfig, "unknown algorithm %q", c.Algo)
	case !slices.Contains(backends, c.Backend):
		return errors.Wrapf(errBadConfig, "unknown backend %q", c.Backend)
	case c.Backend != "rat" && !slices.Contains(formulaAlgorithms, c.Algo):
		return errors.Wrapf(errBadConfig, "algorithm %q supports the rat backend only", c.Algo)
	case c.Workers < 1:
		return errors.Wrapf(errBadConfig, "workers must be positive: %d", c.Workers)
	case c.Guard < 0:
		return errors.Wrapf(errBadConfig, "negative guard: %d", c.Guard)
	case c.Terms < 0:
		return errors.Wrapf(errBadConfig, "negative terms: %d", c.Terms)
	}
	return nil
}
