package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avdva/pidigits/verify"
)

func TestLoadConfig(t *testing.T) {
	r := require.New(t)
	cfg, err := loadConfig(nil, io.Discard)
	r.NoError(err)
	r.Equal(config{
		Digits:   100,
		Algo:     "machin",
		Backend:  "rat",
		Workers:  runtime.NumCPU(),
		Guard:    10,
		Terms:    1000,
		LogLevel: zapcore.InfoLevel,
	}, cfg)

	cfg, err = loadConfig(strings.Fields("-digits 20 -algo takano -backend float -workers 3 -guard 5 -verify -group -log-level debug"), io.Discard)
	r.NoError(err)
	r.Equal(config{
		Digits:   20,
		Algo:     "takano",
		Backend:  "float",
		Workers:  3,
		Guard:    5,
		Terms:    1000,
		Verify:   true,
		Group:    true,
		LogLevel: zapcore.DebugLevel,
	}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []string{
		"-digits -1",
		"-algo bbp",
		"-backend big",
		"-workers 0",
		"-guard -2",
		"-terms -3",
		"-log-level loud",
		"-algo chudnovsky -backend float",
		"-algo leibniz -backend float",
		"-algo arcsin -backend float",
		"-algo sqrt2 -backend float",
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := loadConfig(strings.Fields(test), io.Discard)
			assert.True(t, errors.Is(err, errBadConfig), "%v", err)
		})
	}
	_, err := loadConfig([]string{"-unknown"}, io.Discard)
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		args     string
		expected string
	}{
		{"-digits 30", verify.PiPrefix(30)},
		{"-digits 30 -backend float", verify.PiPrefix(30)},
		{"-digits 10 -backend float -algo takano", verify.PiPrefix(10)},
		{"-digits 20 -algo chienlih", verify.PiPrefix(20)},
		{"-digits 30 -algo chudnovsky", verify.PiPrefix(30)},
		{"-digits 20 -algo arcsin", verify.PiPrefix(20)},
		{"-digits 20 -algo sqrt2", "1.41421356237309504880"},
		{"-digits 10 -algo leibniz -terms 3", "3.4666666666"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := require.New(t)
			cfg, err := loadConfig(strings.Fields(test.args), io.Discard)
			r.NoError(err)
			digits, err := compute(context.Background(), cfg)
			r.NoError(err)
			r.Equal(test.expected, digits)
		})
	}
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	var stdout, stderr bytes.Buffer
	a.Equal(0, run(strings.Fields("-digits 25 -group -verify -log-level error"), &stdout, &stderr))
	a.Equal("3.1415926535 8979323846 26433\n", stdout.String())

	stdout.Reset()
	a.Equal(1, run(strings.Fields("-digits 10 -algo leibniz -terms 3 -verify -log-level error"), &stdout, &stderr))
	a.Equal("3.4666666666\n", stdout.String())

	a.Equal(2, run([]string{"-algo", "none"}, &stdout, &stderr))
	a.Equal(2, run(strings.Fields("-algo sqrt2 -backend float"), &stdout, &stderr))
}

func TestVerifyResult(t *testing.T) {
	a := assert.New(t)
	logger := zap.NewNop()
	piMax, _ := verify.MaxDigits()

	a.Equal(0, verifyResult(logger, "machin", verify.PiPrefix(100)))
	a.Equal(0, verifyResult(logger, "chudnovsky", groupFraction(verify.PiPrefix(100))))
	a.Equal(1, verifyResult(logger, "machin", "3.1415926536"))
	a.Equal(1, verifyResult(logger, "sqrt2", verify.PiPrefix(10)))

	// digits past the reference are not checked.
	a.Equal(0, verifyResult(logger, "machin", verify.PiPrefix(piMax)+"1"))
	a.Equal(1, verifyResult(logger, "machin", "3.2"+verify.PiPrefix(piMax)[3:]+"1"))
	a.Equal(0, verifyResult(logger, "sqrt2", "1.41421356237309504880168872420969807856967187537694"))
}

func TestGroupFraction(t *testing.T) {
	a := assert.New(t)
	a.Equal("3", groupFraction("3"))
	a.Equal("3.14", groupFraction("3.14"))
	a.Equal("3.1415926535 89", groupFraction("3.1415926535"+"89"))
}
