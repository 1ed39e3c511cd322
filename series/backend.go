// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package series computes mathematical constants with series and iterations
// over the exact rationals or the fixed-precision floats.
package series

import (
	"strings"

	"go.uber.org/zap"

	"github.com/avdva/pidigits/q10"
	"github.com/avdva/pidigits/zf10"
)

var (
	// Zap logger to use in this package; default is a no-op logger.
	logger = zap.NewNop()
)

// SetLogger changes the Zap logger instance used by this package.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Number is the set of operations the drivers need from a number type.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	IsZero() bool
	String() string
}

// Backend creates and renders numbers of type T.
type Backend[T Number[T]] interface {
	// Name returns a short name of the backend.
	Name() string
	// FromInt64 returns v as T.
	FromInt64(v int64) T
	// Frac returns n/d as T.
	Frac(n, d int64) (T, error)
	// Reduce returns the same value with a smaller representation, if possible.
	Reduce(v T) T
	// Decimal returns v with exactly fractionDigits digits after the point, truncating the rest.
	Decimal(v T, fractionDigits int) string
}

type ratBackend struct{}

// RatBackend returns a backend for the exact rationals.
func RatBackend() Backend[q10.Rat] {
	return ratBackend{}
}

func (ratBackend) Name() string {
	return "rat"
}

func (ratBackend) FromInt64(v int64) q10.Rat {
	return q10.FromInt64(v)
}

func (ratBackend) Frac(n, d int64) (q10.Rat, error) {
	return q10.FromFrac(n, d)
}

func (ratBackend) Reduce(v q10.Rat) q10.Rat {
	return v.Reduce()
}

func (ratBackend) Decimal(v q10.Rat, fractionDigits int) string {
	s := v.DecimalString(fractionDigits)
	return padFraction(s, fractionDigits)
}

type floatBackend struct {
	ctx *zf10.Context
}

// FloatBackend returns a backend for the floats of the context precision.
func FloatBackend(ctx *zf10.Context) Backend[zf10.Float] {
	return floatBackend{ctx: ctx}
}

func (floatBackend) Name() string {
	return "float"
}

func (b floatBackend) FromInt64(v int64) zf10.Float {
	return b.ctx.FromInt64(v)
}

func (b floatBackend) Frac(n, d int64) (zf10.Float, error) {
	return b.ctx.Frac(n, d)
}

func (floatBackend) Reduce(v zf10.Float) zf10.Float {
	return v
}

func (floatBackend) Decimal(v zf10.Float, fractionDigits int) string {
	return v.FixedString(fractionDigits)
}

// padFraction appends zeros to a terminating expansion, so that it has exactly n fraction digits.
func padFraction(s string, n int) string {
	if n <= 0 {
		return s
	}
	dot := strings.IndexByte(s, '.')
	if dot == -1 {
		s += "."
		dot = len(s) - 1
	}
	if missing := n - (len(s) - dot - 1); missing > 0 {
		s += strings.Repeat("0", missing)
	}
	return s
}
