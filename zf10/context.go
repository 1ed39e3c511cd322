// Copyright 2020 Aleksandr Demakin. All rights reserved.

package zf10

import (
	"github.com/pkg/errors"

	"github.com/avdva/pidigits/internal/bcd"
	"github.com/avdva/pidigits/internal/mathutil"
)

var (
	// ErrBadPrecision is returned for a precision less than 1.
	ErrBadPrecision = errors.New("precision must be positive")
	// ErrPrecisionMismatch is the panic value for operations on values of different precisions.
	ErrPrecisionMismatch = errors.New("precision mismatch")
	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidDigit is returned for a symbol or a value that is not a decimal digit.
	ErrInvalidDigit = errors.New("invalid digit")
)

// Context creates values of a fixed precision.
// A Context is immutable and can be shared between goroutines.
type Context struct {
	prec int
}

// NewContext returns a context for values with prec significant digits.
func NewContext(prec int) (*Context, error) {
	if prec < 1 {
		return nil, errors.Wrapf(ErrBadPrecision, "got %d", prec)
	}
	return &Context{prec: prec}, nil
}

// MustNewContext is like NewContext, but panics on error.
func MustNewContext(prec int) *Context {
	c, err := NewContext(prec)
	if err != nil {
		panic(err)
	}
	return c
}

// Prec returns the number of significant digits.
func (c *Context) Prec() int {
	return c.prec
}

// Zero returns 0.
func (c *Context) Zero() Float {
	return Float{digits: make(bcd.BE, bcd.Pairs(c.prec)), sign: 1, prec: c.prec}
}

// One returns 1.
func (c *Context) One() Float {
	return c.FromInt64(1)
}

// FromInt64 returns v. Digits beyond the precision are truncated.
func (c *Context) FromInt64(v int64) Float {
	digits := mathutil.SplitDigits(mathutil.AbsUint64(v))
	return c.fromDigits(v < 0, digits, len(digits))
}

// FromDigits returns the number 0.d1d2...dn * 10^n, which is the integer d1d2...dn.
// Digits go the most significant first. Leading zeros are skipped,
// digits beyond the precision are truncated.
func (c *Context) FromDigits(neg bool, digits ...int) (Float, error) {
	for i, d := range digits {
		if d < 0 || d > 9 {
			return c.Zero(), errors.Wrapf(ErrInvalidDigit, "digit %d at index %d", d, i)
		}
	}
	return c.fromDigits(neg, digits, len(digits)), nil
}

// MustFromDigits is like FromDigits, but panics on error.
func (c *Context) MustFromDigits(neg bool, digits ...int) Float {
	result, err := c.FromDigits(neg, digits...)
	if err != nil {
		panic(err)
	}
	return result
}

// Frac returns n/d.
func (c *Context) Frac(n, d int64) (Float, error) {
	return c.FromInt64(n).Quo(c.FromInt64(d))
}

// MustFrac is like Frac, but panics on error.
func (c *Context) MustFrac(n, d int64) Float {
	result, err := c.Frac(n, d)
	if err != nil {
		panic(err)
	}
	return result
}

// fromDigits builds 0.digits * 10^exp.
func (c *Context) fromDigits(neg bool, digits []int, exp int) Float {
	for len(digits) > 0 && digits[0] == 0 {
		digits = digits[1:]
		exp--
	}
	if len(digits) == 0 {
		return c.Zero()
	}
	result := c.Zero()
	for i := 0; i < len(digits) && i < c.prec; i++ {
		result.digits.SetDigit(i, digits[i])
	}
	result.exp = exp
	if neg {
		result.sign = -1
	}
	return result
}
