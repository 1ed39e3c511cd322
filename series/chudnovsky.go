// Copyright 2020 Aleksandr Demakin. All rights reserved.

package series

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avdva/pidigits/q10"
	"github.com/avdva/pidigits/z10"
)

var (
	// ErrNegativeSqrt is returned for a square root of a negative number.
	ErrNegativeSqrt = errors.New("square root of a negative number")
)

const (
	chudnovskyDigitsPerIteration = 14
)

// Sqrt returns the square root of value with at least digits correct digits, using Newton's iteration
//
//	x[n+1] = (x[n] + value/x[n]) / 2
//
// It starts from a 3-digit estimate and doubles the number of correct digits with every iteration.
func Sqrt(ctx context.Context, value int64, digits int) (q10.Rat, error) {
	if value < 0 {
		return q10.FromInt64(0), errors.Wrapf(ErrNegativeSqrt, "%d", value)
	}
	if value == 0 {
		return q10.FromInt64(0), nil
	}
	estimate, err := q10.FromFrac(int64(math.Sqrt(float64(1000000*value))), 1000)
	if err != nil {
		return estimate, err
	}
	iterations := sqrtIterations(digits)
	l := logger.With(zap.Int64("value", value), zap.Int("digits", digits), zap.Int("iterations", iterations))
	l.Debug("Sqrt: enter")

	s, two := q10.FromInt64(value), q10.FromInt64(2)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return estimate, err
		}
		quo, err := s.Quo(estimate)
		if err != nil {
			return estimate, err
		}
		if estimate, err = estimate.Add(quo).Quo(two); err != nil {
			return estimate, err
		}
		l.Debug("Sqrt: iteration", zap.Int("i", i), zap.Int("size", estimate.Size()))
		estimate = estimate.Reduce()
	}
	l.Debug("Sqrt: exit")
	return estimate, nil
}

// sqrtIterations returns the number of Newton's iterations for digits digits.
// If the error is e < 1, every iteration turns it into e^2, and we need e^N < 0.5 * 10^-digits.
func sqrtIterations(digits int) int {
	n := (math.Log(0.5) - float64(digits)) / math.Log(0.5)
	return int(math.Ceil(math.Log2(n)))
}

// Chudnovsky returns pi with digits digits after the point computed with the Chudnovsky algorithm.
// Every iteration adds about 14 digits.
// See https://www.craig-wood.com/nick/articles/pi-chudnovsky/.
func Chudnovsky(ctx context.Context, digits int) (string, error) {
	iterations := (digits + chudnovskyDigitsPerIteration) / chudnovskyDigitsPerIteration
	l := logger.With(zap.Int("digits", digits), zap.Int("iterations", iterations))
	l.Debug("Chudnovsky: enter")

	c := q10.MustNew(z10.FromInt64(-24), z10.FromInt64(640320).Mul(z10.FromInt64(640320)).Mul(z10.FromInt64(640320)))
	ak, asum := q10.FromInt64(1), q10.FromInt64(1)
	bsum := q10.FromInt64(0)
	for k := int64(1); k <= int64(iterations); k++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		tmp, err := q10.FromFrac((6*k-5)*(2*k-1)*(6*k-1), k*k*k)
		if err != nil {
			return "", err
		}
		ak = ak.Mul(tmp.Mul(c)).Reduce()
		bk := q10.FromInt64(k).Mul(ak).Reduce()
		asum = asum.Add(ak).Reduce()
		bsum = bsum.Add(bk).Reduce()
		l.Debug("Chudnovsky: iteration", zap.Int64("k", k), zap.Int("size", asum.Size()+bsum.Size()))
	}

	sqrt, err := Sqrt(ctx, 10005, digits)
	if err != nil {
		return "", errors.Wrap(err, "sqrt(10005)")
	}
	denom := q10.FromInt64(13591409).Mul(asum).Add(q10.FromInt64(545140134).Mul(bsum))
	pi, err := sqrt.Mul(q10.FromInt64(426880)).Quo(denom)
	if err != nil {
		return "", err
	}
	l.Debug("Chudnovsky: exit")
	return RatBackend().Decimal(pi.Reduce(), digits), nil
}
