// Copyright 2020 Aleksandr Demakin. All rights reserved.

package series

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avdva/pidigits/internal/mathutil"
)

const (
	progressEvery = 100
)

// ArctanTerms returns the number of terms of the arctan(a/b) series
// needed to get digits correct decimal digits.
// It returns -1 unless 0 < a < b, the series is too slow otherwise.
func ArctanTerms(digits int, a, b int64) int {
	if a <= 0 || b <= a {
		return -1
	}
	n := math.Ceil(float64(digits) * math.Ln10 / (2 * math.Log(float64(b)/float64(a))))
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return -1
	}
	return mathutil.Max(0, int(n))
}

func reduceEvery(nterms int) int {
	return 1 + mathutil.Min(9, nterms/10)
}

// Arctan sums nterms terms of the Taylor series x - x^3/3 + x^5/5 - ...
func Arctan[T Number[T]](ctx context.Context, b Backend[T], x T, nterms int) (T, error) {
	l := logger.With(zap.String("backend", b.Name()), zap.Int("nterms", nterms))
	l.Debug("Arctan: enter")
	every := reduceEvery(nterms)
	sum, xk, x2 := b.FromInt64(0), x, x.Mul(x)
	for i := 0; i < nterms; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		term, err := xk.Quo(b.FromInt64(int64(2*i + 1)))
		if err != nil {
			return sum, errors.Wrapf(err, "term %d", i)
		}
		if i&1 == 1 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
		xk = xk.Mul(x2)
		if i%every == 0 {
			sum = b.Reduce(sum)
		}
		if i%progressEvery == 0 {
			l.Debug("Arctan: progress", zap.Float64("percent", 100*float64(i)/float64(nterms)))
		}
	}
	l.Debug("Arctan: exit")
	return sum, nil
}

// ArctanEuler computes arctan(1/x) with Euler's accelerated series
//
//	arctan(1/x) = x/(1+x^2) * (1 + 2/3 * 1/(1+x^2) + 2*4/(3*5) * 1/(1+x^2)^2 + ...)
//
// Besides the first one, nterms terms are summed.
func ArctanEuler[T Number[T]](ctx context.Context, b Backend[T], x int64, nterms int) (T, error) {
	l := logger.With(zap.String("backend", b.Name()), zap.Int64("x", x), zap.Int("nterms", nterms))
	l.Debug("ArctanEuler: enter")
	part, err := b.Frac(1, 1+x*x)
	if err != nil {
		return b.FromInt64(0), err
	}
	every := reduceEvery(nterms)
	term, sum := part, part
	k := int64(2)
	for i := 0; i < nterms; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		ratio, err := b.Frac(k, k+1)
		if err != nil {
			return sum, errors.Wrapf(err, "term %d", i)
		}
		term = term.Mul(part).Mul(ratio)
		sum = sum.Add(term)
		k += 2
		if i%every == 0 {
			sum, term = b.Reduce(sum), b.Reduce(term)
		}
		if i%progressEvery == 0 {
			l.Debug("ArctanEuler: progress", zap.Float64("percent", 100*float64(i)/float64(nterms)))
		}
	}
	l.Debug("ArctanEuler: exit")
	return sum.Mul(b.FromInt64(x)), nil
}
