// Copyright 2020 Aleksandr Demakin. All rights reserved.

package series

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/avdva/pidigits/q10"
)

const (
	classicReduceEvery = 10
)

// GregoryLeibniz returns the sum of the first nterms terms of 4 - 4/3 + 4/5 - 4/7 + ...
// It converges very slowly and is useful for demonstrations only.
func GregoryLeibniz(ctx context.Context, nterms int) (q10.Rat, error) {
	sum := q10.FromInt64(0)
	for i := 1; i <= nterms; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		term, err := q10.FromFrac(4, int64(2*i-1))
		if err != nil {
			return sum, err
		}
		if i&1 == 0 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
		if i%classicReduceEvery == 0 {
			sum = sum.Reduce()
		}
	}
	return sum.Reduce(), nil
}

// ArcsinTerms returns the number of terms ArcsinSeries uses for digits digits.
// Every term adds log10(4) digits.
func ArcsinTerms(digits int) int {
	return int(math.Ceil(1.661 * float64(digits)))
}

// ArcsinSeries returns pi = 6 * arcsin(1/2) with digits correct digits after the point, using
//
//	pi = 3 * (1 + 1/2 * 1/3 * 1/4 + (1*3)/(2*4) * 1/5 * 1/4^2 + ...)
func ArcsinSeries(ctx context.Context, digits int) (q10.Rat, error) {
	nterms := ArcsinTerms(digits)
	l := logger.With(zap.Int("digits", digits), zap.Int("nterms", nterms))
	l.Debug("ArcsinSeries: enter")

	quarter := q10.MustFromFrac(1, 4)
	coef, pow4 := q10.FromInt64(1), quarter
	pi := q10.FromInt64(1)
	k := int64(1)
	for i := 0; i < nterms; i++ {
		if err := ctx.Err(); err != nil {
			return pi, err
		}
		coef = coef.Mul(q10.MustFromFrac(k, k+1))
		pi = pi.Add(coef.Mul(q10.MustFromFrac(1, k+2)).Mul(pow4))
		pow4 = pow4.Mul(quarter)
		k += 2
		if i%classicReduceEvery == 0 {
			coef, pi = coef.Reduce(), pi.Reduce()
		}
		if i%progressEvery == 0 {
			l.Debug("ArcsinSeries: progress", zap.Float64("percent", 100*float64(i)/float64(nterms)))
		}
	}
	l.Debug("ArcsinSeries: exit")
	return pi.Mul(q10.FromInt64(3)).Reduce(), nil
}
