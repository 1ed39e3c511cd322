// Copyright 2020 Aleksandr Demakin. All rights reserved.

package series

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/pidigits/internal/mathutil"
)

// Term is Coef * arctan(1/X).
type Term struct {
	Coef, X int64
}

// Formula is a Machin-like formula: pi = Factor * sum(Terms).
type Formula struct {
	Name   string
	Factor int64
	Terms  []Term
	// Euler is true if the terms are computed with the accelerated series.
	Euler bool
}

const (
	// maxEulerX is the largest x, for which 1+x^2 fits into int64.
	maxEulerX = 3037000499
)

var (
	// ErrBadTerm is returned for a term, which arctangent cannot be computed with the series.
	ErrBadTerm = errors.New("bad term")

	// Machin is pi = 4 * (4*arctan(1/5) - arctan(1/239)).
	Machin = Formula{
		Name:   "machin",
		Factor: 4,
		Terms:  []Term{{4, 5}, {-1, 239}},
	}
	// Takano is pi = 4 * (12*arctan(1/49) + 32*arctan(1/57) - 5*arctan(1/239) + 12*arctan(1/110443)).
	Takano = Formula{
		Name:   "takano",
		Factor: 4,
		Terms:  []Term{{12, 49}, {32, 57}, {-5, 239}, {12, 110443}},
	}
	// ChienLih is the 11-term formula of Hwang Chien-Lih (1997).
	ChienLih = Formula{
		Name:   "chienlih",
		Factor: 4,
		Terms: []Term{
			{36462, 390112}, {135908, 485298}, {274509, 683982},
			{-39581, 1984933}, {178477, 2478328}, {-114569, 3449051},
			{-146571, 18975991}, {61914, 22709274}, {-69044, 24208144},
			{-89431, 201229582}, {-43938, 2189376182},
		},
		Euler: true,
	}
)

// Compute returns pi computed with the formula f, with digits digits after the point.
// Every term is computed by its own task, at most workers tasks run at the same time.
// If workers <= 0, runtime.NumCPU() is used.
// The first failed task cancels the others.
func Compute[T Number[T]](ctx context.Context, b Backend[T], f Formula, digits, workers int) (string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	l := logger.With(
		zap.String("formula", f.Name),
		zap.String("backend", b.Name()),
		zap.Int("digits", digits),
		zap.Int("workers", workers),
	)
	l.Debug("Compute: enter")
	start := time.Now()

	results := make([]T, len(f.Terms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, term := range f.Terms {
		i, term := i, term
		g.Go(func() error {
			v, err := computeTerm(gctx, b, f, term, digits)
			if err != nil {
				return errors.Wrapf(err, "arctan(1/%d)", term.X)
			}
			results[i] = v
			l.Debug("Compute: term done", zap.Int64("x", term.X), zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	sum := b.FromInt64(0)
	for _, r := range results {
		sum = sum.Add(r)
	}
	pi := b.Reduce(sum.Mul(b.FromInt64(f.Factor)))
	l.Debug("Compute: exit", zap.Duration("elapsed", time.Since(start)))
	return b.Decimal(pi, digits), nil
}

// computeTerm returns term.Coef * arctan(1/term.X).
// The number of series terms is increased, so that the error,
// multiplied by the coefficients, stays below 10^-digits.
func computeTerm[T Number[T]](ctx context.Context, b Backend[T], f Formula, term Term, digits int) (T, error) {
	var v T
	if term.X <= 1 {
		return v, errors.Wrap(ErrBadTerm, "x must be greater than 1")
	}
	if f.Euler && term.X > maxEulerX {
		return v, errors.Wrapf(ErrBadTerm, "x must not exceed %d", maxEulerX)
	}
	guard := mathutil.DecimalDigits(mathutil.AbsUint64(term.Coef*f.Factor)) + 1
	nterms := ArctanTerms(digits+guard, 1, term.X)
	var err error
	if f.Euler {
		v, err = ArctanEuler(ctx, b, term.X, nterms)
	} else {
		var x T
		if x, err = b.Frac(1, term.X); err != nil {
			return v, err
		}
		v, err = Arctan(ctx, b, x, nterms)
	}
	if err != nil {
		return v, err
	}
	return v.Mul(b.FromInt64(term.Coef)), nil
}
