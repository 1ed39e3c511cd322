// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package q10 implements exact rational numbers on top of z10.Int.
package q10

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/pidigits/z10"
)

var (
	// ErrDivideByZero is returned for a zero denominator or divisor.
	ErrDivideByZero = z10.ErrDivideByZero

	zero = Rat{den: z10.FromInt64(1)}
	ten  = z10.FromInt64(10)
)

// Rat is a fraction num/den. The denominator is always positive.
// Fractions are not reduced automatically, see Reduce.
// The zero value of Rat is not valid, use constructors.
type Rat struct {
	num, den z10.Int
}

// New returns num/den.
// A negative denominator moves its sign to the numerator.
func New(num, den z10.Int) (Rat, error) {
	if den.IsZero() {
		return zero, ErrDivideByZero
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return Rat{num: num, den: den}, nil
}

// MustNew is like New, but panics on error.
func MustNew(num, den z10.Int) Rat {
	result, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return result
}

// FromInt64 returns v/1.
func FromInt64(v int64) Rat {
	return Rat{num: z10.FromInt64(v), den: z10.FromInt64(1)}
}

// FromInt returns v/1.
func FromInt(v z10.Int) Rat {
	return Rat{num: v, den: z10.FromInt64(1)}
}

// FromFrac returns n/d.
func FromFrac(n, d int64) (Rat, error) {
	return New(z10.FromInt64(n), z10.FromInt64(d))
}

// MustFromFrac is like FromFrac, but panics on error.
func MustFromFrac(n, d int64) Rat {
	result, err := FromFrac(n, d)
	if err != nil {
		panic(err)
	}
	return result
}

// Num returns the numerator.
func (r Rat) Num() z10.Int {
	return r.num
}

// Denom returns the denominator. It is always positive.
func (r Rat) Denom() z10.Int {
	if r.den.IsZero() { // the zero value.
		return z10.FromInt64(1)
	}
	return r.den
}

// Sign returns -1, 0, or 1.
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsZero returns true if r == 0.
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// Cmp compares r and other and returns -1, 0, or 1.
func (r Rat) Cmp(other Rat) int {
	return r.num.Mul(other.Denom()).Cmp(other.num.Mul(r.Denom()))
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.Denom()}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	return Rat{num: r.num.Abs(), den: r.Denom()}
}

// Inv returns 1/r.
func (r Rat) Inv() (Rat, error) {
	return New(r.Denom(), r.num)
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	rd, od := r.Denom(), other.Denom()
	return Rat{
		num: r.num.Mul(od).Add(other.num.Mul(rd)),
		den: rd.Mul(od),
	}
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return Rat{
		num: r.num.Mul(other.num),
		den: r.Denom().Mul(other.Denom()),
	}
}

// Quo returns r / other.
func (r Rat) Quo(other Rat) (Rat, error) {
	inv, err := other.Inv()
	if err != nil {
		return zero, err
	}
	return r.Mul(inv), nil
}

// Reduce returns r with the numerator and the denominator divided by their GCD.
func (r Rat) Reduce() Rat {
	den := r.Denom()
	if r.num.IsZero() {
		return zero
	}
	gcd := z10.GCD(r.num, den)
	num, _, _ := r.num.QuoRem(gcd)
	den, _, _ = den.QuoRem(gcd)
	return Rat{num: num, den: den}
}

// Size returns the total number of digits in the numerator and the denominator.
func (r Rat) Size() int {
	return r.num.DigitsCount() + r.Denom().DigitsCount()
}

// String returns r as "num/den".
func (r Rat) String() string {
	return r.num.String() + "/" + r.Denom().String()
}

// DecimalString returns the decimal expansion of r,
// truncated to at most maxFractionDigits digits after the point.
// A terminating expansion has no trailing zeros.
// The minus sign is written only if at least one written digit is not zero.
func (r Rat) DecimalString(maxFractionDigits int) string {
	num, den := r.num.Abs(), r.Denom()
	whole, rem, _ := num.QuoRem(den)

	var b strings.Builder
	b.WriteString(whole.String())
	nonZero := !whole.IsZero()
	if !rem.IsZero() && maxFractionDigits > 0 {
		b.WriteByte('.')
		var digit z10.Int
		for i := 0; i < maxFractionDigits && !rem.IsZero(); i++ {
			digit, rem, _ = rem.Mul(ten).QuoRem(den)
			d, _ := digit.Int64()
			b.WriteByte('0' + byte(d))
			nonZero = nonZero || d != 0
		}
	}
	if r.num.Sign() < 0 && nonZero {
		return "-" + b.String()
	}
	return b.String()
}

// MarshalJSON marshals r as a "num/den" JSON string.
func (r Rat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON parses a "num/den" JSON string.
func (r *Rat) UnmarshalJSON(data []byte) error {
	parsed, err := FromString(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// FromString parses "num/den" or a plain integer.
func FromString(s string) (Rat, error) {
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := z10.FromString(numStr)
	if err != nil {
		return zero, errors.Wrap(err, "bad numerator")
	}
	if !found {
		return FromInt(num), nil
	}
	den, err := z10.FromString(denStr)
	if err != nil {
		return zero, errors.Wrap(err, "bad denominator")
	}
	return New(num, den)
}
