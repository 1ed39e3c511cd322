// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package z10 implements an arbitrary-precision signed integer stored as packed decimal digits.
package z10

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/pidigits/internal/bcd"
	"github.com/avdva/pidigits/internal/mathutil"
)

var (
	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidDigit is returned for a symbol or a value that is not a decimal digit.
	ErrInvalidDigit = errors.New("invalid digit")

	zero Int
)

// Int is an integer number of any size.
// Digits are kept as bcd.LE pairs, so the number 12345 takes 3 bytes.
// Zero is never negative. The zero value of Int is 0.
// Int values are immutable: all the operations return new values
// and can be used from different goroutines.
type Int struct {
	digits bcd.LE
	neg    bool
}

// newInt trims unused pairs and fixes the sign of zero.
func newInt(digits bcd.LE, neg bool) Int {
	n := digits.Significant()
	if n == 0 {
		return zero
	}
	return Int{digits: digits[:bcd.Pairs(n)], neg: neg}
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	u := mathutil.AbsUint64(v)
	digits := make(bcd.LE, bcd.Pairs(mathutil.DecimalDigits(u)))
	for i := 0; u > 0; i++ {
		digits.SetDigit(i, int(u%10))
		u /= 10
	}
	return newInt(digits, v < 0)
}

// FromDigits builds an Int from decimal digits, the most significant first.
func FromDigits(neg bool, digits ...int) (Int, error) {
	n := len(digits)
	result := make(bcd.LE, bcd.Pairs(n))
	for i, d := range digits {
		if d < 0 || d > 9 {
			return zero, errors.Wrapf(ErrInvalidDigit, "digit %d at index %d", d, i)
		}
		result.SetDigit(n-1-i, d)
	}
	return newInt(result, neg), nil
}

// MustFromDigits is like FromDigits, but panics on error.
func MustFromDigits(neg bool, digits ...int) Int {
	result, err := FromDigits(neg, digits...)
	if err != nil {
		panic(err)
	}
	return result
}

// DigitsCount returns the number of decimal digits in the number. It is 1 for zero.
func (i Int) DigitsCount() int {
	return mathutil.Max(1, i.digits.Significant())
}

// DigitAt returns the digit at position pos, where 0 is the least significant digit.
// Positions beyond the length of the number hold zeros.
func (i Int) DigitAt(pos int) int {
	if pos < 0 {
		panic(fmt.Sprintf("z10: negative digit position %d", pos))
	}
	return digitAt(i.digits, pos)
}

// IsZero returns true if i == 0.
func (i Int) IsZero() bool {
	return bcd.IsZero(i.digits)
}

// Sign returns -1, 0, or 1.
func (i Int) Sign() int {
	switch {
	case i.IsZero():
		return 0
	case i.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -i.
func (i Int) Neg() Int {
	return newInt(i.digits, !i.neg)
}

// Abs returns |i|.
func (i Int) Abs() Int {
	return newInt(i.digits, false)
}

// CmpAbs compares |i| and |other| and returns -1, 0, or 1.
func (i Int) CmpAbs(other Int) int {
	return cmpMag(i.digits, other.digits)
}

// Cmp compares i and other and returns -1, 0, or 1.
func (i Int) Cmp(other Int) int {
	si, so := i.Sign(), other.Sign()
	if si != so {
		if si < so {
			return -1
		}
		return 1
	}
	if si < 0 {
		return -cmpMag(i.digits, other.digits)
	}
	return cmpMag(i.digits, other.digits)
}

// Add returns i + other.
func (i Int) Add(other Int) Int {
	if i.neg == other.neg {
		return newInt(addMag(i.digits, other.digits), i.neg)
	}
	switch cmpMag(i.digits, other.digits) {
	case 0:
		return zero
	case 1:
		return newInt(subMag(i.digits, other.digits), i.neg)
	default:
		return newInt(subMag(other.digits, i.digits), other.neg)
	}
}

// Sub returns i - other.
func (i Int) Sub(other Int) Int {
	return i.Add(other.Neg())
}

// Mul returns i * other.
func (i Int) Mul(other Int) Int {
	if i.IsZero() || other.IsZero() {
		return zero
	}
	return newInt(mulMag(i.digits, other.digits), i.neg != other.neg)
}

// QuoRem returns the quotient and the remainder of i / other.
// The quotient is truncated toward zero, the remainder has the sign of i,
// so that i = q * other + r and |r| < |other|.
func (i Int) QuoRem(other Int) (q, r Int, err error) {
	if other.IsZero() {
		return zero, zero, ErrDivideByZero
	}
	qd, rd := divideSlowly(i.digits, other.digits)
	return newInt(qd, i.neg != other.neg), newInt(rd, i.neg), nil
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(x, 0) is |x|, the result is never negative.
func GCD(a, b Int) Int {
	x, y := a.Abs(), b.Abs()
	for !y.IsZero() {
		_, r, _ := x.QuoRem(y)
		x, y = y, r
	}
	return x
}

// Int64 returns i as int64. ok is false, if i does not fit into int64.
func (i Int) Int64() (result int64, ok bool) {
	n := i.digits.Significant()
	if n > mathutil.DecimalDigits(math.MaxInt64) {
		return 0, false
	}
	var u uint64
	for pos := n - 1; pos >= 0; pos-- {
		u = u*10 + uint64(i.digits.Digit(pos))
	}
	if i.neg {
		if u > mathutil.AbsUint64(math.MinInt64) {
			return 0, false
		}
		return int64(^u + 1), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// String returns a decimal representation of i.
func (i Int) String() string {
	n := i.digits.Significant()
	if n == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(n + 1)
	if i.neg {
		b.WriteByte('-')
	}
	pos := n - 1
	if n&1 == 1 { // the top pair holds a single digit.
		b.WriteByte('0' + byte(bcd.Lo(i.digits[pos/2])))
		pos--
	}
	for ; pos > 0; pos -= 2 {
		pair := i.digits[pos/2]
		b.WriteByte('0' + byte(bcd.Hi(pair)))
		b.WriteByte('0' + byte(bcd.Lo(pair)))
	}
	return b.String()
}

// GoString returns the number along with its raw digit pairs.
func (i Int) GoString() string {
	return fmt.Sprintf("z10.Int{%s, pairs: [% x]}", i.String(), []byte(i.digits))
}

// MarshalJSON marshals i as a JSON string.
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts both a JSON string and a JSON number without a fraction.
func (i *Int) UnmarshalJSON(data []byte) error {
	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func digitAt(d bcd.LE, pos int) int {
	if pos >= d.Len() {
		return 0
	}
	return d.Digit(pos)
}

func cmpMag(x, y bcd.LE) int {
	nx, ny := x.Significant(), y.Significant()
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for pos := nx - 1; pos >= 0; pos-- {
		dx, dy := x.Digit(pos), y.Digit(pos)
		if dx != dy {
			if dx < dy {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag returns |x| + |y|. The result has one more slot for the carry.
func addMag(x, y bcd.LE) bcd.LE {
	n := mathutil.Max(x.Significant(), y.Significant()) + 1
	result := make(bcd.LE, bcd.Pairs(n))
	var carry int
	for pos := 0; pos < n; pos++ {
		s := digitAt(x, pos) + digitAt(y, pos) + carry
		carry = s / 10
		result.SetDigit(pos, s%10)
	}
	return result
}

// subMag returns |x| - |y| for |x| >= |y|.
// When a digit of x is too small, it borrows from the nearest non-zero digit,
// turning the zeros on the way into nines.
func subMag(x, y bcd.LE) bcd.LE {
	result := make(bcd.LE, bcd.Pairs(x.Significant()))
	copy(result, x)
	ny := y.Significant()
	for pos := 0; pos < ny; pos++ {
		dx, dy := result.Digit(pos), y.Digit(pos)
		if dx < dy {
			j := pos + 1
			for ; result.Digit(j) == 0; j++ {
				result.SetDigit(j, 9)
			}
			result.SetDigit(j, result.Digit(j)-1)
			dx += 10
		}
		result.SetDigit(pos, dx-dy)
	}
	return result
}

// mulMag returns |x| * |y| using a digit accumulator of len(x)+len(y) digits.
func mulMag(x, y bcd.LE) bcd.LE {
	nx, ny := x.Significant(), y.Significant()
	acc := make([]int, nx+ny)
	for i := 0; i < nx; i++ {
		dx := x.Digit(i)
		if dx == 0 {
			continue
		}
		var carry int
		for j := 0; j < ny; j++ {
			v := acc[i+j] + dx*y.Digit(j) + carry
			acc[i+j], carry = v%10, v/10
		}
		for k := i + ny; carry > 0; k++ {
			v := acc[k] + carry
			acc[k], carry = v%10, v/10
		}
	}
	result := make(bcd.LE, bcd.Pairs(len(acc)))
	for pos, d := range acc {
		result.SetDigit(pos, d)
	}
	return result
}

// divideSlowly divides |x| by |y| digit by digit.
// The window starts with the top len(y) digits of x. While the window is not less than y,
// y is subtracted from it and the current quotient digit grows by one.
// Otherwise the next digit of x is shifted into the window.
func divideSlowly(x, y bcd.LE) (q, r bcd.LE) {
	nx, ny := x.Significant(), y.Significant()
	if ny > nx {
		return nil, x
	}
	q = make(bcd.LE, bcd.Pairs(nx-ny+1))
	window := make(bcd.LE, bcd.Pairs(ny+1))
	for pos := 0; pos < ny; pos++ {
		window.SetDigit(pos, x.Digit(nx-ny+pos))
	}
	curr := nx - ny
	for {
		if cmpMag(window, y) >= 0 {
			subInPlace(window, y)
			q.SetDigit(curr, q.Digit(curr)+1)
			continue
		}
		if curr == 0 {
			break
		}
		curr--
		shiftIn(window, x.Digit(curr))
	}
	return q, window
}

// subInPlace sets x to x - y, for x >= y.
func subInPlace(x, y bcd.LE) {
	var borrow int
	ny := y.Significant()
	for pos := 0; pos < ny || borrow > 0; pos++ {
		d := x.Digit(pos) - digitAt(y, pos) - borrow
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		x.SetDigit(pos, d)
	}
}

// shiftIn multiplies x by 10 and adds d. The top slot of x must be free.
func shiftIn(x bcd.LE, d int) {
	for pos := x.Len() - 1; pos > 0; pos-- {
		x.SetDigit(pos, x.Digit(pos-1))
	}
	x.SetDigit(0, d)
}
