// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package zf10 implements a decimal floating-point number with a fixed number of significant digits.
//
// A value is sign * 0.d1d2...dp * 10^exp, where p is the precision of the Context
// the value was created with. All the operations truncate, there is no rounding.
package zf10

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/pidigits/internal/bcd"
	"github.com/avdva/pidigits/internal/mathutil"
	su "github.com/avdva/pidigits/internal/strutil"
)

// Float is a fixed-precision decimal number.
// The first digit of a non-zero value is never zero. Zero has exponent 0 and a positive sign.
// Floats are immutable. Mixing values of different precisions panics with ErrPrecisionMismatch.
type Float struct {
	digits bcd.BE
	exp    int
	sign   int8
	prec   int
}

// Prec returns the precision the value was created with.
func (f Float) Prec() int {
	return f.prec
}

// Sign returns -1, 0, or 1.
func (f Float) Sign() int {
	if f.IsZero() {
		return 0
	}
	return mathutil.Sign(f.sign)
}

// Exponent returns the exponent of the value.
func (f Float) Exponent() int {
	return f.exp
}

// IsZero returns true if f == 0.
func (f Float) IsZero() bool {
	return bcd.IsZero(f.digits)
}

// DigitAt returns the i-th significant digit, where 0 is the most significant one.
// Positions beyond the precision hold zeros.
func (f Float) DigitAt(i int) int {
	if i < 0 {
		panic(fmt.Sprintf("zf10: negative digit position %d", i))
	}
	if i >= f.prec {
		return 0
	}
	return f.digits.Digit(i)
}

// Digits returns all the significant digits, including trailing zeros.
func (f Float) Digits() []int {
	result := make([]int, f.prec)
	for i := range result {
		result[i] = f.digits.Digit(i)
	}
	return result
}

// Neg returns -f.
func (f Float) Neg() Float {
	if f.IsZero() {
		return f
	}
	f.sign = -f.sign
	return f
}

// Abs returns |f|.
func (f Float) Abs() Float {
	f.sign = 1
	return f
}

// Exp10 returns f * 10^n.
func (f Float) Exp10(n int) Float {
	if f.IsZero() {
		return f
	}
	f.exp += n
	return f
}

// CmpAbs compares |f| and |other| and returns -1, 0, or 1.
func (f Float) CmpAbs(other Float) int {
	f.checkPrec(other)
	fz, oz := f.IsZero(), other.IsZero()
	switch {
	case fz && oz:
		return 0
	case fz:
		return -1
	case oz:
		return 1
	case f.exp != other.exp:
		if f.exp < other.exp {
			return -1
		}
		return 1
	default:
		return bytes.Compare(f.digits, other.digits)
	}
}

// Cmp compares f and other and returns -1, 0, or 1.
func (f Float) Cmp(other Float) int {
	fs, os := f.Sign(), other.Sign()
	if fs != os {
		f.checkPrec(other)
		if fs < os {
			return -1
		}
		return 1
	}
	if fs < 0 {
		return -f.CmpAbs(other)
	}
	return f.CmpAbs(other)
}

// Add returns f + other.
// The operand with the smaller exponent is shifted right, so its lowest digits are lost.
func (f Float) Add(other Float) Float {
	f.checkPrec(other)
	if f.IsZero() {
		return other
	}
	if other.IsZero() {
		return f
	}
	x, y := f, other
	if x.exp < y.exp {
		x, y = y, x
	}
	aligned := y.digits.ShiftRight(x.exp - y.exp)
	aligned.ClearFrom(f.prec)
	if x.sign == y.sign {
		return f.addMag(x.digits, aligned, x.exp, x.sign)
	}
	switch bytes.Compare(x.digits, aligned) {
	case 0:
		return f.ctx().Zero()
	case 1:
		return f.subMag(x.digits, aligned, x.exp, x.sign)
	default:
		return f.subMag(aligned, x.digits, x.exp, y.sign)
	}
}

// Sub returns f - other.
func (f Float) Sub(other Float) Float {
	return f.Add(other.Neg())
}

// Mul returns f * other. The double-width product is truncated to the precision.
func (f Float) Mul(other Float) Float {
	f.checkPrec(other)
	if f.IsZero() || other.IsZero() {
		return f.ctx().Zero()
	}
	n := f.prec
	acc := make([]int, 2*n)
	for i := n - 1; i >= 0; i-- {
		di := f.digits.Digit(i)
		if di == 0 {
			continue
		}
		for j := n - 1; j >= 0; j-- {
			acc[i+j+1] += di * other.digits.Digit(j)
		}
	}
	for k := 2*n - 1; k > 0; k-- {
		acc[k-1] += acc[k] / 10
		acc[k] %= 10
	}
	exp := f.exp + other.exp
	if acc[0] == 0 {
		acc = acc[1:]
		exp--
	}
	result := f.ctx().Zero()
	for i := 0; i < n; i++ {
		result.digits.SetDigit(i, acc[i])
	}
	result.exp = exp
	result.sign = f.sign * other.sign
	return result
}

// Quo returns f / other, truncated to the precision.
// Each quotient digit is found by subtracting multiples of the divisor,
// estimated from the leading digits of the remainder and the divisor.
func (f Float) Quo(other Float) (Float, error) {
	f.checkPrec(other)
	if other.IsZero() {
		return f.ctx().Zero(), ErrDivideByZero
	}
	if f.IsZero() {
		return f, nil
	}
	n := f.prec
	// both the remainder and the divisor take n+1 digits,
	// the divisor is placed in the n lower ones.
	rem, div := make([]int, n+1), make([]int, n+1)
	for i := 0; i < n; i++ {
		div[i+1] = other.digits.Digit(i)
	}
	exp := f.exp - other.exp
	if bytes.Compare(f.digits, other.digits) >= 0 {
		exp++
		for i := 0; i < n; i++ {
			rem[i+1] = f.digits.Digit(i)
		}
	} else {
		for i := 0; i < n; i++ {
			rem[i] = f.digits.Digit(i)
		}
	}
	k := mathutil.Min(2, n)
	divLead := leadOf(div[1 : k+1])
	result := f.ctx().Zero()
	for i := 0; i < n; i++ {
		var digit int
		for cmpDigits(rem, div) >= 0 {
			est := mathutil.Max(1, leadOf(rem[:k+1])/(divLead+1))
			subMulDigits(rem, div, est)
			digit += est
		}
		result.digits.SetDigit(i, digit)
		if isZeroDigits(rem) {
			break
		}
		copy(rem, rem[1:])
		rem[n] = 0
	}
	result.exp = exp
	result.sign = f.sign * other.sign
	return result, nil
}

// String returns f in the plain notation when 0 <= exp <= prec, and in the scientific one otherwise.
// Trailing fraction zeros are removed.
func (f Float) String() string {
	if f.IsZero() {
		return "0"
	}
	var b strings.Builder
	if f.sign < 0 {
		b.WriteByte('-')
	}
	digits := make([]byte, f.prec)
	for i := range digits {
		digits[i] = '0' + byte(f.digits.Digit(i))
	}
	if f.exp >= 0 && f.exp <= f.prec {
		var plain string
		if f.exp == 0 {
			plain = "0." + string(digits)
		} else {
			plain = string(digits[:f.exp]) + "." + string(digits[f.exp:])
		}
		b.WriteString(trimFraction(plain))
		return b.String()
	}
	b.WriteString(trimFraction(string(digits[:1]) + "." + string(digits[1:])))
	b.WriteString("E")
	b.WriteString(strconv.Itoa(f.exp - 1))
	return b.String()
}

// FixedString returns f in the plain notation with exactly fractionDigits digits after the point.
// Extra digits are truncated, missing ones are zeros.
func (f Float) FixedString(fractionDigits int) string {
	fractionDigits = mathutil.Max(0, fractionDigits)
	var whole, frac strings.Builder
	if f.IsZero() {
		whole.WriteByte('0')
	} else {
		if f.sign < 0 {
			whole.WriteByte('-')
		}
		if f.exp <= 0 {
			whole.WriteByte('0')
			frac.Write(su.ZeroBytes(mathutil.Min(-f.exp, fractionDigits)))
		}
		for i := 0; i < f.prec; i++ {
			d := '0' + byte(f.digits.Digit(i))
			if i < f.exp {
				whole.WriteByte(d)
			} else if frac.Len() < fractionDigits {
				frac.WriteByte(d)
			}
		}
		if f.exp > f.prec {
			whole.Write(su.ZeroBytes(f.exp - f.prec))
		}
	}
	if fractionDigits <= 0 {
		return whole.String()
	}
	if n := fractionDigits - frac.Len(); n > 0 {
		frac.Write(su.ZeroBytes(n))
	}
	return whole.String() + "." + frac.String()
}

// Text is the same as String.
func (f Float) Text() string {
	return f.String()
}

// GoString returns the internal representation of f.
func (f Float) GoString() string {
	return fmt.Sprintf("zf10.Float{prec: %d, sign: %d, exp: %d, digits: %v}", f.prec, f.sign, f.exp, f.Digits())
}

// MarshalJSON marshals f as a JSON string.
func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f Float) ctx() *Context {
	return &Context{prec: f.prec}
}

func (f Float) checkPrec(other Float) {
	if f.prec != other.prec {
		panic(errors.Wrapf(ErrPrecisionMismatch, "%d != %d", f.prec, other.prec))
	}
}

// addMag returns x + y. A carry out of the first digit shifts the result right.
func (f Float) addMag(x, y bcd.BE, exp int, sign int8) Float {
	result := f.ctx().Zero()
	var carry int
	for i := f.prec - 1; i >= 0; i-- {
		s := x.Digit(i) + y.Digit(i) + carry
		carry = s / 10
		result.digits.SetDigit(i, s%10)
	}
	if carry > 0 {
		result.digits = result.digits.ShiftRight(1)
		result.digits.SetDigit(0, carry)
		result.digits.ClearFrom(f.prec)
		exp++
	}
	result.exp = exp
	result.sign = sign
	return result
}

// subMag returns x - y for x > y and shifts the leading zeros out.
func (f Float) subMag(x, y bcd.BE, exp int, sign int8) Float {
	result := f.ctx().Zero()
	var borrow int
	for i := f.prec - 1; i >= 0; i-- {
		d := x.Digit(i) - y.Digit(i) - borrow
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		result.digits.SetDigit(i, d)
	}
	if lz := result.digits.LeadingZeros(); lz > 0 {
		result.digits = result.digits.ShiftLeft(lz)
		exp -= lz
	}
	result.exp = exp
	result.sign = sign
	return result
}

func trimFraction(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

func leadOf(digits []int) int {
	var r int
	for _, d := range digits {
		r = r*10 + d
	}
	return r
}

func cmpDigits(x, y []int) int {
	for i := range x {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subMulDigits sets x to x - m*y, for x >= m*y.
func subMulDigits(x, y []int, m int) {
	var borrow int
	for i := len(x) - 1; i >= 0; i-- {
		d := x[i] - m*y[i] - borrow
		borrow = 0
		if d < 0 {
			borrow = (-d + 9) / 10
			d += borrow * 10
		}
		x[i] = d
	}
}

func isZeroDigits(digits []int) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}
