// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bcd implements packed decimal digit sequences, two digits per byte.
//
// Both the unbounded integer and the fixed-precision float store their digits
// this way, but they index them differently:
//   - LE keeps the least significant digit first, in the low nibble of byte 0.
//   - BE keeps the most significant digit first, in the high nibble of byte 0.
package bcd

// LE is a little-endian packed decimal.
// Number 71234 is stored as
//
//	[4|3] [2|1] [7|0]
//
// where [x|y] is a byte with the low nibble x and the high nibble y.
type LE []byte

// BE is a big-endian packed decimal.
// Digits 7, 1, 2, 3, 4 are stored as
//
//	[7|1] [2|3] [4|0]
//
// where [x|y] is a byte with the high nibble x and the low nibble y.
type BE []byte

// Pairs returns the number of bytes needed to store n digits.
func Pairs(n int) int {
	return (n + 1) / 2
}

// Lo returns the low nibble of b.
func Lo(b byte) int {
	return int(b & 0x0F)
}

// Hi returns the high nibble of b.
func Hi(b byte) int {
	return int(b&0xF0) >> 4
}

func setLo(b byte, d int) byte {
	return b&0xF0 | byte(d)&0x0F
}

func setHi(b byte, d int) byte {
	return b&0x0F | byte(d<<4)&0xF0
}

// IsZero returns true if all the bytes are zero.
func IsZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of digit slots.
func (d LE) Len() int {
	return 2 * len(d)
}

// Digit returns the digit at index i, where 0 is the least significant digit.
func (d LE) Digit(i int) int {
	if i&1 == 0 {
		return Lo(d[i/2])
	}
	return Hi(d[i/2])
}

// SetDigit sets the digit at index i to v.
func (d LE) SetDigit(i, v int) {
	if i&1 == 0 {
		d[i/2] = setLo(d[i/2], v)
	} else {
		d[i/2] = setHi(d[i/2], v)
	}
}

// Significant returns the number of digits without the leading zeros.
// Returns 0 for an all-zero sequence.
func (d LE) Significant() int {
	i := len(d) - 1
	for i >= 0 && d[i] == 0 {
		i--
	}
	if i < 0 {
		return 0
	}
	if Hi(d[i]) == 0 {
		return 2*i + 1
	}
	return 2*i + 2
}

// Len returns the number of digit slots.
func (d BE) Len() int {
	return 2 * len(d)
}

// Digit returns the digit at index i, where 0 is the most significant digit.
func (d BE) Digit(i int) int {
	if i&1 == 0 {
		return Hi(d[i/2])
	}
	return Lo(d[i/2])
}

// SetDigit sets the digit at index i to v.
func (d BE) SetDigit(i, v int) {
	if i&1 == 0 {
		d[i/2] = setHi(d[i/2], v)
	} else {
		d[i/2] = setLo(d[i/2], v)
	}
}

// Lead returns the number formed by the first n digits.
func (d BE) Lead(n int) int {
	var r int
	for i := 0; i < n; i++ {
		r = r*10 + d.Digit(i)
	}
	return r
}

// LeadingZeros returns the number of zero digits before the first non-zero one.
// For an all-zero sequence, the result is d.Len().
func (d BE) LeadingZeros() int {
	var zeros int
	for _, b := range d {
		if b == 0 {
			zeros += 2
			continue
		}
		if Hi(b) == 0 {
			zeros++
		}
		break
	}
	return zeros
}

// ClearFrom sets all digits starting from index i to zero.
func (d BE) ClearFrom(i int) {
	if i < 0 {
		i = 0
	}
	if i&1 == 1 && i < d.Len() {
		d.SetDigit(i, 0)
		i++
	}
	for j := i / 2; j < len(d); j++ {
		d[j] = 0
	}
}

// ShiftLeft returns a copy of d moved n digits towards the most significant end.
// Digits shifted out are lost, new digits are zero.
func (d BE) ShiftLeft(n int) BE {
	tmp := make(BE, len(d))
	if n >= d.Len() {
		return tmp
	}
	if n&1 == 0 { // move whole pairs
		copy(tmp, d[n/2:])
		return tmp
	}
	for i, j := 0, n; j < d.Len(); i, j = i+1, j+1 {
		tmp.SetDigit(i, d.Digit(j))
	}
	return tmp
}

// ShiftRight returns a copy of d moved n digits towards the least significant end.
// Digits shifted out are lost, new digits are zero.
func (d BE) ShiftRight(n int) BE {
	tmp := make(BE, len(d))
	if n >= d.Len() {
		return tmp
	}
	if n&1 == 0 { // move whole pairs
		copy(tmp[n/2:], d)
		return tmp
	}
	for i, j := n, 0; i < d.Len(); i, j = i+1, j+1 {
		tmp.SetDigit(i, d.Digit(j))
	}
	return tmp
}
