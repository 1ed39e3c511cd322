package z10

import (
	"github.com/pkg/errors"

	"github.com/avdva/pidigits/internal/bcd"
	su "github.com/avdva/pidigits/internal/strutil"
)

// FromString parses a string into an Int.
// The string may have a leading '+' or '-' and must contain decimal digits only.
// Leading zeros are dropped, "-0" is zero.
func FromString(s string) (Int, error) {
	s, offset, neg := su.PrepareString(s)
	if len(s) == 0 {
		return zero, su.ErrEmptyInput
	}
	first := -1
	for i, r := range s {
		if r < '0' || r > '9' {
			// add what we've trimmed before and +1 to start indices from 1.
			err := su.AddPosErrorOffset(su.UnexpectedSymbol(ErrInvalidDigit, r, i), offset+1)
			return zero, errors.Wrap(err, "parsing failed")
		}
		if first == -1 && r != '0' {
			first = i
		}
	}
	if first == -1 { // a zero-only string
		return zero, nil
	}
	s = s[first:]
	n := len(s)
	digits := make(bcd.LE, bcd.Pairs(n))
	for i := 0; i < n; i++ {
		digits.SetDigit(n-1-i, int(s[i]-'0'))
	}
	return newInt(digits, neg), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Int {
	result, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return result
}
