package zf10

import (
	"strconv"

	"github.com/pkg/errors"

	su "github.com/avdva/pidigits/internal/strutil"
)

const (
	delim = '.'
)

var (
	errDelimiter = errors.New("unexpected delimiter")
)

// FromString parses a decimal string, like "-123.456" or "1.5E-7".
// Digits beyond the precision are truncated.
func (c *Context) FromString(s string) (Float, error) {
	s, offset, neg := su.PrepareString(s)
	if len(s) == 0 {
		return c.Zero(), su.ErrEmptyInput
	}
	digits, exp, err := parseDigits(s)
	if err != nil {
		// add what we've trimmed before and +1 to start indices from 1.
		return c.Zero(), errors.Wrap(su.AddPosErrorOffset(err, offset+1), "parsing failed")
	}
	return c.fromDigits(neg, digits, exp), nil
}

// MustFromString is like FromString, but panics on error.
func (c *Context) MustFromString(s string) Float {
	result, err := c.FromString(s)
	if err != nil {
		panic(err)
	}
	return result
}

// parseDigits returns all the digits of s and the number of digits before the delimiter,
// corrected by the exponent part, if any.
func parseDigits(s string) (digits []int, exp int, err error) {
	delimPos := -1
	var haveDigits bool
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits = append(digits, int(r-'0'))
			haveDigits = true
		case r == delim:
			if delimPos != -1 {
				return nil, 0, su.NewPosError(errDelimiter, i)
			}
			delimPos = len(digits)
		case (r == 'e' || r == 'E') && haveDigits:
			parsed, err := strconv.Atoi(s[i+1:])
			if err != nil {
				return nil, 0, su.NewPosError(errors.Wrap(err, "error parsing exponent"), i+1)
			}
			exp = parsed
			break outer
		default:
			return nil, 0, su.UnexpectedSymbol(ErrInvalidDigit, r, i)
		}
	}
	if !haveDigits {
		return nil, 0, su.ErrEmptyInput
	}
	if delimPos == -1 {
		delimPos = len(digits)
	}
	return digits, exp + delimPos, nil
}
