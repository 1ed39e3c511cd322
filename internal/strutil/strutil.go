// Package strutil contains parsing and formatting helpers shared by the number packages.
package strutil

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned when there is nothing to parse.
	ErrEmptyInput = errors.New("empty input")

	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// PosError is a parsing error bound to a position in the input.
type PosError struct {
	Pos int
	Err error
}

// NewPosError returns a new *PosError.
func NewPosError(err error, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Err.Error() + fmt.Sprintf(" at pos %d", pe.Pos)
}

// Unwrap returns the underlying error.
func (pe PosError) Unwrap() error {
	return pe.Err
}

// Cause returns the underlying error for github.com/pkg/errors.
func (pe PosError) Cause() error {
	return pe.Err
}

// AddPosErrorOffset shifts the position of a *PosError, if err is one.
func AddPosErrorOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return pe
}

// UnexpectedSymbol returns a *PosError for the symbol r found at pos.
func UnexpectedSymbol(sentinel error, r rune, pos int) *PosError {
	return NewPosError(errors.Wrapf(sentinel, "unexpected symbol %q", r), pos)
}

// PrepareString cleans the string from ",-,+ symbols, and spaces.
// offset is the number of bytes trimmed from the beginning of s.
func PrepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// ZeroBytes returns a slice of count '0' symbols.
// The result must not be modified.
func ZeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}

// GroupDigits inserts a space after every n symbols of s.
func GroupDigits(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
