// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package verify checks computed digits of the constants against known expansions.
package verify

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMismatch is returned when a computed digit differs from the reference one.
	ErrMismatch = errors.New("digits mismatch")
	// ErrReferenceTooShort is returned when there are more digits than the reference has.
	ErrReferenceTooShort = errors.New("reference is too short")

	//go:embed pi.txt
	piRef string
	//go:embed sqrt2.txt
	sqrt2Ref string
)

// Pi checks that digits is a prefix of the decimal expansion of pi.
// Spaces are ignored.
func Pi(digits string) error {
	return check(digits, piRef)
}

// Sqrt2 checks that digits is a prefix of the decimal expansion of the square root of 2.
// Spaces are ignored.
func Sqrt2(digits string) error {
	return check(digits, sqrt2Ref)
}

// PiPrefix returns pi with n digits after the point.
// It panics if the reference is shorter.
func PiPrefix(n int) string {
	ref := strings.TrimSpace(piRef)
	if n <= 0 {
		return ref[:1]
	}
	return ref[:n+2]
}

// MaxDigits returns the number of digits after the point in the pi and the square root of 2 references.
func MaxDigits() (pi, sqrt2 int) {
	return len(strings.TrimSpace(piRef)) - 2, len(strings.TrimSpace(sqrt2Ref)) - 2
}

func check(digits, ref string) error {
	digits = strings.ReplaceAll(digits, " ", "")
	ref = strings.TrimSpace(ref)
	for i := 0; i < len(digits); i++ {
		if i >= len(ref) {
			return errors.Wrapf(ErrReferenceTooShort, "%d symbols known, got %d", len(ref), len(digits))
		}
		if digits[i] != ref[i] {
			return errors.Wrapf(ErrMismatch, "at pos %d: %q != %q", i+1, digits[i], ref[i])
		}
	}
	return nil
}
