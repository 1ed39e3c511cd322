// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPi(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		digits string
		err    error
	}{
		{"", nil},
		{"3", nil},
		{"3.14159", nil},
		{"3.1415926535 8979323846 2643383279", nil},
		{"3.14158", ErrMismatch},
		{"2.71828", ErrMismatch},
		{PiPrefix(500), nil},
		{PiPrefix(5000), nil},
		{PiPrefix(100000), nil},
		{PiPrefix(100000) + "1", ErrReferenceTooShort},
		{PiPrefix(5000)[:4000] + "0" + PiPrefix(5000)[4001:] + "1", ErrMismatch},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			err := Pi(test.digits)
			if test.err == nil {
				a.NoError(err)
			} else {
				a.True(errors.Is(err, test.err), "%v", err)
			}
		})
	}
	a.EqualError(Pi("3.14158"), `at pos 7: '8' != '9': digits mismatch`)
}

func TestSqrt2(t *testing.T) {
	a := assert.New(t)
	a.NoError(Sqrt2("1.41421356237309504880168872420969807856967187537694"))
	a.True(errors.Is(Sqrt2("1.41421356237309504880168872420969807856967187537695"), ErrMismatch))
}

func TestPiPrefix(t *testing.T) {
	a := assert.New(t)
	a.Equal("3", PiPrefix(0))
	a.Equal("3.1", PiPrefix(1))
	a.Equal("3.1415926535", PiPrefix(10))
	a.Len(PiPrefix(100), 102)
	a.Len(PiPrefix(100000), 100002)
	a.Panics(func() { PiPrefix(100001) })

	pi, sqrt2 := MaxDigits()
	a.Equal(100000, pi)
	a.Equal(100000, sqrt2)
}
