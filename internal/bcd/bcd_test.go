package bcd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func beDigits(d BE) []int {
	result := make([]int, d.Len())
	for i := range result {
		result[i] = d.Digit(i)
	}
	return result
}

func TestLE(t *testing.T) {
	a := assert.New(t)
	d := make(LE, 3)
	for i, v := range []int{4, 3, 2, 1, 7} {
		d.SetDigit(i, v)
	}
	a.Equal(LE{0x34, 0x12, 0x07}, d)
	a.Equal(5, d.Significant())
	a.Equal(7, d.Digit(4))
	a.Equal(0, d.Digit(5))

	d.SetDigit(4, 0)
	a.Equal(4, d.Significant())
	a.Equal(0, make(LE, 4).Significant())
	a.Equal(0, LE(nil).Significant())
}

func TestBE(t *testing.T) {
	a := assert.New(t)
	d := make(BE, 3)
	for i, v := range []int{7, 1, 2, 3, 4} {
		d.SetDigit(i, v)
	}
	a.Equal(BE{0x71, 0x23, 0x40}, d)
	a.Equal(71, d.Lead(2))
	a.Equal(712, d.Lead(3))
	a.Equal([]int{7, 1, 2, 3, 4, 0}, beDigits(d))

	d.ClearFrom(3)
	a.Equal([]int{7, 1, 2, 0, 0, 0}, beDigits(d))
	d.ClearFrom(0)
	a.True(IsZero(d))
}

func TestBE_ShiftLeft(t *testing.T) {
	a := assert.New(t)
	digits := BE{0xAB, 0xCD, 0xEF, 0x12}
	tests := []struct {
		n        int
		expected []int
	}{
		{0, []int{0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0x1, 0x2}},
		{1, []int{0xB, 0xC, 0xD, 0xE, 0xF, 0x1, 0x2, 0}},
		{3, []int{0xD, 0xE, 0xF, 0x1, 0x2, 0, 0, 0}},
		{2, []int{0xC, 0xD, 0xE, 0xF, 0x1, 0x2, 0, 0}},
		{4, []int{0xE, 0xF, 0x1, 0x2, 0, 0, 0, 0}},
		{7, []int{0x2, 0, 0, 0, 0, 0, 0, 0}},
		{8, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{100, []int{0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, beDigits(digits.ShiftLeft(test.n)))
		})
	}
	a.Equal(BE{0xAB, 0xCD, 0xEF, 0x12}, digits, "source must not change")
}

func TestBE_ShiftRight(t *testing.T) {
	a := assert.New(t)
	digits := BE{0xAB, 0xCD, 0xEF, 0x12}
	tests := []struct {
		n        int
		expected []int
	}{
		{0, []int{0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0x1, 0x2}},
		{1, []int{0, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0x1}},
		{3, []int{0, 0, 0, 0xA, 0xB, 0xC, 0xD, 0xE}},
		{2, []int{0, 0, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF}},
		{4, []int{0, 0, 0, 0, 0xA, 0xB, 0xC, 0xD}},
		{7, []int{0, 0, 0, 0, 0, 0, 0, 0xA}},
		{8, []int{0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, beDigits(digits.ShiftRight(test.n)))
		})
	}
}

func TestBE_LeadingZeros(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, BE{0x11, 0x22, 0x33}.LeadingZeros())
	a.Equal(1, BE{0x01, 0x22, 0x33}.LeadingZeros())
	a.Equal(2, BE{0x00, 0x22, 0x33}.LeadingZeros())
	a.Equal(3, BE{0x00, 0x02, 0x33}.LeadingZeros())
	a.Equal(6, BE{0, 0, 0}.LeadingZeros())
}
