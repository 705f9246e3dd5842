package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundQuo(t *testing.T) {
	tests := []struct {
		name   string
		n, d   uint64
		digits int
		want   string
	}{
		{name: "exact", n: 1500, d: 1000, digits: 1, want: "1.5"},
		{name: "pads fraction", n: 5003, d: 1000, digits: 2, want: "5.00"},
		{name: "below half", n: 8452020, d: 1000000, digits: 2, want: "8.45"},
		{name: "above half", n: 55700, d: 1000, digits: 0, want: "56"},
		{name: "tie to even down", n: 1005, d: 1000, digits: 2, want: "1.00"},
		{name: "tie to even up", n: 1015, d: 1000, digits: 2, want: "1.02"},
		{name: "binary tie down", n: 1152, d: 1024, digits: 2, want: "1.12"},
		{name: "binary tie up", n: 1408, d: 1024, digits: 2, want: "1.38"},
		{name: "integer tie to even up", n: 1536, d: 1024, digits: 0, want: "2"},
		{name: "integer tie to even down", n: 2560, d: 1024, digits: 0, want: "2"},
		{name: "carry into integer", n: 999995, d: 1000, digits: 2, want: "1000.00"},
		{name: "repeating", n: 2, d: 3, digits: 5, want: "0.66667"},
		{name: "small fraction keeps leading zeros", n: 5, d: 1000, digits: 3, want: "0.005"},
		{name: "small tie rounds to zero", n: 5, d: 1000, digits: 2, want: "0.00"},
		{name: "max uint64 over 2^60", n: math.MaxUint64, d: 1 << 60, digits: 2, want: "16.00"},
		{name: "divisor one", n: math.MaxUint64, d: 1, digits: 0, want: "18446744073709551615"},
		{name: "huge divisor", n: math.MaxUint64, d: math.MaxUint64, digits: 3, want: "1.000"},
		{name: "max digits", n: 1, d: 3, digits: MaxDigits, want: "0.3333333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundQuo(tt.n, tt.d, tt.digits)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRoundQuoPanics(t *testing.T) {
	assert.Panics(t, func() { RoundQuo(1, 0, 2) })
	assert.Panics(t, func() { RoundQuo(1, 1, -1) })
	assert.Panics(t, func() { RoundQuo(1, 1, MaxDigits+1) })
}

func TestFixedFloat64(t *testing.T) {
	assert.Equal(t, 1.5, Fixed{Int: 1, Frac: 5, Digits: 1}.Float64())
	assert.Equal(t, 0.05, Fixed{Int: 0, Frac: 5, Digits: 2}.Float64())
	assert.Equal(t, 1000.0, RoundQuo(999995, 1000, 2).Float64())
	assert.Equal(t, 2.0, RoundQuo(1536, 1024, 0).Float64())
}

func TestFixedPredicates(t *testing.T) {
	f := RoundQuo(999995, 1000, 2)
	assert.True(t, f.AtLeast(1000))
	assert.False(t, RoundQuo(999994, 1000, 2).AtLeast(1000))
	assert.True(t, Fixed{Digits: 3}.IsZero())
	assert.False(t, Fixed{Frac: 1, Digits: 3}.IsZero())
}
