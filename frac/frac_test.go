package frac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		f    Fraction
		want string
	}{
		{"whole", New(6, 1), "6"},
		{"proper", New(1, 2), "1/2"},
		{"reduces", New(2, 4), "1/2"},
		{"negative numerator", New(-3, 4), "-3/4"},
		{"negative denominator carries sign", New(3, -4), "-3/4"},
		{"zero", Zero, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Display())
		})
	}
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.14, "157/50"},
		{0.5, "1/2"},
		{2, "2"},
		{0, "0"},
		{-0.25, "-1/4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromDecimal(tt.in).Display(), "FromDecimal(%v)", tt.in)
	}
}

func TestFromText(t *testing.T) {
	f, ok := FromText("3/4")
	require.True(t, ok)
	assert.Equal(t, "3/4", f.Display())

	_, ok = FromText("not-a-fraction")
	assert.False(t, ok, "FromText should reject non fraction text")

	_, ok = FromText("a/b")
	assert.False(t, ok, "FromText should reject non-integer parts")
}

func TestArithmeticInvariants(t *testing.T) {
	vals := []Fraction{New(1, 3), New(-2, 5), New(7, 1), Zero, New(6, 4)}
	for _, a := range vals {
		for _, b := range vals {
			for _, r := range []Fraction{a.Add(b), a.Sub(b), a.Mul(b)} {
				require.GreaterOrEqual(t, r.Den, int64(1), "denominator must stay positive")
				assert.LessOrEqual(t, gcd(absInt(r.Num), absInt(r.Den)), int64(1), "%v not reduced to lowest terms", r)
			}
		}
	}
}

func TestAddIdentity(t *testing.T) {
	x := New(5, 7)
	assert.True(t, x.Add(Zero).Equal(x))
}

func TestMulIdentity(t *testing.T) {
	x := New(5, 7)
	one := New(1, 1)
	assert.True(t, x.Mul(one).Equal(x))
}

func TestDivByZeroDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		z := Fraction{Num: 1, Den: 0}
		_ = z.Display()
		_ = z.ToDecimal()
		_ = New(1, 1).Div(Zero)
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, New(2, 4).Equal(New(1, 2)))
	assert.False(t, New(1, 2).Equal(New(1, 3)))
}
