// File: fraction_test.go
// Title: Unit Tests for Fraction
// Description: Tests for construction, arithmetic, comparison and
//              simplification including the int64 overflow edges.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-16 v0.2.0: Overflow and exact comparison tests

package fractionx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
)

func frac(n, d int64) Fraction {
	return MustNew(n, d)
}

func assertFraction(t *testing.T, want string, got Fraction, err error) {
	t.Helper()
	require.NoError(t, err)
	assert.Equal(t, want, got.String())
}

func assertCode(t *testing.T, code mxerror.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, mxerror.HasCode(err, code), "error %v does not carry %s", err, code)
}

func TestNew(t *testing.T) {
	f, err := New(2, 4)
	assertFraction(t, "2/4", f, err)

	f, err = New(-3, 5)
	assertFraction(t, "-3/5", f, err)

	for _, d := range []int64{0, -1, math.MinInt64} {
		_, err := New(1, d)
		assertCode(t, mxerror.CodeInvalidArgument, err)
		assert.True(t, mxerrors.IsModuleOperation(err, mxerrors.ModuleFractionx, "new"))
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(1, 0) })
}

func TestZeroValue(t *testing.T) {
	var f Fraction

	assert.Equal(t, int64(0), f.Numerator())
	assert.Equal(t, int64(1), f.Denominator())
	assert.True(t, f.IsZero())
	assert.True(t, f.Equal(Zero()))
	assert.True(t, f == Zero())
	assert.True(t, frac(0, 9).Simplify() == f)
	assert.True(t, FromInt(3) == frac(6, 2).Simplify())
	assert.Equal(t, "0/1", f.String())

	sum, err := f.Add(frac(1, 3))
	assertFraction(t, "1/3", sum, err)
}

func TestSetters(t *testing.T) {
	f := frac(1, 2)

	assert.Equal(t, "0/2", f.WithNumerator(0).String())
	assert.Equal(t, "-5/2", f.WithNumerator(-5).String())
	assert.Equal(t, "1/2", f.String(), "setters must not modify the receiver")

	g, err := f.WithDenominator(7)
	assertFraction(t, "1/7", g, err)

	_, err = f.WithDenominator(0)
	assertCode(t, mxerror.CodeInvalidArgument, err)
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		f      Fraction
		sign   int
		proper bool
	}{
		{frac(1, 2), 1, true},
		{frac(3, 2), 1, false},
		{frac(2, 2), 1, false},
		{frac(0, 5), 0, false},
		{frac(-1, 2), -1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.sign, tt.f.Sign(), tt.f.String())
		assert.Equal(t, tt.proper, tt.f.IsProper(), tt.f.String())
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   Fraction
		want string
	}{
		{frac(2, 4), "1/2"},
		{frac(6, 3), "2/1"},
		{frac(-6, 8), "-3/4"},
		{frac(0, 9), "0/1"},
		{frac(7, 13), "7/13"},
		{frac(math.MinInt64, 2), "-4611686018427387904/1"},
		{frac(math.MaxInt64, math.MaxInt64), "1/1"},
	}

	for _, tt := range tests {
		got := Simplify(tt.in)
		assert.Equal(t, tt.want, got.String())
		assert.Equal(t, got, got.Simplify(), "Simplify must be idempotent")
		assert.True(t, got.Equal(tt.in), "Simplify must preserve the value")
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want string
	}{
		{frac(1, 2), frac(1, 3), "5/6"},
		{frac(1, 4), frac(1, 4), "1/2"},
		{frac(1, 2), frac(-1, 2), "0/1"},
		{frac(3, 4), frac(5, 6), "19/12"},
		{frac(-1, 3), frac(-1, 6), "-1/2"},
	}

	for _, tt := range tests {
		got, err := tt.a.Add(tt.b)
		assertFraction(t, tt.want, got, err)

		back, err := tt.b.Add(tt.a)
		require.NoError(t, err)
		assert.True(t, got.Equal(back), "Add must commute")
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want string
	}{
		{frac(3, 4), frac(1, 4), "1/2"},
		{frac(1, 3), frac(1, 2), "-1/6"},
		{frac(5, 6), frac(5, 6), "0/1"},
	}

	for _, tt := range tests {
		got, err := tt.a.Sub(tt.b)
		assertFraction(t, tt.want, got, err)

		sum, err := got.Add(tt.b)
		require.NoError(t, err)
		assert.True(t, sum.Equal(tt.a), "(a - b) + b must equal a")
	}
}

func TestAddSub_Overflow(t *testing.T) {
	big := frac(math.MaxInt64, 1)

	_, err := big.Add(frac(1, 1))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
	assert.True(t, mxerrors.IsModuleOperation(err, mxerrors.ModuleFractionx, "add"))

	_, err = frac(math.MinInt64, 1).Sub(frac(1, 1))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)

	_, err = frac(1, math.MaxInt64).Add(frac(1, math.MaxInt64-1))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want string
	}{
		{frac(2, 3), frac(3, 4), "1/2"},
		{frac(-2, 3), frac(3, 4), "-1/2"},
		{frac(-2, 3), frac(-3, 4), "1/2"},
		{frac(0, 3), frac(3, 4), "0/1"},
		{frac(math.MaxInt64, 2), frac(2, math.MaxInt64), "1/1"},
		{frac(1<<40, 3), frac(3, 1<<20), "1048576/1"},
	}

	for _, tt := range tests {
		got, err := tt.a.Mul(tt.b)
		assertFraction(t, tt.want, got, err)
	}
}

func TestMul_Overflow(t *testing.T) {
	_, err := frac(math.MaxInt64, 1).Mul(frac(2, 1))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)

	_, err = frac(1, 1<<32).Mul(frac(1, 1<<32))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestMulInt(t *testing.T) {
	got, err := frac(3, 4).MulInt(2)
	assertFraction(t, "3/2", got, err)

	_, err = frac(math.MaxInt64, 3).MulInt(4)
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want string
	}{
		{frac(1, 2), frac(1, 3), "3/2"},
		{frac(1, 2), frac(1, 2), "1/1"},
		{frac(3, 4), frac(-3, 8), "-2/1"},
		{frac(-1, 2), frac(-1, 4), "2/1"},
		{frac(0, 5), frac(7, 9), "0/1"},
		{frac(math.MinInt64, 1), frac(math.MinInt64, 1), "1/1"},
	}

	for _, tt := range tests {
		got, err := tt.a.Div(tt.b)
		assertFraction(t, tt.want, got, err)
		assert.Positive(t, got.Denominator())
	}
}

func TestDiv_Errors(t *testing.T) {
	_, err := frac(1, 2).Div(Zero())
	assertCode(t, mxerror.CodeInvalidArgument, err)
	assert.Equal(t, "division by zero", err.Error())

	_, err = frac(1, 1).Div(frac(math.MinInt64, 1))
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestMulDiv_RoundTrip(t *testing.T) {
	values := []Fraction{frac(1, 2), frac(-7, 3), frac(22, 7), frac(5, 1), frac(-1, 9)}

	for _, a := range values {
		for _, b := range values {
			q, err := a.Div(b)
			require.NoError(t, err)
			back, err := q.Mul(b)
			require.NoError(t, err)
			assert.True(t, back.Equal(a), "(%v / %v) * %v = %v", a, b, b, back)
		}
	}
}

func TestIncDec(t *testing.T) {
	got, err := frac(1, 2).Inc()
	assertFraction(t, "2/2", got, err)

	got, err = frac(1, 2).Dec()
	assertFraction(t, "0/2", got, err)

	got, err = frac(2, 4).Inc()
	assertFraction(t, "3/4", got, err)

	_, err = frac(math.MaxInt64, 2).Inc()
	assertCode(t, mxerror.CodeArithmeticOverflow, err)

	_, err = frac(math.MinInt64, 2).Dec()
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestNegAbsReciprocal(t *testing.T) {
	got, err := frac(3, 4).Neg()
	assertFraction(t, "-3/4", got, err)

	got, err = frac(-3, 4).Abs()
	assertFraction(t, "3/4", got, err)

	got, err = frac(3, 4).Reciprocal()
	assertFraction(t, "4/3", got, err)

	got, err = frac(-3, 4).Reciprocal()
	assertFraction(t, "-4/3", got, err)

	_, err = Zero().Reciprocal()
	assertCode(t, mxerror.CodeInvalidArgument, err)

	reduced := []struct {
		name string
		op   func(Fraction) (Fraction, error)
		in   Fraction
		want string
	}{
		{"neg", Fraction.Neg, frac(2, 4), "-1/2"},
		{"neg negative", Fraction.Neg, frac(-6, 9), "2/3"},
		{"abs", Fraction.Abs, frac(-2, 4), "1/2"},
		{"abs positive", Fraction.Abs, frac(10, 4), "5/2"},
		{"reciprocal", Fraction.Reciprocal, frac(2, 4), "2/1"},
		{"reciprocal negative", Fraction.Reciprocal, frac(-6, 8), "-4/3"},
	}
	for _, tt := range reduced {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.in)
			assertFraction(t, tt.want, got, err)
			assert.Equal(t, got, got.Simplify())
		})
	}

	for _, op := range []func(Fraction) (Fraction, error){Fraction.Neg, Fraction.Abs, Fraction.Reciprocal} {
		_, err = op(frac(math.MinInt64, 3))
		assertCode(t, mxerror.CodeArithmeticOverflow, err)
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want int
	}{
		{frac(1, 2), frac(2, 4), 0},
		{frac(1, 3), frac(1, 2), -1},
		{frac(1, 2), frac(1, 3), 1},
		{frac(-1, 2), frac(1, 3), -1},
		{frac(-1, 2), frac(-1, 3), -1},
		{frac(0, 7), Zero(), 0},
		{frac(0, 7), frac(-1, 7), 1},
		{frac(math.MaxInt64, math.MaxInt64-1), frac(math.MaxInt64-1, math.MaxInt64-2), -1},
		{frac(math.MinInt64, 1), frac(math.MinInt64+1, 1), -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Cmp(tt.b), "%v cmp %v", tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Cmp(tt.a), "%v cmp %v", tt.b, tt.a)
	}
}

func TestComparisonHelpers(t *testing.T) {
	half, third := frac(1, 2), frac(1, 3)

	assert.True(t, half.GreaterThan(third))
	assert.False(t, third.GreaterThan(half))
	assert.True(t, third.LessThan(half))
	assert.True(t, half.Equal(frac(3, 6)))
	assert.True(t, half.GreaterThanOrEqual(frac(2, 4)))
	assert.True(t, half.LessThanOrEqual(frac(2, 4)))
	assert.False(t, half.LessThanOrEqual(third))
}
