// File: mixed_test.go
// Title: Unit Tests for MixedNumber
// Description: Tests for mixed number validation, conversion and the
//              unnormalized part-wise arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package fractionx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
)

func mixed(w, n, d int64) MixedNumber {
	m, err := NewMixedParts(w, n, d)
	if err != nil {
		panic(err)
	}
	return m
}

func TestNewMixed(t *testing.T) {
	m, err := NewMixed(2, frac(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Whole())
	assert.Equal(t, "1/2", m.Fraction().String())
	assert.Equal(t, "2 1/2", m.String())

	m, err = NewMixedWhole(3)
	require.NoError(t, err)
	assert.Equal(t, "3 1/2", m.String())

	assert.Equal(t, "1 1/2", DefaultMixed().String())
}

func TestNewMixed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		w, n, d int64
	}{
		{"zero whole", 0, 1, 2},
		{"negative whole", -1, 1, 2},
		{"zero fraction", 1, 0, 2},
		{"negative fraction", 1, -1, 2},
		{"zero denominator", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMixedParts(tt.w, tt.n, tt.d)
			assertCode(t, mxerror.CodeInvalidArgument, err)
		})
	}
}

func TestMixedSetters(t *testing.T) {
	m := DefaultMixed()

	w, err := m.WithWhole(4)
	require.NoError(t, err)
	assert.Equal(t, "4 1/2", w.String())

	f, err := m.WithFraction(frac(2, 3))
	require.NoError(t, err)
	assert.Equal(t, "1 2/3", f.String())

	_, err = m.WithWhole(0)
	assertCode(t, mxerror.CodeInvalidArgument, err)
	_, err = m.WithFraction(Zero())
	assertCode(t, mxerror.CodeInvalidArgument, err)
	assert.Equal(t, "1 1/2", m.String())
}

func TestToFraction(t *testing.T) {
	tests := []struct {
		m    MixedNumber
		want string
	}{
		{mixed(2, 1, 2), "5/2"},
		{mixed(1, 3, 4), "7/4"},
		{mixed(3, 2, 4), "7/2"},
		{mixed(1, 5, 4), "9/4"},
	}

	for _, tt := range tests {
		got, err := tt.m.ToFraction()
		assertFraction(t, tt.want, got, err)
	}

	_, err := mixed(math.MaxInt64, 1, 2).ToFraction()
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestMixedAdd_NotNormalized(t *testing.T) {
	got, err := mixed(1, 1, 2).Add(mixed(1, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, "2 5/4", got.String())

	gf, err := got.ToFraction()
	require.NoError(t, err)
	assert.Equal(t, "13/4", gf.String())
}

func TestMixedSub(t *testing.T) {
	got, err := mixed(2, 3, 4).Sub(mixed(1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "1 1/4", got.String())

	_, err = mixed(2, 1, 2).Sub(mixed(1, 3, 4))
	assertCode(t, mxerror.CodeInvalidArgument, err)

	_, err = mixed(1, 3, 4).Sub(mixed(1, 1, 2))
	assertCode(t, mxerror.CodeInvalidArgument, err)
}

func TestMixedAdd_Overflow(t *testing.T) {
	_, err := mixed(math.MaxInt64, 1, 2).Add(DefaultMixed())
	assertCode(t, mxerror.CodeArithmeticOverflow, err)
}

func TestAddSubFraction(t *testing.T) {
	got, err := AddToFraction(frac(1, 4), mixed(1, 1, 2))
	assertFraction(t, "7/4", got, err)

	got, err = SubFromFraction(frac(1, 4), mixed(1, 1, 2))
	assertFraction(t, "-5/4", got, err)
}

func TestNormalize(t *testing.T) {
	got, err := mixed(2, 5, 4).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "3 1/4", got.String())

	got, err = mixed(1, 2, 4).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "1 1/2", got.String())

	got, err = mixed(1, 11, 3).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "4 2/3", got.String())

	_, err = mixed(2, 2, 2).Normalize()
	assertCode(t, mxerror.CodeInvalidArgument, err)
}

func TestNormalize_PreservesValue(t *testing.T) {
	m := mixed(3, 17, 5)
	n, err := m.Normalize()
	require.NoError(t, err)

	a, err := m.ToFraction()
	require.NoError(t, err)
	b, err := n.ToFraction()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
