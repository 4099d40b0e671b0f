// File: checked_test.go
// Title: Unit Tests for Checked Arithmetic
// Description: Boundary tests for the overflow-checked operations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-16 v0.2.0: 128-bit Product

package numberx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
)

func requireOverflow(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, mxerror.CodeArithmeticOverflow, mxerror.GetCode(err))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, uint64(1<<63), Magnitude(int64(math.MinInt64)))
	assert.Equal(t, uint64(32768), Magnitude(int16(math.MinInt16)))
	assert.Equal(t, uint64(5), Magnitude(-5))
	assert.Equal(t, uint64(0), Magnitude(0))
}

func TestProduct(t *testing.T) {
	hi, lo := Product(int64(math.MinInt64), int64(math.MinInt64)).Raw()
	assert.Equal(t, uint64(1<<62), hi)
	assert.Equal(t, uint64(0), lo)

	hi, lo = Product(int64(-3), int64(5)).Raw()
	assert.Equal(t, uint64(0), hi)
	assert.Equal(t, uint64(15), lo)

	hi, lo = Product(int64(math.MaxInt64), int64(2)).Raw()
	assert.Equal(t, uint64(0), hi)
	assert.Equal(t, uint64(math.MaxUint64-1), lo)

	assert.Equal(t, 1, Product(int64(math.MaxInt64), int64(3)).Cmp(Product(int64(math.MaxInt64), int64(2))))
	assert.Equal(t, 0, Product(int32(6), int32(-4)).Cmp(Product(int32(-8), int32(3))))
}

func TestAddChecked(t *testing.T) {
	r, err := AddChecked(int64(math.MaxInt64-1), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), r)

	r, err = AddChecked(int64(math.MinInt64), math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), r)

	_, err = AddChecked(int64(math.MaxInt64), 1)
	requireOverflow(t, err)
	_, err = AddChecked(int64(math.MinInt64), -1)
	requireOverflow(t, err)
	_, err = AddChecked(int16(math.MaxInt16), 1)
	requireOverflow(t, err)
}

func TestSubChecked(t *testing.T) {
	r, err := SubChecked(int64(0), math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(-math.MaxInt64), r)

	_, err = SubChecked(int64(math.MinInt64), 1)
	requireOverflow(t, err)
	_, err = SubChecked(int64(0), math.MinInt64)
	requireOverflow(t, err)
	_, err = SubChecked(int32(math.MinInt32), 1)
	requireOverflow(t, err)
}

func TestMulChecked(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{0, math.MinInt64, 0},
		{-1, math.MaxInt64, -math.MaxInt64},
		{math.MinInt64, 1, math.MinInt64},
		{-(1 << 31), 1 << 32, math.MinInt64},
		{3037000499, 3037000499, 9223372030926249001},
	}
	for _, tt := range tests {
		r, err := MulChecked(tt.a, tt.b)
		require.NoError(t, err, "MulChecked(%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.want, r)
	}

	_, err := MulChecked(int64(math.MinInt64), -1)
	requireOverflow(t, err)
	_, err = MulChecked(int64(1<<32), 1<<31)
	requireOverflow(t, err)
	_, err = MulChecked(int64(3037000500), 3037000500)
	requireOverflow(t, err)
	_, err = MulChecked(int16(256), 128)
	requireOverflow(t, err)
}

func TestAbs(t *testing.T) {
	r, err := Abs(int64(-42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), r)

	r, err = Abs(int64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), r)

	_, err = Abs(int64(math.MinInt64))
	requireOverflow(t, err)
	_, err = Abs(int16(math.MinInt16))
	requireOverflow(t, err)
}

func TestPow10(t *testing.T) {
	r, err := Pow10[int64](0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r)

	r, err = Pow10[int64](18)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000_000_000_000), r)

	_, err = Pow10[int64](19)
	requireOverflow(t, err)
	_, err = Pow10[int16](5)
	requireOverflow(t, err)

	_, err = Pow10[int64](-1)
	require.Error(t, err)
	assert.Equal(t, mxerror.CodeInvalidArgument, mxerror.GetCode(err))
}
