// File: checked.go
// Title: Overflow-Checked Integer Arithmetic
// Description: Addition, subtraction, multiplication, absolute value and powers
//              of ten that report overflow instead of wrapping. Computation is
//              done in 64 bits and narrowed to the operand type; products
//              are formed exactly in 128 bits.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Product on go-num U128, Unsigned and Natural constraints

package numberx

import (
	"math"

	num "github.com/shabbyrobe/go-num"

	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
)

// Integer is the set of signed integer types supported by numberx
type Integer interface {
	~int | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by Factors and IsPrime
type Unsigned interface {
	~uint | ~uint16 | ~uint32 | ~uint64
}

// Natural is every integer type accepted by Factors and IsPrime
type Natural interface {
	Integer | Unsigned
}

// fits reports whether r survives narrowing to T
func fits[T Integer](r int64) bool {
	return int64(T(r)) == r
}

// Magnitude returns |n| as uint64. It is exact for every value, including the
// minimum of each type.
func Magnitude[T Integer](n T) uint64 {
	v := int64(n)
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func add64(a, b int64) (int64, bool) {
	r := a + b
	return r, (a^r)&(b^r) >= 0
}

func sub64(a, b int64) (int64, bool) {
	r := a - b
	return r, (a^b)&(a^r) >= 0
}

// Product returns the exact product |a| * |b| as an unsigned 128-bit integer
func Product[T Integer](a, b T) num.U128 {
	return num.U128From64(Magnitude(a)).Mul(num.U128From64(Magnitude(b)))
}

func mul64(a, b int64) (int64, bool) {
	hi, lo := Product(a, b).Raw()
	if hi != 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// AddChecked returns a + b or ARITHMETIC_OVERFLOW
func AddChecked[T Integer](a, b T) (T, error) {
	r, ok := add64(int64(a), int64(b))
	if !ok || !fits[T](r) {
		return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "add", int64(a), int64(b))
	}
	return T(r), nil
}

// SubChecked returns a - b or ARITHMETIC_OVERFLOW
func SubChecked[T Integer](a, b T) (T, error) {
	r, ok := sub64(int64(a), int64(b))
	if !ok || !fits[T](r) {
		return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "sub", int64(a), int64(b))
	}
	return T(r), nil
}

// MulChecked returns a * b or ARITHMETIC_OVERFLOW
func MulChecked[T Integer](a, b T) (T, error) {
	r, ok := mul64(int64(a), int64(b))
	if !ok || !fits[T](r) {
		return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "mul", int64(a), int64(b))
	}
	return T(r), nil
}

// Abs returns |n|. The minimum value has no positive counterpart and yields
// ARITHMETIC_OVERFLOW.
func Abs[T Integer](n T) (T, error) {
	if n >= 0 {
		return n, nil
	}
	if -n < 0 {
		return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "abs", int64(n))
	}
	return -n, nil
}

// Pow10 returns 10^exp
func Pow10[T Integer](exp int) (T, error) {
	if exp < 0 {
		return 0, mxerrors.InvalidArgument(mxerrors.ModuleNumberx, "pow10", exp, "non-negative exponent")
	}

	result := T(1)
	for i := 0; i < exp; i++ {
		next, err := MulChecked(result, 10)
		if err != nil {
			return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "pow10", exp)
		}
		result = next
	}
	return result, nil
}
