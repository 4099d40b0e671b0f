// File: fraction.go
// Title: Fraction Value Type
// Description: Construction, accessors, arithmetic, comparison and
//              simplification of fractions with int64 components.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Cross-reduced Mul and Div, exact Cmp
// - 2026-10-16 v0.3.0: One representation per reduced value, reduced Neg/Abs/Reciprocal

package fractionx

import (
	"fmt"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	mxnumberx "github.com/msto63/mathsex/foundation/utils/numberx"
)

// Fraction is an immutable rational number numerator/denominator.
// The denominator is always positive. Fractions in lowest terms have exactly
// one representation, so == on reduced fractions is value equality and the
// zero value equals Zero(). Use Equal for fractions that may not be reduced.
type Fraction struct {
	num int64
	// denominator minus one, so that the zero value is 0/1
	denm1 int64
}

// makeFraction stores n/d; d must be positive
func makeFraction(n, d int64) Fraction {
	return Fraction{num: n, denm1: d - 1}
}

func invalidDenominator(op string, d int64) error {
	return mxerrors.InvalidArgument(mxerrors.ModuleFractionx, op, d, "positive denominator")
}

func overflow(op string, cause error, operands ...interface{}) error {
	return mxerrors.NewErrorBuilder(mxerrors.ModuleFractionx).
		Operation(op).
		Messagef("arithmetic overflow in %s.%s", mxerrors.ModuleFractionx, op).
		Code(mxerror.CodeArithmeticOverflow).
		Detail("operands", operands).
		Cause(cause).
		Build()
}

// New creates numerator/denominator without reducing it
func New(numerator, denominator int64) (Fraction, error) {
	if denominator <= 0 {
		return Fraction{}, invalidDenominator("new", denominator)
	}
	return makeFraction(numerator, denominator), nil
}

// MustNew is like New but panics on an invalid denominator
func MustNew(numerator, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// Zero returns 0/1
func Zero() Fraction {
	return Fraction{}
}

// FromInt returns n/1
func FromInt(n int64) Fraction {
	return makeFraction(n, 1)
}

// WithNumerator returns a copy with the numerator replaced
func (f Fraction) WithNumerator(n int64) Fraction {
	return makeFraction(n, f.Denominator())
}

// WithDenominator returns a copy with the denominator replaced
func (f Fraction) WithDenominator(d int64) (Fraction, error) {
	if d <= 0 {
		return Fraction{}, invalidDenominator("with_denominator", d)
	}
	return makeFraction(f.num, d), nil
}

// Numerator returns the numerator, which carries the sign
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator returns the denominator, always positive
func (f Fraction) Denominator() int64 {
	return f.denm1 + 1
}

// Sign returns -1, 0 or +1
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether f equals 0
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsProper reports whether 0 < f < 1
func (f Fraction) IsProper() bool {
	return f.num > 0 && f.num < f.Denominator()
}

// Simplify reduces f to lowest terms. 0/d becomes 0/1.
func Simplify(f Fraction) Fraction {
	d := f.Denominator()
	if f.num == 0 {
		return Zero()
	}
	// d > 0, so g > 0 and fits int64
	g := mxnumberx.GCD(f.num, d)
	return makeFraction(f.num/g, d/g)
}

// Simplify reduces f to lowest terms
func (f Fraction) Simplify() Fraction {
	return Simplify(f)
}

// Add returns f + o using the lowest common denominator
func (f Fraction) Add(o Fraction) (Fraction, error) {
	return f.addSub("add", o, mxnumberx.AddChecked[int64])
}

// Sub returns f - o using the lowest common denominator
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	return f.addSub("sub", o, mxnumberx.SubChecked[int64])
}

func (f Fraction) addSub(op string, o Fraction, combine func(a, b int64) (int64, error)) (Fraction, error) {
	fd, od := f.Denominator(), o.Denominator()

	l, err := mxnumberx.LCM(fd, od)
	if err != nil {
		return Fraction{}, overflow(op, err, f.String(), o.String())
	}
	a, err := mxnumberx.MulChecked(f.num, l/fd)
	if err != nil {
		return Fraction{}, overflow(op, err, f.String(), o.String())
	}
	b, err := mxnumberx.MulChecked(o.num, l/od)
	if err != nil {
		return Fraction{}, overflow(op, err, f.String(), o.String())
	}
	n, err := combine(a, b)
	if err != nil {
		return Fraction{}, overflow(op, err, f.String(), o.String())
	}
	return Simplify(makeFraction(n, l)), nil
}

// Mul returns f * o. Common factors are cancelled before multiplying.
func (f Fraction) Mul(o Fraction) (Fraction, error) {
	if f.num == 0 || o.num == 0 {
		return Zero(), nil
	}

	fd, od := f.Denominator(), o.Denominator()
	g1 := mxnumberx.GCD(f.num, od)
	g2 := mxnumberx.GCD(o.num, fd)

	n, err := mxnumberx.MulChecked(f.num/g1, o.num/g2)
	if err != nil {
		return Fraction{}, overflow("mul", err, f.String(), o.String())
	}
	d, err := mxnumberx.MulChecked(fd/g2, od/g1)
	if err != nil {
		return Fraction{}, overflow("mul", err, f.String(), o.String())
	}
	return Simplify(makeFraction(n, d)), nil
}

// Div returns f / o = (a*d)/(b*c). Dividing by zero is an invalid argument.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, mxerrors.DivisionByZero(mxerrors.ModuleFractionx, "div")
	}
	if f.num == 0 {
		return Zero(), nil
	}

	fd, od := f.Denominator(), o.Denominator()
	g1 := mxnumberx.GCD(f.num, o.num)
	g2 := mxnumberx.GCD(fd, od)

	n, err := mxnumberx.MulChecked(f.num/g1, od/g2)
	if err != nil {
		return Fraction{}, overflow("div", err, f.String(), o.String())
	}
	d, err := mxnumberx.MulChecked(fd/g2, o.num/g1)
	if err != nil {
		return Fraction{}, overflow("div", err, f.String(), o.String())
	}
	if d < 0 {
		if n, err = mxnumberx.SubChecked(0, n); err == nil {
			d, err = mxnumberx.SubChecked(0, d)
		}
		if err != nil {
			return Fraction{}, overflow("div", err, f.String(), o.String())
		}
	}
	return Simplify(makeFraction(n, d)), nil
}

// MulInt returns f * n
func (f Fraction) MulInt(n int64) (Fraction, error) {
	r, err := f.Mul(FromInt(n))
	if err != nil {
		return Fraction{}, overflow("mul_int", err, f.String(), n)
	}
	return r, nil
}

// Inc adds one to the numerator. The denominator is kept and the result is not reduced.
func (f Fraction) Inc() (Fraction, error) {
	n, err := mxnumberx.AddChecked(f.num, 1)
	if err != nil {
		return Fraction{}, overflow("inc", err, f.String())
	}
	return makeFraction(n, f.Denominator()), nil
}

// Dec subtracts one from the numerator. The denominator is kept and the result is not reduced.
func (f Fraction) Dec() (Fraction, error) {
	n, err := mxnumberx.SubChecked(f.num, 1)
	if err != nil {
		return Fraction{}, overflow("dec", err, f.String())
	}
	return makeFraction(n, f.Denominator()), nil
}

// Neg returns -f
func (f Fraction) Neg() (Fraction, error) {
	n, err := mxnumberx.SubChecked(0, f.num)
	if err != nil {
		return Fraction{}, overflow("neg", err, f.String())
	}
	return Simplify(makeFraction(n, f.Denominator())), nil
}

// Abs returns |f|
func (f Fraction) Abs() (Fraction, error) {
	n, err := mxnumberx.Abs(f.num)
	if err != nil {
		return Fraction{}, overflow("abs", err, f.String())
	}
	return Simplify(makeFraction(n, f.Denominator())), nil
}

// Reciprocal returns 1/f with the sign moved to the numerator
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, mxerrors.DivisionByZero(mxerrors.ModuleFractionx, "reciprocal")
	}
	if f.num > 0 {
		return Simplify(makeFraction(f.Denominator(), f.num)), nil
	}
	d, err := mxnumberx.Abs(f.num)
	if err != nil {
		return Fraction{}, overflow("reciprocal", err, f.String())
	}
	return Simplify(makeFraction(-f.Denominator(), d)), nil
}

// Cmp compares f and o exactly and returns -1, 0 or +1
func (f Fraction) Cmp(o Fraction) int {
	fs, ns := f.Sign(), o.Sign()
	if fs != ns {
		if fs < ns {
			return -1
		}
		return 1
	}
	if fs == 0 {
		return 0
	}

	// |a|*d against |c|*b; both denominators are positive
	c := mxnumberx.Product(f.num, o.Denominator()).Cmp(mxnumberx.Product(o.num, f.Denominator()))
	return c * fs
}

// Equal reports whether f and o have the same value; 1/2 equals 2/4
func (f Fraction) Equal(o Fraction) bool {
	return f.Cmp(o) == 0
}

// GreaterThan reports whether f > o
func (f Fraction) GreaterThan(o Fraction) bool {
	return f.Cmp(o) > 0
}

// LessThan reports whether f < o
func (f Fraction) LessThan(o Fraction) bool {
	return f.Cmp(o) < 0
}

// GreaterThanOrEqual reports whether f >= o
func (f Fraction) GreaterThanOrEqual(o Fraction) bool {
	return f.Cmp(o) >= 0
}

// LessThanOrEqual reports whether f <= o
func (f Fraction) LessThanOrEqual(o Fraction) bool {
	return f.Cmp(o) <= 0
}

// String returns "numerator/denominator"
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.Denominator())
}
