// File: mixed.go
// Title: Mixed Numbers
// Description: MixedNumber combines a positive whole part with a positive
//              fraction. Arithmetic works on the parts and leaves improper
//              fractional parts in place until Normalize is called.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fractionx

import (
	"fmt"

	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	mxnumberx "github.com/msto63/mathsex/foundation/utils/numberx"
)

// MixedNumber is a value such as 2 1/2. Both the whole part and the
// fraction are strictly positive. The zero value is not a valid mixed number;
// use DefaultMixed or one of the constructors.
type MixedNumber struct {
	whole    int64
	fraction Fraction
}

func validateMixed(op string, whole int64, f Fraction) error {
	if whole <= 0 {
		return mxerrors.InvalidArgument(mxerrors.ModuleFractionx, op, whole, "positive whole part")
	}
	if f.num <= 0 {
		return mxerrors.InvalidArgument(mxerrors.ModuleFractionx, op, f.String(), "positive fraction")
	}
	return nil
}

// NewMixed creates whole + f
func NewMixed(whole int64, f Fraction) (MixedNumber, error) {
	if err := validateMixed("new_mixed", whole, f); err != nil {
		return MixedNumber{}, err
	}
	return MixedNumber{whole: whole, fraction: f}, nil
}

// NewMixedParts creates whole + numerator/denominator
func NewMixedParts(whole, numerator, denominator int64) (MixedNumber, error) {
	f, err := New(numerator, denominator)
	if err != nil {
		return MixedNumber{}, err
	}
	return NewMixed(whole, f)
}

// NewMixedWhole creates whole and a half
func NewMixedWhole(whole int64) (MixedNumber, error) {
	return NewMixed(whole, MustNew(1, 2))
}

// DefaultMixed returns one and a half
func DefaultMixed() MixedNumber {
	return MixedNumber{whole: 1, fraction: MustNew(1, 2)}
}

// Whole returns the whole part
func (m MixedNumber) Whole() int64 {
	return m.whole
}

// Fraction returns the fractional part
func (m MixedNumber) Fraction() Fraction {
	return m.fraction
}

// WithWhole returns a copy with the whole part replaced
func (m MixedNumber) WithWhole(whole int64) (MixedNumber, error) {
	return NewMixed(whole, m.fraction)
}

// WithFraction returns a copy with the fractional part replaced
func (m MixedNumber) WithFraction(f Fraction) (MixedNumber, error) {
	return NewMixed(m.whole, f)
}

// ToFraction returns (whole*denominator + numerator)/denominator in lowest terms
func (m MixedNumber) ToFraction() (Fraction, error) {
	d := m.fraction.Denominator()
	n, err := mxnumberx.MulChecked(m.whole, d)
	if err == nil {
		n, err = mxnumberx.AddChecked(n, m.fraction.num)
	}
	if err != nil {
		return Fraction{}, overflow("to_fraction", err, m.String())
	}
	return Simplify(makeFraction(n, d)), nil
}

// Add adds whole parts and fractional parts separately: 1 1/2 + 1 3/4 = 2 5/4
func (m MixedNumber) Add(o MixedNumber) (MixedNumber, error) {
	whole, err := mxnumberx.AddChecked(m.whole, o.whole)
	if err != nil {
		return MixedNumber{}, overflow("mixed_add", err, m.String(), o.String())
	}
	f, err := m.fraction.Add(o.fraction)
	if err != nil {
		return MixedNumber{}, err
	}
	return NewMixed(whole, f)
}

// Sub subtracts whole parts and fractional parts separately. A result with a
// whole part or fraction that is not positive is rejected.
func (m MixedNumber) Sub(o MixedNumber) (MixedNumber, error) {
	whole, err := mxnumberx.SubChecked(m.whole, o.whole)
	if err != nil {
		return MixedNumber{}, overflow("mixed_sub", err, m.String(), o.String())
	}
	f, err := m.fraction.Sub(o.fraction)
	if err != nil {
		return MixedNumber{}, err
	}
	return NewMixed(whole, f)
}

// AddToFraction returns f + m
func AddToFraction(f Fraction, m MixedNumber) (Fraction, error) {
	mf, err := m.ToFraction()
	if err != nil {
		return Fraction{}, err
	}
	return f.Add(mf)
}

// SubFromFraction returns f - m
func SubFromFraction(f Fraction, m MixedNumber) (Fraction, error) {
	mf, err := m.ToFraction()
	if err != nil {
		return Fraction{}, err
	}
	return f.Sub(mf)
}

// Normalize carries an improper fractional part into the whole part:
// 2 5/4 becomes 3 1/4. A value that is a whole number, such as 2 2/2, has no
// mixed form and is rejected.
func (m MixedNumber) Normalize() (MixedNumber, error) {
	f := m.fraction.Simplify()
	d := f.Denominator()

	whole, err := mxnumberx.AddChecked(m.whole, f.num/d)
	if err != nil {
		return MixedNumber{}, overflow("normalize", err, m.String())
	}
	rest := f.num % d
	if rest == 0 {
		return MixedNumber{}, mxerrors.InvalidArgument(mxerrors.ModuleFractionx, "normalize", m.String(), "value with a fractional part")
	}
	return NewMixed(whole, makeFraction(rest, d))
}

// String returns "whole numerator/denominator"
func (m MixedNumber) String() string {
	return fmt.Sprintf("%d %s", m.whole, m.fraction)
}
