// File: convert.go
// Title: Fraction Conversions
// Description: Conversion from float64 and decimal values into fractions and
//              from fractions into float64 and fixed-point decimals.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: FromFloat and Float64
// - 2026-10-16 v0.2.0: Decimal, FromDecimal and FormatFixed on govalues/decimal
// - 2026-10-16 v0.3.0: Exact quotient on go-num U128

package fractionx

import (
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	num "github.com/shabbyrobe/go-num"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	mxnumberx "github.com/msto63/mathsex/foundation/utils/numberx"
)

// MaxScale is the largest number of decimal places accepted by Decimal and FormatFixed
const MaxScale = 18

// FromFloat converts v into the fraction that reproduces its shortest decimal
// representation, so 0.75 becomes 3/4 and 1e-3 becomes 1/1000. NaN and
// infinities, as well as values whose numerator or denominator would not fit
// an int64, return CONVERSION_FAILURE.
func FromFloat(v float64) (Fraction, error) {
	switch {
	case math.IsNaN(v):
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_float", v,
			mxerrors.InvalidArgument(mxerrors.ModuleFractionx, "from_float", v, "finite number"))
	case math.IsInf(v, 0):
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_float", v,
			mxerrors.Overflow(mxerrors.ModuleFractionx, "from_float", v))
	case v == 0:
		return Zero(), nil
	}

	// d.ddddde±xx, locale independent
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	negative := strings.HasPrefix(mantissa, "-")
	mantissa = strings.TrimPrefix(mantissa, "-")

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	digits, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err != nil {
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_float", v, err)
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_float", v, err)
	}

	f, err := scaleDigits(digits, e-len(fracPart))
	if err != nil {
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_float", v, err)
	}
	if negative {
		f.num = -f.num
	}
	return f, nil
}

// scaleDigits returns digits * 10^exp in lowest terms. Factors of 2 and 5 are
// cancelled before the denominator is built so that values like 5e-19 fit.
func scaleDigits(digits int64, exp int) (Fraction, error) {
	if exp >= 0 {
		p, err := mxnumberx.Pow10[int64](exp)
		if err != nil {
			return Fraction{}, err
		}
		n, err := mxnumberx.MulChecked(digits, p)
		if err != nil {
			return Fraction{}, err
		}
		return FromInt(n), nil
	}

	twos, fives := -exp, -exp
	for twos > 0 && digits%2 == 0 {
		digits /= 2
		twos--
	}
	for fives > 0 && digits%5 == 0 {
		digits /= 5
		fives--
	}

	d := int64(1)
	var err error
	for ; twos > 0 && err == nil; twos-- {
		d, err = mxnumberx.MulChecked(d, 2)
	}
	for ; fives > 0 && err == nil; fives-- {
		d, err = mxnumberx.MulChecked(d, 5)
	}
	if err != nil {
		return Fraction{}, err
	}
	return makeFraction(digits, d), nil
}

// FromDecimal converts d exactly into a fraction in lowest terms
func FromDecimal(d decimal.Decimal) (Fraction, error) {
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_decimal", d.String(),
			mxerrors.Overflow(mxerrors.ModuleFractionx, "from_decimal", d.String()))
	}

	num := int64(coef)
	if d.IsNeg() {
		num = -num
	}
	f, err := scaleDigits(num, -d.Scale())
	if err != nil {
		return Fraction{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "from_decimal", d.String(), err)
	}
	return f, nil
}

// Float64 returns the nearest float64 to f
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// Decimal returns f as a fixed-point decimal with scale digits after the
// point, rounded half to even. The rounding is done on the exact quotient.
func (f Fraction) Decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return decimal.Decimal{}, mxerrors.InvalidArgument(mxerrors.ModuleFractionx, "decimal", scale, "scale between 0 and 18")
	}

	p, _ := mxnumberx.Pow10[int64](scale)
	den := uint64(f.Denominator())

	quo, rem := mxnumberx.Product(f.num, p).QuoRem(num.U128From64(den))
	hi, q := quo.Raw()
	if hi != 0 || q > math.MaxInt64 {
		return decimal.Decimal{}, f.decimalOverflow(scale)
	}
	// rem < den <= MaxInt64, so 2*r does not wrap
	_, r := rem.Raw()
	if 2*r > den || (2*r == den && q%2 == 1) {
		q++
	}
	if q > math.MaxInt64 {
		return decimal.Decimal{}, f.decimalOverflow(scale)
	}

	coef := int64(q)
	if f.num < 0 {
		coef = -coef
	}
	d, err := decimal.New(coef, scale)
	if err != nil {
		return decimal.Decimal{}, mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "decimal", f.String(), err)
	}
	return d, nil
}

func (f Fraction) decimalOverflow(scale int) *mxerror.Error {
	return mxerrors.ConversionFailure(mxerrors.ModuleFractionx, "decimal", f.String(),
		mxerrors.Overflow(mxerrors.ModuleFractionx, "decimal", f.String(), scale))
}

// FormatFixed formats f with exactly scale digits after the decimal point.
// Values that do not fit a decimal fall back to float formatting.
func (f Fraction) FormatFixed(scale int) string {
	if scale < 0 {
		scale = 0
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	d, err := f.Decimal(scale)
	if err != nil {
		return strconv.FormatFloat(f.Float64(), 'f', scale, 64)
	}
	return d.String()
}
