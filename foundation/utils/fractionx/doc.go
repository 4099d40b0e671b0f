// File: doc.go
// Title: Package Documentation for fractionx
// Description: Package fractionx provides exact rational arithmetic on int64
//              numerators and denominators: the Fraction value type and the
//              MixedNumber composite built on it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Fraction arithmetic, comparison and simplification
// - 2026-10-16 v0.2.0: MixedNumber, decimal conversion

// Package fractionx provides exact fractions and mixed numbers.
//
// # Fraction
//
// A Fraction is an immutable value holding an int64 numerator and a positive
// int64 denominator. Construction rejects denominators <= 0, and the sign of a
// fraction always lives in the numerator. The zero value is 0/1. A reduced
// value has a single representation, so == works on reduced fractions; use
// Equal when either side may be unreduced.
//
// Construction does not reduce. Every arithmetic result except Inc and Dec is
// reduced to lowest terms. Overflow of an intermediate or final value is never
// silent: it returns an error with code ARITHMETIC_OVERFLOW.
//
//	a := fractionx.MustNew(1, 2)
//	b := fractionx.MustNew(1, 3)
//	sum, err := a.Add(b)          // 5/6
//	q, err := a.Div(b)            // 3/2
//	a.Equal(fractionx.MustNew(2, 4)) // true
//
// Comparison is exact. It cross-multiplies in 128 bits instead of comparing
// floating point approximations.
//
// # Conversions
//
// FromFloat converts a float64 through its shortest round-trip decimal form,
// so FromFloat(0.1) is 1/10 rather than the binary value of 0.1. Decimal
// returns a fixed-point github.com/govalues/decimal value rounded half to even.
//
// # MixedNumber
//
// A MixedNumber is a positive whole part plus a positive fraction, e.g. 2 1/2.
// Add and Sub combine whole and fractional parts separately and do not carry an
// improper fraction into the whole part; Normalize does that on request.
//
//	m := fractionx.DefaultMixed()  // 1 1/2
//	n, _ := fractionx.NewMixedParts(1, 3, 4)
//	s, _ := m.Add(n)               // 2 5/4
//	s, _ = s.Normalize()           // 3 1/4
package fractionx
