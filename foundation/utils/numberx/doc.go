// File: doc.go
// Title: Package Documentation for numberx
// Description: Package numberx provides elementary number theory on signed
//              machine integers: greatest common divisor, lowest common
//              multiple, divisors, primality, factorial and the arithmetic
//              mean, plus overflow-checked arithmetic.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: GCD, LCM, factors, primality, factorial, average
// - 2026-10-16 v0.2.0: Checked arithmetic exported for fractionx
// - 2026-10-16 v0.3.0: Unsigned Factors and IsPrime

// Package numberx provides number theory utilities for signed integers.
//
// All functions are generic over Integer, which covers int, int16, int32 and
// int64. Factors and IsPrime also accept the unsigned types uint, uint16,
// uint32 and uint64 through the Natural constraint. Results never wrap silently: operations whose result does not fit the
// operand type return an error with code ARITHMETIC_OVERFLOW, and inputs
// outside the domain of an operation return INVALID_ARGUMENT.
//
// GCD uses the Euclidean algorithm on magnitudes, so negative operands are
// accepted and the result is non-negative. GCD(0, 0) is 0. The only result that
// cannot be represented is the magnitude of the minimum value itself, returned
// by GCD(min, 0) and GCD(min, min); it wraps back to min.
//
// Usage:
//
//	import mxnumberx "github.com/msto63/mathsex/foundation/utils/numberx"
//
//	g := mxnumberx.GCD(int64(12), 18)        // 6
//	l, err := mxnumberx.LCM(int32(4), 6)     // 12
//	f, err := mxnumberx.Factors(12)          // [1 2 3 4 6 12]
//	ok := mxnumberx.IsPrime(17)              // true
//	u, err := mxnumberx.Factors(uint32(10))  // [1 2 5 10]
//	n, err := mxnumberx.Factorial(int64(20)) // 2432902008176640000
//	avg, err := mxnumberx.Average(1, 2, 3, 4) // 2.5
package numberx
