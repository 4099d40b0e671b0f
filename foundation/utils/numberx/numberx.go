// File: numberx.go
// Title: Number Theory Functions
// Description: GCD (HCF), LCM, divisors, primality, factorial and arithmetic
//              mean on signed integers; divisors and primality also on
//              unsigned integers.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: LCM computed on magnitudes with a 128-bit product
// - 2026-10-16 v0.3.0: Average without intermediate overflow, unsigned Factors and IsPrime

package numberx

import (
	"math"

	num "github.com/shabbyrobe/go-num"

	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
)

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD returns the greatest common divisor of a and b.
// The result is non-negative, GCD(a, 0) is |a| and GCD(0, 0) is 0.
func GCD[T Integer](a, b T) T {
	return T(gcd64(Magnitude(a), Magnitude(b)))
}

// HCF returns the highest common factor of a and b; it is GCD under its other name
func HCF[T Integer](a, b T) T {
	return GCD(a, b)
}

// LCM returns the lowest common multiple |a / GCD(a, b) * b|.
// LCM(x, 0) is 0.
func LCM[T Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	ma, mb := Magnitude(a), Magnitude(b)
	hi, lo := num.U128From64(ma / gcd64(ma, mb)).Mul(num.U128From64(mb)).Raw()
	if hi != 0 || lo > math.MaxInt64 || !fits[T](int64(lo)) {
		return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "lcm", int64(a), int64(b))
	}
	return T(lo), nil
}

// Factors returns all positive divisors of n in ascending order
func Factors[T Natural](n T) ([]T, error) {
	if n <= 0 {
		return nil, mxerrors.InvalidArgument(mxerrors.ModuleNumberx, "factors", n, "positive integer")
	}

	var small, large []T
	for i := T(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small, nil
}

// IsPrime reports whether n is a prime number. Values below 2 are not prime.
func IsPrime[T Natural](n T) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := T(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Factorial returns n!. Negative n is rejected, and a result that does not
// fit T reports ARITHMETIC_OVERFLOW (21! for int64, 13! for int32).
func Factorial[T Integer](n T) (T, error) {
	if n < 0 {
		return 0, mxerrors.InvalidArgument(mxerrors.ModuleNumberx, "factorial", int64(n), "non-negative integer")
	}

	result := T(1)
	for i := T(2); i <= n; i++ {
		next, err := MulChecked(result, i)
		if err != nil {
			return 0, mxerrors.Overflow(mxerrors.ModuleNumberx, "factorial", int64(n))
		}
		result = next
	}
	return result, nil
}

// Average returns the arithmetic mean of numbers. A sum of finite values
// that overflows float64 is recomputed from pre-scaled terms, so the mean of
// finite numbers is always finite.
func Average(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, mxerrors.InvalidArgument(mxerrors.ModuleNumberx, "average", "[]", "at least one number")
	}

	count := float64(len(numbers))
	sum, finite := 0.0, true
	for _, n := range numbers {
		sum += n
		finite = finite && !math.IsInf(n, 0)
	}
	if !math.IsInf(sum, 0) || !finite {
		return sum / count, nil
	}

	// each term is at most MaxFloat64/count, so the sum stays finite
	mean := 0.0
	for _, n := range numbers {
		mean += n / count
	}
	return mean, nil
}
