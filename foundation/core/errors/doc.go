// Package errors provides the module-scoped error constructors used by all
// mathsex packages.
//
// Package: errors
// Title: Standard Error Constructors for mathsex
// Description: Builds *error.Error values with a consistent shape: the module
//              and operation that failed are stored as details, the code comes
//              from the arithmetic taxonomy (INVALID_ARGUMENT,
//              ARITHMETIC_OVERFLOW, CONVERSION_FAILURE) and the severity follows
//              the code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: ErrorBuilder and module identifiers
// - 2026-10-16 v0.2.0: Overflow and conversion constructors
//
// Usage:
//
//	import mxerrors "github.com/msto63/mathsex/foundation/core/errors"
//
//	if denominator <= 0 {
//		return Fraction{}, mxerrors.InvalidArgument(mxerrors.ModuleFractionx, "new",
//			denominator, "positive denominator")
//	}
//
//	if mxerrors.IsModuleError(err, mxerrors.ModuleFractionx) {
//		// failure raised by the fraction package
//	}
package errors
