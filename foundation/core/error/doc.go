// Package error provides structured error handling for the mathsex libraries.
//
// Package: error
// Title: mathsex Error Handling Framework
// Description: Implements a structured error type carrying a code, a severity,
//              operation details and a captured stack trace. All failures of the
//              number theory and fraction packages are reported through this type
//              so that callers can classify them without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Arithmetic codes, chain-aware HasCode
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes (INVALID_ARGUMENT, ARITHMETIC_OVERFLOW, CONVERSION_FAILURE, ...)
// - Stack trace capture for debugging
// - Severity levels used by the logger to pick a log level
//
// Usage:
//
//	import mxerror "github.com/msto63/mathsex/foundation/core/error"
//
//	err := mxerror.New("denominator must be positive").
//		WithCode(mxerror.CodeInvalidArgument).
//		WithDetail("denominator", 0)
//
//	if mxerror.HasCode(err, mxerror.CodeInvalidArgument) {
//		// reject the input
//	}
package error
