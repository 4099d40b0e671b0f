// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              arithmetic packages and of the ambient configuration layer.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Arithmetic taxonomy (invalid argument, overflow, conversion)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Arithmetic
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeArithmeticOverflow Code = "ARITHMETIC_OVERFLOW"
	CodeConversionFailure  Code = "CONVERSION_FAILURE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeArithmeticOverflow, CodeConversionFailure,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeArithmeticOverflow, CodeConversionFailure:
		return "arithmetic"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command line tool should use
// when it terminates because of an error with this code.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidFormat:
		return 2
	case CodeArithmeticOverflow, CodeConversionFailure:
		return 3
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return 4
	default:
		return 1
	}
}
