// File: standards.go
// Title: Standard Error Constructors
// Description: Module identifiers and the constructors for the arithmetic error
//              taxonomy. Every library failure is created through one of these
//              functions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: InvalidArgument, InvalidFormat, NotFound
// - 2026-10-16 v0.2.0: Overflow, ConversionFailure, DivisionByZero

package errors

import (
	"errors"
	"fmt"

	mxerror "github.com/msto63/mathsex/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleNumberx   = "numberx"
	ModuleFractionx = "fractionx"
	ModuleConfig    = "config"
	ModuleCLI       = "cli"
)

// InvalidArgument reports an input outside the domain of an operation
func InvalidArgument(module, operation string, input interface{}, expected string) *mxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument for %s.%s: %v (expected %s)", module, operation, input, expected).
		Code(mxerror.CodeInvalidArgument).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// DivisionByZero reports a division whose divisor is zero
func DivisionByZero(module, operation string) *mxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("division by zero").
		Code(mxerror.CodeInvalidArgument).
		Detail("reason", "zero divisor").
		Build()
}

// Overflow reports a result that cannot be represented in the target width
func Overflow(module, operation string, operands ...interface{}) *mxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("arithmetic overflow in %s.%s", module, operation).
		Code(mxerror.CodeArithmeticOverflow).
		Detail("operands", operands).
		Build()
}

// ConversionFailure reports a conversion that cannot produce a valid value.
// The cause, typically an overflow, stays reachable through Unwrap.
func ConversionFailure(module, operation string, input interface{}, cause error) *mxerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot convert %v in %s.%s", input, module, operation).
		Code(mxerror.CodeConversionFailure).
		Detail("input", input)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

// InvalidFormat reports a value with the wrong textual shape (config values, CLI arguments)
func InvalidFormat(module string, input interface{}, expectedFormat string) *mxerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s: %v (expected %s)", module, input, expectedFormat)).
		Code(mxerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// NotFound reports a missing item such as a configuration file
func NotFound(module, operation string, identifier interface{}) *mxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("not found in %s.%s: %v", module, operation, identifier).
		Code(mxerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ExtractDetails returns the details of the outermost *Error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var mxErr *mxerror.Error
	if errors.As(err, &mxErr) {
		return mxErr.Details()
	}
	return nil
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return err != nil && GetErrorModule(err) == module
}

// IsModuleOperation checks if an error is from a specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && GetErrorOperation(err) == operation
}
