// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the severity
//              to choose the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input; the caller can simply retry with other values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a result that cannot be represented, e.g. an overflow
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the library
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeArithmeticOverflow, CodeConversionFailure, CodeConfigError:
		return SeverityHigh
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidFormat,
		CodeInvalidConfig, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
