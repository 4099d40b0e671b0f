// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              chain-aware helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Chain lookups, errors.Is support

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "denominator must be positive"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("factorial of %d overflows", 21)
	if err.Error() != "factorial of 21 overflows" {
		t.Errorf("Error() = %q", err.Error())
	}
	frames := err.StackTrace()
	if len(frames) == 0 || !strings.Contains(frames[0].Function, "TestNewf") {
		t.Errorf("first frame should be the caller, got %+v", frames)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("scale overflow").WithCode(CodeArithmeticOverflow),
			message: "conversion failed",
			wantMsg: "conversion failed: scale overflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Wrap().Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("overflow").
		WithCode(CodeArithmeticOverflow).
		WithDetail("operand", int64(9)).
		WithOperation("mul")

	outer := Wrap(inner, "add failed")

	if outer.Code() != CodeArithmeticOverflow {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeArithmeticOverflow)
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}
	if outer.Details()["operand"] != int64(9) {
		t.Errorf("details not inherited: %v", outer.Details())
	}
	if outer.Operation() != "mul" {
		t.Errorf("Operation() = %q, want mul", outer.Operation())
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mxErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if chainDepth(mxErr) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth %d exceeds limit", chainDepth(mxErr))
	}
	if !strings.Contains(mxErr.Error(), "root") {
		t.Errorf("truncated error should mention root cause: %q", mxErr.Error())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeArithmeticOverflow, SeverityHigh},
		{CodeConversionFailure, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidArgument)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeFollowsChain(t *testing.T) {
	overflow := New("10^20 does not fit").WithCode(CodeArithmeticOverflow)
	conversion := Wrap(overflow, "cannot convert 1e-20").WithCode(CodeConversionFailure)
	std := fmt.Errorf("cli: %w", conversion)

	if !HasCode(std, CodeConversionFailure) {
		t.Error("HasCode should find CONVERSION_FAILURE through fmt wrapping")
	}
	if !HasCode(std, CodeArithmeticOverflow) {
		t.Error("HasCode should find ARITHMETIC_OVERFLOW in the cause")
	}
	if HasCode(std, CodeInvalidArgument) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}

	if got := GetCode(std); got != CodeConversionFailure {
		t.Errorf("GetCode() = %v, want %v", got, CodeConversionFailure)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(std); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
}

func TestErrorsIsMatchesCode(t *testing.T) {
	sentinel := New("invalid argument").WithCode(CodeInvalidArgument)
	err := New("denominator must be positive").WithCode(CodeInvalidArgument)

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(err, New("other").WithCode(CodeArithmeticOverflow)) {
		t.Error("errors.Is matched a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors without a code must not match each other")
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1})
	details := err.Details()
	details["a"] = 2

	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestString(t *testing.T) {
	err := New("overflow").
		WithCode(CodeArithmeticOverflow).
		WithOperation("lcm").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{"Error: overflow", "Code: ARITHMETIC_OVERFLOW", "Severity: high", "Operation: lcm", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidArgument).
		WithOperation("new").
		WithDetail("denominator", 0)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("invalid JSON: %v", unmarshalErr)
	}

	if decoded["code"] != "INVALID_ARGUMENT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "new" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}
