// Package log provides structured logging for the mathsex command line tool.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text, console and logfmt
//              output. Field order is deterministic so that log lines can be
//              compared in tests and scripts. Errors from the mathsex error
//              package are logged with their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Sorted field output, request id context
//
// The numeric packages never log. Only the command layer owns a Logger and
// reports failures through LogError.
//
// Usage:
//
//	import mxlog "github.com/msto63/mathsex/foundation/core/log"
//
//	logger := mxlog.New().
//		WithLevel(mxlog.LevelDebug).
//		WithFormat(mxlog.FormatLogfmt).
//		WithRequestID(uuid.NewString())
//
//	logger.Debug("computing gcd", mxlog.Fields{"a": 12, "b": 18})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("factorial")
//	defer timer.Stop()
package log
