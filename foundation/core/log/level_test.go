// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level parsing, naming and filtering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests

package log

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DBG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_Strings(t *testing.T) {
	for _, level := range AllLevels() {
		if level.String() == "unknown" || level.ShortString() == "???" {
			t.Errorf("level %d has no name", level)
		}
	}
	if Level(99).String() != "unknown" {
		t.Error("Level(99).String() should be unknown")
	}
}

func TestLevel_ShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelWarn) {
		t.Error("error should log at warn")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info")
	}
}

func TestParseError(t *testing.T) {
	_, err := ParseLevel("loud")
	if err.Error() != `invalid level: "loud"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
