package core_test

import (
	"testing"

	"github.com/DroidSky/bazel/core"
)

// TestRenameOutcome_String verifies RenameOutcome.String() returns correct
// string representations.
func TestRenameOutcome_String(t *testing.T) {
	tests := []struct {
		name     string
		outcome  core.RenameOutcome
		expected string
	}{
		{
			name:     "Success",
			outcome:  core.RenameSuccess,
			expected: "success",
		},
		{
			name:     "NotEmpty",
			outcome:  core.RenameNotEmpty,
			expected: "not-empty",
		},
		{
			name:     "OtherError",
			outcome:  core.RenameOtherError,
			expected: "other-error",
		},
		{
			name:     "Invalid",
			outcome:  core.RenameOutcome(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.outcome.String()
			if result != tt.expected {
				t.Errorf("RenameOutcome(%d).String() = %q, want %q", tt.outcome, result, tt.expected)
			}
		})
	}
}

// TestRenameOutcome_Distinct verifies the outcomes are numerically distinct
// and stable, since calling code persists and compares them.
func TestRenameOutcome_Distinct(t *testing.T) {
	if core.RenameSuccess != 0 {
		t.Errorf("RenameSuccess = %d, want 0 (zero value)", core.RenameSuccess)
	}
	if core.RenameNotEmpty != 1 {
		t.Errorf("RenameNotEmpty = %d, want 1", core.RenameNotEmpty)
	}
	if core.RenameOtherError != 2 {
		t.Errorf("RenameOtherError = %d, want 2", core.RenameOtherError)
	}
}
