package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/DroidSky/bazel/core"
)

// TestErrorVariablesExist verifies all error variables are defined.
func TestErrorVariablesExist(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotExist", core.ErrNotExist},
		{"ErrExist", core.ErrExist},
		{"ErrPermission", core.ErrPermission},
		{"ErrNotEmpty", core.ErrNotEmpty},
		{"ErrUnsupported", core.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Errorf("%s should not be nil", tt.name)
			}
		})
	}
}

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib,
// so errors.Is works across package boundaries.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) {
				t.Errorf("errors.Is(core.%s, stdlib) = false, want true", tt.name)
			}
		})
	}
}

// TestClassify verifies Classify maps wrapped errors to the right Kind.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want core.Kind
	}{
		{
			name: "not found",
			err:  fmt.Errorf("stat foo: %w", fs.ErrNotExist),
			want: core.KindNotFound,
		},
		{
			name: "permission denied",
			err:  fmt.Errorf("open foo: %w", fs.ErrPermission),
			want: core.KindPermission,
		},
		{
			name: "rename conflict",
			err:  fmt.Errorf("rename a -> b: %w", core.ErrNotEmpty),
			want: core.KindConflict,
		},
		{
			name: "plain io failure",
			err:  errors.New("disk exploded"),
			want: core.KindIO,
		},
		{
			name: "path error wrapping not exist",
			err:  &fs.PathError{Op: "open", Path: "foo", Err: fs.ErrNotExist},
			want: core.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
