// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"
)

func TestFromIOError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "not found",
			err:  &fs.PathError{Op: "open", Path: "gone", Err: fs.ErrNotExist},
			want: KindNotFound,
		},
		{
			name: "permission denied",
			err:  &fs.PathError{Op: "open", Path: "secret", Err: fs.ErrPermission},
			want: KindPermissionDenied,
		},
		{
			name: "already exists",
			err:  &fs.PathError{Op: "create", Path: "dup", Err: fs.ErrExist},
			want: KindAlreadyExists,
		},
		{
			name: "plain io",
			err:  fmt.Errorf("wire broke"),
			want: KindIO,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := fromIOError(test.err).Kind(); got != test.want {
				t.Errorf("fromIOError() kind = %v, want %v", got, test.want)
			}
		})
	}
}

func TestEnsureErrorDoesNotRewrap(t *testing.T) {
	original := invalidPasswordError("wrong for entry.txt")
	if got := ensureError(original); got != original {
		t.Errorf("ensureError() rewrapped an already converted error")
	}

	wrapped := fmt.Errorf("walking archive: %w", original)
	if got := ensureError(wrapped); got != original {
		t.Errorf("ensureError() did not unwrap to the original conversion")
	}
}

func TestEnsureErrorRefinesOSErrors(t *testing.T) {
	_, err := os.Open("/nonexistent/arclist-test-file")
	if err == nil {
		t.Skip("unexpectedly found the file")
	}
	if got := ensureError(err).Kind(); got != KindNotFound {
		t.Errorf("ensureError() kind = %v, want KindNotFound", got)
	}
}

func TestFinalErrorRender(t *testing.T) {
	final := NewFinalError("Invalid password").
		Detail("password rejected by entry secret.txt").
		Hint("try the archive's original password")

	rendered := final.Render(false)
	for _, want := range []string{"[ERROR] Invalid password", " - password rejected by entry secret.txt", "hint: try"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render(false) = %q, missing %q", rendered, want)
		}
	}

	accessible := final.Render(true)
	if strings.ContainsAny(accessible, "[]") {
		t.Errorf("Render(true) = %q, contains decorative brackets", accessible)
	}
	for _, want := range []string{"ERROR: Invalid password", "hints:", "try the archive's original password"} {
		if !strings.Contains(accessible, want) {
			t.Errorf("Render(true) = %q, missing %q", accessible, want)
		}
	}
}

func TestFinalErrorRenderWithoutHints(t *testing.T) {
	rendered := NewFinalError("boom").Detail("one").Render(false)
	if strings.Contains(rendered, "hint") {
		t.Errorf("Render() = %q, shows hints where none exist", rendered)
	}
	if !strings.HasPrefix(rendered, "[ERROR] boom") {
		t.Errorf("Render() = %q, want [ERROR] boom prefix", rendered)
	}
}

func TestErrorSummary(t *testing.T) {
	err := invalidArchiveError(Zip, "central directory truncated")
	if got, want := err.Error(), "Invalid zip archive: central directory truncated"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
