// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorKind enumerates the closed set of failure categories. Every error
// leaving this package is an *Error carrying exactly one kind; external
// library errors are converted once at the boundary where they occur.
type ErrorKind int

const (
	// KindIO is a generic I/O failure not refined into a more specific kind.
	KindIO ErrorKind = iota

	// KindNotFound is an I/O failure with fs.ErrNotExist semantics.
	KindNotFound

	// KindPermissionDenied is an I/O failure with fs.ErrPermission semantics.
	KindPermissionDenied

	// KindAlreadyExists is an I/O failure with fs.ErrExist semantics.
	KindAlreadyExists

	// KindInvalidArchive means the bytes of a recognized container kind are
	// malformed.
	KindInvalidArchive

	// KindUnsupportedArchive means the container was recognized but uses a
	// variant this build cannot read.
	KindUnsupportedArchive

	// KindUnsupportedFormat means a recognized format has no decoder in this
	// build.
	KindUnsupportedFormat

	// KindInvalidPassword means a supplied password was demonstrably wrong.
	KindInvalidPassword

	// KindInvalidFormat means a format chain failed validation.
	KindInvalidFormat

	// KindCustom is a structured failure with no dedicated kind.
	KindCustom
)

// FinalError is the user-facing shape of a failure: one title line, optional
// indented detail lines and optional actionable hint lines. Built with the
// Detail and Hint chaining methods and rendered once at the top level.
type FinalError struct {
	Title   string
	Details []string
	Hints   []string
}

// NewFinalError starts a FinalError with the given title.
func NewFinalError(title string) FinalError {
	return FinalError{Title: title}
}

// Detail appends one detail line.
func (f FinalError) Detail(detail string) FinalError {
	f.Details = append(f.Details, detail)
	return f
}

// Hint appends one hint line.
func (f FinalError) Hint(hint string) FinalError {
	f.Hints = append(f.Hints, hint)
	return f
}

// Render formats the error block. In accessible mode the decorative brackets
// are suppressed and hints are announced once instead of per line, so screen
// readers do not repeat the same prefix.
func (f FinalError) Render(accessible bool) string {
	var b strings.Builder

	if accessible {
		b.WriteString("ERROR: ")
	} else {
		b.WriteString("[ERROR] ")
	}
	b.WriteString(f.Title)

	for _, detail := range f.Details {
		b.WriteString("\n - ")
		b.WriteString(detail)
	}

	if len(f.Hints) > 0 {
		b.WriteString("\n")
		if accessible {
			b.WriteString("\nhints:")
			for _, hint := range f.Hints {
				b.WriteString("\n")
				b.WriteString(hint)
			}
		} else {
			for _, hint := range f.Hints {
				b.WriteString("\nhint: ")
				b.WriteString(hint)
			}
		}
	}

	return b.String()
}

// Error is the unified error type of this package.
type Error struct {
	kind  ErrorKind
	final FinalError
}

// Kind returns the failure category.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Final returns the renderable form of the error.
func (e *Error) Final() FinalError {
	return e.final
}

// Error returns a single-line summary. Full rendering, including hints and
// accessibility handling, goes through Final().Render.
func (e *Error) Error() string {
	if len(e.final.Details) == 0 {
		return e.final.Title
	}
	return fmt.Sprintf("%s: %s", e.final.Title, strings.Join(e.final.Details, "; "))
}

func newError(kind ErrorKind, final FinalError) *Error {
	return &Error{kind: kind, final: final}
}

// CustomError wraps a structured failure that has no dedicated kind.
func CustomError(final FinalError) *Error {
	return newError(KindCustom, final)
}

func invalidFormatError(reason string) *Error {
	return newError(KindInvalidFormat, NewFinalError("Invalid archive format").Detail(reason))
}

func invalidPasswordError(reason string) *Error {
	return newError(KindInvalidPassword, NewFinalError("Invalid password").Detail(reason))
}

func invalidArchiveError(container CompressionFormat, reason string) *Error {
	return newError(KindInvalidArchive, NewFinalError(fmt.Sprintf("Invalid %s archive", container)).Detail(reason))
}

func unsupportedArchiveError(container CompressionFormat, reason string) *Error {
	return newError(KindUnsupportedArchive, NewFinalError(fmt.Sprintf("Unsupported %s archive", container)).Detail(reason))
}

// fromIOError converts an I/O error into its taxonomy kind, refining by the
// underlying condition.
func fromIOError(err error) *Error {
	final := NewFinalError(err.Error())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(KindNotFound, final.Detail("File not found"))
	case errors.Is(err, fs.ErrPermission):
		return newError(KindPermissionDenied, final.Detail("Permission denied"))
	case errors.Is(err, fs.ErrExist):
		return newError(KindAlreadyExists, final.Detail("File already exists"))
	default:
		return newError(KindIO, final)
	}
}

// RenderError formats any error as one final error block, converting plain
// errors into the taxonomy first. Rendering is pure; the decision to
// terminate afterwards stays with the caller.
func RenderError(err error, accessible bool) string {
	return ensureError(err).Final().Render(accessible)
}

// ensureError returns err as an *Error, converting it once if a lower layer
// produced a plain error. Already-converted errors pass through unchanged so
// nothing is wrapped twice.
func ensureError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return fromIOError(err)
}
