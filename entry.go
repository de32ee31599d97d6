// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io/fs"
	"time"
)

// EntryKind classifies one listed entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

// String returns a short label for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// FileInArchive is one listed entry. Records are produced read-only in the
// container's native enumeration order and never mutated after creation.
type FileInArchive struct {
	// Path of the entry inside the archive, as stored by the container.
	Path string

	// Size of the entry content in bytes, before any per-entry compression.
	Size int64

	// Kind of the entry.
	Kind EntryKind

	// Mode holds the permission bits when the container records them;
	// zero otherwise.
	Mode fs.FileMode

	// ModTime is the recorded modification time; the zero value when the
	// container does not record one.
	ModTime time.Time

	// Linkname is the symlink target for KindSymlink entries.
	Linkname string

	// Encrypted marks entries whose content requires a password.
	Encrypted bool
}

// entryWalker yields the entries of one opened container, lazily and in
// native order. Next returns io.EOF after the last entry. A walker is not
// restartable; a fresh listing reopens the source.
type entryWalker interface {
	Next() (FileInArchive, error)
}
