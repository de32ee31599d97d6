// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/nwaples/rardecode"
)

// magicBytesRar are the magic bytes for rar files.
var magicBytesRar = [][]byte{
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00},       // Rar 1.5
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x01, 0x00}, // Rar 5.0
}

// isRar checks if the header matches the magic bytes for rar files.
func isRar(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesRar)
}

// listRarFile opens the rar archive at path, which is either the original
// file or the temporary spill of the decoded stream.
func listRarFile(path string, password []byte) (entryWalker, *Error) {
	reader, err := rardecode.OpenReader(path, string(password))
	if err != nil {
		return nil, fromRarError(err, password)
	}
	return &rarWalker{r: &reader.Reader, password: password}, nil
}

// listRar reads a rar archive from an in-memory source.
func listRar(src io.Reader, password []byte) (entryWalker, *Error) {
	reader, err := rardecode.NewReader(src, string(password))
	if err != nil {
		return nil, fromRarError(err, password)
	}
	return &rarWalker{r: reader, password: password}, nil
}

// rarWalker is a walker for rar archives.
type rarWalker struct {
	r        *rardecode.Reader
	password []byte
}

// Next returns the next entry in the rar archive.
func (rw *rarWalker) Next() (FileInArchive, error) {
	hdr, err := rw.r.Next()
	if err == io.EOF {
		return FileInArchive{}, io.EOF
	}
	if err != nil {
		return FileInArchive{}, fromRarError(err, rw.password)
	}

	mode := hdr.Mode()
	kind := KindFile
	switch {
	case hdr.IsDir:
		kind = KindDir
	case mode&os.ModeSymlink != 0:
		kind = KindSymlink
	}

	return FileInArchive{
		Path:    hdr.Name,
		Size:    hdr.UnPackedSize,
		Kind:    kind,
		Mode:    mode.Perm(),
		ModTime: hdr.ModificationTime,
	}, nil
}

// fromRarError converts a rardecode error. The library reports a wrong
// password on header-encrypted archives as a header decode failure, so a
// decode error with a password supplied is surfaced as a password problem
// with the decode detail preserved.
func fromRarError(err error, password []byte) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fromIOError(err)
	}

	if len(password) > 0 {
		return newError(KindInvalidPassword,
			NewFinalError("Invalid password").
				Detail(err.Error()).
				Hint("header-encrypted rar archives fail to decode when the password is wrong"))
	}
	return invalidArchiveError(Rar, err.Error())
}
