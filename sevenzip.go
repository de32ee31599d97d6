// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"
	"os"

	"github.com/bodgit/sevenzip"
)

// magicBytesSevenZip are the magic bytes for 7zip files.
var magicBytesSevenZip = [][]byte{
	{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C},
}

// isSevenZip checks if the header matches the magic bytes for 7zip files.
func isSevenZip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesSevenZip)
}

// listSevenZip opens a 7z archive from a random-access source and returns a
// walker over its entries. Entry metadata lives in the archive header, so a
// wrong password is only detectable here when the header itself is
// encrypted; content-only encryption cannot be verified without reading
// payloads, which listing never does.
func listSevenZip(src io.ReaderAt, size int64, password []byte) (entryWalker, *Error) {
	var reader *sevenzip.Reader
	var err error
	if len(password) > 0 {
		reader, err = sevenzip.NewReaderWithPassword(src, size, string(password))
	} else {
		reader, err = sevenzip.NewReader(src, size)
	}
	if err != nil {
		if len(password) > 0 {
			return nil, invalidPasswordError("the archive header could not be decoded with the given password")
		}
		return nil, invalidArchiveError(SevenZip, err.Error())
	}

	return &sevenZipWalker{files: reader.File}, nil
}

// sevenZipWalker is a walker for 7z archives.
type sevenZipWalker struct {
	files []*sevenzip.File
	fp    int
}

// Next returns the next entry in the 7z archive.
func (s *sevenZipWalker) Next() (FileInArchive, error) {
	if s.fp >= len(s.files) {
		return FileInArchive{}, io.EOF
	}
	f := s.files[s.fp]
	s.fp++

	info := f.FileInfo()
	mode := f.Mode()
	kind := KindFile
	switch {
	case info.IsDir():
		kind = KindDir
	case mode&os.ModeSymlink != 0:
		kind = KindSymlink
	}

	return FileInArchive{
		Path:    f.Name,
		Size:    info.Size(),
		Kind:    kind,
		Mode:    mode.Perm(),
		ModTime: f.Modified,
	}, nil
}
