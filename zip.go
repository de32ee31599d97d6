// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"archive/zip"
	"errors"
	"io"
	"os"
)

// magicBytesZip contains the magic bytes for a zip archive.
var magicBytesZip = [][]byte{
	{0x50, 0x4B, 0x03, 0x04},
}

// zipFlagEncrypted is the general purpose bit marking an encrypted entry.
const zipFlagEncrypted = 0x1

// zipFlagDataDescriptor is the general purpose bit indicating that the CRC
// arrives in a trailing data descriptor; the password check byte then
// derives from the modification time instead.
const zipFlagDataDescriptor = 0x8

// zipMethodAES is the compression method id reserved for AE-x encryption.
const zipMethodAES = 99

// isZip checks if the header matches the magic bytes for zip archives.
func isZip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZip)
}

// listZip opens the zip central directory from a random-access source and
// returns a walker over its entries. The optional password is verified per
// encrypted entry against the entry's encryption header only; payload bytes
// are never decrypted during listing.
func listZip(src io.ReaderAt, size int64, password []byte) (entryWalker, *Error) {
	reader, err := zip.NewReader(src, size)
	if err != nil {
		return nil, fromZipError(err)
	}
	return &zipWalker{files: reader.File, password: password}, nil
}

// zipWalker is a walker for zip archives.
type zipWalker struct {
	files    []*zip.File
	password []byte
	fp       int
}

// Next returns the next entry in the zip archive.
func (z *zipWalker) Next() (FileInArchive, error) {
	if z.fp >= len(z.files) {
		return FileInArchive{}, io.EOF
	}
	f := z.files[z.fp]
	z.fp++

	encrypted := f.Flags&zipFlagEncrypted != 0
	if encrypted && len(z.password) > 0 {
		if f.Method == zipMethodAES {
			return FileInArchive{}, unsupportedArchiveError(Zip, "AES encrypted entries cannot be verified: "+f.Name)
		}
		ok, err := verifyZipPassword(f, z.password)
		if err != nil {
			return FileInArchive{}, err
		}
		if !ok {
			return FileInArchive{}, invalidPasswordError("password rejected by entry " + f.Name)
		}
	}

	mode := f.Mode()
	kind := KindFile
	switch {
	case mode.IsDir():
		kind = KindDir
	case mode&os.ModeSymlink != 0:
		kind = KindSymlink
	}

	return FileInArchive{
		Path:      f.Name,
		Size:      int64(f.UncompressedSize64),
		Kind:      kind,
		Mode:      mode.Perm(),
		ModTime:   f.Modified,
		Encrypted: encrypted,
	}, nil
}

// fromZipError converts an archive/zip error into the unified error type.
func fromZipError(err error) *Error {
	switch {
	case errors.Is(err, zip.ErrFormat):
		return invalidArchiveError(Zip, err.Error())
	case errors.Is(err, zip.ErrChecksum):
		return invalidArchiveError(Zip, err.Error())
	case errors.Is(err, zip.ErrAlgorithm):
		return unsupportedArchiveError(Zip, err.Error())
	default:
		return ensureError(err)
	}
}
