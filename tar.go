// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"archive/tar"
	"errors"
	"io"
)

// offsetTar is the offset where the magic bytes are located in the file
const offsetTar = 257

// magicBytesTar are the magic bytes for tar files
var magicBytesTar = [][]byte{
	[]byte("ustar\x00tar\x00"),
	[]byte("ustar\x00"),
	[]byte("ustar  \x00"),
}

// isTar checks if the header matches the magic bytes for tar files
func isTar(header []byte) bool {
	return matchesMagicBytes(header, offsetTar, magicBytesTar)
}

// listTar returns a walker over the entries of the tar stream in src. Tar
// reads strictly forward, so any byte source works, including a composed
// decoder chain.
func listTar(src io.Reader) entryWalker {
	return &tarWalker{tr: tar.NewReader(src)}
}

// tarWalker is a walker for tar streams.
type tarWalker struct {
	tr *tar.Reader
}

// Next returns the next entry in the tar stream.
func (t *tarWalker) Next() (FileInArchive, error) {
	hdr, err := t.tr.Next()
	if err == io.EOF {
		return FileInArchive{}, io.EOF
	}
	if err != nil {
		if errors.Is(err, tar.ErrHeader) || errors.Is(err, tar.ErrFieldTooLong) {
			return FileInArchive{}, invalidArchiveError(Tar, err.Error())
		}
		return FileInArchive{}, ensureError(err)
	}

	kind := KindFile
	switch hdr.Typeflag {
	case tar.TypeDir:
		kind = KindDir
	case tar.TypeSymlink, tar.TypeLink:
		kind = KindSymlink
	}

	return FileInArchive{
		Path:     hdr.Name,
		Size:     hdr.Size,
		Kind:     kind,
		Mode:     hdr.FileInfo().Mode().Perm(),
		ModTime:  hdr.ModTime,
		Linkname: hdr.Linkname,
	}, nil
}
