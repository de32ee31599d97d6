// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// magicBytesBzip2 are the magic bytes for bzip2 compressed files.
var magicBytesBzip2 = [][]byte{
	[]byte("BZh1"),
	[]byte("BZh2"),
	[]byte("BZh3"),
	[]byte("BZh4"),
	[]byte("BZh5"),
	[]byte("BZh6"),
	[]byte("BZh7"),
	[]byte("BZh8"),
	[]byte("BZh9"),
}

// isBzip2 checks if the header matches the magic bytes for bzip2 compressed files.
func isBzip2(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesBzip2)
}

// decompressBzip2Stream returns an io.Reader that decompresses src with the bzip2 algorithm.
func decompressBzip2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src, nil)
}
