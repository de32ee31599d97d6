// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/ulikunitz/xz"
)

// magicBytesXz are the magic bytes for xz compressed files.
var magicBytesXz = [][]byte{
	{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00},
}

// isXz checks if the header matches the magic bytes for xz compressed files.
func isXz(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesXz)
}

// decompressXzStream returns an io.Reader that decompresses src with the xz algorithm.
func decompressXzStream(src io.Reader) (io.Reader, error) {
	return xz.NewReader(src)
}
