// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// magicBytesZlib are the magic bytes for zlib compressed files, one per
// common compression level byte.
var magicBytesZlib = [][]byte{
	{0x78, 0x01},
	{0x78, 0x5e},
	{0x78, 0x9c},
	{0x78, 0xda},
}

// isZlib checks if the header matches the magic bytes for zlib compressed files.
func isZlib(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZlib)
}

// decompressZlibStream returns an io.Reader that decompresses src with the zlib algorithm.
func decompressZlibStream(src io.Reader) (io.Reader, error) {
	return zlib.NewReader(src)
}
