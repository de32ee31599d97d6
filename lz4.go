// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// magicBytesLZ4 are the magic bytes for LZ4 frame files.
var magicBytesLZ4 = [][]byte{
	{0x04, 0x22, 0x4D, 0x18},
}

// isLZ4 checks if the header matches the magic bytes for LZ4 frame files.
func isLZ4(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesLZ4)
}

// decompressLZ4Stream returns an io.Reader that decompresses src with the LZ4 algorithm.
func decompressLZ4Stream(src io.Reader) (io.Reader, error) {
	return lz4.NewReader(src), nil
}
