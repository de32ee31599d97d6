// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// magicBytesSnappy are the magic bytes for snappy framed files.
var magicBytesSnappy = [][]byte{
	append([]byte{0xff, 0x06, 0x00, 0x00}, []byte("sNaPpY")...),
}

// isSnappy checks if the header matches the magic bytes for snappy framed files.
func isSnappy(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesSnappy)
}

// decompressSnappyStream returns an io.Reader that decompresses src with the snappy algorithm.
func decompressSnappyStream(src io.Reader) (io.Reader, error) {
	return snappy.NewReader(src), nil
}
