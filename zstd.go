// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// magicBytesZstd are the magic bytes for zstandard files.
// reference: https://www.rfc-editor.org/rfc/rfc8878.html
var magicBytesZstd = [][]byte{
	{0x28, 0xb5, 0x2f, 0xfd},
}

// isZstd checks if the header matches the zstandard magic bytes.
func isZstd(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZstd)
}

// decompressZstdStream returns an io.Reader that decompresses src with the
// zstandard algorithm. The reader is returned as a closer so the decoder's
// worker goroutines are released when the chain is closed.
func decompressZstdStream(src io.Reader) (io.Reader, error) {
	d, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
