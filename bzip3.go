// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"
)

// magicBytesBzip3 are the magic bytes for bzip3 compressed files.
var magicBytesBzip3 = [][]byte{
	[]byte("BZ3v1"),
}

// isBzip3 checks if the header matches the magic bytes for bzip3 compressed files.
func isBzip3(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesBzip3)
}

// decompressBzip3Stream reports bzip3 as recognized but unsupported. The
// format stays in the closed format set so chains mentioning it validate and
// fail with a proper error instead of being treated as unknown.
func decompressBzip3Stream(io.Reader) (io.Reader, error) {
	return nil, newError(KindUnsupportedFormat,
		NewFinalError("Recognised but unsupported format").
			Detail("bzip3 decoding is not available in this build").
			Hint("repack the inner stream with zstd or xz"))
}
