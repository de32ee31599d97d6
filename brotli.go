// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"

	"github.com/andybalholm/brotli"
)

// decompressBrotliStream returns an io.Reader that decompresses src with the
// brotli algorithm. Brotli has no magic bytes, so it can only be resolved
// from the file name, never sniffed from content.
func decompressBrotliStream(src io.Reader) (io.Reader, error) {
	return brotli.NewReader(src), nil
}
