// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"fmt"
	"io"
)

// decompressionFunc wraps an existing byte source with a decoding byte
// source. The returned reader owns src; reads are lazy and the stream is not
// restartable.
type decompressionFunc func(src io.Reader) (io.Reader, error)

// decompressors maps every stream kind to its decoder constructor. The map
// is populated once and never mutated at runtime. Container kinds have no
// entry on purpose; they never take part in decoder chaining.
var decompressors = map[CompressionFormat]decompressionFunc{
	Gzip:   decompressGZipStream,
	Bzip2:  decompressBzip2Stream,
	Bzip3:  decompressBzip3Stream,
	Xz:     decompressXzStream,
	Zstd:   decompressZstdStream,
	Lz4:    decompressLZ4Stream,
	Snappy: decompressSnappyStream,
	Brotli: decompressBrotliStream,
	Zlib:   decompressZlibStream,
}

// wrapDecompressor wraps src with the decoder for format. Asking for a
// format without a registered decoder is a broken precondition in the
// caller, not a runtime condition, and panics.
func wrapDecompressor(format CompressionFormat, src io.Reader) (io.Reader, error) {
	decompress, ok := decompressors[format]
	if !ok {
		panic(fmt.Sprintf("no decoder registered for %q; container formats cannot be part of a decoder chain", format))
	}
	return decompress(src)
}
