// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bufio"
	"bytes"
	"io"
)

// headerCheck is a function that checks if the given header matches the
// expected magic bytes.
type headerCheck func([]byte) bool

type sniffableFormat struct {
	Format      CompressionFormat
	HeaderCheck headerCheck
	MagicBytes  [][]byte
	Offset      int
}

// sniffableFormats are the formats that can be recognized from leading file
// content. Brotli is absent, the format has no magic bytes and resolves by
// name only.
var sniffableFormats = []sniffableFormat{
	{Format: Tar, HeaderCheck: isTar, MagicBytes: magicBytesTar, Offset: offsetTar},
	{Format: Zip, HeaderCheck: isZip, MagicBytes: magicBytesZip},
	{Format: SevenZip, HeaderCheck: isSevenZip, MagicBytes: magicBytesSevenZip},
	{Format: Rar, HeaderCheck: isRar, MagicBytes: magicBytesRar},
	{Format: Gzip, HeaderCheck: isGZip, MagicBytes: magicBytesGZip},
	{Format: Bzip2, HeaderCheck: isBzip2, MagicBytes: magicBytesBzip2},
	{Format: Bzip3, HeaderCheck: isBzip3, MagicBytes: magicBytesBzip3},
	{Format: Xz, HeaderCheck: isXz, MagicBytes: magicBytesXz},
	{Format: Zstd, HeaderCheck: isZstd, MagicBytes: magicBytesZstd},
	{Format: Lz4, HeaderCheck: isLZ4, MagicBytes: magicBytesLZ4},
	{Format: Snappy, HeaderCheck: isSnappy, MagicBytes: magicBytesSnappy},
	{Format: Zlib, HeaderCheck: isZlib, MagicBytes: magicBytesZlib},
}

// maxHeaderLength is the longest header any sniffable format needs.
var maxHeaderLength int

// init calculates the maximum header length
func init() {
	for _, sf := range sniffableFormats {
		needs := sf.Offset
		for _, mb := range sf.MagicBytes {
			if len(mb)+sf.Offset > needs {
				needs = len(mb) + sf.Offset
			}
		}
		if needs > maxHeaderLength {
			maxHeaderLength = needs
		}
	}
}

// matchesMagicBytes checks if data contains one of the magic byte sequences
// at the given offset.
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	for _, mb := range magicBytes {
		if offset+len(mb) > len(data) {
			continue
		}
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}
	return false
}

// sniffFormat peeks at the leading bytes of r and returns the outermost
// format they identify. The reader position is not advanced. Returns false
// if no format matches.
func sniffFormat(r *bufio.Reader) (CompressionFormat, bool) {
	header, err := r.Peek(maxHeaderLength)
	if err != nil && len(header) == 0 {
		return 0, false
	}

	for _, sf := range sniffableFormats {
		if sf.HeaderCheck(header) {
			return sf.Format, true
		}
	}
	return 0, false
}

// SniffChain determines a format chain for content that has no usable file
// name, by sniffing the outermost layer from the leading bytes of r. Only
// the outermost layer can be detected this way; inner layers are hidden
// behind the outer encoding. The returned reader replaces r and reads from
// the original position.
func SniffChain(r io.Reader) (FormatChain, io.Reader, bool) {
	br := bufio.NewReaderSize(r, maxHeaderLength)
	f, ok := sniffFormat(br)
	if !ok {
		return nil, br, false
	}
	return FormatChain{f}, br, true
}
