// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"fmt"
	"strings"
)

// CompressionFormat is one layer in a format chain. A layer is either a
// container kind that bundles multiple named entries (tar, zip, 7z, rar) or a
// stream kind that transforms a single byte stream (everything else).
type CompressionFormat int

const (
	// container kinds
	Tar CompressionFormat = iota
	Zip
	SevenZip
	Rar

	// stream kinds
	Gzip
	Bzip2
	Bzip3
	Xz
	Zstd
	Lz4
	Snappy
	Brotli
	Zlib
)

// formatNames maps each format to its canonical file extension.
var formatNames = map[CompressionFormat]string{
	Tar:      "tar",
	Zip:      "zip",
	SevenZip: "7z",
	Rar:      "rar",
	Gzip:     "gz",
	Bzip2:    "bz2",
	Bzip3:    "bz3",
	Xz:       "xz",
	Zstd:     "zst",
	Lz4:      "lz4",
	Snappy:   "sz",
	Brotli:   "br",
	Zlib:     "zz",
}

// extensionFormats is the reverse of formatNames plus the aliases that are
// common in the wild. Shorthand extensions that imply a whole chain (tgz and
// friends) are handled separately in chainShorthands.
var extensionFormats = map[string]CompressionFormat{
	"tar":  Tar,
	"zip":  Zip,
	"7z":   SevenZip,
	"rar":  Rar,
	"gz":   Gzip,
	"bz":   Bzip2,
	"bz2":  Bzip2,
	"bz3":  Bzip3,
	"xz":   Xz,
	"lzma": Xz,
	"lz":   Xz,
	"zst":  Zstd,
	"lz4":  Lz4,
	"sz":   Snappy,
	"br":   Brotli,
	"zz":   Zlib,
}

// chainShorthands are single extensions that expand to a two-layer chain.
var chainShorthands = map[string][]CompressionFormat{
	"tgz":  {Tar, Gzip},
	"tbz":  {Tar, Bzip2},
	"tbz2": {Tar, Bzip2},
	"txz":  {Tar, Xz},
	"tlz4": {Tar, Lz4},
	"tzst": {Tar, Zstd},
	"tsz":  {Tar, Snappy},
}

// String returns the canonical file extension of the format.
func (f CompressionFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("CompressionFormat(%d)", int(f))
}

// IsArchive returns true for container kinds, which bundle multiple named
// entries, and false for stream kinds, which transform a single byte stream.
func (f CompressionFormat) IsArchive() bool {
	switch f {
	case Tar, Zip, SevenZip, Rar:
		return true
	case Gzip, Bzip2, Bzip3, Xz, Zstd, Lz4, Snappy, Brotli, Zlib:
		return false
	}
	panic(fmt.Sprintf("unknown compression format %d", int(f)))
}

// requiresRandomAccess returns true for container kinds that can only be
// opened on a seekable source. Tar is the one container that reads as a
// forward-only stream.
func (f CompressionFormat) requiresRandomAccess() bool {
	switch f {
	case Zip, SevenZip, Rar:
		return true
	}
	return false
}

// FormatChain is a validated, ordered list of format layers describing how a
// file decodes from raw bytes to its content. Position 0 is the outermost
// layer: the (optional) container. All later positions are stream kinds, with
// the last position being the transform applied directly to the raw bytes.
type FormatChain []CompressionFormat

// NewFormatChain validates formats and returns them as a FormatChain.
// Violations are reported as the InvalidFormat error kind.
func NewFormatChain(formats ...CompressionFormat) (FormatChain, error) {
	c := FormatChain(formats)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the chain invariants: non-empty, at most one container
// kind, and that container only at position 0.
func (c FormatChain) Validate() error {
	if len(c) == 0 {
		return invalidFormatError("empty format chain")
	}
	for i, f := range c {
		if i > 0 && f.IsArchive() {
			if c[0].IsArchive() {
				return invalidFormatError(fmt.Sprintf("can only archive once, found both %s and %s", c[0], f))
			}
			return invalidFormatError(fmt.Sprintf("archive format %s must be the first layer, found it at position %d", f, i+1))
		}
	}
	return nil
}

// HasArchive returns true if the chain decodes into a container of entries
// rather than a single byte stream.
func (c FormatChain) HasArchive() bool {
	return len(c) > 0 && c[0].IsArchive()
}

// StreamLayers returns the stream-kind suffix of the chain, in chain order.
func (c FormatChain) StreamLayers() []CompressionFormat {
	if c.HasArchive() {
		return c[1:]
	}
	return c
}

// String renders the chain the way it appears in a filename, e.g. "tar.gz".
func (c FormatChain) String() string {
	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = f.String()
	}
	return strings.Join(parts, ".")
}

// ParseFormatChain parses an explicit format override such as "tar.gz",
// ".tar.gz" or "tgz" into a validated chain.
func ParseFormatChain(s string) (FormatChain, error) {
	trimmed := strings.Trim(s, ".")
	if trimmed == "" {
		return nil, invalidFormatError("empty format chain")
	}

	var formats []CompressionFormat
	for _, part := range strings.Split(trimmed, ".") {
		part = strings.ToLower(part)
		if expansion, ok := chainShorthands[part]; ok {
			formats = append(formats, expansion...)
			continue
		}
		f, ok := extensionFormats[part]
		if !ok {
			return nil, invalidFormatError(fmt.Sprintf("unknown format %q in %q", part, s))
		}
		formats = append(formats, f)
	}

	return NewFormatChain(formats...)
}

// ChainFromFilename derives a format chain from the trailing extensions of
// name, reading right to left and stopping at the first extension that is not
// a recognized format. Returns false if no recognized extension is present.
// The derived chain is not validated; a file named "a.gz.zip.tar" yields the
// chain its name implies, and validation rejects it later.
func ChainFromFilename(name string) (FormatChain, bool) {
	var formats []CompressionFormat

	rest := name
	for {
		dot := strings.LastIndexByte(rest, '.')
		if dot < 0 || dot == len(rest)-1 {
			break
		}
		ext := strings.ToLower(rest[dot+1:])
		if expansion, ok := chainShorthands[ext]; ok {
			formats = append(expansion, formats...)
			rest = rest[:dot]
			continue
		}
		f, ok := extensionFormats[ext]
		if !ok {
			break
		}
		formats = append([]CompressionFormat{f}, formats...)
		rest = rest[:dot]
	}

	if len(formats) == 0 {
		return nil, false
	}
	return FormatChain(formats), true
}
