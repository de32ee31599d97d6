// SPDX-License-Identifier: MPL-2.0

/*
Package arclist inspects and lists the contents of compressed and archived
files across many container and compression formats.

A file's encoding is described by a [FormatChain]: an optional container
layer (tar, zip, 7z, rar) followed by any number of stream compression
layers (gzip, bzip2, xz, zstd, lz4, snappy, brotli, zlib). Chains are
resolved from file names with [ChainFromFilename], from explicit overrides
with [ParseFormatChain], or sniffed from content with [SniffChain].

[ListArchiveContents] composes the per-layer decoders into one lazy stream,
decides whether the container can be read directly or must be materialized
first (seeking containers under stream layers cannot be streamed), and
yields one [FileInArchive] per entry in the container's native order.
Materializing an archive costs memory proportional to its decompressed
size, so it is gated behind a [QuestionPolicy].

	chain, _ := arclist.ParseFormatChain("tar.gz")
	listing, err := arclist.ListArchiveContents("backup.tar.gz", chain,
		arclist.ListOptions{}, arclist.PolicyAsk, nil, arclist.NewConfig())
	if err != nil {
		// render once, then exit non-zero
	}
	defer listing.Close()
	for {
		entry, err := listing.Next()
		if err == io.EOF {
			break
		}
		...
	}

All failures surface as a single [Error] with a closed [ErrorKind] set and
a renderable [FinalError] block.
*/
package arclist
