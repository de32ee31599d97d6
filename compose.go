// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bufio"
	"io"
)

// decodeStream is the composed decoder chain over a base byte source. Each
// layer exclusively owns the layer beneath it; Close releases the layers in
// reverse wrapping order. The base source itself is owned by the caller.
//
// Construction is deferred until the first Read because several decoder
// libraries consume their stream header inside the constructor; deferring
// keeps the whole chain lazy regardless of which codecs it contains.
type decodeStream struct {
	build   func(io.Reader) (io.Reader, []io.Closer, error)
	base    io.Reader
	r       io.Reader
	closers []io.Closer
	err     *Error
}

// Read pulls decoded bytes through the whole chain. Nothing is read from the
// base source before the first call.
func (d *decodeStream) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.r == nil {
		r, closers, err := d.build(d.base)
		if err != nil {
			d.err = ensureError(err)
			d.closeAll(closers)
			return 0, d.err
		}
		d.r, d.closers = r, closers
	}
	return d.r.Read(p)
}

// Close closes the decoder layers innermost-wrap first. The first close
// error wins, later layers are still closed.
func (d *decodeStream) Close() error {
	err := d.closeAll(d.closers)
	d.closers = nil
	d.r = nil
	return err
}

func (d *decodeStream) closeAll(closers []io.Closer) error {
	var firstErr error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// composeDecoder folds the stream-kind suffix of chain into one lazy byte
// source over base. The base source is wrapped once in a fixed-capacity read
// buffer so every decoder layer amortizes syscalls through it. Layers are
// wrapped walking the chain from its last position up to the layer just
// after the (optional) container, so reading the result undoes the layers in
// the reverse of the order a compressor applied them. A decoder that cannot
// be constructed, including the recognized-but-unsupported kinds, reports
// its error on the first read.
func composeDecoder(base io.Reader, chain FormatChain, bufferSize int) *decodeStream {
	stop := 0
	if chain.HasArchive() {
		stop = 1
	}
	layers := chain[stop:]

	return &decodeStream{
		base: bufio.NewReaderSize(base, bufferSize),
		build: func(r io.Reader) (io.Reader, []io.Closer, error) {
			var closers []io.Closer
			for i := len(layers) - 1; i >= 0; i-- {
				wrapped, err := wrapDecompressor(layers[i], r)
				if err != nil {
					return nil, closers, err
				}
				if c, ok := wrapped.(io.Closer); ok {
					closers = append(closers, c)
				}
				r = wrapped
			}
			return r, closers, nil
		},
	}
}
