// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bytes"
	"io"
	"os"
)

// preparedSource is the outcome of the seekable-container gate: exactly one
// of the source fields is populated, depending on what the outermost
// container can consume.
type preparedSource struct {
	// stream is the composed decoder chain, set for streaming containers.
	stream *decodeStream

	// readerAt plus size is the materialized (or direct) random-access
	// source, set for containers that need seeking.
	readerAt io.ReaderAt
	size     int64

	// path is the on-disk location to open, set for containers whose
	// reader works from a file path.
	path string

	// spill is the temporary file backing path, if one was created.
	spill *os.File

	// declined is set when the user refused the materialization. Not an
	// error: the operation ends early with no entries.
	declined bool

	// buffered is the number of bytes materialized, zero on direct paths.
	buffered int64
}

// Close releases whatever the gate acquired.
func (p *preparedSource) Close() error {
	var firstErr error
	if p.stream != nil {
		firstErr = p.stream.Close()
		p.stream = nil
	}
	if p.spill != nil {
		if err := p.spill.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := os.Remove(p.spill.Name()); err != nil && firstErr == nil {
			firstErr = err
		}
		p.spill = nil
	}
	return firstErr
}

// needsMaterialization reports whether the outermost container requires a
// fully materialized source: it needs random access, but stream layers sit
// between it and the file, so the file itself cannot be seeked into the
// container's bytes.
func needsMaterialization(chain FormatChain) bool {
	return chain[0].requiresRandomAccess() && len(chain) > 1
}

// prepareContainerSource decides between the direct and the buffered path
// for the container at chain position 0 and returns the prepared source.
//
// Streaming containers always get the composed decoder chain. Seeking
// containers get the opened file itself when no stream layers are present.
// Otherwise the whole decoded stream must be materialized first; that is
// gated behind a warning and a confirmation, asked exactly once, with the
// output lock held so warning and question render as one block. A declined
// confirmation returns a preparedSource with declined set and no error.
func prepareContainerSource(file *os.File, path string, chain FormatChain, policy QuestionPolicy, cfg *Config) (*preparedSource, *Error) {
	container := chain[0]

	if !container.requiresRandomAccess() {
		return &preparedSource{stream: composeDecoder(file, chain, cfg.BufferSize())}, nil
	}

	if len(chain) == 1 {
		// the file is the container, seek in it directly
		if container == Rar {
			return &preparedSource{path: path}, nil
		}
		size, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, fromIOError(err)
		}
		return &preparedSource{readerAt: file, size: size}, nil
	}

	proceed, err := confirmMaterialization(cfg, path, policy)
	if err != nil {
		return nil, err
	}
	if !proceed {
		cfg.Logger().Info("materialization declined", "path", path)
		return &preparedSource{declined: true}, nil
	}

	stream := composeDecoder(file, chain, cfg.BufferSize())
	defer stream.Close()
	limited := newLimitErrorReader(stream, cfg.MaxInputSize())

	if container == Rar && !cfg.CacheInMemory() {
		spill, spillErr := spillToTempFile(limited, cfg.SpillDir())
		if spillErr != nil {
			return nil, spillErr
		}
		cfg.Logger().Debug("spilled decoded archive", "path", spill.Name(), "bytes", limited.ReadBytes())
		return &preparedSource{path: spill.Name(), spill: spill, buffered: limited.ReadBytes()}, nil
	}

	cfg.Logger().Debug("buffering decoded archive in memory", "path", path)
	buf, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, ensureError(readErr)
	}
	return &preparedSource{readerAt: bytes.NewReader(buf), size: int64(len(buf)), buffered: int64(len(buf))}, nil
}

// confirmMaterialization renders the warning and consults the policy under
// the output lock so both stay adjacent.
func confirmMaterialization(cfg *Config, path string, policy QuestionPolicy) (bool, *Error) {
	outputMu.Lock()
	defer outputMu.Unlock()

	warnAboutMaterialization(cfg, path)
	return userWantsToContinue(cfg, path, policy, ActionDecompression)
}

// spillToTempFile copies r into a fresh temporary file and rewinds it.
func spillToTempFile(r io.Reader, dir string) (*os.File, *Error) {
	tmp, err := os.CreateTemp(dir, "arclist-*")
	if err != nil {
		return nil, fromIOError(err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, ensureError(err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fromIOError(err)
	}

	return tmp, nil
}
