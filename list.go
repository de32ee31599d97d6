// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ListOptions configures the presentation of a listing. It is carried
// through to the rendering consumer and has no effect on decoding.
type ListOptions struct {
	// Tree renders the entries as a tree instead of a flat sequence.
	Tree bool

	// ShowMetadata includes size, permissions and modification time.
	ShowMetadata bool
}

// Listing is a lazy, finite, non-restartable sequence of archive entries.
// Entries come in the container's native order. The Listing owns the
// underlying file and any buffered source for the duration of the walk and
// must be closed.
type Listing struct {
	walker   entryWalker
	file     *os.File
	src      *preparedSource
	options  ListOptions
	metrics  *ListingMetrics
	cfg      *Config
	start    time.Time
	declined bool
	finished bool
}

// ListArchiveContents opens the archive at path and prepares the lazy entry
// sequence for it. The chain describes how path decodes; it must contain a
// container at position 0 — resolving formats is the caller's job, and a
// stream-only chain here is a broken precondition that panics rather than
// erroring. The question policy governs the in-memory materialization gate;
// a declined materialization yields a Listing that is empty, Declined and
// not an error. The optional password is attempted per entry during the
// walk.
func ListArchiveContents(path string, chain FormatChain, options ListOptions, policy QuestionPolicy, password []byte, cfg *Config) (*Listing, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	if !chain.HasArchive() {
		panic(fmt.Sprintf("chain %q holds no archive, it cannot be listed; format resolution must route plain compressed files elsewhere", chain))
	}

	cfg.Logger().Info("listing archive", "path", path, "chain", chain.String())

	metrics := &ListingMetrics{ListedType: chain.String()}
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, captureError(metrics, err)
	}
	if info, statErr := file.Stat(); statErr == nil {
		metrics.InputSize = info.Size()
	}

	src, gateErr := prepareContainerSource(file, path, chain, policy, cfg)
	if gateErr != nil {
		file.Close()
		return nil, captureError(metrics, gateErr)
	}
	metrics.BufferedBytes = src.buffered

	listing := &Listing{
		file:     file,
		src:      src,
		options:  options,
		metrics:  metrics,
		cfg:      cfg,
		start:    start,
		declined: src.declined,
	}

	if src.declined {
		return listing, nil
	}

	walker, walkErr := openWalker(chain[0], src, password)
	if walkErr != nil {
		listing.Close()
		return nil, captureError(metrics, walkErr)
	}
	listing.walker = walker

	return listing, nil
}

// openWalker builds the container walker on the prepared source.
func openWalker(container CompressionFormat, src *preparedSource, password []byte) (entryWalker, *Error) {
	switch container {
	case Tar:
		return listTar(src.stream), nil
	case Zip:
		return listZip(src.readerAt, src.size, password)
	case SevenZip:
		return listSevenZip(src.readerAt, src.size, password)
	case Rar:
		if src.path != "" {
			return listRarFile(src.path, password)
		}
		return listRar(src.readerAt.(io.Reader), password)
	}
	panic(fmt.Sprintf("%q is not a container format", container))
}

// Next returns the next entry, io.EOF after the last one, or the error that
// ended the walk. Entries yielded before a failure remain valid.
func (l *Listing) Next() (FileInArchive, error) {
	if l.declined || l.finished {
		return FileInArchive{}, io.EOF
	}

	entry, err := l.walker.Next()
	if err == io.EOF {
		l.finished = true
		return FileInArchive{}, io.EOF
	}
	if err != nil {
		l.finished = true
		return FileInArchive{}, captureError(l.metrics, err)
	}

	l.metrics.Entries++
	if entry.Kind == KindDir {
		l.metrics.Dirs++
	}
	return entry, nil
}

// Declined reports whether the user refused the materialization gate. A
// declined listing is empty and not an error.
func (l *Listing) Declined() bool {
	return l.declined
}

// Options returns the presentation options the listing was requested with.
func (l *Listing) Options() ListOptions {
	return l.options
}

// Metrics returns the metrics collected so far.
func (l *Listing) Metrics() *ListingMetrics {
	return l.metrics
}

// Close releases the file and any buffered source and emits the telemetry
// hook. Closing twice is harmless.
func (l *Listing) Close() error {
	if l.file == nil {
		return nil
	}

	var firstErr error
	if l.src != nil {
		firstErr = l.src.Close()
	}
	if err := l.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	l.file = nil
	l.walker = nil

	captureListingDuration(l.metrics, l.start)
	l.cfg.TelemetryHook()(l.metrics)
	return firstErr
}
