// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"io"
	"os"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config holds all configuration options for the listing pipeline. Values
// are adjusted in option pattern style and are not mutated once an operation
// has started.
type Config struct {
	// accessible switches rendered output (errors, warnings, prompts) to a
	// form without decorative characters.
	accessible bool

	// bufferSize is the capacity of the read buffer placed between the raw
	// file and the first decoder layer.
	bufferSize int

	// cacheInMemory buffers rar archives in memory instead of spilling them
	// to a temporary file when stream layers sit on top of them. Zip and 7z
	// archives are always buffered in memory.
	cacheInMemory bool

	// logger stream for the pipeline
	logger logger

	// maxInputSize is the maximum number of bytes read from the composed
	// decoder while materializing a seekable source.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// promptIn is where interactive confirmations are read from.
	promptIn io.Reader

	// promptOut is where warnings and confirmation prompts are written to.
	promptOut io.Writer

	// spillDir is the directory for temporary spill files, empty for the
	// system default.
	spillDir string

	// telemetryHook is a function to consume telemetry data after a
	// finished listing.
	// Important: do not adjust this value after the listing started
	telemetryHook TelemetryHook
}

const (
	// defaultBufferCapacity keeps syscall overhead down across all decoder
	// layers; every layer reads through this one buffer.
	defaultBufferCapacity = 32 * 1024

	// defaultMaxInputSize places no bound on materialized input.
	defaultMaxInputSize = int64(-1)
)

// NewConfig creates a new Config with defaults and applies the given options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{
		accessible:    accessibleFromEnv(),
		bufferSize:    defaultBufferCapacity,
		cacheInMemory: false,
		logger:        noopLogger{},
		maxInputSize:  defaultMaxInputSize,
		promptIn:      os.Stdin,
		promptOut:     os.Stderr,
		telemetryHook: func(*ListingMetrics) {},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Accessible returns true if output should avoid decorative characters.
func (c *Config) Accessible() bool {
	return c.accessible
}

// BufferSize returns the read buffer capacity for the decoder chain.
func (c *Config) BufferSize() int {
	return c.bufferSize
}

// CacheInMemory returns true if rar archives should be buffered in memory
// rather than spilled to a temporary file.
func (c *Config) CacheInMemory() bool {
	return c.cacheInMemory
}

// Logger returns the configured logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxInputSize returns the maximum materialized input size, -1 for no limit.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// SpillDir returns the directory for temporary spill files.
func (c *Config) SpillDir() string {
	return c.spillDir
}

// TelemetryHook returns the hook consuming metrics after a listing.
func (c *Config) TelemetryHook() TelemetryHook {
	return c.telemetryHook
}

// WithAccessible enables or disables accessible output rendering.
func WithAccessible(accessible bool) ConfigOption {
	return func(c *Config) {
		c.accessible = accessible
	}
}

// WithBufferSize adjusts the read buffer capacity between the raw file and
// the first decoder layer. Values below one fall back to the default.
func WithBufferSize(size int) ConfigOption {
	return func(c *Config) {
		if size < 1 {
			size = defaultBufferCapacity
		}
		c.bufferSize = size
	}
}

// WithCacheInMemory buffers rar archives in memory instead of a temporary
// file when they must be materialized.
func WithCacheInMemory(cache bool) ConfigOption {
	return func(c *Config) {
		c.cacheInMemory = cache
	}
}

// WithLogger sets the logger for the pipeline.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxInputSize bounds how many bytes may be materialized for seekable
// containers. Set -1 to disable the check.
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithPromptStreams redirects the confirmation prompt, mainly for embedding
// and tests. Defaults are stdin and stderr.
func WithPromptStreams(in io.Reader, out io.Writer) ConfigOption {
	return func(c *Config) {
		c.promptIn = in
		c.promptOut = out
	}
}

// WithSpillDir sets the directory for temporary spill files.
func WithSpillDir(dir string) ConfigOption {
	return func(c *Config) {
		c.spillDir = dir
	}
}

// WithTelemetryHook sets the hook consuming metrics after a listing.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// accessibleFromEnv honors the ACCESSIBLE environment variable, following
// the convention that any non-empty value enables the mode.
func accessibleFromEnv() bool {
	return os.Getenv("ACCESSIBLE") != ""
}
