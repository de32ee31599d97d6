// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"encoding/json"
	"time"
)

// ListingMetrics holds telemetry data of one listing operation.
type ListingMetrics struct {
	// BufferedBytes is the number of bytes materialized in memory or in a
	// spill file before the container could be opened; zero on the
	// streaming path.
	BufferedBytes int64 `json:"buffered_bytes"`

	// Dirs is the number of directory entries yielded
	Dirs int64 `json:"dirs"`

	// Entries is the total number of entries yielded
	Entries int64 `json:"entries"`

	// InputSize is the size of the archive file
	InputSize int64 `json:"input_size"`

	// LastError is the last error that occurred during the listing
	LastError error `json:"-"`

	// ListingDuration is the time it took to walk all entries
	ListingDuration time.Duration `json:"listing_duration"`

	// ListingErrors is the number of errors during the listing
	ListingErrors int64 `json:"listing_errors"`

	// ListedType is the format chain of the listed archive
	ListedType string `json:"listed_type"`
}

// TelemetryHook is a function that consumes the metrics of a finished
// listing operation.
type TelemetryHook func(*ListingMetrics)

// String returns the metrics as a json representation.
func (m *ListingMetrics) String() string {
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// captureListingDuration stores the time since start in the metrics.
func captureListingDuration(m *ListingMetrics, start time.Time) {
	m.ListingDuration = time.Since(start)
}

// captureError counts err in the metrics and returns it converted to the
// unified error type.
func captureError(m *ListingMetrics, err error) *Error {
	e := ensureError(err)
	m.ListingErrors++
	m.LastError = e
	return e
}
