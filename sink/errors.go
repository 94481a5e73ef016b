// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	// ErrDestinationUnavailable indicates the file could not be created or
	// the stream is missing
	ErrDestinationUnavailable = errors.New("destination unavailable")

	// ErrWriteFailure indicates a segment could not be fully written
	ErrWriteFailure = errors.New("write failure")

	// ErrNilRenderer indicates Write was called without a renderer
	ErrNilRenderer = errors.New("nil renderer")
)
