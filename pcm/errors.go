// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrPartialSample indicates a payload whose length is not a multiple of BytesPerSample
	ErrPartialSample = errors.New("payload length is not a multiple of 8 bytes")

	// ErrNilBuffer indicates a nil go-audio buffer
	ErrNilBuffer = errors.New("nil float buffer")

	// ErrNotMono indicates a buffer with more than one channel
	ErrNotMono = errors.New("only mono buffers are supported")
)
