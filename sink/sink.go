// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"io"

	"github.com/ik5/audout/render"
)

// Sink writes a rendered stream to a destination.
type Sink interface {
	// Write emits header, payload and footer of r in that order.
	Write(r render.Renderer) error
}

var (
	_ Sink = (*FileSink)(nil)
	_ Sink = (*StreamSink)(nil)
)

type segment struct {
	name string
	data []byte
}

// segmentsOf collects the header, payload and footer of r. A nil renderer,
// including a typed nil pointer, has no payload and is rejected.
func segmentsOf(r render.Renderer) ([]segment, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}

	payload := r.Buffer()
	if payload == nil {
		return nil, ErrNilRenderer
	}

	return []segment{
		{"header", r.Header()},
		{"payload", payload},
		{"footer", r.Footer()},
	}, nil
}

// emit writes the present segments to w with one Write call each.
// Short writes are not retried.
func emit(w io.Writer, segments []segment) error {
	for _, seg := range segments {
		if len(seg.data) == 0 {
			continue
		}

		n, err := w.Write(seg.data)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailure, seg.name, err)
		}

		if n != len(seg.data) {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailure, seg.name, io.ErrShortWrite)
		}
	}

	return nil
}
