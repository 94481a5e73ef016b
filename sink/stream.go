// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audout/render"
)

// StreamSink writes to an already open stream such as standard output.
// The stream is never closed.
type StreamSink struct {
	w io.Writer
}

func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// NewStdoutSink returns a StreamSink bound to os.Stdout.
func NewStdoutSink() *StreamSink {
	return NewStreamSink(os.Stdout)
}

type flusher interface {
	Flush() error
}

// Write emits r to the stream. Buffered writers exposing Flush are flushed
// once all segments are written.
func (s *StreamSink) Write(r render.Renderer) error {
	segments, err := segmentsOf(r)
	if err != nil {
		return err
	}

	if s.w == nil {
		return fmt.Errorf("%w: nil stream", ErrDestinationUnavailable)
	}

	if err := emit(s.w, segments); err != nil {
		return err
	}

	if f, ok := s.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: flush: %w", ErrWriteFailure, err)
		}
	}

	return nil
}
