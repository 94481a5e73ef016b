// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"os"

	"github.com/ik5/audout/render"
)

// FileSink writes to a named file, creating or truncating it.
// A failed write leaves the file partially written.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Write(r render.Renderer) (err error) {
	segments, err := segmentsOf(r)
	if err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}

	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrWriteFailure, cerr)
		}
	}()

	return emit(f, segments)
}
