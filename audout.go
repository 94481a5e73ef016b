// SPDX-License-Identifier: EPL-2.0

package audout

import (
	"fmt"

	"github.com/ik5/audout/render"
	"github.com/ik5/audout/sink"
)

var formats = render.DefaultRegistry()

// Formats lists the format names accepted by Render and the Write functions.
func Formats() []string {
	return formats.Formats()
}

// Render builds the renderer registered for format ("raw", "pcm", "wav" or "wave").
func Render(format string, samples []float64, sampleRate int) (render.Renderer, error) {
	r, err := formats.New(format, samples, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return r, nil
}

// Write renders samples in format and hands the result to s.
//
// Example:
//
//	err := audout.Write(sink.NewFileSink("tone.wav"), "wav", samples, 8000)
//	if errors.Is(err, sink.ErrDestinationUnavailable) {
//	    // could not create the file
//	}
func Write(s sink.Sink, format string, samples []float64, sampleRate int) error {
	r, err := Render(format, samples, sampleRate)
	if err != nil {
		return err
	}

	if err := s.Write(r); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile renders samples in format into the file at path.
func WriteFile(path, format string, samples []float64, sampleRate int) error {
	return Write(sink.NewFileSink(path), format, samples, sampleRate)
}

// WriteStdout renders samples in format to standard output.
func WriteStdout(format string, samples []float64, sampleRate int) error {
	return Write(sink.NewStdoutSink(), format, samples, sampleRate)
}
