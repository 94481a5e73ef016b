// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by FailingWriter.
var ErrInjected = errors.New("injected write failure")

// Generate returns n samples produced by waveform.
func Generate(n int, waveform func(sample int) float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = waveform(i)
	}
	return samples
}

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// Constant returns n copies of value.
func Constant(n int, value float64) []float64 {
	return Generate(n, func(int) float64 { return value })
}

// Ramp returns n samples rising linearly from -1 towards 1.
func Ramp(n int) []float64 {
	return Generate(n, func(i int) float64 {
		return -1 + 2*float64(i)/float64(max(n, 1))
	})
}

// Sine returns n samples of a sine wave at frequency Hz.
func Sine(sampleRate, n int, frequency float64) []float64 {
	return Generate(n, func(i int) float64 {
		t := float64(i) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// RecordingWriter keeps every Write call as a separate segment.
type RecordingWriter struct {
	Calls [][]byte
}

func (w *RecordingWriter) Write(p []byte) (int, error) {
	w.Calls = append(w.Calls, append([]byte(nil), p...))
	return len(p), nil
}

// Bytes returns all recorded segments concatenated.
func (w *RecordingWriter) Bytes() []byte {
	var out []byte
	for _, c := range w.Calls {
		out = append(out, c...)
	}
	return out
}

// FailingWriter accepts FailAfter Write calls and fails every call after that.
type FailingWriter struct {
	FailAfter int
	calls     int
	written   int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.calls >= w.FailAfter {
		return 0, ErrInjected
	}
	w.calls++
	w.written += len(p)
	return len(p), nil
}

// Written returns the number of bytes accepted before failing.
func (w *FailingWriter) Written() int { return w.written }

// ShortWriter accepts at most Limit bytes per call without reporting an error.
type ShortWriter struct {
	Limit int
}

func (w *ShortWriter) Write(p []byte) (int, error) {
	return min(len(p), w.Limit), nil
}

var (
	_ io.Writer = (*RecordingWriter)(nil)
	_ io.Writer = (*FailingWriter)(nil)
	_ io.Writer = (*ShortWriter)(nil)
)
