// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ik5/audout/pcm"

// RawRenderer renders headerless PCM. Consumers must know the sample rate
// and sample format out of band.
type RawRenderer struct {
	buffer     []byte
	sampleRate int
}

func NewRawRenderer(samples []float64, sampleRate int) *RawRenderer {
	return &RawRenderer{
		buffer:     pcm.Encode(samples),
		sampleRate: sampleRate,
	}
}

// Buffer returns the encoded payload. The slice is shared and must not be
// modified. A nil *RawRenderer has no payload and returns nil.
func (r *RawRenderer) Buffer() []byte {
	if r == nil {
		return nil
	}
	return r.buffer
}

func (r *RawRenderer) Header() []byte { return nil }
func (r *RawRenderer) Footer() []byte { return nil }

func (r *RawRenderer) SampleRate() int {
	if r == nil {
		return 0
	}
	return r.sampleRate
}
