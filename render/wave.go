// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"fmt"

	"github.com/ik5/audout/formats/wav"
	"github.com/ik5/audout/pcm"
)

// WaveRenderer renders a RIFF/WAVE stream: a 44-byte header followed by the
// 64-bit little-endian payload. It has no footer.
type WaveRenderer struct {
	buffer     []byte
	header     []byte
	sampleRate int
}

// NewWaveRenderer encodes samples and builds the header for sampleRate.
// The header is assembled here so Header never fails.
func NewWaveRenderer(samples []float64, sampleRate int) (*WaveRenderer, error) {
	return newWaveRenderer(pcm.Encode(samples), sampleRate)
}

// NewWaveRendererFromPayload wraps a payload previously produced by pcm.Encode.
// The payload is not copied and must not be modified afterwards.
func NewWaveRendererFromPayload(payload []byte, sampleRate int) (*WaveRenderer, error) {
	if len(payload)%pcm.BytesPerSample != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPayload, len(payload))
	}

	if payload == nil {
		payload = []byte{}
	}

	return newWaveRenderer(payload, sampleRate)
}

func newWaveRenderer(payload []byte, sampleRate int) (*WaveRenderer, error) {
	h, err := wav.NewHeader(len(payload), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeader, err)
	}

	header, err := h.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeader, err)
	}

	return &WaveRenderer{
		buffer:     payload,
		header:     header,
		sampleRate: sampleRate,
	}, nil
}

// Buffer returns the encoded payload. The slice is shared and must not be
// modified. A nil *WaveRenderer has no payload and returns nil.
func (r *WaveRenderer) Buffer() []byte {
	if r == nil {
		return nil
	}
	return r.buffer
}

// Header returns a copy of the 44-byte RIFF header, or nil for a nil
// *WaveRenderer.
func (r *WaveRenderer) Header() []byte {
	if r == nil {
		return nil
	}
	return bytes.Clone(r.header)
}

func (r *WaveRenderer) Footer() []byte { return nil }

func (r *WaveRenderer) SampleRate() int {
	if r == nil {
		return 0
	}
	return r.sampleRate
}
