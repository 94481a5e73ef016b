// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"
)

// BytesPerSample is the size of one encoded sample.
const BytesPerSample = 8

// Encode serializes samples as little-endian IEEE-754 doubles.
// The result always has len(samples)*BytesPerSample bytes.
func Encode(samples []float64) []byte {
	payload := make([]byte, len(samples)*BytesPerSample)

	for i, s := range samples {
		binary.LittleEndian.PutUint64(payload[i*BytesPerSample:], math.Float64bits(s))
	}

	return payload
}

// EncodeFloatBuffer encodes the data of a mono go-audio buffer.
// A buffer without a Format is treated as mono.
func EncodeFloatBuffer(buf *audio.FloatBuffer) ([]byte, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	if buf.Format != nil && buf.Format.NumChannels > 1 {
		return nil, ErrNotMono
	}

	return Encode(buf.Data), nil
}

// Decode is the inverse of Encode.
func Decode(payload []byte) ([]float64, error) {
	if len(payload)%BytesPerSample != 0 {
		return nil, ErrPartialSample
	}

	samples := make([]float64, len(payload)/BytesPerSample)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(payload[i*BytesPerSample:])
		samples[i] = math.Float64frombits(bits)
	}

	return samples, nil
}
