// SPDX-License-Identifier: EPL-2.0

// Package pcm converts float64 sample sequences into raw little-endian byte
// payloads and back.
//
// Every sample is stored as its IEEE-754 64-bit bit pattern, least
// significant byte first, and samples are concatenated in input order. No
// scaling, clamping or dithering is applied, so the conversion is lossless:
//
//	payload := pcm.Encode([]float64{1.0, -1.0})
//	// len(payload) == 16
//
//	samples, err := pcm.Decode(payload)
//	// samples == []float64{1.0, -1.0}
//
// # go-audio Buffers
//
// Callers that already hold a github.com/go-audio/audio FloatBuffer can encode
// it directly. Only mono buffers are accepted:
//
//	buf := &audio.FloatBuffer{
//	    Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
//	    Data:   samples,
//	}
//	payload, err := pcm.EncodeFloatBuffer(buf)
//
// # Payload Size
//
// The payload is always exactly BytesPerSample (8) bytes per sample. An empty
// sample sequence produces an empty payload.
package pcm
