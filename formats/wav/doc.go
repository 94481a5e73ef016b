// SPDX-License-Identifier: EPL-2.0

// Package wav describes the 44-byte RIFF/WAVE header used for mono 64-bit
// sample payloads.
//
// # Header Layout
//
// All multi-byte integers are little-endian:
//
//	Offset  Size  Field          Value
//	0       4     ChunkID        "RIFF"
//	4       4     ChunkSize      payload length + 44
//	8       4     Format         "WAVE"
//	12      4     Subchunk1ID    "fmt "
//	16      4     Subchunk1Size  16
//	20      2     AudioFormat    1 (linear PCM)
//	22      2     NumChannels    1
//	24      4     SampleRate     sample rate
//	28      4     ByteRate       sample rate * 8
//	32      2     BlockAlign     8
//	34      2     BitsPerSample  64
//	36      4     Subchunk2ID    "data"
//	40      4     Subchunk2Size  payload length
//
// Header is a struct with exactly these fields in this order. Its size is
// checked at compile time, so reordering or widening a field breaks the build
// instead of silently shifting offsets.
//
// # Compatibility
//
// Two values differ from what most WAVE consumers expect and are kept on
// purpose:
//   - ChunkSize is payload + 44, not the canonical file size - 8 (payload + 36)
//   - BitsPerSample is 64 while AudioFormat says integer PCM
//
// Probe reads a stream back through github.com/go-audio/wav, which tolerates
// both.
//
// # Building a Header
//
//	h, err := wav.NewHeader(len(payload), 8000)
//	if err != nil {
//	    // invalid sample rate or payload too large
//	}
//	b, err := h.MarshalBinary() // 44 bytes
//
// # Error Handling
//
// The package defines sentinel errors that can be matched with errors.Is:
//   - ErrInvalidSampleRate, ErrInvalidPayloadLength, ErrPayloadTooLarge: NewHeader input
//   - ErrShortHeader, ErrNotWavFile, ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: parsing
//   - ErrInconsistentHeader: Validate
//   - ErrHeaderSize: encoding produced anything but 44 bytes
package wav
