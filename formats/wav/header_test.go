// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func mustMarshal(t *testing.T, payloadLen, sampleRate int) []byte {
	t.Helper()

	h, err := NewHeader(payloadLen, sampleRate)
	if err != nil {
		t.Fatalf("NewHeader(%d, %d) error = %v", payloadLen, sampleRate, err)
	}

	b, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	return b
}

func TestHeader_Size(t *testing.T) {
	t.Parallel()

	if got := binary.Size(Header{}); got != HeaderSize {
		t.Errorf("binary.Size(Header{}) = %d, want %d", got, HeaderSize)
	}
}

func TestMarshalBinary_Length(t *testing.T) {
	t.Parallel()

	for _, payloadLen := range []int{0, 8, 16, 8 * 44100} {
		data := mustMarshal(t, payloadLen, 44100)
		if len(data) != HeaderSize {
			t.Errorf("len(MarshalBinary()) = %d, want %d (payload %d)", len(data), HeaderSize, payloadLen)
		}
	}
}

func TestMarshalBinary_CorrectHeader(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, 32, 44100)

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}

	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
	}

	if fmtSize := binary.LittleEndian.Uint32(data[16:20]); fmtSize != 16 {
		t.Errorf("fmt chunk size = %d, want 16", fmtSize)
	}

	if audioFormat := binary.LittleEndian.Uint16(data[20:22]); audioFormat != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", audioFormat)
	}

	if numChannels := binary.LittleEndian.Uint16(data[22:24]); numChannels != 1 {
		t.Errorf("num channels = %d, want 1", numChannels)
	}

	if sampleRate := binary.LittleEndian.Uint32(data[24:28]); sampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", sampleRate)
	}

	if byteRate := binary.LittleEndian.Uint32(data[28:32]); byteRate != 44100*8 {
		t.Errorf("byte rate = %d, want %d", byteRate, 44100*8)
	}

	if blockAlign := binary.LittleEndian.Uint16(data[32:34]); blockAlign != 8 {
		t.Errorf("block align = %d, want 8", blockAlign)
	}

	if bitsPerSample := binary.LittleEndian.Uint16(data[34:36]); bitsPerSample != 64 {
		t.Errorf("bits per sample = %d, want 64", bitsPerSample)
	}

	if string(data[36:40]) != "data" {
		t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
	}

	if dataSize := binary.LittleEndian.Uint32(data[40:44]); dataSize != 32 {
		t.Errorf("data size = %d, want 32", dataSize)
	}
}

func TestMarshalBinary_TwoSamplesAt8kHz(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, 16, 8000)

	tests := []struct {
		name  string
		start int
		want  uint32
	}{
		{"ChunkSize", 4, 60},
		{"SampleRate", 24, 8000},
		{"ByteRate", 28, 64000},
		{"Subchunk2Size", 40, 16},
	}

	for _, tt := range tests {
		got := binary.LittleEndian.Uint32(data[tt.start : tt.start+4])
		if got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMarshalBinary_EmptyPayload(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, 0, 8000)

	if chunkSize := binary.LittleEndian.Uint32(data[4:8]); chunkSize != 44 {
		t.Errorf("ChunkSize = %d, want 44", chunkSize)
	}

	if dataSize := binary.LittleEndian.Uint32(data[40:44]); dataSize != 0 {
		t.Errorf("Subchunk2Size = %d, want 0", dataSize)
	}
}

// The RIFF size is payload+44, not the canonical payload+36.
func TestMarshalBinary_ChunkSizeFormula(t *testing.T) {
	t.Parallel()

	for _, payloadLen := range []int{0, 8, 800, 123456} {
		data := mustMarshal(t, payloadLen, 16000)
		got := binary.LittleEndian.Uint32(data[4:8])

		if got != uint32(payloadLen+44) {
			t.Errorf("ChunkSize(payload %d) = %d, want %d", payloadLen, got, payloadLen+44)
		}
	}
}

func TestMarshalBinary_ByteOrder(t *testing.T) {
	t.Parallel()

	// 0x01020304 must be stored as 04 03 02 01
	data := mustMarshal(t, 0x01020304, 8000)

	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(data[40:44], want) {
		t.Errorf("Subchunk2Size bytes = % x, want % x", data[40:44], want)
	}
}

func TestMarshalBinary_VariousSampleRates(t *testing.T) {
	t.Parallel()

	sampleRates := []int{1, 8000, 16000, 22050, 44100, 48000, 96000, 192000}

	for _, rate := range sampleRates {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			data := mustMarshal(t, 24, rate)

			if got := binary.LittleEndian.Uint32(data[24:28]); got != uint32(rate) {
				t.Errorf("sample rate in header = %d, want %d", got, rate)
			}

			if got := binary.LittleEndian.Uint32(data[28:32]); got != uint32(rate*8) {
				t.Errorf("byte rate in header = %d, want %d", got, rate*8)
			}
		})
	}
}

func TestNewHeader_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payloadLen int
		sampleRate int
		wantErr    error
	}{
		{"zero sample rate", 0, 0, ErrInvalidSampleRate},
		{"negative sample rate", 0, -8000, ErrInvalidSampleRate},
		{"byte rate overflow", 0, math.MaxUint32/8 + 1, ErrInvalidSampleRate},
		{"negative payload", -1, 8000, ErrInvalidPayloadLength},
		{"payload overflow", math.MaxUint32 - 43, 8000, ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewHeader(tt.payloadLen, tt.sampleRate)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewHeader(%d, %d) error = %v, want %v", tt.payloadLen, tt.sampleRate, err, tt.wantErr)
			}
		})
	}
}

func TestNewHeader_Limits(t *testing.T) {
	t.Parallel()

	h, err := NewHeader(math.MaxUint32-44, math.MaxUint32/8)
	if err != nil {
		t.Fatalf("NewHeader() at limits error = %v, want nil", err)
	}

	if h.ChunkSize != math.MaxUint32 {
		t.Errorf("ChunkSize = %d, want %d", h.ChunkSize, uint32(math.MaxUint32))
	}
}

func TestParseHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	want, err := NewHeader(80, 48000)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}

	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	got, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if got != want {
		t.Errorf("ParseHeader() = %+v, want %+v", got, want)
	}

	if got.PayloadLen() != 80 {
		t.Errorf("PayloadLen() = %d, want 80", got.PayloadLen())
	}

	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	t.Parallel()

	valid := mustMarshal(t, 8, 8000)

	corrupt := func(offset int, value string) []byte {
		b := bytes.Clone(valid)
		copy(b[offset:], value)
		return b
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"truncated", valid[:43], ErrShortHeader},
		{"empty", nil, ErrShortHeader},
		{"not riff", corrupt(0, "RIFX"), ErrNotWavFile},
		{"not wave", corrupt(8, "NOPE"), ErrNotWavFile},
		{"no fmt", corrupt(12, "LIST"), ErrUnsupportedWavLayout},
		{"no data", corrupt(36, "INFO"), ErrUnsupportedWavChunks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseHeader(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Inconsistent(t *testing.T) {
	t.Parallel()

	base, err := NewHeader(16, 8000)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(h *Header)
		wantErr error
	}{
		{"canonical chunk size", func(h *Header) { h.ChunkSize = h.Subchunk2Size + 36 }, ErrInconsistentHeader},
		{"16-bit", func(h *Header) { h.BitsPerSample = 16 }, ErrInconsistentHeader},
		{"stereo", func(h *Header) { h.NumChannels = 2 }, ErrInconsistentHeader},
		{"float format", func(h *Header) { h.AudioFormat = 3 }, ErrInconsistentHeader},
		{"byte rate", func(h *Header) { h.ByteRate = 16000 }, ErrInconsistentHeader},
		{"block align", func(h *Header) { h.BlockAlign = 2 }, ErrInconsistentHeader},
		{"bad magic", func(h *Header) { h.ChunkID = [4]byte{'R', 'I', 'F', 'X'} }, ErrNotWavFile},
		{"bad fmt", func(h *Header) { h.Subchunk1ID = [4]byte{'J', 'U', 'N', 'K'} }, ErrUnsupportedWavLayout},
		{"bad data", func(h *Header) { h.Subchunk2ID = [4]byte{'L', 'I', 'S', 'T'} }, ErrUnsupportedWavChunks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := base
			tt.mutate(&h)

			if err := h.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// BenchmarkMarshalBinary benchmarks header encoding
func BenchmarkMarshalBinary(b *testing.B) {
	h, _ := NewHeader(8*44100, 44100)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = h.MarshalBinary()
	}
}
