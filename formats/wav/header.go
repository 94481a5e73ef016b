// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

const (
	// HeaderSize is the length of the encoded header.
	HeaderSize = 44

	// ChunkSizeOverhead is added to the payload length to form ChunkSize.
	//
	// The canonical RIFF rule is file size minus 8 (payload + 36). Files
	// written here have always carried payload + 44 and consumers may depend
	// on it, so the value is kept.
	ChunkSizeOverhead = 44

	FmtChunkSize   = 16
	AudioFormatPCM = 1
	NumChannels    = 1

	// BitsPerSample matches the 64-bit float payload. Most players expect
	// 8/16/24/32-bit integer PCM and will reject or mis-decode such files.
	BitsPerSample = 64

	// BlockAlign is NumChannels * BitsPerSample / 8.
	BlockAlign = NumChannels * BitsPerSample / 8
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the canonical 44-byte RIFF/WAVE header. Fields are declared in
// on-disk order with fixed widths; all integers are little-endian.
type Header struct {
	// RIFF chunk (12 bytes)
	ChunkID   [4]byte
	ChunkSize uint32
	Format    [4]byte

	// fmt sub-chunk (24 bytes)
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// data sub-chunk header (8 bytes)
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// Header must occupy exactly HeaderSize bytes with no padding; either line
// stops compiling if a field is added, removed or widened.
var (
	_ [HeaderSize - unsafe.Sizeof(Header{})]struct{}
	_ [unsafe.Sizeof(Header{}) - HeaderSize]struct{}
)

// NewHeader builds the header for a mono 64-bit payload of payloadLen bytes
// sampled at sampleRate Hz.
func NewHeader(payloadLen int, sampleRate int) (Header, error) {
	if payloadLen < 0 {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidPayloadLength, payloadLen)
	}

	if sampleRate <= 0 || uint64(sampleRate)*BitsPerSample/8 > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if uint64(payloadLen)+ChunkSizeOverhead > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, payloadLen)
	}

	return Header{
		ChunkID:   riffID,
		ChunkSize: uint32(payloadLen + ChunkSizeOverhead),
		Format:    waveID,

		Subchunk1ID:   fmtID,
		Subchunk1Size: FmtChunkSize,
		AudioFormat:   AudioFormatPCM,
		NumChannels:   NumChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * BitsPerSample / 8),
		BlockAlign:    BlockAlign,
		BitsPerSample: BitsPerSample,

		Subchunk2ID:   dataID,
		Subchunk2Size: uint32(payloadLen),
	}, nil
}

// MarshalBinary encodes the header into exactly HeaderSize bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)

	n, err := binary.Encode(buf, binary.LittleEndian, h)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if n != HeaderSize {
		return nil, fmt.Errorf("%w: encoded %d bytes", ErrHeaderSize, n)
	}

	return buf, nil
}

// ParseHeader decodes the first HeaderSize bytes of b.
// Only the canonical layout (fmt directly followed by data) is accepted.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	var h Header
	if _, err := binary.Decode(b[:HeaderSize], binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("%w", err)
	}

	if h.ChunkID != riffID || h.Format != waveID {
		return Header{}, ErrNotWavFile
	}

	if h.Subchunk1ID != fmtID {
		return Header{}, ErrUnsupportedWavLayout
	}

	if h.Subchunk2ID != dataID {
		return Header{}, ErrUnsupportedWavChunks
	}

	return h, nil
}

// PayloadLen returns the data sub-chunk size.
func (h Header) PayloadLen() int { return int(h.Subchunk2Size) }

// Validate reports whether h describes the mono 64-bit layout that NewHeader
// produces, with size fields consistent with each other.
func (h Header) Validate() error {
	switch {
	case h.ChunkID != riffID, h.Format != waveID:
		return ErrNotWavFile
	case h.Subchunk1ID != fmtID:
		return ErrUnsupportedWavLayout
	case h.Subchunk2ID != dataID:
		return ErrUnsupportedWavChunks
	case h.Subchunk1Size != FmtChunkSize,
		h.AudioFormat != AudioFormatPCM,
		h.NumChannels != NumChannels,
		h.BitsPerSample != BitsPerSample,
		h.BlockAlign != BlockAlign:
		return fmt.Errorf("%w: format fields", ErrInconsistentHeader)
	case uint64(h.ByteRate) != uint64(h.SampleRate)*BitsPerSample/8:
		return fmt.Errorf("%w: byte rate %d for sample rate %d", ErrInconsistentHeader, h.ByteRate, h.SampleRate)
	case uint64(h.ChunkSize) != uint64(h.Subchunk2Size)+ChunkSizeOverhead:
		return fmt.Errorf("%w: chunk size %d for payload %d", ErrInconsistentHeader, h.ChunkSize, h.Subchunk2Size)
	}

	return nil
}
