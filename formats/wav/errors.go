package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrShortHeader          = errors.New("WAV header shorter than 44 bytes")
	ErrHeaderSize           = errors.New("WAV header is not 44 bytes")
	ErrInconsistentHeader   = errors.New("inconsistent WAV header fields")
	ErrInvalidSampleRate    = errors.New("invalid sample rate")
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrPayloadTooLarge      = errors.New("payload too large for a 32-bit RIFF size")
)
