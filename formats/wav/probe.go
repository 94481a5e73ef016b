// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info is what an independent RIFF parser reads back from a WAVE stream.
type Info struct {
	Format      *audio.Format
	BitDepth    int
	AudioFormat int
	ByteRate    int
}

// Probe parses the fmt chunk of r with github.com/go-audio/wav.
//
// It is used to check that rendered output is readable by a standard RIFF
// parser. The 64-bit sample depth is reported as-is; no attempt is made to
// decode PCM data.
func Probe(r io.Reader) (Info, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return Info{}, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return Info{}, ErrNotWavFile
	}

	return Info{
		Format:      dec.Format(),
		BitDepth:    int(dec.BitDepth),
		AudioFormat: int(dec.WavAudioFormat),
		ByteRate:    int(dec.AvgBytesPerSec),
	}, nil
}
