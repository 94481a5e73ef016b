// SPDX-License-Identifier: EPL-2.0

// Package audout renders float64 audio samples into raw PCM or RIFF/WAVE byte
// streams and writes them to a file or standard output.
//
// # Supported Formats
//
// The package can render the following formats:
//   - raw (alias pcm): headerless 64-bit little-endian samples via render.RawRenderer
//   - wav (alias wave): 44-byte RIFF/WAVE header + the same payload via render.WaveRenderer
//
// Output is always mono with 64-bit IEEE-754 samples.
//
// # Quick Start
//
// The simplest way to produce a file is WriteFile:
//
//	samples := []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5}
//	err := audout.WriteFile("out.wav", "wav", samples, 8000)
//
// or, for standard output:
//
//	err := audout.WriteStdout("raw", samples, 8000)
//
// # Building Blocks
//
// For more control, compose the subpackages directly:
//
//	// Encode samples (pcm)
//	payload := pcm.Encode(samples)
//
//	// Wrap them in a container (render)
//	r, err := render.NewWaveRenderer(samples, 8000)
//
//	// Write header, payload and footer to a destination (sink)
//	err = sink.NewFileSink("out.wav").Write(r)
//
// The header layout itself lives in formats/wav, together with Probe, which
// reads a stream back through github.com/go-audio/wav.
//
// # Compatibility
//
// WAVE output declares 64 bits per sample with the integer PCM format tag and
// a RIFF size of payload + 44. Both are kept as-is; many players will not
// play these files. See formats/wav for details.
//
// See the individual subpackages for more detailed documentation.
package audout
