// SPDX-License-Identifier: EPL-2.0

// Package render wraps an encoded sample payload in a container format.
//
// A Renderer exposes three segments that a sink writes in order:
//
//	header (optional) | payload | footer (optional)
//
// Two formats are provided:
//   - RawRenderer: headerless PCM, payload only
//   - WaveRenderer: 44-byte RIFF/WAVE header followed by the payload
//
// Neither format uses a footer; the segment exists for containers that carry
// trailing metadata.
//
// # Creating Renderers
//
//	raw := render.NewRawRenderer(samples, 8000)
//
//	wave, err := render.NewWaveRenderer(samples, 8000)
//	if err != nil {
//	    // invalid sample rate or payload too large for RIFF
//	}
//
// Renderers are immutable once constructed. The WAVE header is built and
// checked during construction, so Header, Buffer and Footer never fail.
// Header returns a copy; the payload returned by Buffer is shared and must
// be treated as read-only.
//
// # Format Registry
//
// The registry selects a renderer by name:
//
//	registry := render.DefaultRegistry()
//	r, err := registry.New("wav", samples, 8000)
//
// DefaultRegistry knows "raw", "pcm", "wav" and "wave". Additional formats
// can be registered with Register.
package render
