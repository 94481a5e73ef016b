// SPDX-License-Identifier: EPL-2.0

package render

// Renderer exposes an encoded payload plus the optional bytes that frame it
// in a container format.
type Renderer interface {
	// Buffer returns the encoded sample payload. It is never nil for a
	// constructed renderer; sinks treat a nil payload as a missing renderer.
	// Callers must not modify the returned slice.
	Buffer() []byte
	// Header returns the bytes written before the payload, or nil if the
	// format has none.
	Header() []byte
	// Footer returns the bytes written after the payload, or nil if the
	// format has none.
	Footer() []byte
}

var (
	_ Renderer = (*RawRenderer)(nil)
	_ Renderer = (*WaveRenderer)(nil)
)
