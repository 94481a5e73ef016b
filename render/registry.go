// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Constructor builds a Renderer for one container format.
type Constructor func(samples []float64, sampleRate int) (Renderer, error)

// Registry maps format names (e.g., "raw", "wav") to constructors.
// Names are case-insensitive.
type Registry struct {
	formats map[string]Constructor

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Constructor),
		mtx:     &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry with the built-in formats:
// "raw" and its alias "pcm", "wav" and its alias "wave".
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("raw", Raw)
	r.Register("pcm", Raw)
	r.Register("wav", Wave)
	r.Register("wave", Wave)

	return r
}

func (r *Registry) Register(format string, c Constructor) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[strings.ToLower(format)] = c
}

func (r *Registry) Get(format string) (Constructor, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.formats[strings.ToLower(format)]
	return c, ok
}

// Formats returns the registered names in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// New looks up format and builds its renderer.
func (r *Registry) New(format string, samples []float64, sampleRate int) (Renderer, error) {
	c, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return c(samples, sampleRate)
}

// Raw is the Constructor for RawRenderer.
func Raw(samples []float64, sampleRate int) (Renderer, error) {
	return NewRawRenderer(samples, sampleRate), nil
}

// Wave is the Constructor for WaveRenderer.
func Wave(samples []float64, sampleRate int) (Renderer, error) {
	r, err := NewWaveRenderer(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	return r, nil
}
