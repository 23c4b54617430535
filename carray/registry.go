// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"sort"
	"strings"
	"sync"

	"github.com/ik5/wav2c/formats/wav"
)

// Renderer produces the array definition for one output format.
type Renderer interface {
	// ElemType returns the C type name used for the array elements.
	ElemType(types TypeNames, bitsPerSample uint16) string
	// ArrayLen returns the array length used in the declaration.
	ArrayLen(pcm *wav.PCM) int
	// RenderBody writes the initializer, from the "=" up to the closing ";".
	RenderBody(b *strings.Builder, pcm *wav.PCM)
}

// Registry holds renderers by format key (e.g. "base10", "base16").
type Registry struct {
	renderers map[string]Renderer

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		mtx:       &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, rend Renderer) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.renderers[format] = rend
}

func (r *Registry) Get(format string) (Renderer, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rend, ok := r.renderers[format]
	return rend, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(FormatBase10, base10Renderer{})
	r.Register(FormatBase16, base16Renderer{})

	return r
}()

// DefaultRegistry returns the registry holding the built-in renderers.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
