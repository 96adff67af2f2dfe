// Package native provides a pure Go ubershader engine backed by the naga
// shader compiler. WGSL packages are compiled and validated to SPIR-V;
// packages already holding SPIR-V are stored as-is. No GPU is required,
// which makes it the engine of choice for asset pipelines, validation
// tools, and tests.
package native

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/naga"

	"github.com/gogpu/ubershader"
	"github.com/gogpu/ubershader/internal/spirv"
)

// Material is a compiled shader held by the engine.
type Material struct {
	// SPIRV is the compiled module in byte form.
	SPIRV []byte
}

// Engine compiles shader packages without touching a GPU.
//
// Engine is safe for concurrent use from multiple goroutines.
type Engine struct {
	mu        sync.RWMutex
	nextID    atomic.Uint64
	materials map[ubershader.MaterialID]*Material
}

var _ ubershader.Engine = (*Engine)(nil)

// New returns an empty engine.
func New() *Engine {
	e := &Engine{
		materials: make(map[ubershader.MaterialID]*Material),
	}
	// Start ID generation at 1 (0 is invalid)
	e.nextID.Store(1)
	return e
}

// newID generates a unique material ID.
func (e *Engine) newID() ubershader.MaterialID {
	return ubershader.MaterialID(e.nextID.Add(1) - 1)
}

// CompileMaterial implements ubershader.Engine. WGSL packages go through
// naga, which validates the module and emits SPIR-V; SPIR-V packages are
// copied as-is.
func (e *Engine) CompileMaterial(pkg []byte) (ubershader.MaterialID, error) {
	if len(pkg) == 0 {
		return ubershader.InvalidMaterial, fmt.Errorf("native: empty shader package")
	}

	var code []byte
	if spirv.IsSPIRV(pkg) {
		// pkg aliases the archive buffer; the engine keeps its own copy.
		code = bytes.Clone(pkg)
	} else {
		compiled, err := naga.Compile(string(pkg))
		if err != nil {
			return ubershader.InvalidMaterial, fmt.Errorf("native: compiling WGSL package: %w", err)
		}
		code = compiled
	}

	id := e.newID()
	e.mu.Lock()
	e.materials[id] = &Material{SPIRV: code}
	e.mu.Unlock()
	return id, nil
}

// DestroyMaterial implements ubershader.Engine. Unknown IDs are ignored.
func (e *Engine) DestroyMaterial(id ubershader.MaterialID) {
	e.mu.Lock()
	delete(e.materials, id)
	e.mu.Unlock()
}

// Material returns the compiled module for id.
func (e *Engine) Material(id ubershader.MaterialID) (*Material, bool) {
	e.mu.RLock()
	m, ok := e.materials[id]
	e.mu.RUnlock()
	return m, ok
}

// MaterialCount returns the number of live materials.
func (e *Engine) MaterialCount() int {
	e.mu.RLock()
	n := len(e.materials)
	e.mu.RUnlock()
	return n
}
