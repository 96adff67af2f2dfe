// Package wgpu provides an ubershader engine that creates HAL shader
// modules on a wgpu device. Each compiled material becomes one
// hal.ShaderModule, retrievable by handle for pipeline construction.
package wgpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ubershader"
	"github.com/gogpu/ubershader/internal/spirv"
)

// Engine compiles shader packages into shader modules on a wgpu device.
// WGSL packages are compiled through naga first; SPIR-V packages upload
// directly.
//
// Engine is safe for concurrent use from multiple goroutines.
type Engine struct {
	mu      sync.RWMutex
	device  hal.Device
	nextID  atomic.Uint64
	modules map[ubershader.MaterialID]hal.ShaderModule
}

var _ ubershader.Engine = (*Engine)(nil)

// New returns an engine that creates shader modules on device.
func New(device hal.Device) *Engine {
	e := &Engine{
		device:  device,
		modules: make(map[ubershader.MaterialID]hal.ShaderModule),
	}
	// Start ID generation at 1 (0 is invalid)
	e.nextID.Store(1)
	return e
}

// newID generates a unique material ID.
func (e *Engine) newID() ubershader.MaterialID {
	return ubershader.MaterialID(e.nextID.Add(1) - 1)
}

// CompileMaterial implements ubershader.Engine.
func (e *Engine) CompileMaterial(pkg []byte) (ubershader.MaterialID, error) {
	if len(pkg) == 0 {
		return ubershader.InvalidMaterial, fmt.Errorf("wgpu: empty shader package")
	}

	var code []uint32
	if spirv.IsSPIRV(pkg) {
		words, err := spirv.Words(pkg)
		if err != nil {
			return ubershader.InvalidMaterial, fmt.Errorf("wgpu: invalid SPIR-V package: %w", err)
		}
		code = words
	} else {
		compiled, err := naga.Compile(string(pkg))
		if err != nil {
			return ubershader.InvalidMaterial, fmt.Errorf("wgpu: compiling WGSL package: %w", err)
		}
		words, err := spirv.Words(compiled)
		if err != nil {
			return ubershader.InvalidMaterial, fmt.Errorf("wgpu: invalid naga output: %w", err)
		}
		code = words
	}

	id := e.newID()
	module, err := e.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: fmt.Sprintf("ubershader-material-%d", id),
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return ubershader.InvalidMaterial, fmt.Errorf("wgpu: creating shader module: %w", err)
	}

	e.mu.Lock()
	e.modules[id] = module
	e.mu.Unlock()
	return id, nil
}

// DestroyMaterial implements ubershader.Engine. Unknown IDs are ignored.
func (e *Engine) DestroyMaterial(id ubershader.MaterialID) {
	e.mu.Lock()
	module, ok := e.modules[id]
	if ok {
		delete(e.modules, id)
	}
	e.mu.Unlock()

	if ok {
		e.device.DestroyShaderModule(module)
	}
}

// Module returns the shader module for id, for use in pipeline creation.
func (e *Engine) Module(id ubershader.MaterialID) (hal.ShaderModule, bool) {
	e.mu.RLock()
	module, ok := e.modules[id]
	e.mu.RUnlock()
	return module, ok
}

// MaterialCount returns the number of live materials.
func (e *Engine) MaterialCount() int {
	e.mu.RLock()
	n := len(e.modules)
	e.mu.RUnlock()
	return n
}
