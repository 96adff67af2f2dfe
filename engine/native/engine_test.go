package native

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gogpu/ubershader"
	"github.com/gogpu/ubershader/internal/spirv"
)

// goodWGSL is a minimal vertex shader that naga compiles cleanly.
const goodWGSL = `@vertex fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> { return vec4<f32>(0.0, 0.0, 0.0, 1.0); }`

// spirvPackage is a tiny stand-in module: the SPIR-V magic word plus one
// zero word. Engines only sniff the magic, so it never has to execute.
func spirvPackage() []byte {
	return []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x00, 0x00}
}

func TestCompileMaterialWGSL(t *testing.T) {
	e := New()

	id, err := e.CompileMaterial([]byte(goodWGSL))
	if err != nil {
		t.Fatalf("CompileMaterial() = %v", err)
	}
	if id == ubershader.InvalidMaterial {
		t.Fatal("CompileMaterial() = InvalidMaterial")
	}

	m, ok := e.Material(id)
	if !ok {
		t.Fatal("Material() did not find the compiled module")
	}
	if len(m.SPIRV) == 0 {
		t.Fatal("compiled module is empty")
	}
	if !spirv.IsSPIRV(m.SPIRV) {
		t.Errorf("compiled module does not start with the SPIR-V magic: % x", m.SPIRV[:4])
	}
	if len(m.SPIRV)%4 != 0 {
		t.Errorf("compiled module length %d is not word aligned", len(m.SPIRV))
	}
}

func TestCompileMaterialSPIRVPassthrough(t *testing.T) {
	e := New()
	pkg := spirvPackage()

	id, err := e.CompileMaterial(pkg)
	if err != nil {
		t.Fatalf("CompileMaterial() = %v", err)
	}

	m, ok := e.Material(id)
	if !ok {
		t.Fatal("Material() did not find the module")
	}
	if !bytes.Equal(m.SPIRV, spirvPackage()) {
		t.Errorf("stored module = % x, want input unchanged", m.SPIRV)
	}

	// The engine must hold its own copy; package views alias the archive.
	for i := range pkg {
		pkg[i] = 0xFF
	}
	if !bytes.Equal(m.SPIRV, spirvPackage()) {
		t.Error("mutating the input package changed the stored module")
	}
}

func TestCompileMaterialInvalidWGSL(t *testing.T) {
	e := New()

	id, err := e.CompileMaterial([]byte("@@@ not a shader"))
	if err == nil {
		t.Fatal("CompileMaterial(invalid WGSL) = nil, want error")
	}
	if id != ubershader.InvalidMaterial {
		t.Errorf("CompileMaterial() = %d, want InvalidMaterial", id)
	}
	if e.MaterialCount() != 0 {
		t.Errorf("MaterialCount() = %d after failed compile, want 0", e.MaterialCount())
	}
}

func TestCompileMaterialEmptyPackage(t *testing.T) {
	e := New()
	if _, err := e.CompileMaterial(nil); err == nil {
		t.Error("CompileMaterial(nil) = nil, want error")
	}
}

func TestDestroyMaterial(t *testing.T) {
	e := New()
	id, err := e.CompileMaterial(spirvPackage())
	if err != nil {
		t.Fatal(err)
	}

	e.DestroyMaterial(id)
	if _, ok := e.Material(id); ok {
		t.Error("Material() found a destroyed module")
	}
	if e.MaterialCount() != 0 {
		t.Errorf("MaterialCount() = %d, want 0", e.MaterialCount())
	}

	// Unknown IDs are ignored.
	e.DestroyMaterial(id)
	e.DestroyMaterial(12345)
}

func TestMaterialIDsUnique(t *testing.T) {
	e := New()
	seen := make(map[ubershader.MaterialID]bool)

	for range 10 {
		id, err := e.CompileMaterial(spirvPackage())
		if err != nil {
			t.Fatal(err)
		}
		if id == ubershader.InvalidMaterial {
			t.Fatal("CompileMaterial() = InvalidMaterial")
		}
		if seen[id] {
			t.Fatalf("duplicate material ID %d", id)
		}
		seen[id] = true
	}
	if e.MaterialCount() != 10 {
		t.Errorf("MaterialCount() = %d, want 10", e.MaterialCount())
	}
}

func TestEngineConcurrentCompile(t *testing.T) {
	e := New()
	const goroutines = 8
	const perGoroutine = 20

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				id, err := e.CompileMaterial(spirvPackage())
				if err != nil {
					t.Errorf("CompileMaterial() = %v", err)
					return
				}
				if _, ok := e.Material(id); !ok {
					t.Errorf("Material(%d) missing right after compile", id)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := e.MaterialCount(); got != goroutines*perGoroutine {
		t.Errorf("MaterialCount() = %d, want %d", got, goroutines*perGoroutine)
	}
}

// End to end: build an archive of WGSL packages, load it through a cache,
// and let the cache drive this engine.
func TestEngineWithCache(t *testing.T) {
	w := ubershader.NewWritableArchive()
	w.AddVariant("base", []byte(goodWGSL))
	for _, line := range []string{"ShadingModel = lit", "Fog = optional"} {
		if err := w.AddSpecLine(line); err != nil {
			t.Fatal(err)
		}
	}
	data := ubershader.Compress(w.Serialize())

	e := New()
	c := ubershader.NewCache(e)
	if err := c.Load(data); err != nil {
		t.Fatal(err)
	}

	req := ubershader.NewRequirements(ubershader.ShadingLit, ubershader.BlendOpaque)
	req.Features["Fog"] = true
	id, err := c.Material(req)
	if err != nil {
		t.Fatal(err)
	}

	m, ok := e.Material(id)
	if !ok {
		t.Fatal("cache handed out an ID the engine does not know")
	}
	if !spirv.IsSPIRV(m.SPIRV) {
		t.Error("cached material does not hold compiled SPIR-V")
	}

	c.ReleaseAll()
	if e.MaterialCount() != 0 {
		t.Errorf("MaterialCount() = %d after ReleaseAll, want 0", e.MaterialCount())
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
