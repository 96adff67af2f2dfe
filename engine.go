package ubershader

// MaterialID is an opaque handle to a runtime material created by an
// Engine. IDs are uint64 to accommodate various backend handle sizes.
type MaterialID uint64

// InvalidMaterial is the zero value, representing an invalid/null material.
const InvalidMaterial MaterialID = 0

// Engine turns opaque shader packages into runtime materials. The Cache
// never interprets package bytes; what a package contains (WGSL source,
// SPIR-V, a backend blob) is a contract between the archive author and
// the engine.
//
// The engine/native and engine/wgpu subpackages provide implementations.
type Engine interface {
	// CompileMaterial builds a runtime material from a package blob and
	// returns its handle, which must not be InvalidMaterial on success.
	// The blob aliases the archive buffer and must not be retained or
	// modified; engines that need the bytes past the call must copy.
	CompileMaterial(pkg []byte) (MaterialID, error)

	// DestroyMaterial releases a material previously returned by
	// CompileMaterial. Unknown IDs are ignored.
	DestroyMaterial(id MaterialID)
}
