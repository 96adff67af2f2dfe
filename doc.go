// Package ubershader packages, selects, and lazily materializes precompiled
// shader variants.
//
// # Overview
//
// An ubershader archive is a single binary buffer holding any number of
// shader variants. Each variant records the shading model and blending mode
// it was compiled for, a set of named feature flags with per-flag support
// levels, and an opaque package blob (the compiled shader). At runtime a
// renderer describes what it needs as a Requirements value; the archive is
// scanned in order and the first variant that satisfies the requirements
// wins. Archive order therefore encodes priority: more specialized variants
// come first, permissive fallbacks last.
//
// # Quick Start
//
//	import "github.com/gogpu/ubershader"
//
//	// Author an archive.
//	w := ubershader.NewWritableArchive()
//	w.AddVariant("lit_skinned", pkgBytes)
//	w.AddSpecLine("ShadingModel = lit")
//	w.AddSpecLine("Skinning = optional")
//	data := w.Serialize()
//
//	// Load it and resolve variants against renderer requirements.
//	cache := ubershader.NewCache(engine)
//	if err := cache.Load(data); err != nil { ... }
//	req := ubershader.NewRequirements(ubershader.ShadingLit, ubershader.BlendOpaque)
//	req.Features["Skinning"] = true
//	material, err := cache.Material(req)
//
// The engine argument is any implementation of the Engine interface; the
// engine/native and engine/wgpu subpackages provide ready-made ones.
//
// # Architecture
//
// The library is organized into:
//   - Authoring: WritableArchive (builder), the spec-language parser, Serialize
//   - Container: DecodeArchive, Archive, Spec (patched read-only views)
//   - Selection: Requirements, Spec.Matches, Archive.FindSpec
//   - Runtime: Cache (lazy per-variant compilation through an Engine)
//
// # Spec Language
//
// Variants are described by a small line-oriented language, one statement
// per line:
//
//	# comment
//	ShadingModel = lit
//	BlendingMode = opaque
//	Skinning = optional
//	Morphing = unsupported
//	VertexColors = required
//
// Statements set the shading model, the blending mode, or one feature flag.
// See the parser documentation for the full grammar.
//
// # Concurrency
//
// WritableArchive, Archive, and Cache are single-owner types: callers that
// share them across goroutines must provide their own mutual exclusion.
// Engine implementations in engine/native and engine/wgpu are safe for
// concurrent use.
package ubershader

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
