package ubershader

// Archive is a loaded, immutable ubershader archive: the raw buffer plus
// per-spec views patched out of it by DecodeArchive. Flag names and package
// blobs are subslices of the buffer; nothing is copied after load.
//
// An Archive is read-only and single-owner. Callers that share one across
// goroutines must provide their own mutual exclusion.
type Archive struct {
	buf   []byte
	specs []Spec
}

// SpecCount returns the number of shader variants in the archive.
func (a *Archive) SpecCount() int {
	return len(a.specs)
}

// Spec returns the i-th variant view. Specs are stored in priority order:
// index 0 is consulted first during selection.
func (a *Archive) Spec(i int) *Spec {
	return &a.specs[i]
}

// Specs returns all variant views in priority order. The returned slice is
// owned by the archive and must not be modified.
func (a *Archive) Specs() []Spec {
	return a.specs
}

// Size returns the archive buffer length in bytes.
func (a *Archive) Size() int {
	return len(a.buf)
}

// FindSpec returns the index of the first spec that satisfies req.
// It reports false when no spec matches.
func (a *Archive) FindSpec(req *Requirements) (int, bool) {
	for i := range a.specs {
		if a.specs[i].Matches(req) {
			return i, true
		}
	}
	return 0, false
}

// Spec is one variant's patched in-memory view: the modes it was compiled
// for, its feature flags, and its opaque package blob.
type Spec struct {
	shading  ShadingModel
	blending BlendingMode
	flags    []flagView
	pkg      []byte
}

// flagView references a flag's name bytes inside the archive buffer.
// The name excludes the NUL terminator.
type flagView struct {
	name    []byte
	support FeatureSupport
}

// ShadingModel returns the shading model the variant was compiled for.
func (s *Spec) ShadingModel() ShadingModel {
	return s.shading
}

// BlendingMode returns the blending mode the variant was compiled for.
func (s *Spec) BlendingMode() BlendingMode {
	return s.blending
}

// FlagCount returns the number of feature flags the variant declares.
func (s *Spec) FlagCount() int {
	return len(s.flags)
}

// Flags returns a copy of the variant's feature flags in archive order.
func (s *Spec) Flags() []Flag {
	flags := make([]Flag, len(s.flags))
	for i, f := range s.flags {
		flags[i] = Flag{Name: string(f.name), Support: f.support}
	}
	return flags
}

// Support returns the variant's support level for the named feature.
// It reports false when the variant does not declare the feature.
func (s *Spec) Support(name string) (FeatureSupport, bool) {
	for i := range s.flags {
		if string(s.flags[i].name) == name {
			return s.flags[i].support, true
		}
	}
	return FeatureUnsupported, false
}

// Package returns the variant's compiled shader package. The returned
// slice aliases the archive buffer and must not be modified.
func (s *Spec) Package() []byte {
	return s.pkg
}
