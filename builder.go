package ubershader

import (
	"bufio"
	"bytes"
	"io"
)

// WritableArchive accumulates shader variants and their spec-language
// descriptions, then serializes them into a single archive buffer.
//
// The authoring flow is append-only: AddVariant starts a new variant with
// its package bytes, subsequent AddSpecLine or ReadSpec calls describe it,
// and a final Serialize emits the archive. Variants are serialized in the
// order they were added, which is the order loaders consult them in, so
// specialized variants should be added before permissive fallbacks.
//
// A WritableArchive is single-owner; it must not be shared across
// goroutines without external mutual exclusion.
type WritableArchive struct {
	variants []variant
	sealed   bool
}

// variant is one pending archive entry.
type variant struct {
	name     string
	pkg      []byte
	shading  ShadingModel
	blending BlendingMode

	// supports holds the parsed flags; flagOrder preserves first-seen
	// order so serialization is deterministic.
	supports  map[string]FeatureSupport
	flagOrder []string

	// line is the 1-based number of the next spec line.
	line int
}

// NewWritableArchive returns an empty archive builder.
func NewWritableArchive() *WritableArchive {
	return &WritableArchive{}
}

// AddVariant begins a new variant whose compiled shader package is pkg.
// The package bytes are copied. The name appears only in diagnostics
// (syntax errors, logs); it is not serialized. The line counter for
// AddSpecLine restarts at 1.
//
// AddVariant panics if the builder has already been serialized.
func (w *WritableArchive) AddVariant(name string, pkg []byte) {
	if w.sealed {
		panic("ubershader: AddVariant after Serialize")
	}
	w.variants = append(w.variants, variant{
		name:     name,
		pkg:      bytes.Clone(pkg),
		supports: make(map[string]FeatureSupport),
		line:     1,
	})
}

// AddSpecLine parses one spec-language line into the variant most recently
// added. Every call advances the variant's line counter, blank and comment
// lines included, so error positions match the source file. Invalid lines
// return a *SyntaxError; the builder state for the line is unchanged and
// parsing may continue with the next line.
//
// AddSpecLine panics if no variant has been added yet or if the builder
// has already been serialized.
func (w *WritableArchive) AddSpecLine(line string) error {
	if w.sealed {
		panic("ubershader: AddSpecLine after Serialize")
	}
	if len(w.variants) == 0 {
		panic("ubershader: AddSpecLine before AddVariant")
	}
	v := &w.variants[len(w.variants)-1]
	err := parseSpecLine(v, line)
	v.line++
	return err
}

// ReadSpec feeds every line of r to AddSpecLine, stopping at the first
// syntax error.
func (w *WritableArchive) ReadSpec(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := w.AddSpecLine(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// VariantCount returns the number of variants added so far.
func (w *WritableArchive) VariantCount() int {
	return len(w.variants)
}
