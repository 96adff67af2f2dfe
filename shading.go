package ubershader

// ShadingModel identifies the lighting model a shader variant was compiled
// for. The numeric values are part of the archive wire format and must not
// be reordered.
type ShadingModel uint32

// Shading models.
const (
	// ShadingUnlit disables lighting entirely.
	ShadingUnlit ShadingModel = iota

	// ShadingLit is the standard physically based lighting model.
	ShadingLit

	// ShadingSubsurface extends the lit model with subsurface scattering.
	ShadingSubsurface

	// ShadingCloth extends the lit model with cloth sheen terms.
	ShadingCloth

	// ShadingSpecularGlossiness is the legacy specular-glossiness workflow.
	ShadingSpecularGlossiness
)

// String returns the spec-language keyword for the shading model.
func (m ShadingModel) String() string {
	switch m {
	case ShadingUnlit:
		return "unlit"
	case ShadingLit:
		return "lit"
	case ShadingSubsurface:
		return "subsurface"
	case ShadingCloth:
		return "cloth"
	case ShadingSpecularGlossiness:
		return "specular_glossiness"
	default:
		return "unknown"
	}
}

var shadingModelNames = map[string]ShadingModel{
	"unlit":               ShadingUnlit,
	"lit":                 ShadingLit,
	"subsurface":          ShadingSubsurface,
	"cloth":               ShadingCloth,
	"specular_glossiness": ShadingSpecularGlossiness,
}

// ParseShadingModel maps a lowercase spec-language keyword to its
// ShadingModel. It reports false for unknown keywords.
func ParseShadingModel(s string) (ShadingModel, bool) {
	m, ok := shadingModelNames[s]
	return m, ok
}
