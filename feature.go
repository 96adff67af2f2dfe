package ubershader

// FeatureSupport describes a variant's stance on one named feature.
// The numeric values are part of the archive wire format and must not
// be reordered.
type FeatureSupport uint64

// Support levels.
const (
	// FeatureUnsupported means the variant cannot render the feature.
	// Requirements that request the feature reject the variant.
	FeatureUnsupported FeatureSupport = iota

	// FeatureOptional means the variant renders correctly with the
	// feature on or off. It never affects matching.
	FeatureOptional

	// FeatureRequired means the variant only renders correctly when the
	// feature is on. Requirements that do not request it reject the
	// variant.
	FeatureRequired
)

// String returns the spec-language keyword for the support level.
func (f FeatureSupport) String() string {
	switch f {
	case FeatureUnsupported:
		return "unsupported"
	case FeatureOptional:
		return "optional"
	case FeatureRequired:
		return "required"
	default:
		return "unknown"
	}
}

var featureSupportNames = map[string]FeatureSupport{
	"unsupported": FeatureUnsupported,
	"optional":    FeatureOptional,
	"required":    FeatureRequired,
}

// ParseFeatureSupport maps a lowercase spec-language keyword to its
// FeatureSupport. It reports false for unknown keywords.
func ParseFeatureSupport(s string) (FeatureSupport, bool) {
	f, ok := featureSupportNames[s]
	return f, ok
}

// Flag pairs a feature name with a variant's support for it.
type Flag struct {
	Name    string
	Support FeatureSupport
}
