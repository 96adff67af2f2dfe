package ubershader

// BlendingMode identifies how a shader variant's output is combined with
// the framebuffer. The numeric values are part of the archive wire format
// and must not be reordered.
type BlendingMode uint32

// Blending modes.
const (
	// BlendOpaque writes fragments with no blending.
	BlendOpaque BlendingMode = iota

	// BlendTransparent is standard premultiplied alpha blending.
	BlendTransparent

	// BlendAdd accumulates fragment color additively.
	BlendAdd

	// BlendMasked is alpha-to-coverage cutout blending.
	BlendMasked

	// BlendFade is like transparent but also fades specular highlights.
	BlendFade

	// BlendMultiply multiplies fragment color with the framebuffer.
	BlendMultiply

	// BlendScreen is the inverse-multiply compositing mode.
	BlendScreen
)

// String returns the spec-language keyword for the blending mode.
func (b BlendingMode) String() string {
	switch b {
	case BlendOpaque:
		return "opaque"
	case BlendTransparent:
		return "transparent"
	case BlendAdd:
		return "add"
	case BlendMasked:
		return "masked"
	case BlendFade:
		return "fade"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

var blendingModeNames = map[string]BlendingMode{
	"opaque":      BlendOpaque,
	"transparent": BlendTransparent,
	"add":         BlendAdd,
	"masked":      BlendMasked,
	"fade":        BlendFade,
	"multiply":    BlendMultiply,
	"screen":      BlendScreen,
}

// ParseBlendingMode maps a lowercase spec-language keyword to its
// BlendingMode. It reports false for unknown keywords.
func ParseBlendingMode(s string) (BlendingMode, bool) {
	b, ok := blendingModeNames[s]
	return b, ok
}
