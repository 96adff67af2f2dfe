package ubershader

// Requirements describes what a renderer needs from a shader variant:
// the shading model and blending mode it must have been compiled for,
// and the set of features the renderer wants enabled.
//
// A feature name missing from Features is equivalent to present with a
// false value: the renderer does not want it.
type Requirements struct {
	ShadingModel ShadingModel
	BlendingMode BlendingMode
	Features     map[string]bool
}

// NewRequirements returns Requirements for the given shading model and
// blending mode with an empty, non-nil feature set.
func NewRequirements(shading ShadingModel, blending BlendingMode) *Requirements {
	return &Requirements{
		ShadingModel: shading,
		BlendingMode: blending,
		Features:     make(map[string]bool),
	}
}
