package ubershader

// Matches reports whether the variant satisfies req. The decision is
// deterministic and depends only on the spec and the requirements:
//
//  1. The spec's shading model and blending mode must equal the required
//     ones.
//  2. Every feature requested by req (set to true) must be declared by the
//     spec with a support level other than unsupported.
//  3. Every feature the spec declares as required must be requested by req.
//
// Features absent from both sides are irrelevant, and a requested feature
// set to false behaves exactly as if it were absent.
func (s *Spec) Matches(req *Requirements) bool {
	if s.shading != req.ShadingModel || s.blending != req.BlendingMode {
		return false
	}

	// Every requested feature must be known to the spec and supported.
	for name, wanted := range req.Features {
		if !wanted {
			continue
		}
		support, ok := s.Support(name)
		if !ok || support == FeatureUnsupported {
			return false
		}
	}

	// Every flag the spec requires must have been requested.
	for i := range s.flags {
		if s.flags[i].support != FeatureRequired {
			continue
		}
		if !req.Features[string(s.flags[i].name)] {
			return false
		}
	}

	return true
}
