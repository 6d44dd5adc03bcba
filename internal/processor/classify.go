package processor

import (
	"klafsa/internal/document"
	"klafsa/internal/texture"
)

// Classify assigns a usage class to every texture in doc. A texture used as
// occlusion or metallic-roughness anywhere is linear, even if another
// material also uses it as a normal map; otherwise normal-map use wins;
// everything else, including unreferenced textures, is sRGB.
func Classify(doc *document.Document) map[int]texture.UsageClass {
	linear := make(map[int]bool)
	normal := make(map[int]bool)
	for _, m := range doc.Materials {
		if ref := m.NormalTexture; ref != nil {
			normal[ref.Index] = true
		}
		if ref := m.OcclusionTexture; ref != nil {
			linear[ref.Index] = true
		}
		if ref := m.MetallicRoughness(); ref != nil {
			linear[ref.Index] = true
		}
	}

	classes := make(map[int]texture.UsageClass, len(doc.Textures))
	for i := range doc.Textures {
		switch {
		case linear[i]:
			classes[i] = texture.UsageLinear
		case normal[i]:
			classes[i] = texture.UsageNormalMap
		default:
			classes[i] = texture.UsageSrgb
		}
	}
	return classes
}
