package texture

// UsageClass describes how a texture's texels are interpreted, which decides
// its transfer function and mip filtering.
type UsageClass int

const (
	// UsageSrgb is color data; mips are generated gamma-aware.
	UsageSrgb UsageClass = iota
	// UsageLinear is non-color data such as occlusion or metallic-roughness.
	UsageLinear
	// UsageNormalMap is a tangent-space normal map.
	UsageNormalMap
)

func (u UsageClass) String() string {
	switch u {
	case UsageSrgb:
		return "srgb"
	case UsageLinear:
		return "linear"
	case UsageNormalMap:
		return "normal"
	default:
		return "unknown"
	}
}
