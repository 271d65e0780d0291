package shader

// NodeType identifies a node archetype: a fixed shading primitive kind with
// a predetermined slot schema. The string value is the stable identifier
// used by the wire format.
type NodeType string

// Output nodes.
const (
	NodeMaterialOutput NodeType = "material_output"
)

// Color nodes.
const (
	NodeRGBCurves NodeType = "rgb_curves"
)

// Shader (closure) nodes.
const (
	NodeAddShader         NodeType = "add_shader"
	NodeAnisotropicBSDF   NodeType = "anisotropic_bsdf"
	NodeDiffuseBSDF       NodeType = "diffuse_bsdf"
	NodeEmission          NodeType = "emission"
	NodeGlassBSDF         NodeType = "glass_bsdf"
	NodeGlossyBSDF        NodeType = "glossy_bsdf"
	NodeHairBSDF          NodeType = "hair_bsdf"
	NodeHoldout           NodeType = "holdout"
	NodeMixShader         NodeType = "mix_shader"
	NodePrincipledBSDF    NodeType = "principled_bsdf"
	NodePrincipledHair    NodeType = "principled_hair"
	NodePrincipledVolume  NodeType = "principled_volume"
	NodeRefractionBSDF    NodeType = "refraction_bsdf"
	NodeSubsurfaceScatter NodeType = "subsurface_scatter"
	NodeToonBSDF          NodeType = "toon_bsdf"
	NodeTranslucentBSDF   NodeType = "translucent_bsdf"
	NodeTransparentBSDF   NodeType = "transparent_bsdf"
	NodeVelvetBSDF        NodeType = "velvet_bsdf"
	NodeVolumeAbsorption  NodeType = "vol_absorption"
	NodeVolumeScatter     NodeType = "vol_scatter"
)

// Vector nodes.
const (
	NodeBump               NodeType = "bump"
	NodeDisplacement       NodeType = "displacement"
	NodeNormalMap          NodeType = "normal_map"
	NodeVectorCurves       NodeType = "vector_curves"
	NodeVectorDisplacement NodeType = "vector_displacement"
	NodeVectorTransform    NodeType = "vector_transform"
)

// String returns the stable identifier for the archetype.
func (t NodeType) String() string { return string(t) }

// IsValid reports whether the archetype is present in the catalog.
// Invalid archetypes still construct (with an empty slot list) to permit
// incremental catalog growth; IsValid lets callers distinguish the two.
func (t NodeType) IsValid() bool {
	_, ok := catalog[t]
	return ok
}

// SlotDirection distinguishes input ports from output ports.
type SlotDirection string

const (
	DirectionInput  SlotDirection = "input"
	DirectionOutput SlotDirection = "output"
)

// String returns the stable identifier for the direction.
func (d SlotDirection) String() string { return string(d) }

// SlotType is the semantic type of a slot. Pass-through ports use the first
// four; parameter slots use the type matching their value variant.
type SlotType string

const (
	SlotClosure     SlotType = "closure"
	SlotColor       SlotType = "color"
	SlotFloat       SlotType = "float"
	SlotVector      SlotType = "vector"
	SlotBool        SlotType = "bool"
	SlotEnum        SlotType = "enum"
	SlotCurveRGB    SlotType = "curve_rgb"
	SlotCurveVector SlotType = "curve_vector"
)

// String returns the stable identifier for the slot type.
func (t SlotType) String() string { return string(t) }

// EnumSet is a closed, archetype-specific choice set for an enum parameter.
// Sets are package-level singletons; an [EnumValue] references its set by
// pointer, so equality includes set identity.
type EnumSet struct {
	Name    string
	Options []string
}

// Contains reports whether option is a member of the set.
func (s *EnumSet) Contains(option string) bool {
	for _, o := range s.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Enum choice sets. Option order is the presentation order.
var (
	AnisotropicDistributions = &EnumSet{
		Name:    "anisotropic_distribution",
		Options: []string{"ashikhmin_shirley", "beckmann", "ggx", "multiscatter_ggx"},
	}
	GlassDistributions = &EnumSet{
		Name:    "glass_distribution",
		Options: []string{"beckmann", "ggx", "multiscatter_ggx", "sharp"},
	}
	GlossyDistributions = &EnumSet{
		Name:    "glossy_distribution",
		Options: []string{"ashikhmin_shirley", "beckmann", "ggx", "multiscatter_ggx", "sharp"},
	}
	RefractionDistributions = &EnumSet{
		Name:    "refraction_distribution",
		Options: []string{"beckmann", "ggx", "sharp"},
	}
	HairComponents = &EnumSet{
		Name:    "hair_component",
		Options: []string{"reflection", "transmission"},
	}
	PrincipledBSDFDistributions = &EnumSet{
		Name:    "principled_bsdf_distribution",
		Options: []string{"ggx", "multiscatter_ggx"},
	}
	PrincipledBSDFSubsurfaceMethods = &EnumSet{
		Name:    "principled_bsdf_subsurface_method",
		Options: []string{"burley", "random_walk"},
	}
	PrincipledHairColorings = &EnumSet{
		Name:    "principled_hair_coloring",
		Options: []string{"absorption_coefficient", "melanin_concentration", "direct_coloring"},
	}
	SubsurfaceScatterFalloffs = &EnumSet{
		Name:    "subsurface_scatter_falloff",
		Options: []string{"burley", "cubic", "gaussian", "random_walk"},
	}
	ToonComponents = &EnumSet{
		Name:    "toon_component",
		Options: []string{"diffuse", "glossy"},
	}
	DisplacementSpaces = &EnumSet{
		Name:    "displacement_space",
		Options: []string{"object", "world"},
	}
	NormalMapSpaces = &EnumSet{
		Name:    "normal_map_space",
		Options: []string{"tangent", "object", "world"},
	}
	VectorDisplacementSpaces = &EnumSet{
		Name:    "vector_displacement_space",
		Options: []string{"tangent", "object", "world"},
	}
	VectorTransformTypes = &EnumSet{
		Name:    "vector_transform_type",
		Options: []string{"point", "vector", "normal"},
	}
	VectorTransformSpaces = &EnumSet{
		Name:    "vector_transform_space",
		Options: []string{"world", "object", "camera"},
	}
)
