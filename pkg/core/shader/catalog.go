package shader

import (
	"math"
	"sort"
)

const pi = float32(math.Pi)

// catalog maps each archetype to its slot layout. The table is data, not
// behavior: construction deep-clones the listed slots, so the entries here
// are the single authoritative source of slot order, names, keys,
// directions, types, defaults, and bounds. Per archetype, output slots are
// listed first, then parameter slots, then pass-through input slots.
var catalog = map[NodeType][]Slot{
	// Output
	NodeMaterialOutput: {
		input("Surface", "surface", SlotClosure),
		input("Volume", "volume", SlotClosure),
		input("Displacement", "displacement", SlotVector),
	},

	// Color
	NodeRGBCurves: {
		output("Color", "color", SlotColor),
		param("Curves", "curves", NewRGBCurveValue()),
		param("Fac", "fac", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		param("Color", "color", ColorValue{Value: Float3{0.0, 0.0, 0.0}}),
	},

	// Shader
	NodeAddShader: {
		output("Closure", "closure", SlotClosure),
		input("Closure1", "closure1", SlotClosure),
		input("Closure2", "closure2", SlotClosure),
	},
	NodeAnisotropicBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Distribution", "distribution", EnumValue{Set: AnisotropicDistributions, Selected: "ggx"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Roughness", "roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Anisotropy", "anisotropy", FloatValue{Value: 0.5, Min: -1.0, Max: 1.0}),
		param("Rotation", "rotation", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
		input("Tangent", "tangent", SlotVector),
	},
	NodeDiffuseBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Roughness", "roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeEmission: {
		output("Emission", "emission", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Strength", "strength", FloatValue{Value: 0.0, Min: 0.0, Max: Unbounded}),
	},
	NodeGlassBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Distribution", "distribution", EnumValue{Set: GlassDistributions, Selected: "ggx"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Roughness", "roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("IOR", "ior", FloatValue{Value: 1.45, Min: 0.0, Max: 100.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeGlossyBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Distribution", "distribution", EnumValue{Set: GlossyDistributions, Selected: "ggx"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Roughness", "roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeHairBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Component", "component", EnumValue{Set: HairComponents, Selected: "reflection"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Offset", "offset", FloatValue{Value: 0.0, Min: -90.0, Max: 90.0, Precision: 2}),
		param("RoughnessU", "roughness_u", FloatValue{Value: 0.1, Min: 0.0, Max: 1.0}),
		param("RoughnessV", "roughness_v", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		input("Tangent", "tangent", SlotVector),
	},
	NodeHoldout: {
		output("Holdout", "holdout", SlotClosure),
	},
	NodeMixShader: {
		output("Closure", "closure", SlotClosure),
		param("Fac", "fac", FloatValue{Value: 0.5, Min: 0.0, Max: 1.0}),
		input("Closure1", "closure1", SlotClosure),
		input("Closure2", "closure2", SlotClosure),
	},
	NodePrincipledBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Distribution", "distribution", EnumValue{Set: PrincipledBSDFDistributions, Selected: "ggx"}),
		param("Base Color", "base_color", ColorValue{Value: Float3{0.8, 0.8, 0.8}}),
		param("Subsurface Method", "subsurface_method", EnumValue{Set: PrincipledBSDFSubsurfaceMethods, Selected: "burley"}),
		param("Subsurface", "subsurface", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Subsurface Radius", "subsurface_radius", VectorValue{
			Value: Float3{1.0, 0.2, 0.1},
			Min:   Float3{0.0, 0.0, 0.0},
			Max:   Float3{Unbounded, Unbounded, Unbounded},
		}),
		param("Subsurface Color", "subsurface_color", ColorValue{Value: Float3{0.7, 1.0, 1.0}}),
		param("Metallic", "metallic", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Specular", "specular", FloatValue{Value: 0.5, Min: 0.0, Max: 1.0}),
		param("Specular Tint", "specular_tint", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Roughness", "roughness", FloatValue{Value: 0.5, Min: 0.0, Max: 1.0}),
		param("Anisotropic", "anisotropic", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Rotation", "anisotropic_rotation", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Sheen", "sheen", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Sheen Tint", "sheen_tint", FloatValue{Value: 0.5, Min: 0.0, Max: 1.0}),
		param("Clearcoat", "clearcoat", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Clearcoat Roughness", "clearcoat_roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("IOR", "ior", FloatValue{Value: 1.45, Min: 0.0, Max: 100.0}),
		param("Transmission", "transmission", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Emission", "emission", ColorValue{Value: Float3{0.0, 0.0, 0.0}}),
		param("Alpha", "alpha", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
		input("Clearcoat Normal", "clearcoat_normal", SlotVector),
		input("Tangent", "tangent", SlotVector),
	},
	NodePrincipledHair: {
		output("BSDF", "BSDF", SlotClosure),
		param("Coloring", "coloring", EnumValue{Set: PrincipledHairColorings, Selected: "direct_coloring"}),
		param("Color", "color", ColorValue{Value: Float3{0.017513, 0.005763, 0.002059}}),
		param("Melanin", "melanin", FloatValue{Value: 0.8, Min: 0.0, Max: 1.0}),
		param("Melanin Redness", "melanin_redness", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		param("Tint", "tint", ColorValue{Value: Float3{1.0, 1.0, 1.0}}),
		param("Absorption Coefficient", "absorption_coefficient", VectorValue{
			Value: Float3{0.245531, 0.52, 1.365},
			Min:   Float3{0.0, 0.0, 0.0},
			Max:   Float3{Unbounded, Unbounded, Unbounded},
		}),
		param("Roughness", "roughness", FloatValue{Value: 0.3, Min: 0.0, Max: 1.0}),
		param("Radial Roughness", "radial_roughness", FloatValue{Value: 0.3, Min: 0.0, Max: 1.0}),
		param("Coat", "coat", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("IOR", "ior", FloatValue{Value: 1.55, Min: 0.0, Max: 1000.0}),
		param("Offset (rad)", "offset", FloatValue{Value: 2 * pi / 180.0, Min: -pi / 2.0, Max: pi / 2.0}),
		param("Random Roughness", "random_roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Random Color", "random_color", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Random", "random", FloatValue{Value: 0.0, Min: 0.0, Max: Unbounded}),
	},
	NodePrincipledVolume: {
		output("Volume", "volume", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.5, 0.5, 0.5}}),
		param("Density", "density", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
		param("Anisotropy", "anisotropy", FloatValue{Value: 0.0, Min: -1.0, Max: 1.0}),
		param("Absorption Color", "absorption_color", ColorValue{Value: Float3{0.0, 0.0, 0.0}}),
		param("Emission Strength", "emission_strength", FloatValue{Value: 0.0, Min: 0.0, Max: Unbounded}),
		param("Emission Color", "emission_color", ColorValue{Value: Float3{1.0, 1.0, 1.0}}),
		param("Blackbody Intensity", "blackbody_intensity", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Blackbody Tint", "blackbody_tint", ColorValue{Value: Float3{1.0, 1.0, 1.0}}),
		param("Temperature", "temperature", FloatValue{Value: 1000.0, Min: 0.0, Max: 8000.0}),
	},
	NodeRefractionBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Distribution", "distribution", EnumValue{Set: RefractionDistributions, Selected: "ggx"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Roughness", "roughness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("IOR", "ior", FloatValue{Value: 1.45, Min: 0.0, Max: 100.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeSubsurfaceScatter: {
		output("BSSRDF", "BSSRDF", SlotClosure),
		param("Falloff", "falloff", EnumValue{Set: SubsurfaceScatterFalloffs, Selected: "burley"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Scale", "scale", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
		param("Radius", "radius", VectorValue{
			Value: Float3{1.0, 1.0, 1.0},
			Min:   Float3{0.0, 0.0, 0.0},
			Max:   Float3{Unbounded, Unbounded, Unbounded},
		}),
		param("Sharpness", "sharpness", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		param("Texture Blur", "texture_blur", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeToonBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Component", "component", EnumValue{Set: ToonComponents, Selected: "diffuse"}),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Size", "size", FloatValue{Value: 0.5, Min: 0.0, Max: 1.0}),
		param("Smooth", "smooth", FloatValue{Value: 0.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeTranslucentBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		input("Normal", "normal", SlotVector),
	},
	NodeTransparentBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
	},
	NodeVelvetBSDF: {
		output("BSDF", "BSDF", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Sigma", "sigma", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		input("Normal", "normal", SlotVector),
	},
	NodeVolumeAbsorption: {
		output("Volume", "volume", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Density", "density", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
	},
	NodeVolumeScatter: {
		output("Volume", "volume", SlotClosure),
		param("Color", "color", ColorValue{Value: Float3{0.9, 0.9, 0.9}}),
		param("Density", "density", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
		param("Anisotropy", "anisotropy", FloatValue{Value: 0.0, Min: -1.0, Max: 1.0}),
	},

	// Vector
	NodeBump: {
		output("Normal", "normal", SlotVector),
		param("Invert", "invert", BoolValue{Value: false}),
		param("Strength", "strength", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		param("Distance", "distance", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
		input("Height", "height", SlotFloat),
		input("Normal", "normal", SlotVector),
	},
	NodeDisplacement: {
		output("Displacement", "displacement", SlotVector),
		param("Space", "space", EnumValue{Set: DisplacementSpaces, Selected: "object"}),
		param("Height", "height", FloatValue{Value: 0.0, Min: 0.0, Max: Unbounded}),
		param("Midlevel", "midlevel", FloatValue{Value: 0.5, Min: 0.0, Max: Unbounded}),
		param("Scale", "scale", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
		input("Normal", "normal", SlotVector),
	},
	NodeNormalMap: {
		output("Normal", "normal", SlotVector),
		param("Space", "space", EnumValue{Set: NormalMapSpaces, Selected: "tangent"}),
		param("Strength", "strength", FloatValue{Value: 1.0, Min: 0.0, Max: 10.0}),
		param("Color", "color", ColorValue{Value: Float3{0.5, 0.5, 1.0}}),
	},
	NodeVectorCurves: {
		output("Vector", "vector", SlotVector),
		param("Curves", "curves", NewVectorCurveValue(
			Float3{0.0, 0.0, 0.0},
			Float3{-1.0, -1.0, -1.0},
			Float3{1.0, 1.0, 1.0},
		)),
		param("Fac", "fac", FloatValue{Value: 1.0, Min: 0.0, Max: 1.0}),
		param("Vector", "vector", VectorValue{
			Value: Float3{0.0, 0.0, 0.0},
			Min:   Float3{NegUnbounded, NegUnbounded, NegUnbounded},
			Max:   Float3{Unbounded, Unbounded, Unbounded},
		}),
	},
	NodeVectorDisplacement: {
		output("Displacement", "displacement", SlotVector),
		param("Space", "space", EnumValue{Set: VectorDisplacementSpaces, Selected: "tangent"}),
		input("Vector", "vector", SlotColor),
		param("Midlevel", "midlevel", FloatValue{Value: 0.0, Min: 0.0, Max: Unbounded}),
		param("Scale", "scale", FloatValue{Value: 1.0, Min: 0.0, Max: Unbounded}),
	},
	NodeVectorTransform: {
		output("Vector", "vector", SlotVector),
		param("Type", "type", EnumValue{Set: VectorTransformTypes, Selected: "vector"}),
		param("Convert From", "convert_from", EnumValue{Set: VectorTransformSpaces, Selected: "world"}),
		param("Convert To", "convert_to", EnumValue{Set: VectorTransformSpaces, Selected: "object"}),
		param("Vector", "vector", VectorValue{
			Value: Float3{1.0, 1.0, 1.0},
			Min:   Float3{NegUnbounded, NegUnbounded, NegUnbounded},
			Max:   Float3{Unbounded, Unbounded, Unbounded},
		}),
	},
}

// CatalogTypes returns all archetypes present in the catalog, sorted by
// their stable identifier.
func CatalogTypes() []NodeType {
	types := make([]NodeType, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// CatalogSlots returns a deep copy of the slot layout for the archetype.
// Unknown archetypes yield nil: they construct with an empty slot list,
// which is a permitted placeholder state, not an error.
func CatalogSlots(t NodeType) []Slot {
	specs, ok := catalog[t]
	if !ok {
		return nil
	}
	slots := make([]Slot, len(specs))
	for i, s := range specs {
		slots[i] = s.clone()
	}
	return slots
}
