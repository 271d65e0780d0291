package shader

import "math"

// Float3 is an xyz triple used for colors and vectors. Color components are
// unclamped linear values.
type Float3 struct {
	X, Y, Z float32
}

// Int2 is an integer pair used for editor placement. It carries no
// structural meaning.
type Int2 struct {
	X, Y int
}

// Unbounded is the sentinel for ranges with no natural upper bound
// (density, strength, IOR). It is the largest finite float32, not a
// physical limit; NegUnbounded is its lower-bound counterpart.
const (
	Unbounded    float32 = math.MaxFloat32
	NegUnbounded float32 = -math.MaxFloat32
)

// SlotValue is the typed default/content payload carried by a parameter
// slot. It is a closed sum: the variant is fixed at construction and only
// the payload may change afterwards. Assigning a value of a different
// variant to a slot is a caller error, rejected by [Node.SetSlotValue].
//
// Equality is structural and exact: same variant, bit-for-bit equal
// payload. Floats are never compared with tolerance here; [ColorRamp.Similar]
// is the only fuzzy comparison this package offers.
type SlotValue interface {
	// Type returns the semantic slot type of the variant.
	Type() SlotType
	// Equal reports strict structural equality with another value.
	Equal(other SlotValue) bool

	// clone keeps the sum closed and gives slots exclusive ownership of
	// mutable payloads (curves).
	clone() SlotValue
}

// FloatValue is a float parameter with an advisory [Min, Max] range and an
// optional decimal-display precision hint. The range is presentation
// metadata: values outside it are stored as-is, never clamped.
type FloatValue struct {
	Value     float32
	Min       float32
	Max       float32
	Precision int
}

func (v FloatValue) Type() SlotType { return SlotFloat }

func (v FloatValue) Equal(other SlotValue) bool {
	w, ok := other.(FloatValue)
	return ok && v == w
}

func (v FloatValue) clone() SlotValue { return v }

// WithValue returns a copy carrying the new value and the same range and
// precision. This is the payload-update helper used by editing surfaces.
func (v FloatValue) WithValue(value float32) FloatValue {
	v.Value = value
	return v
}

// BoolValue is a boolean parameter.
type BoolValue struct {
	Value bool
}

func (v BoolValue) Type() SlotType { return SlotBool }

func (v BoolValue) Equal(other SlotValue) bool {
	w, ok := other.(BoolValue)
	return ok && v == w
}

func (v BoolValue) clone() SlotValue { return v }

// ColorValue is an RGB color parameter. Components are unclamped linear
// values with no declared range.
type ColorValue struct {
	Value Float3
}

func (v ColorValue) Type() SlotType { return SlotColor }

func (v ColorValue) Equal(other SlotValue) bool {
	w, ok := other.(ColorValue)
	return ok && v == w
}

func (v ColorValue) clone() SlotValue { return v }

// VectorValue is a vector parameter with advisory per-component bounds.
type VectorValue struct {
	Value Float3
	Min   Float3
	Max   Float3
}

func (v VectorValue) Type() SlotType { return SlotVector }

func (v VectorValue) Equal(other SlotValue) bool {
	w, ok := other.(VectorValue)
	return ok && v == w
}

func (v VectorValue) clone() SlotValue { return v }

// WithValue returns a copy carrying the new vector and the same bounds.
func (v VectorValue) WithValue(value Float3) VectorValue {
	v.Value = value
	return v
}

// EnumValue is a selection from a closed, archetype-specific choice set.
// Equality compares both the selected option and the set identity.
type EnumValue struct {
	Set      *EnumSet
	Selected string
}

func (v EnumValue) Type() SlotType { return SlotEnum }

func (v EnumValue) Equal(other SlotValue) bool {
	w, ok := other.(EnumValue)
	return ok && v.Set == w.Set && v.Selected == w.Selected
}

func (v EnumValue) clone() SlotValue { return v }

// RGBCurveValue is a color-curve parameter backed by a [ColorRamp].
type RGBCurveValue struct {
	Curve ColorRamp
}

// NewRGBCurveValue returns a curve value holding the default two-point ramp.
func NewRGBCurveValue() RGBCurveValue {
	return RGBCurveValue{Curve: NewColorRamp()}
}

func (v RGBCurveValue) Type() SlotType { return SlotCurveRGB }

func (v RGBCurveValue) Equal(other SlotValue) bool {
	w, ok := other.(RGBCurveValue)
	return ok && v.Curve.Equal(w.Curve)
}

func (v RGBCurveValue) clone() SlotValue {
	return RGBCurveValue{Curve: v.Curve.clone()}
}

// VectorCurveValue is a vector-curve parameter: a [ColorRamp]-backed curve
// plus an associated default vector with advisory bounds, mirroring
// [VectorValue].
type VectorCurveValue struct {
	Curve ColorRamp
	Value Float3
	Min   Float3
	Max   Float3
}

// NewVectorCurveValue returns a vector-curve value holding the default
// two-point ramp and the given default vector and bounds.
func NewVectorCurveValue(value, min, max Float3) VectorCurveValue {
	return VectorCurveValue{Curve: NewColorRamp(), Value: value, Min: min, Max: max}
}

func (v VectorCurveValue) Type() SlotType { return SlotCurveVector }

func (v VectorCurveValue) Equal(other SlotValue) bool {
	w, ok := other.(VectorCurveValue)
	return ok && v.Value == w.Value && v.Min == w.Min && v.Max == w.Max && v.Curve.Equal(w.Curve)
}

func (v VectorCurveValue) clone() SlotValue {
	v.Curve = v.Curve.clone()
	return v
}
