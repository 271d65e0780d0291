package shader

import "testing"

func TestSlotValue_Equal(t *testing.T) {
	curveA := NewRGBCurveValue()
	curveB := NewRGBCurveValue()
	p := curveB.Curve.Get(1)
	p.Pos = 0.5
	curveB.Curve.Set(1, p)

	tests := []struct {
		name string
		a, b SlotValue
		want bool
	}{
		{"float equal", FloatValue{Value: 0.5, Min: 0, Max: 1}, FloatValue{Value: 0.5, Min: 0, Max: 1}, true},
		{"float exact comparison", FloatValue{Value: 0.5}, FloatValue{Value: 0.5000001}, false},
		{"float bounds matter", FloatValue{Value: 0.5, Max: 1}, FloatValue{Value: 0.5, Max: 2}, false},
		{"float precision matters", FloatValue{Value: 0.5, Precision: 2}, FloatValue{Value: 0.5}, false},
		{"bool equal", BoolValue{Value: true}, BoolValue{Value: true}, true},
		{"bool unequal", BoolValue{Value: true}, BoolValue{Value: false}, false},
		{"color equal", ColorValue{Value: Float3{0.9, 0.9, 0.9}}, ColorValue{Value: Float3{0.9, 0.9, 0.9}}, true},
		{"color channel differs", ColorValue{Value: Float3{0.9, 0.9, 0.9}}, ColorValue{Value: Float3{0.9, 0.8, 0.9}}, false},
		{"vector equal", VectorValue{Value: Float3{1, 2, 3}}, VectorValue{Value: Float3{1, 2, 3}}, true},
		{"vector bounds matter", VectorValue{Max: Float3{1, 1, 1}}, VectorValue{Max: Float3{2, 2, 2}}, false},
		{"enum equal", EnumValue{Set: GlossyDistributions, Selected: "ggx"}, EnumValue{Set: GlossyDistributions, Selected: "ggx"}, true},
		{"enum selection differs", EnumValue{Set: GlossyDistributions, Selected: "ggx"}, EnumValue{Set: GlossyDistributions, Selected: "sharp"}, false},
		{"enum set identity matters", EnumValue{Set: GlossyDistributions, Selected: "ggx"}, EnumValue{Set: GlassDistributions, Selected: "ggx"}, false},
		{"curve equal", NewRGBCurveValue(), NewRGBCurveValue(), true},
		{"curve differs", curveA, curveB, false},
		{"variant mismatch", FloatValue{Value: 1}, BoolValue{Value: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric: reverse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorCurveValue_Equal(t *testing.T) {
	a := NewVectorCurveValue(Float3{0, 0, 0}, Float3{-1, -1, -1}, Float3{1, 1, 1})
	b := NewVectorCurveValue(Float3{0, 0, 0}, Float3{-1, -1, -1}, Float3{1, 1, 1})

	if !a.Equal(b) {
		t.Error("identical vector curves unequal")
	}

	b.Value = Float3{0.1, 0, 0}
	if a.Equal(b) {
		t.Error("vector curves with different defaults compare equal")
	}
}

func TestEnumSet_Contains(t *testing.T) {
	if !GlossyDistributions.Contains("beckmann") {
		t.Error("Contains(beckmann) = false")
	}
	if GlossyDistributions.Contains("multi_ggx") {
		t.Error("Contains(multi_ggx) = true")
	}
}

func TestCurveValue_CloneIsDeep(t *testing.T) {
	n := New(NodeRGBCurves, Int2{0, 0})

	v, ok := n.ValueByKey("curves")
	if !ok {
		t.Fatal("curves value absent")
	}
	curve := v.(RGBCurveValue)
	p := curve.Curve.Get(0)
	p.Alpha = 0.25
	curve.Curve.Set(0, p)

	// Mutating the returned copy must not affect the node's slot.
	fresh, _ := n.ValueByKey("curves")
	if fresh.(RGBCurveValue).Curve.Get(0).Alpha != 1.0 {
		t.Error("value copy shares ramp storage with the node")
	}
}

func TestUnboundedSentinels(t *testing.T) {
	n := New(NodeEmission, Int2{0, 0})

	v, ok := n.ValueByKey("strength")
	if !ok {
		t.Fatal("strength value absent")
	}
	if fv := v.(FloatValue); fv.Max != Unbounded {
		t.Errorf("strength Max = %v, want Unbounded sentinel", fv.Max)
	}
}
