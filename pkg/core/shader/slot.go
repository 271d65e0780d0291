package shader

// Slot is one named port or parameter on a node.
//
// Name is the display string shown by editors; Key is the stable identifier
// used for external serialization lookup, durable across archetype
// versions. Neither direction nor semantic type may change after
// construction.
//
// Output slots and pure pass-through input slots carry no value; parameter
// slots (always input-direction) carry exactly one value whose variant
// matches the semantic type.
type Slot struct {
	Name      string
	Key       string
	Direction SlotDirection
	Type      SlotType
	Value     SlotValue
}

// HasValue reports whether this is a parameter slot.
func (s Slot) HasValue() bool { return s.Value != nil }

// Equal reports strict structural equality: direction, semantic type, name,
// key, and value variant plus payload must all match.
func (s Slot) Equal(other Slot) bool {
	if s.Name != other.Name || s.Key != other.Key {
		return false
	}
	if s.Direction != other.Direction || s.Type != other.Type {
		return false
	}
	if (s.Value == nil) != (other.Value == nil) {
		return false
	}
	if s.Value == nil {
		return true
	}
	return s.Value.Equal(other.Value)
}

func (s Slot) clone() Slot {
	if s.Value != nil {
		s.Value = s.Value.clone()
	}
	return s
}

// output describes an output port in the catalog table.
func output(name, key string, t SlotType) Slot {
	return Slot{Name: name, Key: key, Direction: DirectionOutput, Type: t}
}

// input describes a pass-through input port in the catalog table.
func input(name, key string, t SlotType) Slot {
	return Slot{Name: name, Key: key, Direction: DirectionInput, Type: t}
}

// param describes a parameter slot in the catalog table; the semantic type
// comes from the value variant.
func param(name, key string, v SlotValue) Slot {
	return Slot{Name: name, Key: key, Direction: DirectionInput, Type: v.Type(), Value: v}
}
