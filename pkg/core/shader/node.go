package shader

import "errors"

var (
	// ErrNoSuchSlot is returned by [Node.SetSlotValue] and
	// [Node.SetValueByKey] when the addressed slot does not exist or
	// carries no value. Lookup operations (Slot, SlotIndex, ValueByKey)
	// report plain absence instead.
	ErrNoSuchSlot = errors.New("no such parameter slot")

	// ErrValueKind is returned by [Node.SetSlotValue] and
	// [Node.SetValueByKey] when the assigned value's variant differs from
	// the slot's. A slot's variant is fixed at construction.
	ErrValueKind = errors.New("value variant does not match slot")
)

// Node is one shading node: an identity, an archetype, an editor position,
// and the ordered slot list the archetype's catalog entry prescribes.
//
// A Node owns its slot sequence exclusively; accessors return copies. The
// Position field is free-form editor placement metadata with no structural
// constraint. Nodes are not safe for concurrent mutation.
type Node struct {
	id       NodeID
	nodeType NodeType
	slots    []Slot

	Position Int2
}

// New constructs a node of the given archetype at the given position and
// assigns it a fresh id. The slot list is determined entirely by the
// archetype; unknown archetypes construct with an empty slot list.
func New(t NodeType, position Int2) *Node {
	n := &Node{
		nodeType: t,
		slots:    CatalogSlots(t),
		Position: position,
	}
	n.RollID()
	return n
}

// NewWithID constructs a node like [New] but with a caller-supplied id,
// bypassing generation. Persistence layers use this to rehydrate a
// previously-identified node.
func NewWithID(t NodeType, position Int2, id NodeID) *Node {
	n := New(t, position)
	n.id = id
	return n
}

// ID returns the node's identity.
func (n *Node) ID() NodeID { return n.id }

// Type returns the node's archetype.
func (n *Node) Type() NodeType { return n.nodeType }

// NumSlots returns the number of slots.
func (n *Node) NumSlots() int { return len(n.slots) }

// Slot returns a copy of the slot at index, or false if the index is out
// of range. Absence is a normal outcome, not an error.
func (n *Node) Slot(index int) (Slot, bool) {
	if index < 0 || index >= len(n.slots) {
		return Slot{}, false
	}
	return n.slots[index].clone(), true
}

// SlotIndex returns the index of the first slot matching both direction
// and display name, or false if none matches. Display names are not
// guaranteed unique beyond this first-match rule.
func (n *Node) SlotIndex(dir SlotDirection, name string) (int, bool) {
	for i := range n.slots {
		if n.slots[i].Direction == dir && n.slots[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// SlotIndexByKey returns the index of the first slot matching both
// direction and internal key, or false if none matches. Keys are the
// durable reference used by serialization.
func (n *Node) SlotIndexByKey(dir SlotDirection, key string) (int, bool) {
	for i := range n.slots {
		if n.slots[i].Direction == dir && n.slots[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

// ValueByKey returns a copy of the value stored in the parameter slot with
// the given key, or false if no parameter slot has that key.
func (n *Node) ValueByKey(key string) (SlotValue, bool) {
	for i := range n.slots {
		if n.slots[i].Key == key && n.slots[i].Value != nil {
			return n.slots[i].Value.clone(), true
		}
	}
	return nil, false
}

// SetSlotValue stores a new payload in the parameter slot at index. The
// value's variant must match the slot's; ranges are advisory and values
// outside them are stored as-is, never clamped.
func (n *Node) SetSlotValue(index int, value SlotValue) error {
	if index < 0 || index >= len(n.slots) || n.slots[index].Value == nil {
		return ErrNoSuchSlot
	}
	if value == nil || value.Type() != n.slots[index].Value.Type() {
		return ErrValueKind
	}
	n.slots[index].Value = value.clone()
	return nil
}

// SetValueByKey stores a new payload in the parameter slot with the given
// key. Same contract as [Node.SetSlotValue].
func (n *Node) SetValueByKey(key string, value SlotValue) error {
	for i := range n.slots {
		if n.slots[i].Key == key && n.slots[i].Value != nil {
			return n.SetSlotValue(i, value)
		}
	}
	return ErrNoSuchSlot
}

// CopyContentFrom overwrites this node's archetype and slot list with deep
// copies of other's. Identity and position are never touched: editors use
// this to apply an external redefinition (undo, paste) without breaking
// id-based references or moving the node.
func (n *Node) CopyContentFrom(other *Node) {
	n.nodeType = other.nodeType
	slots := make([]Slot, len(other.slots))
	for i, s := range other.slots {
		slots[i] = s.clone()
	}
	n.slots = slots
}

// Equal reports strict identity-plus-content equality: id, archetype,
// position, and slot-wise equality must all match. Two structurally
// identical nodes with different ids are unequal; this is a
// change-detection primitive, not an isomorphism test.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.id != other.id || n.nodeType != other.nodeType || n.Position != other.Position {
		return false
	}
	if len(n.slots) != len(other.slots) {
		return false
	}
	for i := range n.slots {
		if !n.slots[i].Equal(other.slots[i]) {
			return false
		}
	}
	return true
}

// RollID assigns a fresh id from the process-wide generator and returns
// it. Used at construction and when an identity must be forcibly
// refreshed, such as after duplicating a node.
func (n *Node) RollID() NodeID {
	n.id = nextNodeID()
	return n.id
}
