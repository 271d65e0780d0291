package shader

import "testing"

func TestSeededIDGenerator_Deterministic(t *testing.T) {
	a := NewSeededIDGenerator(7)
	b := NewSeededIDGenerator(7)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverge at index %d", i)
		}
	}
}

func TestSeededIDGenerator_SeedsDiffer(t *testing.T) {
	a := NewSeededIDGenerator(1)
	b := NewSeededIDGenerator(2)

	if a.Next() == b.Next() {
		t.Error("different seeds produced the same first id")
	}
}

func TestSetIDGenerator(t *testing.T) {
	prev := SetIDGenerator(NewSeededIDGenerator(99))
	defer SetIDGenerator(prev)

	want := NewSeededIDGenerator(99).Next()
	n := New(NodeHoldout, Int2{0, 0})
	if n.ID() != want {
		t.Errorf("ID() = %s, want seeded %s", n.ID(), want)
	}
}

func TestParseNodeID_RoundTrip(t *testing.T) {
	n := New(NodeHoldout, Int2{0, 0})

	parsed, err := ParseNodeID(n.ID().String())
	if err != nil {
		t.Fatalf("ParseNodeID() error = %v", err)
	}
	if parsed != n.ID() {
		t.Errorf("round trip = %s, want %s", parsed, n.ID())
	}
}

func TestParseNodeID_Invalid(t *testing.T) {
	if _, err := ParseNodeID("not-an-id"); err == nil {
		t.Error("ParseNodeID accepted malformed input")
	}
}
