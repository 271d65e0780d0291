package shader

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// NodeID is an opaque 128-bit node identity. Ids are unique with
// overwhelming probability within a session and carry no meaning across
// processes beyond equality. No value is reserved as a sentinel; the zero
// id is a legal (if wildly improbable) generated value.
type NodeID [16]byte

// String returns the canonical 8-4-4-4-12 hex form of the id.
func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// ParseNodeID parses the canonical hex form produced by [NodeID.String].
func ParseNodeID(s string) (NodeID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NodeID{}, err
	}
	return NodeID(u), nil
}

// IDGenerator produces node ids. Implementations must be safe for
// concurrent use: [Node.RollID] calls Next from whatever goroutine owns
// the node.
type IDGenerator interface {
	Next() NodeID
}

// randomIDGenerator is the production generator. The lock is held only for
// the duration of drawing one id.
type randomIDGenerator struct {
	mu sync.Mutex
}

func (g *randomIDGenerator) Next() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return NodeID(uuid.New())
}

var (
	idGenMu sync.RWMutex
	idGen   IDGenerator = &randomIDGenerator{}
)

// SetIDGenerator replaces the process-wide id generator and returns the
// previous one. Tests use this to install a [SeededIDGenerator] and restore
// the default afterwards.
func SetIDGenerator(g IDGenerator) IDGenerator {
	idGenMu.Lock()
	defer idGenMu.Unlock()
	prev := idGen
	idGen = g
	return prev
}

func nextNodeID() NodeID {
	idGenMu.RLock()
	g := idGen
	idGenMu.RUnlock()
	return g.Next()
}

// SeededIDGenerator is a deterministic generator for reproducible tests.
type SeededIDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededIDGenerator creates a generator whose id sequence is fully
// determined by seed.
func NewSeededIDGenerator(seed uint64) *SeededIDGenerator {
	return &SeededIDGenerator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Next returns the next id in the seeded sequence.
func (g *SeededIDGenerator) Next() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	var id NodeID
	a := g.rng.Uint64()
	b := g.rng.Uint64()
	for i := 0; i < 8; i++ {
		id[i] = byte(a >> (8 * i))
		id[8+i] = byte(b >> (8 * i))
	}
	return id
}
