package shader

import "sort"

// ColorRampPoint is one keyframe of a [ColorRamp]: a position, a color, and
// an alpha. Positions need not be unique or confined to [0, 1].
type ColorRampPoint struct {
	Pos   float32
	Color Float3
	Alpha float32
}

// ColorRamp is an ordered sequence of keyframes, sorted ascending by
// position at all observable times. Every mutation restores sort order
// before returning.
type ColorRamp struct {
	points []ColorRampPoint
}

// NewColorRamp returns the default ramp: two endpoints, black at pos 0 and
// white at pos 1, both fully opaque. The endpoint colors are an
// implementation choice; callers should rely only on the ramp being
// non-empty, sorted, and covering [0, 1].
func NewColorRamp() ColorRamp {
	return ColorRamp{points: []ColorRampPoint{
		{Pos: 0.0, Color: Float3{0.0, 0.0, 0.0}, Alpha: 1.0},
		{Pos: 1.0, Color: Float3{1.0, 1.0, 1.0}, Alpha: 1.0},
	}}
}

// NewColorRampFromPoints returns a ramp holding copies of the given
// keyframes, sorted ascending by position. Persistence layers use it to
// rehydrate a stored ramp of arbitrary size.
func NewColorRampFromPoints(points []ColorRampPoint) ColorRamp {
	r := ColorRamp{points: make([]ColorRampPoint, len(points))}
	copy(r.points, points)
	r.sortPoints()
	return r
}

// Size returns the number of keyframes.
func (r ColorRamp) Size() int { return len(r.points) }

// Get returns the keyframe at index. The index must be in range; an
// out-of-range index is a contract breach and panics.
func (r ColorRamp) Get(index int) ColorRampPoint {
	return r.points[index]
}

// Set replaces the keyframe at index and re-sorts the sequence. The index
// must be in range; an out-of-range index panics. If the new position moves
// the point past its neighbors, its index changes.
func (r *ColorRamp) Set(index int, point ColorRampPoint) {
	r.points[index] = point
	r.sortPoints()
}

// Equal reports exact pointwise equality, order-sensitive.
func (r ColorRamp) Equal(other ColorRamp) bool {
	if len(r.points) != len(other.points) {
		return false
	}
	for i := range r.points {
		if r.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// Similar reports whether both ramps have the same point count and every
// corresponding position, color channel, and alpha differs by no more than
// margin. The comparison is order-sensitive, not a set comparison.
func (r ColorRamp) Similar(other ColorRamp, margin float32) bool {
	if len(r.points) != len(other.points) {
		return false
	}
	for i := range r.points {
		a, b := r.points[i], other.points[i]
		if !within(a.Pos, b.Pos, margin) ||
			!within(a.Color.X, b.Color.X, margin) ||
			!within(a.Color.Y, b.Color.Y, margin) ||
			!within(a.Color.Z, b.Color.Z, margin) ||
			!within(a.Alpha, b.Alpha, margin) {
			return false
		}
	}
	return true
}

func within(a, b, margin float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= margin
}

func (r *ColorRamp) sortPoints() {
	sort.SliceStable(r.points, func(i, j int) bool {
		return r.points[i].Pos < r.points[j].Pos
	})
}

func (r ColorRamp) clone() ColorRamp {
	points := make([]ColorRampPoint, len(r.points))
	copy(points, r.points)
	return ColorRamp{points: points}
}
