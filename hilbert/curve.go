package hilbert

// Curve is a bijection between a linear distance in [0, Len()) and an
// n-dimensional point inside an axis-aligned bounding box.
//
// For every d in [0, Len()), Distance(Point(d)) == d, and Point(Distance(c))
// == c whenever c lies in the curve's box. Consecutive distances map to
// grid-adjacent points: Point(d+1) differs from Point(d) in exactly one
// axis, by exactly one step.
//
// Point, Alter and Coordinate never fail: a d at or above Len() is clamped
// to Len()-1, and a negative d to 0. Distance never fails either: an out-of-range or wrong-length
// coords argument returns -1. No Curve implementation mutates shared state
// once constructed, and none of them perform any locking; a Curve backed by
// precomputed tables is safe for concurrent read-only use.
type Curve interface {
	// Dims returns a copy of the curve's per-axis bounding-box extents.
	Dims() []int

	// Offsets returns a copy of the per-axis offset added to coordinates
	// returned by Point/Alter/Coordinate and subtracted from coordinates
	// passed to Distance.
	Offsets() []int

	// Len returns the number of distinct distances the curve covers, the
	// product of Dims.
	Len() int

	// Point returns the coordinates for distance d.
	Point(d int) []int

	// Alter writes the coordinates for distance d into buf, which must have
	// length len(Dims()), and returns buf.
	Alter(buf []int, d int) []int

	// Coordinate returns the (dim mod len(Dims()))-th coordinate for d.
	Coordinate(d, dim int) int

	// Distance returns the distance for coords, or -1 if coords has the
	// wrong length or falls outside the bounding box.
	Distance(coords []int) int
}

// Base holds the fields common to every curve implementation: the
// bounding-box extents, the per-axis offset, and the precomputed length.
// Concrete curves embed Base and implement Point/Distance themselves; Alter
// and Coordinate are usually implemented in terms of Point via AlterVia and
// CoordinateVia.
type Base struct {
	dims    []int
	offsets []int
	length  int
}

// NewBase validates dims and offsets (equal, positive-dims length, and a
// product strictly below 2^31) and returns the corresponding Base.
func NewBase(dims, offsets []int) (Base, error) {
	length, err := ValidateBounds(dims, len(dims))
	if err != nil {
		return Base{}, err
	}
	if offsets == nil {
		offsets = make([]int, len(dims))
	}
	if len(offsets) != len(dims) {
		return Base{}, wrapInvalid("offsets has %d entries, want %d", len(offsets), len(dims))
	}
	return Base{
		dims:    append([]int(nil), dims...),
		offsets: append([]int(nil), offsets...),
		length:  length,
	}, nil
}

// Dims returns a copy of the bounding-box extents.
func (b Base) Dims() []int { return append([]int(nil), b.dims...) }

// Offsets returns a copy of the per-axis offset.
func (b Base) Offsets() []int { return append([]int(nil), b.offsets...) }

// Len returns the product of Dims.
func (b Base) Len() int { return b.length }

// AlterVia implements Curve.Alter in terms of c.Point.
func AlterVia(c Curve, buf []int, d int) []int {
	copy(buf, c.Point(d))
	return buf
}

// CoordinateVia implements Curve.Coordinate in terms of c.Point.
func CoordinateVia(c Curve, d, dim int) int {
	p := c.Point(d)
	return p[dim%len(p)]
}
