package hilbert

// storedThreshold is the precomputation policy cutoff from spec §4.4: a
// curve of this length or shorter gets O(1) tables; above it, Hilbert2D
// falls back to the closed-form loops with no tables at all.
const storedThreshold = 1 << 20

// Hilbert2D is the 2-D fast path: a specialised bijection using the
// classic remap-table bit loop (Lam/Shapiro's rotate-and-reflect walk,
// equivalent to the Chen-Lin-Fan-Huang closed form for the inverse
// direction) instead of the generic n-dimensional engine. Both directions
// are O(order) word operations in closed form, or O(1) once the
// precomputed tables are built.
//
// This is grounded directly on gonum's spatial/curve.Hilbert2D, whose
// rot/Pos/Coord2D loop is exactly this algorithm; Hilbert2D only adds
// offsets and the table-based fast path on top.
type Hilbert2D struct {
	Base
	order  int
	side   int
	stored bool
	xs, ys *packedInts
	dist   *packedInts
}

// NewHilbert2D returns the order-bits 2-D Hilbert curve (a side x side
// square, side = 1<<order), offset by offsets (nil means no offset). If the
// curve's length is at most 2^20, Point/Coordinate/Distance become O(1)
// table lookups; otherwise they fall back to the O(order) closed form.
func NewHilbert2D(order int, offsets []int) (*Hilbert2D, error) {
	if order < 1 {
		return nil, wrapInvalid("hilbert2d order %d must be >= 1", order)
	}
	side := 1 << order
	base, err := NewBase([]int{side, side}, offsets)
	if err != nil {
		return nil, err
	}

	h := &Hilbert2D{Base: base, order: order, side: side}
	if h.Len() <= storedThreshold {
		h.stored = true
		h.xs = newPackedInts(h.Len(), side-1)
		h.ys = newPackedInts(h.Len(), side-1)
		h.dist = newPackedInts(h.Len(), h.Len()-1)
		for d := 0; d < h.Len(); d++ {
			x, y := h.computePoint(d)
			h.xs.set(d, x)
			h.ys.set(d, y)
			h.dist.set(x*side+y, d)
		}
	}
	return h, nil
}

// rot applies the quadrant rotation/reflection used by both directions.
// width is the number of low bits of v that are meaningful at this point in
// the walk: the full order for the top-down direction (computeDistance),
// the number of bits assembled so far for the bottom-up direction
// (computePoint).
func (h *Hilbert2D) rot(width int, v []int, d int) {
	switch d {
	case 0:
		v[0], v[1] = v[1], v[0]
	case 3:
		m := 1<<width - 1
		v[0], v[1] = v[1]^m, v[0]^m
	}
}

// computePoint is the closed-form forward direction (distance -> point),
// used both as the no-table fallback and to build the precomputed tables.
func (h *Hilbert2D) computePoint(d int) (x, y int) {
	v := [2]int{}
	for n := 0; n < h.order; n++ {
		e := d & 3
		h.rot(n, v[:], e)
		ry := e >> 1
		rx := (e>>0 ^ e>>1) & 1
		v[0] += rx << n
		v[1] += ry << n
		d >>= 2
	}
	return v[0], v[1]
}

// computeDistance is the closed-form inverse direction (point -> distance).
func (h *Hilbert2D) computeDistance(x, y int) int {
	v := [2]int{x, y}
	var d int
	for n := h.order - 1; n >= 0; n-- {
		rx := (v[0] >> n) & 1
		ry := (v[1] >> n) & 1
		rd := ry<<1 | (ry ^ rx)
		d += rd << (2 * n)
		h.rot(h.order, v[:], rd)
	}
	return d
}

// Point returns the coordinates for distance d, clamped into range.
func (h *Hilbert2D) Point(d int) []int {
	d = clampDistance(d, h.Len())
	var x, y int
	if h.stored {
		x, y = h.xs.get(d), h.ys.get(d)
	} else {
		x, y = h.computePoint(d)
	}
	offs := h.Offsets()
	return []int{x + offs[0], y + offs[1]}
}

// Alter writes the coordinates for distance d into buf and returns it.
func (h *Hilbert2D) Alter(buf []int, d int) []int { return AlterVia(h, buf, d) }

// Coordinate returns the (dim mod 2)-th coordinate for distance d.
func (h *Hilbert2D) Coordinate(d, dim int) int { return CoordinateVia(h, d, dim) }

// Distance returns the distance for coords, or -1 if coords has the wrong
// length or falls outside the curve's box.
func (h *Hilbert2D) Distance(coords []int) int {
	if len(coords) != 2 {
		return -1
	}
	offs := h.Offsets()
	x, y := coords[0]-offs[0], coords[1]-offs[1]
	if x < 0 || x >= h.side || y < 0 || y >= h.side {
		return -1
	}
	if h.stored {
		return h.dist.get(x*h.side + y)
	}
	return h.computeDistance(x, y)
}
