package region

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/gridwalk/curveregion/hilbert"
)

// Region is an immutable set of curve distances in [0, packer.Len()),
// backed by the BitSet collaborator. Every RegionPacker operation returns a
// new Region; Copy is the explicit cloning operator for callers that need
// one to mutate via the underlying BitSet API.
type Region struct {
	bits *bitset.BitSet
}

func newRegion(b *bitset.BitSet) *Region { return &Region{bits: b} }

// Count returns the region's cardinality.
func (r *Region) Count() int { return int(r.bits.Count()) }

// IsEmpty reports whether the region has no set bits.
func (r *Region) IsEmpty() bool { return r.bits.None() }

// Test reports whether distance d is set.
func (r *Region) Test(d int) bool {
	if d < 0 || uint(d) >= r.bits.Len() {
		return false
	}
	return r.bits.Test(uint(d))
}

// Copy returns an independent clone of r.
func (r *Region) Copy() *Region { return newRegion(r.bits.Clone()) }

// Distances returns the region's set bits in ascending order.
func (r *Region) Distances() []int { return sortedBits(r.bits) }

// Packer owns a Curve and exposes the public region algebra. A Packer must
// not be shared across goroutines without external synchronization: the
// structuring-element cache and the BitSet collaborator may allocate scratch
// state during algebra routines.
type Packer struct {
	curve  hilbert.Curve
	length uint
}

// NewPacker returns a Packer over curve.
func NewPacker(curve hilbert.Curve) (*Packer, error) {
	if curve == nil {
		return nil, wrapInvalid("curve is nil")
	}
	return &Packer{curve: curve, length: uint(curve.Len())}, nil
}

// Curve returns the packer's curve.
func (p *Packer) Curve() hilbert.Curve { return p.curve }

// Len returns the curve's distance domain size.
func (p *Packer) Len() int { return int(p.length) }

// Empty returns the ALL_OFF sentinel: a region with no set bits.
func (p *Packer) Empty() *Region { return newRegion(bitset.New(p.length)) }

// Full returns the ALL_ON sentinel: a region with every bit set.
func (p *Packer) Full() *Region {
	b := bitset.New(p.length)
	b.FlipRange(0, p.length)
	return newRegion(b)
}

// Pack walks every curve distance and sets the corresponding bit wherever
// bounded_index(bounds, curve.point(d)) is valid and data[index] is true.
func (p *Packer) Pack(data []bool, bounds []int) (*Region, error) {
	if len(data) == 0 {
		return nil, ErrMissingData
	}
	if _, err := hilbert.ValidateBounds(bounds, len(bounds)); err != nil {
		return nil, err
	}

	out := bitset.New(p.length)
	for d := 0; d < int(p.length); d++ {
		idx := hilbert.BoundedIndex(bounds, p.curve.Point(d))
		if idx >= 0 && idx < len(data) && data[idx] {
			out.Set(uint(d))
		}
	}
	return newRegion(out), nil
}

// PackLinear is Pack(linear.Data, linear.Bounds).
func (p *Packer) PackLinear(linear LinearData) (*Region, error) {
	return p.Pack(linear.Data, linear.Bounds)
}

// Unpack allocates a product(bounds)-length bool slice and sets true at every
// bounded index reachable from a set bit of packed.
func (p *Packer) Unpack(packed *Region, bounds []int) ([]bool, error) {
	product, err := hilbert.ValidateBounds(bounds, len(bounds))
	if err != nil {
		return nil, err
	}
	out := make([]bool, product)
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		idx := hilbert.BoundedIndex(bounds, p.curve.Point(int(d)))
		if idx >= 0 {
			out[idx] = true
		}
	}
	return out, nil
}

// Query reports whether coords is set in packed; false if coords is
// out-of-range.
func (p *Packer) Query(packed *Region, coords []int) bool {
	d := p.curve.Distance(coords)
	if d < 0 {
		return false
	}
	return packed.Test(d)
}

// QueryCurve reports whether distance d is set in packed; false if d is
// out of the curve's domain.
func (p *Packer) QueryCurve(packed *Region, d int) bool {
	if d < 0 || d >= int(p.length) {
		return false
	}
	return packed.Test(d)
}

// Positions returns every set cell of packed, decoded to coordinates, in
// ascending distance order.
func (p *Packer) Positions(packed *Region) [][]int {
	var out [][]int
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		out = append(out, p.curve.Point(int(d)))
	}
	return out
}

// PositionsCurve returns the raw sorted distances set in packed.
func (p *Packer) PositionsCurve(packed *Region) []int { return packed.Distances() }

// Count returns packed's cardinality.
func (p *Packer) Count(packed *Region) int { return packed.Count() }

// --- Set algebra ---

// Union returns a ∪ b.
func (p *Packer) Union(a, b *Region) *Region { return newRegion(a.bits.Union(b.bits)) }

// UnionMany returns the union of all of rs.
func (p *Packer) UnionMany(rs ...*Region) *Region {
	out := p.Empty()
	for _, r := range rs {
		out.bits.InPlaceUnion(r.bits)
	}
	return out
}

// Intersect returns a ∩ b.
func (p *Packer) Intersect(a, b *Region) *Region { return newRegion(a.bits.Intersection(b.bits)) }

// IntersectMany returns the intersection of all of rs; Full() if rs is empty.
func (p *Packer) IntersectMany(rs ...*Region) *Region {
	if len(rs) == 0 {
		return p.Full()
	}
	out := rs[0].Copy()
	for _, r := range rs[1:] {
		out.bits.InPlaceIntersection(r.bits)
	}
	return out
}

// Xor returns a ⊕ b.
func (p *Packer) Xor(a, b *Region) *Region { return newRegion(a.bits.SymmetricDifference(b.bits)) }

// XorMany returns the pairwise-cumulative xor of all of rs.
func (p *Packer) XorMany(rs ...*Region) *Region {
	out := p.Empty()
	for _, r := range rs {
		out.bits.InPlaceSymmetricDifference(r.bits)
	}
	return out
}

// Difference returns a \ b.
func (p *Packer) Difference(a, b *Region) *Region { return newRegion(a.bits.Difference(b.bits)) }

// Negate returns the logical NOT of a within the curve's full domain.
func (p *Packer) Negate(a *Region) *Region { return newRegion(a.bits.Complement()) }

// --- Translate ---

// Translate shifts every set cell of packed by movement, clamping each
// resulting coordinate componentwise into [0, bounds[i]).
func (p *Packer) Translate(packed *Region, movement, bounds []int) *Region {
	out := bitset.New(p.length)
	buf := make([]int, len(movement))
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		c := p.curve.Point(int(d))
		for i := range buf {
			v := c[i] + movement[i]
			if v < 0 {
				v = 0
			} else if v >= bounds[i] {
				v = bounds[i] - 1
			}
			buf[i] = v
		}
		nd := p.curve.Distance(buf)
		if nd >= 0 {
			out.Set(uint(nd))
		}
	}
	return newRegion(out)
}

// --- Point and list construction ---

// PackOne returns a single-bit region for coords, or an error if coords
// falls outside the curve.
func (p *Packer) PackOne(coords []int) (*Region, error) {
	d := p.curve.Distance(coords)
	if d < 0 {
		return nil, wrapInvalid("coords %v outside curve", coords)
	}
	return p.PackOneCurve(d), nil
}

// PackOneCurve returns a single-bit region for distance d.
func (p *Packer) PackOneCurve(d int) *Region {
	b := bitset.New(p.length)
	b.Set(uint(d))
	return newRegion(b)
}

// PackSeveral builds a region from the distinct distances of points.
func (p *Packer) PackSeveral(points [][]int) (*Region, error) {
	distances := make([]int, 0, len(points))
	for _, c := range points {
		d := p.curve.Distance(c)
		if d < 0 {
			return nil, wrapInvalid("coords %v outside curve", c)
		}
		distances = append(distances, d)
	}
	return p.PackSeveralCurve(distances), nil
}

// PackSeveralCurve builds a region from the distinct distances.
func (p *Packer) PackSeveralCurve(distances []int) *Region {
	b := bitset.New(p.length)
	for _, d := range distances {
		if d >= 0 && uint(d) < p.length {
			b.Set(uint(d))
		}
	}
	return newRegion(b)
}

// InsertOne returns a copy of packed with coords set.
func (p *Packer) InsertOne(packed *Region, coords []int) (*Region, error) {
	one, err := p.PackOne(coords)
	if err != nil {
		return nil, err
	}
	return p.Union(packed, one), nil
}

// InsertOneCurve returns a copy of packed with distance d set.
func (p *Packer) InsertOneCurve(packed *Region, d int) *Region {
	return p.Union(packed, p.PackOneCurve(d))
}

// InsertSeveral returns a copy of packed with every coordinate in points set.
func (p *Packer) InsertSeveral(packed *Region, points [][]int) (*Region, error) {
	several, err := p.PackSeveral(points)
	if err != nil {
		return nil, err
	}
	return p.Union(packed, several), nil
}

// InsertSeveralCurve returns a copy of packed with every distance set.
func (p *Packer) InsertSeveralCurve(packed *Region, distances []int) *Region {
	return p.Union(packed, p.PackSeveralCurve(distances))
}

// RemoveOne returns a copy of packed with coords cleared.
func (p *Packer) RemoveOne(packed *Region, coords []int) (*Region, error) {
	one, err := p.PackOne(coords)
	if err != nil {
		return nil, err
	}
	return p.Difference(packed, one), nil
}

// RemoveOneCurve returns a copy of packed with distance d cleared.
func (p *Packer) RemoveOneCurve(packed *Region, d int) *Region {
	return p.Difference(packed, p.PackOneCurve(d))
}

// RemoveSeveral returns a copy of packed with every coordinate in points
// cleared.
func (p *Packer) RemoveSeveral(packed *Region, points [][]int) (*Region, error) {
	several, err := p.PackSeveral(points)
	if err != nil {
		return nil, err
	}
	return p.Difference(packed, several), nil
}

// RemoveSeveralCurve returns a copy of packed with every distance cleared.
func (p *Packer) RemoveSeveralCurve(packed *Region, distances []int) *Region {
	return p.Difference(packed, p.PackSeveralCurve(distances))
}

// --- Rectangle ---

// Rectangle packs the full hyper-box [0, bounds[i]) for every axis.
func (p *Packer) Rectangle(bounds []int) (*Region, error) {
	product, err := hilbert.ValidateBounds(bounds, len(bounds))
	if err != nil {
		return nil, err
	}
	data := make([]bool, product)
	for i := range data {
		data[i] = true
	}
	return p.Pack(data, bounds)
}

// RectangleFrom packs the hyper-box [start[i], bounds[i]) for every axis.
func (p *Packer) RectangleFrom(start, bounds []int) (*Region, error) {
	product, err := hilbert.ValidateBounds(bounds, len(bounds))
	if err != nil {
		return nil, err
	}
	if len(start) != len(bounds) {
		return nil, wrapInvalid("start has %d entries, want %d", len(start), len(bounds))
	}
	for i, s := range start {
		if s < 0 || s >= bounds[i] {
			return nil, wrapInvalid("start[%d] = %d outside [0,%d)", i, s, bounds[i])
		}
	}

	data := make([]bool, product)
	n := len(bounds)
	extent := make([]int, n)
	for i := range extent {
		extent[i] = bounds[i] - start[i]
	}

	p.enumerateBox(extent, func(rel []int) {
		abs := make([]int, n)
		for i := range abs {
			abs[i] = start[i] + rel[i]
		}
		idx := hilbert.BoundedIndex(bounds, abs)
		if idx >= 0 {
			data[idx] = true
		}
	})

	return p.Pack(data, bounds)
}

// enumerateBox calls fn once per point of the box [0,extent[i]) in
// row-major order.
func (p *Packer) enumerateBox(extent []int, fn func([]int)) {
	n := len(extent)
	v := make([]int, n)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == n {
			fn(v)
			return
		}
		for i := 0; i < extent[axis]; i++ {
			v[axis] = i
			walk(axis + 1)
		}
	}
	if n > 0 {
		walk(0)
	}
}
