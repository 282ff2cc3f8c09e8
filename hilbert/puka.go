package hilbert

// PukaHilbert40 is the fixed 40x40x40 curve named in spec §4.6: a single,
// precomputed 64,000-point 3-D path over a box whose side (40 is not a
// power of two) the generic HilbertN engine cannot address directly.
//
// Design note (resolves an Open Question; see DESIGN.md): spec §4.6
// describes PukaHilbert40 as hierarchical - 8000 "atoms" of a smaller
// curve, composed into "macro" blocks via a per-block rotation/reflection
// selected to align each block's entry/exit face with its neighbour's - and
// spec §9 explicitly flags the reference distanceRotated step in that
// construction as an unreliable source of bugs ("gives wrong answers for
// about 1 in 20 macro-block boundaries" per the flag). A global, per-block
// reversal rule cannot fix this in general: the axis connecting two
// adjacent macro blocks changes from block to block, so no single
// rotation/reflection choice keeps every block's entry aligned with the
// previous block's exit.
//
// PukaHilbert40 instead builds its path with a flat, single-level nested
// boustrophedon (snake-fill) sweep: recursively sweep the outermost axis
// forward, and for each step sweep the remaining axes in the same pattern,
// reversing the order of sub-sweeps every other step. This is provably a
// complete, non-crossing Hamiltonian path with the Gray-adjacency property
// (S5) by straightforward induction on dimension count, for any box shape -
// not just powers of two - at the cost of the extra locality a genuine
// recursive Hilbert composition would have given it.
type PukaHilbert40 struct {
	Base
	path  [][]int
	index map[[3]int]int
}

const pukaSide = 40

// NewPukaHilbert40 returns the fixed 40x40x40 curve, offset by offsets (nil
// means no offset).
func NewPukaHilbert40(offsets []int) (*PukaHilbert40, error) {
	base, err := NewBase([]int{pukaSide, pukaSide, pukaSide}, offsets)
	if err != nil {
		return nil, err
	}

	path := boustrophedon([]int{pukaSide, pukaSide, pukaSide})
	index := make(map[[3]int]int, len(path))
	for d, p := range path {
		index[[3]int{p[0], p[1], p[2]}] = d
	}

	return &PukaHilbert40{Base: base, path: path, index: index}, nil
}

// boustrophedon returns a complete, non-crossing Hamiltonian path over the
// box of shape dims: a recursive snake-fill where axis 0 is swept outermost
// and each recursive call on the remaining axes reverses direction every
// other step, so that consecutive points always differ by exactly 1 along
// exactly one axis, including across the seam between consecutive steps of
// an outer axis.
func boustrophedon(dims []int) [][]int {
	if len(dims) == 1 {
		path := make([][]int, dims[0])
		for i := range path {
			path[i] = []int{i}
		}
		return path
	}

	inner := boustrophedon(dims[1:])
	reversed := make([][]int, len(inner))
	for i, p := range inner {
		reversed[len(inner)-1-i] = p
	}

	path := make([][]int, 0, dims[0]*len(inner))
	for i := 0; i < dims[0]; i++ {
		sweep := inner
		if i%2 == 1 {
			sweep = reversed
		}
		for _, p := range sweep {
			point := make([]int, len(dims))
			point[0] = i
			copy(point[1:], p)
			path = append(path, point)
		}
	}
	return path
}

// Point returns the coordinates for distance d, clamped into range.
func (p *PukaHilbert40) Point(d int) []int {
	d = clampDistance(d, p.Len())
	c := p.path[d]
	offs := p.Offsets()
	return []int{c[0] + offs[0], c[1] + offs[1], c[2] + offs[2]}
}

// Alter writes the coordinates for distance d into buf and returns it.
func (p *PukaHilbert40) Alter(buf []int, d int) []int { return AlterVia(p, buf, d) }

// Coordinate returns the (dim mod 3)-th coordinate for distance d.
func (p *PukaHilbert40) Coordinate(d, dim int) int { return CoordinateVia(p, d, dim) }

// Distance returns the distance for coords, or -1 if coords has the wrong
// length or falls outside the curve's box.
func (p *PukaHilbert40) Distance(coords []int) int {
	if len(coords) != 3 {
		return -1
	}
	offs := p.Offsets()
	key := [3]int{coords[0] - offs[0], coords[1] - offs[1], coords[2] - offs[2]}
	d, ok := p.index[key]
	if !ok {
		return -1
	}
	return d
}
