package region

import "github.com/bits-and-blooms/bitset"

// Expand grows packed by every offset in the (metric, r) structuring
// element, edge-clamping each translated coordinate into bounds.
func (p *Packer) Expand(packed *Region, r int, bounds []int, metric Metric) *Region {
	se := StructuringElement(metric, r, len(bounds))
	out := bitset.New(p.length)
	buf := make([]int, len(bounds))
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		c := p.curve.Point(int(d))
		for _, off := range se {
			clampInto(buf, c, off, bounds)
			nd := p.curve.Distance(buf)
			if nd >= 0 {
				out.Set(uint(nd))
			}
		}
	}
	return newRegion(out)
}

// Fringe is Expand minus the original region.
func (p *Packer) Fringe(packed *Region, r int, bounds []int, metric Metric) *Region {
	expanded := p.Expand(packed, r, bounds, metric)
	return p.Difference(expanded, packed)
}

// Fringes returns r successive 1-cell shells: element k is the set of cells
// within radius k+1 not already included in any earlier shell or in packed.
func (p *Packer) Fringes(packed *Region, r int, bounds []int, metric Metric) []*Region {
	shells := make([]*Region, r)
	covered := packed
	for k := 0; k < r; k++ {
		expanded := p.Expand(packed, k+1, bounds, metric)
		shell := p.Difference(expanded, covered)
		shells[k] = shell
		covered = p.Union(covered, shell)
	}
	return shells
}

// clampInto writes c[i]+off[i], clamped into [0,bounds[i]), into buf.
func clampInto(buf, c, off, bounds []int) {
	for i := range buf {
		v := c[i] + off[i]
		if v < 0 {
			v = 0
		} else if v >= bounds[i] {
			v = bounds[i] - 1
		}
		buf[i] = v
	}
}

// Filling implements the "seal the door" morphology from spec §4.9:
// for every set cell and every non-zero direction of metric's radius-1
// structuring element (the orthogonal directions for Manhattan), walk depth
// cells outward; if every intermediate cell is outside packed and the cell
// just beyond depth is in packed or outside bounds, the depth intermediate
// cells are added to the result. Cells outside bounds count as set.
func (p *Packer) Filling(packed *Region, bounds []int, depth int, metric Metric) *Region {
	if depth <= 0 {
		depth = 1
	}
	se := StructuringElement(metric, 1, len(bounds))

	out := bitset.New(p.length)
	n := len(bounds)
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		c := p.curve.Point(int(d))
		for _, dir := range se {
			if isZero(dir) {
				continue
			}

			path := make([][]int, 0, depth)
			blocked := false
			for step := 1; step <= depth; step++ {
				pt := make([]int, n)
				for i := 0; i < n; i++ {
					pt[i] = c[i] + dir[i]*step
				}
				if outOfBounds(pt, bounds) {
					blocked = true
					break
				}
				if p.Query(packed, pt) {
					blocked = true
					break
				}
				path = append(path, pt)
			}
			if blocked || len(path) != depth {
				continue
			}

			beyond := make([]int, n)
			for i := 0; i < n; i++ {
				beyond[i] = c[i] + dir[i]*(depth+1)
			}
			if !outOfBounds(beyond, bounds) && !p.Query(packed, beyond) {
				continue
			}

			for _, pt := range path {
				nd := p.curve.Distance(pt)
				if nd >= 0 {
					out.Set(uint(nd))
				}
			}
		}
	}
	return newRegion(out)
}

func isZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func outOfBounds(p, bounds []int) bool {
	for i, v := range p {
		if v < 0 || v >= bounds[i] {
			return true
		}
	}
	return false
}

// Retract erodes packed: difference(p, expand(negate(p), r, bounds, metric)).
func (p *Packer) Retract(a *Region, r int, bounds []int, metric Metric) *Region {
	return p.Difference(a, p.Expand(p.Negate(a), r, bounds, metric))
}

// Surface returns the boundary layer: intersect(p, expand(negate(p), r, bounds, metric)).
func (p *Packer) Surface(a *Region, r int, bounds []int, metric Metric) *Region {
	return p.Intersect(a, p.Expand(p.Negate(a), r, bounds, metric))
}
