package region

import "github.com/bits-and-blooms/bitset"

// Flood runs a one-cell stepwise BFS from start, confined to container, for
// up to r rounds. Each round steps to the orthogonal neighbors for
// Manhattan, and to the full unit cube (Chebyshev radius 1, the
// 8-neighborhood in 2-D) for every other metric.
func (p *Packer) Flood(start, container *Region, r int, metric Metric) *Region {
	bounds := p.boundsFromCurve()
	unit := Chebyshev
	if metric == Manhattan {
		unit = Manhattan
	}
	se := StructuringElement(unit, 1, len(bounds))

	result := p.Intersect(start, container)
	frontier := result
	for round := 0; round < r && !frontier.IsEmpty(); round++ {
		expanded := bitset.New(p.length)
		buf := make([]int, len(bounds))
		for d, ok := frontier.bits.NextSet(0); ok; d, ok = frontier.bits.NextSet(d + 1) {
			c := p.curve.Point(int(d))
			for _, off := range se {
				clampInto(buf, c, off, bounds)
				nd := p.curve.Distance(buf)
				if nd >= 0 {
					expanded.Set(uint(nd))
				}
			}
		}
		next := p.Intersect(newRegion(expanded), container)
		next = p.Difference(next, result)
		if next.IsEmpty() {
			break
		}
		result = p.Union(result, next)
		frontier = next
	}
	return result
}

// RandomFlood grows start within container one cell at a time, picking a
// uniformly random edge cell each step, until the result reaches volume
// cells or the edge runs dry. It hard-caps at 20*volume iterations.
func (p *Packer) RandomFlood(start, container *Region, volume int, rng Random) *Region {
	bounds := p.boundsFromCurve()
	se := StructuringElement(Manhattan, 1, len(bounds))

	result := start.Copy()
	edge := p.computeEdge(result, container, se, bounds)

	maxIter := 20 * volume
	for iter := 0; result.Count() < volume && !edge.IsEmpty() && iter < maxIter; iter++ {
		candidates := edge.Distances()
		pick := candidates[rng.Intn(len(candidates))]

		result = p.InsertOneCurve(result, pick)
		edge = p.RemoveOneCurve(edge, pick)

		c := p.curve.Point(pick)
		buf := make([]int, len(bounds))
		for _, off := range se {
			clampInto(buf, c, off, bounds)
			nd := p.curve.Distance(buf)
			if nd < 0 || nd == pick {
				continue
			}
			if p.QueryCurve(container, nd) && !p.QueryCurve(result, nd) {
				edge = p.InsertOneCurve(edge, nd)
			}
		}
	}
	return result
}

// computeEdge returns the cells of container orthogonally adjacent to
// result and not yet in it.
func (p *Packer) computeEdge(result, container *Region, se [][]int, bounds []int) *Region {
	edge := bitset.New(p.length)
	buf := make([]int, len(bounds))
	for d, ok := result.bits.NextSet(0); ok; d, ok = result.bits.NextSet(d + 1) {
		c := p.curve.Point(int(d))
		for _, off := range se {
			clampInto(buf, c, off, bounds)
			nd := p.curve.Distance(buf)
			if nd >= 0 {
				edge.Set(uint(nd))
			}
		}
	}
	return p.Difference(p.Intersect(newRegion(edge), container), result)
}

// Split decomposes a into its Manhattan-unit-step connected components,
// ordered by ascending minimal curve distance.
func (p *Packer) Split(a *Region) []*Region {
	var components []*Region
	remaining := a.Copy()
	for !remaining.IsEmpty() {
		d0, _ := remaining.bits.NextSet(0)
		seed := p.PackOneCurve(int(d0))
		component := p.Flood(seed, remaining, p.Len(), Manhattan)
		components = append(components, component)
		remaining = p.Difference(remaining, component)
	}
	return components
}

// boundsFromCurve recovers the curve's per-axis extents (ignoring offsets),
// the box that Flood/RandomFlood clamp translated coordinates into.
func (p *Packer) boundsFromCurve() []int { return p.curve.Dims() }
