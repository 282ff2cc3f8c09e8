package hilbert

import "testing"

// testCurve exhaustively checks the bijection and Gray-adjacency invariants
// from spec §8 for any Curve: Distance(Point(d)) == d for every d, and
// consecutive distances map to points that differ by exactly one step along
// exactly one axis.
func testCurve(t *testing.T, c Curve) {
	t.Helper()

	n := c.Len()
	pts := make([][]int, n)
	for d := 0; d < n; d++ {
		p := c.Point(d)
		pts[d] = append([]int(nil), p...)
		if got := c.Distance(p); got != d {
			t.Errorf("Distance(Point(%d)) = %d, want %d", d, got, d)
		}
	}

	for d := 0; d < n-1; d++ {
		if !adjacent(pts[d], pts[d+1]) {
			t.Errorf("points at distance %d and %d are not grid-adjacent: %v -> %v", d, d+1, pts[d], pts[d+1])
		}
	}
}

// adjacent reports whether v and u differ by exactly one step along exactly
// one axis.
func adjacent(v, u []int) bool {
	diffs := 0
	for i := range v {
		x := v[i] - u[i]
		if x == 0 {
			continue
		}
		if x < -1 || x > 1 {
			return false
		}
		diffs++
	}
	return diffs == 1
}
