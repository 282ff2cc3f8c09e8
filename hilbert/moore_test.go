package hilbert

import (
	"fmt"
	"testing"
)

func TestMooreBijectionAndAdjacency(t *testing.T) {
	cases := []struct {
		n, side, stretch, factor int
	}{
		{2, 2, 1, 1},
		{2, 4, 0, 1},
		{2, 2, 1, 3},
		{3, 2, 2, 1},
		{3, 2, 0, 2},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("n=%d/side=%d/stretch=%d/factor=%d", c.n, c.side, c.stretch, c.factor), func(t *testing.T) {
			m, err := NewMoore(c.n, c.side, c.stretch, c.factor, nil)
			if err != nil {
				t.Fatalf("NewMoore: %v", err)
			}
			testCurve(t, m)
		})
	}
}

// TestMooreLoops checks the "looping curve" property named in spec §4.5:
// the last and first points are themselves grid-adjacent, so the curve can
// be walked cyclically.
func TestMooreLoops(t *testing.T) {
	m, err := NewMoore(2, 4, 0, 1, nil)
	if err != nil {
		t.Fatalf("NewMoore: %v", err)
	}
	first := m.Point(0)
	last := m.Point(m.Len() - 1)
	if !adjacent(first, last) {
		t.Fatalf("endpoints are not adjacent: first=%v last=%v", first, last)
	}
}

func TestMooreOffsets(t *testing.T) {
	m, err := NewMoore(2, 2, 1, 2, []int{3, 7})
	if err != nil {
		t.Fatalf("NewMoore: %v", err)
	}
	for d := 0; d < m.Len(); d++ {
		p := m.Point(d)
		if got := m.Distance(p); got != d {
			t.Fatalf("offset round trip failed at d=%d: got %d", d, got)
		}
	}
}

func TestMooreRejectsBadSide(t *testing.T) {
	if _, err := NewMoore(2, 3, 0, 1, nil); err == nil {
		t.Fatal("expected an error for a non-power-of-two side")
	}
}

func TestMooreDistanceOutOfBox(t *testing.T) {
	m, err := NewMoore(2, 4, 0, 1, nil)
	if err != nil {
		t.Fatalf("NewMoore: %v", err)
	}
	if d := m.Distance([]int{0}); d != -1 {
		t.Fatalf("wrong-length coords returned %d, want -1", d)
	}
	if d := m.Distance([]int{1000, 1000}); d != -1 {
		t.Fatalf("out-of-box coords returned %d, want -1", d)
	}
}
