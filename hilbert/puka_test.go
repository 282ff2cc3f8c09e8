package hilbert

import "testing"

func TestPukaHilbert40BijectionAndAdjacency(t *testing.T) {
	p, err := NewPukaHilbert40(nil)
	if err != nil {
		t.Fatalf("NewPukaHilbert40: %v", err)
	}
	if p.Len() != 40*40*40 {
		t.Fatalf("Len() = %d, want 64000", p.Len())
	}
	testCurve(t, p)
}

func TestPukaHilbert40Offsets(t *testing.T) {
	p, err := NewPukaHilbert40([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("NewPukaHilbert40: %v", err)
	}
	for _, d := range []int{0, 1, 2000, p.Len() - 1} {
		c := p.Point(d)
		if got := p.Distance(c); got != d {
			t.Fatalf("d=%d: Distance(Point(d)) = %d", d, got)
		}
	}
}

func TestBoustrophedonCoversExactlyOnce(t *testing.T) {
	path := boustrophedon([]int{3, 4, 5})
	if len(path) != 60 {
		t.Fatalf("len(path) = %d, want 60", len(path))
	}
	seen := make(map[[3]int]bool, len(path))
	for _, p := range path {
		key := [3]int{p[0], p[1], p[2]}
		if seen[key] {
			t.Fatalf("point %v visited more than once", p)
		}
		seen[key] = true
	}
}
