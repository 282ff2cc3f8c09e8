package region

import "testing"

func TestStructuringElementChebyshevContainsZero(t *testing.T) {
	se := StructuringElement(Chebyshev, 1, 2)
	found := false
	for _, off := range se {
		if off[0] == 0 && off[1] == 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the zero vector in a Chebyshev structuring element")
	}
	if len(se) != 9 {
		t.Fatalf("len(se) = %d, want 9 for a radius-1 Chebyshev ball in 2D", len(se))
	}
}

func TestStructuringElementManhattanCount(t *testing.T) {
	se := StructuringElement(Manhattan, 1, 2)
	if len(se) != 5 {
		t.Fatalf("len(se) = %d, want 5 for a radius-1 Manhattan ball in 2D", len(se))
	}
}

func TestStructuringElementIsCached(t *testing.T) {
	a := StructuringElement(Chebyshev, 2, 3)
	b := StructuringElement(Chebyshev, 2, 3)
	if len(a) != len(b) {
		t.Fatal("expected the same structuring element on repeated calls")
	}
}
