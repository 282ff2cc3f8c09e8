package hilbert

import (
	"fmt"
	"testing"
)

func ExampleHilbert2D_Distance() {
	h, _ := NewHilbert2D(3, nil)
	for y := 0; y < h.side; y++ {
		for x := 0; x < h.side; x++ {
			if x > 0 {
				fmt.Print("  ")
			}
			fmt.Printf("%02X", h.Distance([]int{x, y}))
		}
		fmt.Println()
	}
	// Output:
	// 00  01  0E  0F  10  13  14  15
	// 03  02  0D  0C  11  12  17  16
	// 04  07  08  0B  1E  1D  18  19
	// 05  06  09  0A  1F  1C  1B  1A
	// 3A  39  36  35  20  23  24  25
	// 3B  38  37  34  21  22  27  26
	// 3C  3D  32  33  2E  2D  28  29
	// 3F  3E  31  30  2F  2C  2B  2A
}

func TestHilbert2D(t *testing.T) {
	for order := 1; order <= 6; order++ {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			h, err := NewHilbert2D(order, nil)
			if err != nil {
				t.Fatalf("NewHilbert2D: %v", err)
			}
			testCurve(t, h)
		})
	}
}

// TestHilbert2DAgreesWithHilbertN checks that the specialised 2-D fast path
// and the generic n-dimensional engine compute the same bijection.
func TestHilbert2DAgreesWithHilbertN(t *testing.T) {
	for order := 1; order <= 6; order++ {
		h2, err := NewHilbert2D(order, nil)
		if err != nil {
			t.Fatalf("NewHilbert2D: %v", err)
		}
		hn, err := NewHilbertN(order, 2, nil)
		if err != nil {
			t.Fatalf("NewHilbertN: %v", err)
		}
		for d := 0; d < h2.Len(); d++ {
			p2 := h2.Point(d)
			pn := hn.Point(d)
			if p2[0] != pn[0] || p2[1] != pn[1] {
				t.Fatalf("order=%d d=%d: Hilbert2D=%v HilbertN=%v", order, d, p2, pn)
			}
		}
	}
}

func TestHilbert2DAboveStoredThreshold(t *testing.T) {
	h, err := NewHilbert2D(11, nil) // side 2048, length > 1<<20, no tables
	if err != nil {
		t.Fatalf("NewHilbert2D: %v", err)
	}
	if h.stored {
		t.Fatal("expected the unstored fallback above storedThreshold")
	}
	for _, d := range []int{0, 1, 12345, h.Len() - 1} {
		p := h.Point(d)
		if got := h.Distance(p); got != d {
			t.Fatalf("d=%d: Distance(Point(d)) = %d", d, got)
		}
	}
}

func TestHilbert2DOffsets(t *testing.T) {
	h, err := NewHilbert2D(4, []int{10, -5})
	if err != nil {
		t.Fatalf("NewHilbert2D: %v", err)
	}
	for d := 0; d < h.Len(); d++ {
		p := h.Point(d)
		if got := h.Distance(p); got != d {
			t.Fatalf("offset round trip failed at d=%d", d)
		}
	}
}
