package hilbert

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// maxIndexDomain is the 2^31 ceiling spec §1 and §3 place on the total
// index range of a region: the BitSet collaborator's documented domain.
const maxIndexDomain = 1 << 31

func wrapInvalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ValidateBounds checks that bounds has n positive entries whose product is
// strictly below 2^31, and returns that product. Every violated entry is
// reported, not just the first.
func ValidateBounds(bounds []int, n int) (int, error) {
	if len(bounds) != n {
		return 0, wrapInvalid("bounds has %d entries, want %d", len(bounds), n)
	}

	var errs *multierror.Error
	product := 1
	for i, b := range bounds {
		if b <= 0 {
			errs = multierror.Append(errs, wrapInvalid("bounds[%d] = %d is not positive", i, b))
			continue
		}
		product *= b
		if product >= maxIndexDomain {
			errs = multierror.Append(errs, wrapInvalid("bounds product reaches or exceeds 2^31 at index %d", i))
		}
	}
	if errs != nil {
		return 0, errs.ErrorOrNil()
	}
	return product, nil
}

// BoundedIndex linearizes p into [0, prod(bounds)) in row-major order, with
// dimension 0 the most significant. It returns -1 if p has the wrong length
// or any component falls outside its bound.
func BoundedIndex(bounds, p []int) int {
	if len(p) != len(bounds) {
		return -1
	}
	u := 0
	for a := range bounds {
		if p[a] < 0 || p[a] >= bounds[a] {
			return -1
		}
		u = u*bounds[a] + p[a]
	}
	return u
}

// FromBounded is the inverse of BoundedIndex: it expands the linear index i
// back into a coordinate within bounds. It fails with ErrInvalidArgument if
// i is negative.
func FromBounded(bounds []int, i int) ([]int, error) {
	if i < 0 {
		return nil, wrapInvalid("index %d is negative", i)
	}
	n := len(bounds)
	p := make([]int, n)
	stride := 1
	for a := n - 1; a >= 0; a-- {
		p[a] = (i / stride) % bounds[a]
		stride *= bounds[a]
	}
	return p, nil
}
