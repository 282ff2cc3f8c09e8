package region

import (
	"fmt"

	"github.com/gridwalk/curveregion/hilbert"
	"github.com/hashicorp/go-multierror"
)

// LinearData wraps a row-major boolean array and its per-axis bounds. Index
// i of Data maps to coordinate p by p[a] = (i / stride(a)) mod Bounds[a],
// the same row-major convention as hilbert.BoundedIndex/FromBounded.
type LinearData struct {
	Data   []bool
	Bounds []int
}

func wrapInvalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NewLinearData validates that len(data) == product(bounds) and returns the
// corresponding LinearData.
func NewLinearData(data []bool, bounds []int) (LinearData, error) {
	product, err := hilbert.ValidateBounds(bounds, len(bounds))
	if err != nil {
		return LinearData{}, err
	}
	if len(data) != product {
		return LinearData{}, wrapInvalid("data has %d entries, want %d for bounds %v", len(data), product, bounds)
	}
	return LinearData{Data: append([]bool(nil), data...), Bounds: append([]int(nil), bounds...)}, nil
}

// Rebase copies ld onto newBounds: for every index i of ld.Data, the
// coordinate is recovered under ld.Bounds and re-linearized under
// newBounds; indices that fall outside newBounds are dropped.
func (ld LinearData) Rebase(newBounds []int) (LinearData, error) {
	product, err := hilbert.ValidateBounds(newBounds, len(newBounds))
	if err != nil {
		return LinearData{}, err
	}

	out := make([]bool, product)
	var errs *multierror.Error
	for i, v := range ld.Data {
		p, err := hilbert.FromBounded(ld.Bounds, i)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		j := hilbert.BoundedIndex(newBounds, p)
		if j < 0 {
			continue
		}
		out[j] = v
	}
	if errs != nil {
		return LinearData{}, errs.ErrorOrNil()
	}
	return LinearData{Data: out, Bounds: append([]int(nil), newBounds...)}, nil
}
