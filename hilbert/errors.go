package hilbert

import "errors"

// ErrInvalidArgument is returned (possibly wrapped, possibly joined with
// others via a *multierror.Error) when a constructor argument violates a
// documented precondition: wrong slice length, a non-positive bound, a
// bounds product reaching 2^31, an out-of-range stretch axis, and so on.
var ErrInvalidArgument = errors.New("hilbert: invalid argument")

// ErrCapacityExceeded is returned when a curve's parameters would make its
// length overflow the 2^30 budget the region package relies on to stay
// inside the BitSet collaborator's addressable range.
var ErrCapacityExceeded = errors.New("hilbert: capacity exceeded")
