package region

import "errors"

// ErrInvalidArgument reports a malformed argument: mismatched lengths,
// non-positive bounds, an out-of-range start corner, and similar.
var ErrInvalidArgument = errors.New("region: invalid argument")

// ErrCapacityExceeded reports a curve configuration whose distance domain
// would overflow the BitSet collaborator's practical index range.
var ErrCapacityExceeded = errors.New("region: capacity exceeded")

// ErrMissingData reports a pack call whose LinearData carries no payload.
var ErrMissingData = errors.New("region: missing data")
