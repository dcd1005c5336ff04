package sampler

import "errors"

// ErrNegativeWeight is returned when an unnormalized topic weight u[k]
// comes out negative — per spec.md §4.1, this can only happen from a
// count-underflow bug upstream and must be treated as a fatal
// invariant violation, never silently clamped.
var ErrNegativeWeight = errors.New("sampler: negative unnormalized topic weight")
