// Package region represents, queries and transforms n-dimensional boolean
// regions over a space-filling curve, storing each region as a compressed
// bitmap of curve distances rather than a dense array.
package region
