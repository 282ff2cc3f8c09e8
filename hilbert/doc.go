// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hilbert provides space-filling curves — bijections between a
// linear distance and an n-dimensional grid coordinate, chosen so that
// consecutive distances map to grid-adjacent points.
//
// HilbertN implements the generic closed-form n-dimensional Hilbert
// bijection (Hilbert2D adds a specialised 2-D fast path), Moore implements
// a looping curve built from Gray-coded, reflected Hilbert sub-cubes around
// a stretch axis, and PukaHilbert40 implements a fixed 64000-point 3-D
// curve over a 40×40×40 box, walked as a nested boustrophedon (snake)
// sweep; it is not composed from Hilbert or 5×5×5 blocks. BoundedIndex and
// FromBounded convert between a multi-dimensional coordinate and a linear
// index inside an axis-aligned bounding box; that pairing is independent of
// any particular curve and is used by package region to address cells in
// its bounding boxes.
package hilbert
