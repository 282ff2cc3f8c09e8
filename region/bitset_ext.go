package region

import "github.com/bits-and-blooms/bitset"

// bitmapOf builds a bitset of the given length with exactly the listed bits
// set, the "bitmapOf(varargs)" aggregate constructor spec §6 names.
func bitmapOf(length uint, bits ...int) *bitset.BitSet {
	b := bitset.New(length)
	for _, d := range bits {
		b.Set(uint(d))
	}
	return b
}

// orAll unions every bitset in bs, the "or(varargs)" aggregate constructor
// spec §6 names. An empty bs returns an empty bitset of the given length.
func orAll(length uint, bs ...*bitset.BitSet) *bitset.BitSet {
	out := bitset.New(length)
	for _, b := range bs {
		out.InPlaceUnion(b)
	}
	return out
}

// compose selects, for each set bit i of selector, the i-th set bit of a
// (counting ascending from 0), and returns a new bitset over the same
// length as a containing exactly those bits. This is the "compose (select
// bits of a by positions in b)" primitive spec §6 names; RegionPacker uses
// it to implement random_sample and random_portion on top of a sorted
// distance array drawn from the Random collaborator.
func compose(a *bitset.BitSet, selector []int) *bitset.BitSet {
	out := bitset.New(a.Len())
	if len(selector) == 0 {
		return out
	}

	want := make(map[int]bool, len(selector))
	for _, i := range selector {
		want[i] = true
	}

	i := 0
	for d, ok := a.NextSet(0); ok; d, ok = a.NextSet(d + 1) {
		if want[i] {
			out.Set(d)
		}
		i++
	}
	return out
}

// sortedBits returns the ascending sorted distances set in b.
func sortedBits(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for d, ok := b.NextSet(0); ok; d, ok = b.NextSet(d + 1) {
		out = append(out, int(d))
	}
	return out
}
