package region

// RandomSample keeps each "on" cell of packed independently with
// probability p, by asking rng for the set of sample indices into packed's
// cardinality and composing the result with packed.
func (p *Packer) RandomSample(packed *Region, prob float64, rng Random) *Region {
	card := packed.Count()
	if card == 0 || prob <= 0 {
		return p.Empty()
	}
	if prob >= 1 {
		return packed.Copy()
	}
	selector := rng.RandomSamples(0, card, prob)
	return newRegion(compose(packed.bits, selector))
}

// RandomPortion picks min(k, count(packed)) distinct indices uniformly and
// composes them with packed.
func (p *Packer) RandomPortion(packed *Region, k int, rng Random) *Region {
	card := packed.Count()
	if card == 0 || k <= 0 {
		return p.Empty()
	}
	if k > card {
		k = card
	}
	selector := rng.RandomRange(0, card, k)
	return newRegion(compose(packed.bits, selector))
}

// SingleRandom returns the coordinates of a uniformly random set cell of
// packed, or nil if packed is empty.
func (p *Packer) SingleRandom(packed *Region, rng Random) []int {
	card := packed.Count()
	if card == 0 {
		return nil
	}
	i := rng.Intn(card)
	return p.curve.Point(p.nthSetBit(packed, i))
}

// SingleRandomFrom is the amortising overload: it picks a uniform index into
// the precomputed, ascending distances slice and returns the corresponding
// coordinates, or nil if distances is empty.
func (p *Packer) SingleRandomFrom(distances []int, rng Random) []int {
	if len(distances) == 0 {
		return nil
	}
	i := rng.Intn(len(distances))
	return p.curve.Point(distances[i])
}

// nthSetBit returns the i-th (0-indexed) set distance of packed.
func (p *Packer) nthSetBit(packed *Region, i int) int {
	n := 0
	for d, ok := packed.bits.NextSet(0); ok; d, ok = packed.bits.NextSet(d + 1) {
		if n == i {
			return int(d)
		}
		n++
	}
	return -1
}
