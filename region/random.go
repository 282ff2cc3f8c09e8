package region

import (
	"sort"

	"golang.org/x/exp/rand"
)

// Random is the external RNG collaborator from spec §6: the minimum surface
// RegionPacker's sampling operations need.
type Random interface {
	// Intn returns a uniform int in [0,n).
	Intn(n int) int
	// Float64 returns a uniform double in [0,1).
	Float64() float64
	// RandomRange returns k distinct indices drawn uniformly from [lo,hi),
	// in ascending order. k is clamped to hi-lo.
	RandomRange(lo, hi, k int) []int
	// RandomSamples returns every index in [lo,hi) that is independently
	// included with probability p, in ascending order.
	RandomSamples(lo, hi int, p float64) []int
}

// ExpRand is the default Random implementation, wrapping
// golang.org/x/exp/rand the way the teacher's benchmark inputs already do.
type ExpRand struct {
	r *rand.Rand
}

// NewExpRand returns an ExpRand seeded deterministically from seed.
func NewExpRand(seed uint64) *ExpRand {
	return &ExpRand{r: rand.New(rand.NewSource(seed))}
}

func (e *ExpRand) Intn(n int) int   { return e.r.Intn(n) }
func (e *ExpRand) Float64() float64 { return e.r.Float64() }

// RandomRange implements reservoir sampling of k distinct indices from
// [lo,hi), returned sorted ascending.
func (e *ExpRand) RandomRange(lo, hi, k int) []int {
	n := hi - lo
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	reservoir := make([]int, k)
	for i := 0; i < k; i++ {
		reservoir[i] = lo + i
	}
	for i := k; i < n; i++ {
		j := e.r.Intn(i + 1)
		if j < k {
			reservoir[j] = lo + i
		}
	}
	sort.Ints(reservoir)
	return reservoir
}

// RandomSamples implements Bernoulli sampling: each index in [lo,hi) is kept
// independently with probability p.
func (e *ExpRand) RandomSamples(lo, hi int, p float64) []int {
	if p <= 0 || hi <= lo {
		return nil
	}
	if p >= 1 {
		out := make([]int, hi-lo)
		for i := range out {
			out[i] = lo + i
		}
		return out
	}

	var out []int
	for i := lo; i < hi; i++ {
		if e.r.Float64() < p {
			out = append(out, i)
		}
	}
	return out
}
