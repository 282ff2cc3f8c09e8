package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3FloodBounded(t *testing.T) {
	p := newTestPacker(t, 6) // 64x64
	cross := buildCross(t, p)

	seed, err := p.PackOne([]int{26, 2})
	require.NoError(t, err)

	result := p.Flood(seed, cross, 2, Manhattan)

	want := [][]int{
		{25, 2}, {26, 2}, {27, 2}, {28, 2},
		{25, 3}, {26, 3}, {27, 3},
		{26, 4},
	}
	wantRegion, err := p.PackSeveral(want)
	require.NoError(t, err)

	assert.Equal(t, wantRegion.Distances(), result.Distances())
}

func TestFloodContainment(t *testing.T) {
	p := newTestPacker(t, 5) // 32x32
	container, err := p.Rectangle([]int{20, 20})
	require.NoError(t, err)
	start, err := p.PackOne([]int{5, 5})
	require.NoError(t, err)

	flooded := p.Flood(start, container, 4, Chebyshev)
	assert.True(t, p.Intersect(flooded, container).Count() == flooded.Count())

	zeroRound := p.Flood(start, container, 0, Manhattan)
	assert.Equal(t, p.Intersect(start, container).Distances(), zeroRound.Distances())
}

func TestRandomFloodStaysWithinContainerAndVolume(t *testing.T) {
	p := newTestPacker(t, 5) // 32x32
	container, err := p.Rectangle([]int{20, 20})
	require.NoError(t, err)
	start, err := p.PackOne([]int{10, 10})
	require.NoError(t, err)

	rng := NewExpRand(42)
	grown := p.RandomFlood(start, container, 30, rng)

	assert.LessOrEqual(t, grown.Count(), 30)
	assert.Equal(t, grown.Count(), p.Intersect(grown, container).Count())
}

func TestSplitPartition(t *testing.T) {
	p := newTestPacker(t, 5) // 32x32
	left, err := p.RectangleFrom([]int{0, 0}, []int{3, 3})
	require.NoError(t, err)
	right, err := p.RectangleFrom([]int{10, 10}, []int{13, 13})
	require.NoError(t, err)
	combined := p.Union(left, right)

	parts := p.Split(combined)
	require.Len(t, parts, 2)

	union := p.Empty()
	for i, part := range parts {
		for j, other := range parts {
			if i == j {
				continue
			}
			assert.True(t, p.Intersect(part, other).IsEmpty())
		}
		union = p.Union(union, part)
	}
	assert.Equal(t, combined.Distances(), union.Distances())
}
