package region

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gridwalk/curveregion/hilbert"
)

// linearDataWire is LinearData's stable on-disk form from spec §6:
// bounds (n is len(bounds), not stored separately) and the packed bits of
// length product(bounds), LSB-first per byte.
type linearDataWire struct {
	Bounds []int  `msgpack:"bounds"`
	Bits   []byte `msgpack:"bits"`
}

// MarshalLinearData encodes ld in the stable on-disk form named in spec §6.
func MarshalLinearData(ld LinearData) ([]byte, error) {
	bits := make([]byte, (len(ld.Data)+7)/8)
	for i, v := range ld.Data {
		if v {
			bits[i/8] |= 1 << uint(i%8)
		}
	}
	return msgpack.Marshal(linearDataWire{Bounds: ld.Bounds, Bits: bits})
}

// UnmarshalLinearData decodes a payload produced by MarshalLinearData.
func UnmarshalLinearData(payload []byte) (LinearData, error) {
	var w linearDataWire
	if err := msgpack.Unmarshal(payload, &w); err != nil {
		return LinearData{}, err
	}
	product, err := hilbert.ValidateBounds(w.Bounds, len(w.Bounds))
	if err != nil {
		return LinearData{}, err
	}
	data := make([]bool, product)
	for i := range data {
		data[i] = w.Bits[i/8]&(1<<uint(i%8)) != 0
	}
	return LinearData{Data: data, Bounds: w.Bounds}, nil
}

// regionWire is Region's minimal portable form from spec §6: the sorted
// set distances prefixed by the curve's distance domain size.
type regionWire struct {
	MaxDistance int   `msgpack:"max_distance"`
	Distances   []int `msgpack:"distances"`
}

// MarshalRegion encodes r, whose curve has the given distance domain size.
func MarshalRegion(r *Region, maxDistance int) ([]byte, error) {
	return msgpack.Marshal(regionWire{MaxDistance: maxDistance, Distances: r.Distances()})
}

// UnmarshalRegion decodes a payload produced by MarshalRegion, returning the
// region and the curve distance domain size it was packed against.
func UnmarshalRegion(payload []byte) (*Region, int, error) {
	var w regionWire
	if err := msgpack.Unmarshal(payload, &w); err != nil {
		return nil, 0, err
	}
	b := bitset.New(uint(w.MaxDistance))
	for _, d := range w.Distances {
		b.Set(uint(d))
	}
	return newRegion(b), w.MaxDistance, nil
}
