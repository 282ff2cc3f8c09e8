package hilbert

import "encoding/binary"

// packedInts is a fixed-width array backed by the narrowest of 1, 2 or 4
// bytes per element that can hold every value up to maxVal. It backs the
// Hilbert2D precomputed tables (spec §4.4's "smallest of 1/2/4 bytes").
type packedInts struct {
	width int // 1, 2 or 4
	data  []byte
}

func newPackedInts(n, maxVal int) *packedInts {
	width := 4
	switch {
	case maxVal < 1<<8:
		width = 1
	case maxVal < 1<<16:
		width = 2
	}
	return &packedInts{width: width, data: make([]byte, n*width)}
}

func (p *packedInts) get(i int) int {
	switch p.width {
	case 1:
		return int(p.data[i])
	case 2:
		return int(binary.LittleEndian.Uint16(p.data[i*2:]))
	default:
		return int(binary.LittleEndian.Uint32(p.data[i*4:]))
	}
}

func (p *packedInts) set(i, v int) {
	switch p.width {
	case 1:
		p.data[i] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(p.data[i*2:], uint16(v))
	default:
		binary.LittleEndian.PutUint32(p.data[i*4:], uint32(v))
	}
}
