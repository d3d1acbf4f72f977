package gene

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/genebits/codon"
	"github.com/hupe1980/genebits/internal/conv"
)

// DefaultCapacity is the capacity of a map created with a non-positive one.
const DefaultCapacity = 1024

// Region is a detected gene as inclusive bit offsets, from the first bit of
// its start codon to the last bit of its stop codon.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the length of the region in bits.
func (r Region) Len() int { return r.End - r.Start + 1 }

// StopCodon returns the offset of the first bit of the closing stop codon.
func (r Region) StopCodon() int { return r.End - codon.Bits + 1 }

// Map holds the regions of one scan in detection order.
// A Map is not safe for concurrent use.
type Map struct {
	regions  []Region
	capacity int
}

// NewMap returns an empty map holding at most capacity regions.
func NewMap(capacity int) *Map {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Map{capacity: capacity}
}

// Reset drops all regions.
func (m *Map) Reset() { m.regions = m.regions[:0] }

// Len returns the number of regions.
func (m *Map) Len() int { return len(m.regions) }

// Cap returns the maximum number of regions.
func (m *Map) Cap() int { return m.capacity }

// At returns region i. It panics if i is out of range.
func (m *Map) At(i int) Region { return m.regions[i] }

// Regions returns a copy of the regions.
func (m *Map) Regions() []Region { return slices.Clone(m.regions) }

func (m *Map) add(r Region) error {
	if len(m.regions) >= m.capacity {
		return fmt.Errorf("%w: capacity %d", ErrTooManyGenes, m.capacity)
	}
	m.regions = append(m.regions, r)
	return nil
}

// Covers reports whether a bit offset lies inside any region.
func (m *Map) Covers(bitOffset int) bool {
	// Regions are emitted left to right and never overlap.
	i, found := slices.BinarySearchFunc(m.regions, bitOffset, func(r Region, pos int) int {
		return r.Start - pos
	})
	if found {
		return true
	}
	return i > 0 && bitOffset <= m.regions[i-1].End
}

// Coverage returns the base indices covered by any region.
func (m *Map) Coverage() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for _, r := range m.regions {
		lo, err := conv.IntToUint32(r.Start / 2)
		if err != nil {
			return nil, err
		}
		hi, err := conv.IntToUint32(r.End/2 + 1)
		if err != nil {
			return nil, err
		}
		rb.AddRange(uint64(lo), uint64(hi))
	}
	return rb, nil
}
