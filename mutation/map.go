package mutation

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultCapacity is the capacity of a map created with a non-positive one.
const DefaultCapacity = 1024

var (
	// ErrTooManyRegions is returned when a scan finds more regions than the
	// map can hold.
	ErrTooManyRegions = errors.New("too many mutation regions")

	// ErrNilMap is returned when no map is passed to a scan.
	ErrNilMap = errors.New("mutation map is nil")
)

// Region is a GC run: bit offsets and size.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Size  int `json:"size"`
}

// Map is a fixed array of regions plus the number written by the last scan.
// Scans overwrite entries from index 0 and leave the rest alone.
//
// A Map is not safe for concurrent use.
type Map struct {
	entries []Region
	n       int
}

// NewMap returns a map with room for capacity regions.
func NewMap(capacity int) *Map {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Map{entries: make([]Region, capacity)}
}

// Len returns the number of regions written by the last scan.
func (m *Map) Len() int { return m.n }

// Cap returns the number of entries.
func (m *Map) Cap() int { return len(m.entries) }

// At returns entry i, which may be left over from an earlier scan when
// i >= Len. It panics if i >= Cap.
func (m *Map) At(i int) Region { return m.entries[i] }

// Regions returns a copy of the regions written by the last scan.
func (m *Map) Regions() []Region { return slices.Clone(m.entries[:m.n]) }

// Truncate forgets the regions of the last scan. Entries stay readable
// through At.
func (m *Map) Truncate() { m.n = 0 }

// Reset zeroes every entry.
func (m *Map) Reset() {
	clear(m.entries)
	m.n = 0
}

func (m *Map) put(r Region) error {
	if m.n >= len(m.entries) {
		return fmt.Errorf("%w: capacity %d", ErrTooManyRegions, len(m.entries))
	}
	m.entries[m.n] = r
	m.n++
	return nil
}
