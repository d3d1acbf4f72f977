package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/genebits/bitseq"
)

const (
	bases    = "ACGT"
	alphabet = "ACGTUNRMWDVYSBKH"
	gc       = "GC"
	at       = "AT"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

func (r *RNG) pick(n int, from string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = from[r.rand.Intn(len(from))]
	}
	return out
}

// Nucleotides returns n random letters from A, C, G, T.
func (r *RNG) Nucleotides(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.pick(n, bases))
}

// Letters returns n random letters from the full packable alphabet,
// including U and the ambiguity codes.
func (r *RNG) Letters(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.pick(n, alphabet))
}

// GCRun returns n random A/T letters with a run of runLen random G/C letters
// starting at base index start. The run is clipped to n.
func (r *RNG) GCRun(n, start, runLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pick(n, at)
	for i := start; i < start+runLen && i < n; i++ {
		out[i] = gc[r.rand.Intn(len(gc))]
	}
	return string(out)
}

// Bits builds a sequence from individual 0/1 values. It panics on values
// other than 0 and 1.
func Bits(values ...int) *bitseq.Sequence {
	s := bitseq.New(len(values))
	for i, v := range values {
		if v != 0 && v != 1 {
			panic("testutil: bit value must be 0 or 1")
		}
		if err := s.SetBit(i, uint8(v)); err != nil {
			panic(err)
		}
	}
	return s
}

// MustPack packs letters and panics on error.
func MustPack(letters string) *bitseq.Sequence {
	s, err := bitseq.Pack(letters)
	if err != nil {
		panic(err)
	}
	return s
}
