// Package match scores the similarity of two packed sequences as a
// normalized Hamming similarity over their right-aligned bits.
package match

import (
	"errors"

	"github.com/hupe1980/genebits/bitseq"
)

// Sentinel is returned by Score when no score can be computed.
const Sentinel = -1.0

// ErrEmptySequence is returned when both sequences are empty.
var ErrEmptySequence = errors.New("both sequences are empty")

// Compute returns 100 - 100*d/n, where n is the longer length and d is the
// number of differing bits after the shorter input is left-padded with
// zeros.
func Compute(a, b *bitseq.Sequence) (float64, error) {
	if a == nil || b == nil {
		return Sentinel, bitseq.ErrNullSequence
	}
	n := max(a.Len(), b.Len())
	if n == 0 {
		return Sentinel, ErrEmptySequence
	}
	x, err := bitseq.Xor(a, b)
	if err != nil {
		return Sentinel, err
	}
	return 100 - 100*float64(bitseq.PopCount(x))/float64(n), nil
}

// Score is Compute with errors folded into Sentinel.
func Score(a, b *bitseq.Sequence) float64 {
	s, err := Compute(a, b)
	if err != nil {
		return Sentinel
	}
	return s
}
