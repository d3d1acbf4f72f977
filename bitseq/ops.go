package bitseq

import (
	"math/bits"

	"github.com/hupe1980/genebits/internal/wordops"
)

// pairHighBits selects the first bit of every base in a word.
const pairHighBits = 0xAAAAAAAAAAAAAAAA

// Xor returns a XOR b over max(a.Len(), b.Len()) bits. The shorter input is
// left-padded with zeros, so the two sequences are compared on their
// trailing overlap and the leading bits of the longer one pass through.
func Xor(a, b *Sequence) (*Sequence, error) {
	if a == nil || b == nil {
		return nil, ErrNullSequence
	}
	long, short := a, b
	if b.bitLen > a.bitLen {
		long, short = b, a
	}

	out := long.Clone()
	diff := long.bitLen - short.bitLen
	if diff%WordBits == 0 {
		wordops.XorWords(out.words[diff/WordBits:], short.words)
		return out, nil
	}

	off := uint(diff % WordBits)
	for i, v := range short.words {
		w := (diff + i*WordBits) / WordBits
		out.words[w] ^= v >> off
		if w+1 < len(out.words) {
			out.words[w+1] ^= v << (WordBits - off)
		}
	}
	return out, nil
}

// PopCount returns the number of set bits among the first Len() bits.
func PopCount(s *Sequence) int {
	if s == nil {
		return 0
	}
	full := s.bitLen / WordBits
	count := wordops.PopcountWords(s.words[:full])
	if r := s.bitLen % WordBits; r != 0 {
		count += bits.OnesCount64(s.words[full] & (^uint64(0) << (WordBits - r)))
	}
	return count
}

// Mask extracts size bits of word starting at bit start, counted from the
// most significant bit, and returns them right-aligned. A size of 0 yields
// 0; a range running past the end of the word is cut at the word boundary.
func Mask(word uint64, start, size uint) uint64 {
	if size == 0 || start >= WordBits {
		return 0
	}
	size = min(size, WordBits-start)
	return (word << start) >> (WordBits - size)
}

// GCCount returns the number of C and G bases. Both codes have differing
// bits (10, 01), so a base is GC when its two bits XOR to one.
func GCCount(s *Sequence) int {
	if s == nil {
		return 0
	}
	n := 2 * s.Bases()
	count := 0
	for i, w := range s.words {
		if rem := n - i*WordBits; rem < WordBits {
			if rem <= 0 {
				break
			}
			w &= ^uint64(0) << (WordBits - rem)
		}
		count += bits.OnesCount64((w ^ (w << 1)) & pairHighBits)
	}
	return count
}
