package bitseq

import (
	"fmt"
	"slices"
)

// WordBits is the width of a storage word.
const WordBits = 64

// Sequence is a packed bit array with a logical bit length.
type Sequence struct {
	words  []uint64
	bitLen int
}

// Locate maps a logical bit position to its word index and the shift of the
// bit inside that word (63 for the first bit of a word, 0 for the last).
func Locate(pos int) (word int, shift uint) {
	return pos / WordBits, uint(WordBits - 1 - pos%WordBits)
}

// wordsFor returns the number of words needed for bitLen bits.
func wordsFor(bitLen int) int {
	return (bitLen + WordBits - 1) / WordBits
}

// New returns a zeroed sequence of bitLen bits. Negative lengths yield an
// empty sequence.
func New(bitLen int) *Sequence {
	bitLen = max(bitLen, 0)
	return &Sequence{
		words:  make([]uint64, wordsFor(bitLen)),
		bitLen: bitLen,
	}
}

// FromWords builds a sequence from MSB-first words. The slice is copied and
// bits past bitLen are cleared.
func FromWords(words []uint64, bitLen int) (*Sequence, error) {
	if bitLen < 0 || len(words) != wordsFor(bitLen) {
		return nil, fmt.Errorf("%w: %d words for %d bits", ErrInvalidLength, len(words), bitLen)
	}
	s := &Sequence{words: slices.Clone(words), bitLen: bitLen}
	if s.words == nil {
		s.words = []uint64{}
	}
	s.clearTail()
	return s, nil
}

// Pack encodes letters at two bits per base. It fails without partial
// output when a letter is outside the alphabet.
func Pack(letters string) (*Sequence, error) {
	s := New(2 * len(letters))
	for i := 0; i < len(letters); i++ {
		code, ok := EncodeBase(letters[i])
		if !ok {
			return nil, &InvalidNucleotideError{Letter: letters[i], Index: i}
		}
		// A base never straddles a word: 2*i is even and WordBits is even.
		w, shift := Locate(2 * i)
		s.words[w] |= uint64(code) << (shift - 1)
	}
	return s, nil
}

// Len returns the logical length in bits.
func (s *Sequence) Len() int { return s.bitLen }

// Bases returns the number of whole bases.
func (s *Sequence) Bases() int { return s.bitLen / 2 }

// Words returns a copy of the storage words.
func (s *Sequence) Words() []uint64 { return slices.Clone(s.words) }

func (s *Sequence) checkRange(pos, n int) error {
	if pos < 0 || n < 0 || pos > s.bitLen-n {
		return fmt.Errorf("%w: [%d,%d) of %d bits", ErrOutOfRange, pos, pos+n, s.bitLen)
	}
	return nil
}

// Bit returns the bit at pos.
func (s *Sequence) Bit(pos int) (uint8, error) {
	if err := s.checkRange(pos, 1); err != nil {
		return 0, err
	}
	w, shift := Locate(pos)
	return uint8(s.words[w]>>shift) & 1, nil
}

// SetBit sets (v != 0) or clears (v == 0) the bit at pos in place.
func (s *Sequence) SetBit(pos int, v uint8) error {
	if err := s.checkRange(pos, 1); err != nil {
		return err
	}
	w, shift := Locate(pos)
	if v != 0 {
		s.words[w] |= 1 << shift
	} else {
		s.words[w] &^= 1 << shift
	}
	return nil
}

// leftAligned returns the 64 bits starting at pos, first bit in the MSB.
// Bits past the last word read as zero. pos must be < bitLen.
func (s *Sequence) leftAligned(pos int) uint64 {
	w, off := pos/WordBits, uint(pos%WordBits)
	x := s.words[w] << off
	if off > 0 && w+1 < len(s.words) {
		x |= s.words[w+1] >> (WordBits - off)
	}
	return x
}

// Window returns n <= 64 bits starting at pos, right-aligned.
func (s *Sequence) Window(pos, n int) (uint64, error) {
	if n > WordBits {
		return 0, fmt.Errorf("%w: window of %d bits", ErrInvalidLength, n)
	}
	if err := s.checkRange(pos, n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return s.leftAligned(pos) >> (WordBits - n), nil
}

// Base returns the 2-bit code of base i.
func (s *Sequence) Base(i int) (byte, error) {
	v, err := s.Window(2*i, 2)
	return byte(v), err
}

// Unpack decodes the first n bits back to DNA letters.
func (s *Sequence) Unpack(n int) (string, error) {
	if n%2 != 0 {
		return "", fmt.Errorf("%w: %d", ErrOddLength, n)
	}
	if err := s.checkRange(0, n); err != nil {
		return "", err
	}
	out := make([]byte, n/2)
	for i := range out {
		w, shift := Locate(2 * i)
		out[i] = DNALetter(byte(s.words[w] >> (shift - 1)))
	}
	return string(out), nil
}

// String returns the DNA letters of all whole bases.
func (s *Sequence) String() string {
	str, _ := s.Unpack(s.Bases() * 2)
	return str
}

// Slice returns an independent copy of n bits starting at offset.
func (s *Sequence) Slice(offset, n int) (*Sequence, error) {
	if err := s.checkRange(offset, n); err != nil {
		return nil, err
	}
	out := New(n)
	for i := range out.words {
		out.words[i] = s.leftAligned(offset + i*WordBits)
	}
	out.clearTail()
	return out, nil
}

// Prefix returns an independent copy of the first n bits.
func (s *Sequence) Prefix(n int) (*Sequence, error) {
	return s.Slice(0, n)
}

// Clone returns a deep copy.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{words: slices.Clone(s.words), bitLen: s.bitLen}
}

// Equal reports whether both sequences hold the same bits.
func (s *Sequence) Equal(o *Sequence) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.bitLen == o.bitLen && slices.Equal(s.words, o.words)
}

// clearTail zeroes the unused bits of the last word.
func (s *Sequence) clearTail() {
	if r := s.bitLen % WordBits; r != 0 {
		s.words[len(s.words)-1] &= ^uint64(0) << (WordBits - r)
	}
}
