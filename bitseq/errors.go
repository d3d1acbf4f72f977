package bitseq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNucleotide is returned when a letter is outside the alphabet.
	ErrInvalidNucleotide = errors.New("invalid nucleotide")

	// ErrOddLength is returned when a bit length does not hold whole bases.
	ErrOddLength = errors.New("bit length is not a multiple of 2")

	// ErrNullSequence is returned when a required sequence is nil.
	ErrNullSequence = errors.New("sequence is nil")

	// ErrOutOfRange is returned for positions or ranges outside the sequence.
	ErrOutOfRange = errors.New("bit position out of range")

	// ErrInvalidLength is returned for negative lengths or word counts that
	// do not match a bit length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrCorrupt is returned by Decode for malformed input.
	ErrCorrupt = errors.New("corrupt sequence encoding")
)

// InvalidNucleotideError reports the offending letter and its index.
//
// It unwraps to ErrInvalidNucleotide.
type InvalidNucleotideError struct {
	Letter byte
	Index  int
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q at index %d", e.Letter, e.Index)
}

func (e *InvalidNucleotideError) Unwrap() error { return ErrInvalidNucleotide }
