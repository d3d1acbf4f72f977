package codon

import "errors"

var (
	// ErrInvalidCodon is returned for patterns outside the 64-entry table or
	// malformed codon strings.
	ErrInvalidCodon = errors.New("invalid codon")

	// ErrLengthNotCodonAligned is returned when a bit length is not a
	// multiple of the codon width.
	ErrLengthNotCodonAligned = errors.New("bit length is not a multiple of 6")

	// ErrInvalidBaseValue is returned when a decoded base is not a 2-bit code.
	ErrInvalidBaseValue = errors.New("invalid base value")
)
