package genebits

import (
	"errors"
	"fmt"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/codec"
	"github.com/hupe1980/genebits/codon"
	"github.com/hupe1980/genebits/gene"
	"github.com/hupe1980/genebits/match"
	"github.com/hupe1980/genebits/mutation"
)

// Error kinds reported by the analyzer. They are the package sentinels, so
// errors.Is works with either name.
var (
	ErrInvalidNucleotide     = bitseq.ErrInvalidNucleotide
	ErrOddLength             = bitseq.ErrOddLength
	ErrNullSequence          = bitseq.ErrNullSequence
	ErrOutOfRange            = bitseq.ErrOutOfRange
	ErrInvalidLength         = bitseq.ErrInvalidLength
	ErrCorrupt               = bitseq.ErrCorrupt
	ErrInvalidCodon          = codon.ErrInvalidCodon
	ErrLengthNotCodonAligned = codon.ErrLengthNotCodonAligned
	ErrInvalidBaseValue      = codon.ErrInvalidBaseValue
	ErrTooManyGenes          = gene.ErrTooManyGenes
	ErrTooManyRegions        = mutation.ErrTooManyRegions
	ErrEmptySequence         = match.ErrEmptySequence

	ErrUnknownReportFormat      = codec.ErrUnknownFormat
	ErrUnsupportedReportVersion = codec.ErrUnsupportedVersion
)

var (
	// ErrCapacityExceeded is matched by every error caused by a full map.
	ErrCapacityExceeded = errors.New("map capacity exceeded")

	// ErrNilMap is returned when a scan is given no map.
	ErrNilMap = errors.New("map is nil")

	// ErrNilReport is returned when EncodeReport is given no report.
	ErrNilReport = errors.New("report is nil")
)

// InvalidNucleotideError reports the offending letter and its index.
type InvalidNucleotideError = bitseq.InvalidNucleotideError

// OpError records the operation and input length of a failed call.
//
// The underlying error can be accessed via errors.Unwrap.
type OpError struct {
	Op   string
	Bits int
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s (%d bits): %v", e.Op, e.Bits, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func translateError(op string, bits int, err error) error {
	if err == nil {
		return nil
	}

	// Capacity unification.
	if errors.Is(err, gene.ErrTooManyGenes) || errors.Is(err, mutation.ErrTooManyRegions) {
		err = fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	if errors.Is(err, gene.ErrNilMap) || errors.Is(err, mutation.ErrNilMap) {
		err = fmt.Errorf("%w: %w", ErrNilMap, err)
	}

	return &OpError{Op: op, Bits: bits, Err: err}
}
