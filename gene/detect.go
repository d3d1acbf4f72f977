package gene

import (
	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/codon"
)

type state uint8

const (
	searching state = iota
	inGene
)

// Detect resets m and fills it with the genes of seq.
//
// If m runs out of capacity, Detect stops and returns ErrTooManyGenes; the
// regions found up to that point stay in m.
func Detect(seq *bitseq.Sequence, m *Map) error {
	if seq == nil {
		return bitseq.ErrNullSequence
	}
	if m == nil {
		return ErrNilMap
	}
	m.Reset()

	st, start := searching, 0
	for pos := 0; pos+codon.Bits <= seq.Len(); {
		w, err := seq.Window(pos, codon.Bits)
		if err != nil {
			return err
		}
		pattern := uint8(w)

		switch {
		case codon.IsStart(pattern):
			st, start = inGene, pos
			pos += codon.Bits
		case st == inGene && codon.IsStop(pattern):
			if err := m.add(Region{Start: start, End: pos + codon.Bits - 1}); err != nil {
				return err
			}
			st = searching
			pos += codon.Bits
		default:
			pos += 2
		}
	}
	return nil
}
