package mutation

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/genebits/bitseq"
)

// Scan writes the GC runs of seq into m using the historical arithmetic
// (End = offset-1, Size = run-1; a run reaching the end has End = Len-1).
func Scan(seq *bitseq.Sequence, m *Map) error {
	return scan(seq, m, false)
}

// ScanCorrected is Scan with Size equal to the run length in bits and End
// the last bit of the run.
func ScanCorrected(seq *bitseq.Sequence, m *Map) error {
	return scan(seq, m, true)
}

// GCMask returns a bitset with bit i set when base i of seq is C or G.
func GCMask(seq *bitseq.Sequence) (*bitset.BitSet, error) {
	if seq == nil {
		return nil, bitseq.ErrNullSequence
	}
	n := seq.Bases()
	mask := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		code, err := seq.Base(i)
		if err != nil {
			return nil, err
		}
		if bitseq.IsGC(code) {
			mask.Set(uint(i))
		}
	}
	return mask, nil
}

func scan(seq *bitseq.Sequence, m *Map, corrected bool) error {
	if seq == nil {
		return bitseq.ErrNullSequence
	}
	if m == nil {
		return ErrNilMap
	}
	m.Truncate()

	mask, err := GCMask(seq)
	if err != nil {
		return err
	}
	bases := uint(seq.Bases())
	threshold := seq.Len() / 5

	for i, ok := mask.NextSet(0); ok && i < bases; i, ok = mask.NextSet(i) {
		j, found := mask.NextClear(i)
		if !found || j > bases {
			j = bases
		}
		start, run := int(2*i), int(2*(j-i))

		if run >= threshold {
			r := Region{Start: start, End: start + run - 1, Size: run}
			if !corrected {
				r.Size = run - 1
				if j == bases {
					r.End = seq.Len() - 1
				}
			}
			if err := m.put(r); err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}
