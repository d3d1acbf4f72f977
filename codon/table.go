package codon

import (
	"fmt"

	"github.com/hupe1980/genebits/bitseq"
)

const (
	// Bits is the width of a codon in bits.
	Bits = 6
	// Count is the number of distinct codon patterns.
	Count = 1 << Bits

	// StartSymbol is the symbol of the start codon AUG.
	StartSymbol byte = 'M'
	// StopSymbol is the symbol of UAA, UAG and UGA.
	StopSymbol byte = 'O'
)

// NCBI translation table 1, codons ordered by bases TCAG.
const (
	ncbiBases    = "TCAG"
	standardCode = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"
)

var names = map[byte][2]string{
	'A':        {"Ala", "Alanine"},
	'C':        {"Cys", "Cysteine"},
	'D':        {"Asp", "Aspartic acid"},
	'E':        {"Glu", "Glutamic acid"},
	'F':        {"Phe", "Phenylalanine"},
	'G':        {"Gly", "Glycine"},
	'H':        {"His", "Histidine"},
	'I':        {"Ile", "Isoleucine"},
	'K':        {"Lys", "Lysine"},
	'L':        {"Leu", "Leucine"},
	'M':        {"Met", "Methionine"},
	'N':        {"Asn", "Asparagine"},
	'P':        {"Pro", "Proline"},
	'Q':        {"Gln", "Glutamine"},
	'R':        {"Arg", "Arginine"},
	'S':        {"Ser", "Serine"},
	'T':        {"Thr", "Threonine"},
	'V':        {"Val", "Valine"},
	'W':        {"Trp", "Tryptophan"},
	'Y':        {"Tyr", "Tyrosine"},
	StopSymbol: {"Stop", "Stop codon"},
}

// Entry describes one codon pattern.
type Entry struct {
	Pattern   uint8
	Codon     string // messenger letters, e.g. "AUG"
	Symbol    byte
	ShortName string
	FullName  string
}

var (
	table        [Count]Entry
	startPattern uint8
)

func init() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				dna := string([]byte{ncbiBases[i], ncbiBases[j], ncbiBases[k]})
				p, err := Encode(dna)
				if err != nil {
					panic(err)
				}
				sym := standardCode[16*i+4*j+k]
				if sym == '*' {
					sym = StopSymbol
				}
				table[p] = Entry{
					Pattern:   p,
					Codon:     messenger(p),
					Symbol:    sym,
					ShortName: names[sym][0],
					FullName:  names[sym][1],
				}
			}
		}
	}

	p, err := Encode("AUG")
	if err != nil {
		panic(err)
	}
	startPattern = p
}

// messenger spells a pattern with A, G, C, U.
func messenger(p uint8) string {
	return string([]byte{
		bitseq.RNALetter(p >> 4),
		bitseq.RNALetter(p >> 2),
		bitseq.RNALetter(p),
	})
}

// Encode returns the 6-bit pattern of a three-letter codon. DNA and
// messenger letters are accepted, as are ambiguity codes.
func Encode(codon string) (uint8, error) {
	if len(codon) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodon, codon)
	}
	var p uint8
	for i := 0; i < 3; i++ {
		code, ok := bitseq.EncodeBase(codon[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCodon, codon)
		}
		p = p<<2 | code
	}
	return p, nil
}

// Lookup returns the table entry of a pattern.
func Lookup(pattern uint8) (Entry, error) {
	if pattern >= Count {
		return Entry{}, fmt.Errorf("%w: pattern %#x", ErrInvalidCodon, pattern)
	}
	return table[pattern], nil
}

// Translate returns the amino-acid symbol of a pattern.
func Translate(pattern uint8) (byte, error) {
	e, err := Lookup(pattern)
	if err != nil {
		return 0, err
	}
	return e.Symbol, nil
}

// Table returns a copy of the full table, indexed by pattern.
func Table() [Count]Entry { return table }

// IsStart reports whether pattern is AUG.
func IsStart(pattern uint8) bool { return pattern == startPattern }

// IsStop reports whether pattern is UAA, UAG or UGA.
func IsStop(pattern uint8) bool {
	return pattern < Count && table[pattern].Symbol == StopSymbol
}
