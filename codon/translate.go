package codon

import (
	"fmt"

	"github.com/hupe1980/genebits/bitseq"
)

// TranslateChain reads seq in consecutive codons from bit 0 and returns
// their symbols. Stop codons are emitted as StopSymbol and do not end the
// chain.
func TranslateChain(seq *bitseq.Sequence) (string, error) {
	if seq == nil {
		return "", bitseq.ErrNullSequence
	}
	if seq.Len()%Bits != 0 {
		return "", fmt.Errorf("%w: %d bits", ErrLengthNotCodonAligned, seq.Len())
	}

	out := make([]byte, seq.Len()/Bits)
	for i := range out {
		w, err := seq.Window(i*Bits, Bits)
		if err != nil {
			return "", err
		}
		sym, err := Translate(uint8(w))
		if err != nil {
			return "", err
		}
		out[i] = sym
	}
	return string(out), nil
}

// Transcribe decodes seq to messenger letters (A, U, C, G).
func Transcribe(seq *bitseq.Sequence) (string, error) {
	if seq == nil {
		return "", bitseq.ErrNullSequence
	}
	if seq.Len()%2 != 0 {
		return "", fmt.Errorf("%w: %d", bitseq.ErrOddLength, seq.Len())
	}

	out := make([]byte, seq.Bases())
	for i := range out {
		code, err := seq.Base(i)
		if err != nil {
			return "", err
		}
		switch code {
		case bitseq.CodeA:
			out[i] = 'A'
		case bitseq.CodeT:
			out[i] = 'U'
		case bitseq.CodeC:
			out[i] = 'C'
		case bitseq.CodeG:
			out[i] = 'G'
		default:
			return "", fmt.Errorf("%w: %#b at base %d", ErrInvalidBaseValue, code, i)
		}
	}
	return string(out), nil
}
