package bitseq

// 2-bit base codes. The first bit of a base is the high bit of its code.
const (
	CodeA byte = 0b00
	CodeG byte = 0b01
	CodeC byte = 0b10
	CodeT byte = 0b11
)

// noCode marks letters outside the alphabet.
const noCode = 0xFF

var (
	encodeTable [256]byte
	dnaLetters  = [4]byte{'A', 'G', 'C', 'T'}
	rnaLetters  = [4]byte{'A', 'G', 'C', 'U'}
)

func init() {
	for i := range encodeTable {
		encodeTable[i] = noCode
	}
	set := func(code byte, letters string) {
		for i := 0; i < len(letters); i++ {
			encodeTable[letters[i]] = code
		}
	}
	set(CodeA, "ANRMWDV")
	set(CodeC, "CYSB")
	set(CodeG, "GKH")
	set(CodeT, "TU")
}

// EncodeBase returns the 2-bit code of a letter, canonicalizing ambiguity codes.
func EncodeBase(letter byte) (byte, bool) {
	code := encodeTable[letter]
	return code, code != noCode
}

// DNALetter returns the DNA letter (A, G, C, T) of a 2-bit code.
func DNALetter(code byte) byte { return dnaLetters[code&0b11] }

// RNALetter returns the messenger letter (A, G, C, U) of a 2-bit code.
func RNALetter(code byte) byte { return rnaLetters[code&0b11] }

// IsGC reports whether a 2-bit code is C or G.
func IsGC(code byte) bool { return code == CodeC || code == CodeG }

// Canonicalize maps every letter to the base it packs to, so that
// Unpack(Pack(s)) == Canonicalize(s). U becomes T.
func Canonicalize(letters string) (string, error) {
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		code, ok := EncodeBase(letters[i])
		if !ok {
			return "", &InvalidNucleotideError{Letter: letters[i], Index: i}
		}
		out[i] = DNALetter(code)
	}
	return string(out), nil
}
