// Package codon translates packed codons to amino-acid symbols and
// transcribes packed DNA to messenger form.
//
// A codon is six bits (three bases). Its pattern is the integer value of
// those bits, so the standard genetic code becomes a 64-entry array indexed
// by pattern. The table is built once at init from NCBI translation table 1
// and the bitseq base encoding; stop codons carry the symbol 'O'.
package codon
