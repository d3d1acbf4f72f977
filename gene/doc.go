// Package gene finds open reading frames in a packed sequence.
//
// Detect walks the sequence one base (two bits) at a time and tests the
// six-bit window at the cursor. A start codon (AUG) opens a gene, the next
// stop codon (UAA, UAG, UGA) closes it. Windows need not be aligned to a
// reading frame from the origin. When two starts appear before a stop, the
// later one wins; a gene still open at the end of the sequence is dropped.
package gene
