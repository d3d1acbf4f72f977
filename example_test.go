package genebits_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/genebits"
	"github.com/hupe1980/genebits/bitseq"
)

// Example_transcribe packs DNA letters and transcribes them to messenger RNA.
func Example_transcribe() {
	a := genebits.New()

	seq, err := a.Pack("ATGCGTGGGTAG", 12)
	if err != nil {
		log.Fatal(err)
	}

	mrna, err := a.TranscribeToMessenger(seq, seq.Len())
	if err != nil {
		log.Fatal(err)
	}
	protein, err := a.TranslateChain(seq, seq.Len())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(mrna, protein)
	// Output: AUGCGUGGGUAG MRGO
}

// Example_detectGenes finds an open reading frame that is not aligned to the
// start of the sequence.
func Example_detectGenes() {
	a := genebits.New()
	seq, _ := a.Pack("CATGGCCTAGCC", 12)

	genes := a.NewGeneMap()
	if err := a.DetectGenes(seq, seq.Len(), genes); err != nil {
		log.Fatal(err)
	}

	for _, g := range genes.Regions() {
		fmt.Printf("gene bits %d-%d\n", g.Start, g.End)
	}
	// Output: gene bits 2-19
}

// Example_scanMutations reports a GC-rich run.
func Example_scanMutations() {
	a := genebits.New()
	seq, _ := a.Pack("AAAAAAAGGCC", 11)

	m := a.NewMutationMap()
	if err := a.ScanMutations(seq, seq.Len(), m); err != nil {
		log.Fatal(err)
	}

	r := m.At(0)
	fmt.Println(m.Len(), r.Start, r.End, r.Size)
	// Output: 1 14 21 7
}

// Example_matchScore compares two sequences by Hamming similarity.
func Example_matchScore() {
	a := genebits.New()
	x, _ := a.Pack("ACGT", 4)
	y, _ := a.Pack("ACGA", 4)

	fmt.Println(a.MatchScore(x, x.Len(), y, y.Len()))
	fmt.Println(a.MatchScore(nil, 0, y, y.Len()))
	// Output:
	// 75
	// -1
}

// Example_analyze runs every scan and prints the report.
func Example_analyze() {
	a := genebits.New()

	r, err := a.Analyze(context.Background(), "CATGGCCTAGCC")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d bases, %.2f GC\n", r.Bases, r.GCContent)
	for _, g := range r.Genes {
		fmt.Println(g.Protein, g.InFrame)
	}
	// Output:
	// 12 bases, 0.67 GC
	// MAO true
}

// Example_errors shows how to match error kinds.
func Example_errors() {
	a := genebits.New()

	_, err := a.Pack("ACXT", 4)

	var inv *genebits.InvalidNucleotideError
	if errors.As(err, &inv) {
		fmt.Printf("bad letter %q at %d\n", inv.Letter, inv.Index)
	}
	fmt.Println(errors.Is(err, genebits.ErrInvalidNucleotide))
	// Output:
	// bad letter 'X' at 2
	// true
}

// Example_encodeSequence stores a packed sequence compressed with Zstandard.
func Example_encodeSequence() {
	a := genebits.New(genebits.WithCompression(bitseq.CompressionZSTD))
	seq, _ := a.Pack("ACGTACGTACGTACGT", 16)

	data, err := a.EncodeSequence(seq)
	if err != nil {
		log.Fatal(err)
	}
	back, err := a.DecodeSequence(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(back.String())
	// Output: ACGTACGTACGTACGT
}
