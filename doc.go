// Package genebits analyzes nucleotide sequences packed at two bits per base.
//
// The packed form (bitseq.Sequence) is built once and then read by
// independent scanners:
//
//   - codon: transcription to messenger RNA and codon translation
//   - gene: open reading frame detection
//   - mutation: GC-rich run detection
//   - match: Hamming similarity between two sequences
//
// # Quick Start
//
//	a := genebits.New()
//	seq, _ := a.Pack("CATGGCCTAGCC", 12)
//	mrna, _ := a.TranscribeToMessenger(seq, seq.Len()) // "CAUGGCCUAGCC"
//
//	genes := a.NewGeneMap()
//	_ = a.DetectGenes(seq, seq.Len(), genes)
//
// Every operation taking a length works on that many leading bits of the
// sequence, so a prefix can be scanned without copying it first.
//
// # Reports
//
// Analyze runs every scan and translates each gene:
//
//	report, _ := a.Analyze(ctx, "CATGGCCTAGCC")
//	data, _ := a.EncodeReport(report)
//
// AnalyzeBatch does the same for many sequences in parallel.
//
// # Encoding
//
// EncodeSequence and DecodeSequence store packed sequences in a compact,
// checksummed binary form, optionally compressed with LZ4 or Zstandard.
// EncodeReport wraps a report in a codec.Envelope naming the report format,
// its layout version and the codec; DecodeReport rejects newer layouts.
//
// # Errors
//
// Failures are reported as *OpError wrapping one of the Err* kinds:
//
//	if errors.Is(err, genebits.ErrInvalidNucleotide) { ... }
package genebits
