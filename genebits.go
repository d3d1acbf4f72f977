package genebits

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/codon"
	"github.com/hupe1980/genebits/gene"
	"github.com/hupe1980/genebits/match"
	"github.com/hupe1980/genebits/mutation"
)

// Operation names used in logs, metrics and OpError.
const (
	OpPack           = "pack"
	OpUnpack         = "unpack"
	OpTranscribe     = "transcribe"
	OpDetectGenes    = "detect_genes"
	OpTranslateChain = "translate_chain"
	OpScanMutations  = "scan_mutations"
	OpMatchScore     = "match_score"
	OpAnalyze        = "analyze"
	OpEncode         = "encode"
	OpDecode         = "decode"
)

// Analyzer runs the scans over packed sequences and reports to the
// configured logger and metrics collector.
//
// An Analyzer is safe for concurrent use; the maps passed to it are not.
type Analyzer struct {
	opts options
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	return &Analyzer{opts: applyOptions(optFns)}
}

// NewGeneMap returns a gene map with the configured capacity.
func (a *Analyzer) NewGeneMap() *gene.Map { return gene.NewMap(a.opts.geneCapacity) }

// NewMutationMap returns a mutation map with the configured capacity.
func (a *Analyzer) NewMutationMap() *mutation.Map {
	return mutation.NewMap(a.opts.mutationCapacity)
}

func (a *Analyzer) finish(op string, bits int, start time.Time, err error) error {
	err = translateError(op, bits, err)
	d := time.Since(start)
	a.opts.metricsCollector.RecordScan(op, bits, d, err)
	a.opts.logger.LogOp(context.Background(), op, bits, d, err)
	return err
}

// prefix returns the first n bits of seq.
func prefix(seq *bitseq.Sequence, n int) (*bitseq.Sequence, error) {
	if seq == nil {
		return nil, ErrNullSequence
	}
	if n == seq.Len() {
		return seq, nil
	}
	return seq.Prefix(n)
}

// Pack encodes the first n letters at two bits per base.
func (a *Analyzer) Pack(letters string, n int) (*bitseq.Sequence, error) {
	start := time.Now()

	var (
		seq *bitseq.Sequence
		err error
	)
	if n < 0 || n > len(letters) {
		err = fmt.Errorf("%w: %d of %d letters", ErrOutOfRange, n, len(letters))
	} else {
		seq, err = bitseq.Pack(letters[:n])
	}

	d := time.Since(start)
	err = translateError(OpPack, 2*n, err)
	a.opts.metricsCollector.RecordPack(n, d, err)
	a.opts.logger.LogOp(context.Background(), OpPack, 2*n, d, err)
	return seq, err
}

// Unpack decodes the first n bits of seq to DNA letters.
func (a *Analyzer) Unpack(seq *bitseq.Sequence, n int) (string, error) {
	start := time.Now()
	var (
		out string
		err = ErrNullSequence
	)
	if seq != nil {
		out, err = seq.Unpack(n)
	}
	return out, a.finish(OpUnpack, n, start, err)
}

// TranscribeToMessenger decodes the first n bits of seq to RNA letters.
func (a *Analyzer) TranscribeToMessenger(seq *bitseq.Sequence, n int) (string, error) {
	start := time.Now()
	p, err := prefix(seq, n)
	var out string
	if err == nil {
		out, err = codon.Transcribe(p)
	}
	return out, a.finish(OpTranscribe, n, start, err)
}

// DetectGenes fills m with the genes among the first n bits of seq. m is
// emptied even when seq or n are rejected.
func (a *Analyzer) DetectGenes(seq *bitseq.Sequence, n int, m *gene.Map) error {
	start := time.Now()
	if m != nil {
		m.Reset()
	}
	p, err := prefix(seq, n)
	if err == nil {
		err = gene.Detect(p, m)
	}
	return a.finish(OpDetectGenes, n, start, err)
}

// TranslateChain translates the first n bits of seq codon by codon.
func (a *Analyzer) TranslateChain(seq *bitseq.Sequence, n int) (string, error) {
	start := time.Now()
	p, err := prefix(seq, n)
	var out string
	if err == nil {
		out, err = codon.TranslateChain(p)
	}
	return out, a.finish(OpTranslateChain, n, start, err)
}

// ScanMutations fills m with the GC runs among the first n bits of seq. The
// count of m drops to zero even when seq or n are rejected.
func (a *Analyzer) ScanMutations(seq *bitseq.Sequence, n int, m *mutation.Map) error {
	start := time.Now()
	if m != nil {
		m.Truncate()
	}
	p, err := prefix(seq, n)
	if err == nil {
		err = a.scanMutations(p, m)
	}
	return a.finish(OpScanMutations, n, start, err)
}

func (a *Analyzer) scanMutations(seq *bitseq.Sequence, m *mutation.Map) error {
	if a.opts.correctedMutations {
		return mutation.ScanCorrected(seq, m)
	}
	return mutation.Scan(seq, m)
}

// MatchScore compares the first aLen bits of x with the first bLen bits of
// y. It returns match.Sentinel when no score can be computed.
func (a *Analyzer) MatchScore(x *bitseq.Sequence, aLen int, y *bitseq.Sequence, bLen int) float64 {
	start := time.Now()

	score, err := func() (float64, error) {
		px, err := prefix(x, aLen)
		if err != nil {
			return match.Sentinel, err
		}
		py, err := prefix(y, bLen)
		if err != nil {
			return match.Sentinel, err
		}
		return match.Compute(px, py)
	}()

	d := time.Since(start)
	err = translateError(OpMatchScore, max(aLen, bLen), err)
	a.opts.metricsCollector.RecordMatch(d, err)
	a.opts.logger.LogOp(context.Background(), OpMatchScore, max(aLen, bLen), d, err)
	if err != nil {
		return match.Sentinel
	}
	return score
}

// EncodeSequence serializes seq with the configured compression.
func (a *Analyzer) EncodeSequence(seq *bitseq.Sequence) ([]byte, error) {
	start := time.Now()
	var (
		data []byte
		err  = ErrNullSequence
		bits int
	)
	if seq != nil {
		bits = seq.Len()
		data, err = bitseq.Encode(seq, a.opts.compression)
	}
	return data, a.finish(OpEncode, bits, start, err)
}

// DecodeSequence restores a sequence written by EncodeSequence, whatever
// compression it used.
func (a *Analyzer) DecodeSequence(data []byte) (*bitseq.Sequence, error) {
	start := time.Now()
	seq, err := bitseq.Decode(data)
	bits := 0
	if seq != nil {
		bits = seq.Len()
	}
	return seq, a.finish(OpDecode, bits, start, err)
}
