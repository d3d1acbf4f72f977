package genebits

import (
	"context"
	"time"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/codec"
	"github.com/hupe1980/genebits/codon"
	"github.com/hupe1980/genebits/gene"
	"github.com/hupe1980/genebits/mutation"
)

// Report is the result of Analyze.
type Report struct {
	Bases     int               `json:"bases"`
	GCContent float64           `json:"gc_content"`
	Messenger string            `json:"messenger"`
	Genes     []Gene            `json:"genes"`
	Mutations []mutation.Region `json:"mutations"`
	// CoveredBases is the number of bases inside any gene.
	CoveredBases uint64 `json:"covered_bases"`
}

// Gene is a detected gene with its translation.
type Gene struct {
	gene.Region
	// Protein translates the whole codons from the start codon on. It ends
	// with the stop symbol when the stop codon is in frame.
	Protein string `json:"protein"`
	InFrame bool   `json:"in_frame"`
}

// Analyze packs letters and runs every scan over the result.
func (a *Analyzer) Analyze(ctx context.Context, letters string) (*Report, error) {
	start := time.Now()
	r, err := a.analyze(ctx, letters)
	err = translateError(OpAnalyze, 2*len(letters), err)

	a.opts.metricsCollector.RecordScan(OpAnalyze, 2*len(letters), time.Since(start), err)
	if r != nil {
		a.opts.logger.LogAnalyze(ctx, r.Bases, len(r.Genes), len(r.Mutations), err)
	} else {
		a.opts.logger.LogAnalyze(ctx, len(letters), 0, 0, err)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (a *Analyzer) analyze(ctx context.Context, letters string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seq, err := bitseq.Pack(letters)
	if err != nil {
		return nil, err
	}

	r := &Report{Bases: seq.Bases()}
	if r.Bases > 0 {
		r.GCContent = float64(bitseq.GCCount(seq)) / float64(r.Bases)
	}
	if r.Messenger, err = codon.Transcribe(seq); err != nil {
		return nil, err
	}

	gm := a.NewGeneMap()
	if err := gene.Detect(seq, gm); err != nil {
		return nil, err
	}
	r.Genes = make([]Gene, 0, gm.Len())
	for _, region := range gm.Regions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := translateGene(seq, region)
		if err != nil {
			return nil, err
		}
		r.Genes = append(r.Genes, g)
	}
	coverage, err := gm.Coverage()
	if err != nil {
		return nil, err
	}
	r.CoveredBases = coverage.GetCardinality()

	mm := a.NewMutationMap()
	if err := a.scanMutations(seq, mm); err != nil {
		return nil, err
	}
	r.Mutations = mm.Regions()

	return r, nil
}

func translateGene(seq *bitseq.Sequence, region gene.Region) (Gene, error) {
	n := region.Len() - region.Len()%codon.Bits
	orf, err := seq.Slice(region.Start, n)
	if err != nil {
		return Gene{}, err
	}
	protein, err := codon.TranslateChain(orf)
	if err != nil {
		return Gene{}, err
	}
	return Gene{
		Region:  region,
		Protein: protein,
		InFrame: n == region.Len(),
	}, nil
}

// EncodeReport encodes r with the configured codec inside a versioned
// codec.Envelope.
func (a *Analyzer) EncodeReport(r *Report) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReport
	}
	return codec.SealReport(a.opts.codec, r)
}

// DecodeReport decodes data written by EncodeReport with any codec. Reports
// from a newer layout fail with ErrUnsupportedReportVersion.
func (a *Analyzer) DecodeReport(data []byte) (*Report, error) {
	var r Report
	if _, err := codec.OpenReport(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
