package genebits

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/codec"
	"github.com/hupe1980/genebits/gene"
	"github.com/hupe1980/genebits/mutation"
)

type options struct {
	codec              codec.Codec
	compression        bitseq.Compression
	metricsCollector   MetricsCollector
	logger             *Logger
	geneCapacity       int
	mutationCapacity   int
	concurrency        int
	correctedMutations bool
}

// Option configures an Analyzer.
type Option func(*options)

// WithCodec configures the codec used by EncodeReport. DecodeReport uses
// the codec named in the report envelope.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures how EncodeSequence compresses packed words.
func WithCompression(c bitseq.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithGeneCapacity sets the capacity of gene maps created by the analyzer.
// Non-positive values select gene.DefaultCapacity.
func WithGeneCapacity(n int) Option {
	return func(o *options) {
		o.geneCapacity = n
	}
}

// WithMutationCapacity sets the capacity of mutation maps created by the
// analyzer. Non-positive values select mutation.DefaultCapacity.
func WithMutationCapacity(n int) Option {
	return func(o *options) {
		o.mutationCapacity = n
	}
}

// WithConcurrency bounds the number of sequences AnalyzeBatch works on at
// once. Non-positive values select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithCorrectedMutations makes ScanMutations and Analyze report the run
// length as the region size (mutation.ScanCorrected) instead of the
// historical run-1.
func WithCorrectedMutations() Option {
	return func(o *options) {
		o.correctedMutations = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &genebits.BasicMetricsCollector{}
//	a := genebits.New(genebits.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Scans: %d, Avg latency: %dns\n", stats.ScanCount, stats.ScanAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := genebits.NewJSONLogger(slog.LevelDebug)
//	a := genebits.New(genebits.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		compression:      bitseq.CompressionLZ4,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		geneCapacity:     gene.DefaultCapacity,
		mutationCapacity: mutation.DefaultCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
