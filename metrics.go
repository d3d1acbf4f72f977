package genebits

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPack is called after each pack operation with the number of
	// bases requested.
	RecordPack(bases int, duration time.Duration, err error)

	// RecordScan is called after each operation on a packed sequence.
	// kind names the operation and bits is the length that was scanned.
	RecordScan(kind string, bits int, duration time.Duration, err error)

	// RecordMatch is called after each match score computation.
	RecordMatch(duration time.Duration, err error)

	// RecordBatch is called after each batch analysis.
	// count is the number of sequences attempted, failed is the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPack(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordScan(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMatch(time.Duration, error)             {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PackCount      atomic.Int64
	PackErrors     atomic.Int64
	PackBases      atomic.Int64
	ScanCount      atomic.Int64
	ScanErrors     atomic.Int64
	ScanBits       atomic.Int64
	ScanTotalNanos atomic.Int64
	MatchCount     atomic.Int64
	MatchErrors    atomic.Int64
	BatchCount     atomic.Int64
	BatchItems     atomic.Int64
	BatchFailed    atomic.Int64
}

// RecordPack implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPack(bases int, _ time.Duration, err error) {
	b.PackCount.Add(1)
	b.PackBases.Add(int64(bases))
	if err != nil {
		b.PackErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(_ string, bits int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanBits.Add(int64(bits))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(_ time.Duration, err error) {
	b.MatchCount.Add(1)
	if err != nil {
		b.MatchErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PackCount:    b.PackCount.Load(),
		PackErrors:   b.PackErrors.Load(),
		PackBases:    b.PackBases.Load(),
		ScanCount:    b.ScanCount.Load(),
		ScanErrors:   b.ScanErrors.Load(),
		ScanBits:     b.ScanBits.Load(),
		ScanAvgNanos: b.getAvgScanNanos(),
		MatchCount:   b.MatchCount.Load(),
		MatchErrors:  b.MatchErrors.Load(),
		BatchCount:   b.BatchCount.Load(),
		BatchItems:   b.BatchItems.Load(),
		BatchFailed:  b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScanNanos() int64 {
	count := b.ScanCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScanTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PackCount    int64
	PackErrors   int64
	PackBases    int64
	ScanCount    int64
	ScanErrors   int64
	ScanBits     int64
	ScanAvgNanos int64
	MatchCount   int64
	MatchErrors  int64
	BatchCount   int64
	BatchItems   int64
	BatchFailed  int64
}
