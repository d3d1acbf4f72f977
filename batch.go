package genebits

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch analyzes each sequence independently, running up to the
// configured concurrency at once. Reports are returned in input order.
// The first failure cancels the remaining work and is returned.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, letters []string) ([]*Report, error) {
	start := time.Now()
	reports := make([]*Report, len(letters))

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)

	for i, l := range letters {
		g.Go(func() error {
			r, err := a.Analyze(gctx, l)
			if err != nil {
				failed.Add(1)
				return err
			}
			reports[i] = r
			return nil
		})
	}

	err := g.Wait()
	d := time.Since(start)
	a.opts.metricsCollector.RecordBatch(len(letters), int(failed.Load()), d)
	a.opts.logger.LogBatch(ctx, len(letters), int(failed.Load()), d)
	if err != nil {
		return nil, err
	}
	return reports, nil
}
