package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tacogips/setupguide/internal/debug"
)

// BatchOptions holds options for analyzing several repositories.
type BatchOptions struct {
	// AnalyzeOptions is applied to every URL; its URL field is ignored.
	AnalyzeOptions
	// Concurrency bounds the number of analyses in flight (< 1 means 1).
	Concurrency int
}

// BatchItem is the outcome for one URL of a batch.
type BatchItem struct {
	// URL is the input URL as given.
	URL string
	// Result is set when the analysis succeeded.
	Result *AnalyzeResult
	// Err is set when the analysis failed.
	Err error
}

// AnalyzeAll analyzes urls concurrently and returns one item per URL in
// input order. A failure of one URL does not stop the others; only context
// cancellation does, in which case the remaining items carry ctx.Err().
func AnalyzeAll(ctx context.Context, urls []string, opts BatchOptions) []BatchItem {
	debug.DebugSection("[app] AnalyzeAll workflow start")
	debug.DebugValue("[app] URLs", len(urls))

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	debug.DebugValue("[app] Concurrency", limit)

	p := opts.Provider
	if p == nil {
		p = NewProvider(opts.ProviderOptions)
	}

	items := make([]BatchItem, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, url := range urls {
		items[i].URL = url
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i].Err = err
				return nil
			}
			itemOpts := opts.AnalyzeOptions
			itemOpts.URL = url
			if url == "" {
				items[i].Err = NewValidationError("repository URL or path is required", nil)
				return nil
			}
			result, err := analyzeWith(gctx, p, itemOpts)
			items[i].Result = result
			items[i].Err = err
			return nil
		})
	}
	// Workers never return errors; per-item failures live in items.
	_ = g.Wait()

	debug.Debug("[app] AnalyzeAll workflow completed")
	return items
}
