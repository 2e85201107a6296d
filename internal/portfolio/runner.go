package portfolio

import (
	"context"
	"log"
	"sync"

	"WaveScope/internal/analyzer"
	"WaveScope/internal/model"
)

// Runner fans one analysis out per portfolio entry. Entries are
// independent, so the only coordination is the concurrency cap on the
// shared upstream data source.
type Runner struct {
	Analyzer    *analyzer.Analyzer
	Concurrency int
}

// NewRunner creates a Runner with the given concurrency cap (minimum 1).
func NewRunner(a *analyzer.Analyzer, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{Analyzer: a, Concurrency: concurrency}
}

// Run analyzes every entry and returns results in entry order. A failed
// ticker produces an error result, never a batch abort. Cancelling the
// context skips entries that have not started yet.
func (r *Runner) Run(ctx context.Context, entries []model.PortfolioEntry) []model.PortfolioResult {
	results := make([]model.PortfolioResult, len(entries))
	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	log.Printf("[INFO] analyzing %d tickers", len(entries))

	for i, entry := range entries {
		if ctx.Err() != nil {
			results[i] = model.PortfolioResult{Entry: entry, Err: ctx.Err()}
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, entry model.PortfolioEntry) {
			defer wg.Done()
			defer func() { <-sem }()

			log.Printf("[INFO] [%d/%d] analyzing %s", i+1, len(entries), entry.Ticker)
			rep, err := r.Analyzer.Analyze(entry.Ticker, entry.Period, entry.Interval, entry.ZigzagPct)
			if err != nil {
				log.Printf("[ERROR] analyze %s: %v", entry.Ticker, err)
				results[i] = model.PortfolioResult{Entry: entry, Err: err}
				return
			}
			results[i] = model.PortfolioResult{Entry: entry, Report: rep}
		}(i, entry)
	}

	wg.Wait()
	return results
}
