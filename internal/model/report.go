package model

import "time"

// AnalysisReport is the full output of one analysis run for one ticker.
type AnalysisReport struct {
	RunID      string
	Ticker     string
	Period     string
	Interval   string
	ZigzagPct  float64
	LastPrice  float64
	NumSwings  int
	Result     ClassificationResult
	Fib        FibonacciLevels
	AnalyzedAt time.Time
}

// PortfolioEntry is one row of a portfolio CSV.
type PortfolioEntry struct {
	Ticker    string
	Period    string
	Interval  string
	ZigzagPct float64
}

// PortfolioResult pairs an entry with its report, or with the error
// that stopped it. A failed ticker never aborts the batch.
type PortfolioResult struct {
	Entry  PortfolioEntry
	Report *AnalysisReport
	Err    error
}

// PortfolioSummary aggregates one batch run.
type PortfolioSummary struct {
	Total         int
	Succeeded     int
	Failed        int
	PatternsFound int
	Matches       []*AnalysisReport
}
