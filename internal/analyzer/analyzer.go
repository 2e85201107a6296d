package analyzer

import (
	"fmt"
	"time"

	"WaveScope/internal/collector"
	"WaveScope/internal/model"
	"WaveScope/internal/wave"

	"github.com/google/uuid"
)

// Analyzer runs one full Elliott Wave analysis per call. It holds no
// cross-call state, so one Analyzer may serve concurrent runs.
type Analyzer struct {
	Fetcher collector.Fetcher
}

// New creates an Analyzer over the given data source.
func New(fetcher collector.Fetcher) *Analyzer {
	return &Analyzer{Fetcher: fetcher}
}

// Analyze fetches bars for the ticker, extracts the ZigZag swing
// structure, classifies the trailing pattern, and measures Fibonacci
// retracements over the analyzed span. An empty bar series is a valid
// input and produces a report with zero swings.
func (a *Analyzer) Analyze(ticker, period, interval string, zigzagPct float64) (*model.AnalysisReport, error) {
	bars, err := a.Fetcher.FetchBars(ticker, period, interval)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}

	swings, err := wave.Extract(bars, zigzagPct)
	if err != nil {
		return nil, fmt.Errorf("extract swings for %s: %w", ticker, err)
	}
	result := wave.Classify(swings)

	report := &model.AnalysisReport{
		RunID:      uuid.NewString(),
		Ticker:     ticker,
		Period:     period,
		Interval:   interval,
		ZigzagPct:  zigzagPct,
		NumSwings:  swings.Len(),
		Result:     result,
		AnalyzedAt: time.Now(),
	}
	if len(bars) > 0 {
		report.LastPrice = bars[len(bars)-1].Close
	}

	if start, end, ok := fibSpan(result, swings); ok {
		fib, err := wave.Retracements(start, end)
		if err != nil {
			return nil, fmt.Errorf("fibonacci levels for %s: %w", ticker, err)
		}
		report.Fib = fib
	}

	return report, nil
}

// fibSpan picks the swing to measure retracements over: the impulse span
// (pattern origin to the impulse extreme) when a full 8-pivot window was
// labeled, otherwise the last confirmed swing.
func fibSpan(result model.ClassificationResult, swings model.SwingSeries) (start, end float64, ok bool) {
	if len(result.Labels) == 8 {
		return result.Labels[0].Pivot.Price, result.Labels[5].Pivot.Price, true
	}
	if swings.Len() >= 2 {
		last := swings.Last(2)
		return last[0].Price, last[1].Price, true
	}
	return 0, 0, false
}
