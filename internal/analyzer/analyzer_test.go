package analyzer

import (
	"errors"
	"testing"

	"WaveScope/internal/collector"
	"WaveScope/internal/model"
	"WaveScope/internal/wave"
)

// patternCloses traces a full ascending 5-3 shape with every reversal
// clearing a 5% threshold, yielding exactly 8 confirmed pivots plus one
// trailing leg to confirm the final one.
var patternCloses = []float64{
	100, 120, // up to wave-1 top
	110, // wave 2
	140, // wave 3
	125, // wave 4
	135, // wave 5
	115, // A
	130, // B
	118, // trailing leg confirming the B pivot
}

func TestAnalyze_FullPattern(t *testing.T) {
	a := New(&collector.MockFetcher{Bars: collector.BarsFromCloses(patternCloses)})

	rep, err := a.Analyze("TEST", "2y", "1d", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.NumSwings != 8 {
		t.Fatalf("expected 8 swings, got %d", rep.NumSwings)
	}
	if !rep.Result.Found {
		t.Error("expected a 5-3 pattern in the fixture series")
	}
	if rep.Result.Trend != model.TrendUp {
		t.Errorf("expected UP trend, got %s", rep.Result.Trend)
	}
	if rep.LastPrice != 118 {
		t.Errorf("expected last price 118, got %.2f", rep.LastPrice)
	}
	if rep.RunID == "" {
		t.Error("expected a run id")
	}
	// Retracements span the impulse: origin 100 up to the 135 extreme.
	if rep.Fib.Start != 100 || rep.Fib.End != 135 {
		t.Errorf("expected fib span 100..135, got %.0f..%.0f", rep.Fib.Start, rep.Fib.End)
	}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	a := New(&collector.MockFetcher{})

	rep, err := a.Analyze("EMPTY", "2y", "1d", 5)
	if err != nil {
		t.Fatalf("empty series must not be an error, got %v", err)
	}
	if rep.NumSwings != 0 {
		t.Errorf("expected zero swings, got %d", rep.NumSwings)
	}
	if rep.Result.Found {
		t.Error("expected no pattern for an empty series")
	}
	if len(rep.Fib.Levels) != 0 {
		t.Error("expected no fib levels without a swing")
	}
}

func TestAnalyze_FetchError(t *testing.T) {
	a := New(&collector.MockFetcher{Err: errors.New("boom")})
	if _, err := a.Analyze("X", "2y", "1d", 5); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}

func TestAnalyze_InvalidThreshold(t *testing.T) {
	a := New(&collector.MockFetcher{Bars: collector.BarsFromCloses(patternCloses)})
	if _, err := a.Analyze("X", "2y", "1d", 0); !errors.Is(err, wave.ErrInvalidThreshold) {
		t.Fatalf("expected ErrInvalidThreshold, got %v", err)
	}
}

func TestAnalyze_TooFewSwingsFallsBackToLastSwing(t *testing.T) {
	a := New(&collector.MockFetcher{Bars: collector.BarsFromCloses([]float64{100, 110, 95, 130, 100})})

	rep, err := a.Analyze("SHORT", "6mo", "1d", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Result.Found {
		t.Error("expected insufficient data outcome")
	}
	if rep.NumSwings != 4 {
		t.Fatalf("expected 4 swings, got %d", rep.NumSwings)
	}
	// Last confirmed swing is 95 -> 130.
	if rep.Fib.Start != 95 || rep.Fib.End != 130 {
		t.Errorf("expected fib span 95..130, got %.0f..%.0f", rep.Fib.Start, rep.Fib.End)
	}
}
