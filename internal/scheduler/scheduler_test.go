package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"WaveScope/internal/analyzer"
	"WaveScope/internal/collector"
	"WaveScope/internal/model"
	"WaveScope/internal/portfolio"
)

type captureRecorder struct {
	batches [][]model.PortfolioResult
}

func (c *captureRecorder) RecordAnalysis(_ *model.AnalysisReport) error { return nil }
func (c *captureRecorder) RecordBatch(results []model.PortfolioResult) error {
	c.batches = append(c.batches, results)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

func TestRegister_InvalidCron(t *testing.T) {
	s := NewScheduler(context.Background(), nil, "", &captureRecorder{}, nil)
	if err := s.Register("not a cron expr"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if err := s.Register("0 0 22 * * 1-5"); err != nil {
		t.Fatalf("valid cron expression rejected: %v", err)
	}
}

func TestScanTask_RecordsBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	if err := os.WriteFile(path, []byte("ticker,period,interval,zigzag\nAAPL,2y,1d,5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := &captureRecorder{}
	runner := portfolio.NewRunner(analyzer.New(&collector.MockFetcher{}), 1)
	s := NewScheduler(context.Background(), runner, path, rec, nil)

	s.RunNow()

	if len(rec.batches) != 1 {
		t.Fatalf("expected 1 recorded batch, got %d", len(rec.batches))
	}
	if len(rec.batches[0]) != 1 || rec.batches[0][0].Entry.Ticker != "AAPL" {
		t.Errorf("unexpected batch contents: %+v", rec.batches[0])
	}
}

func TestScanTask_MissingPortfolioIsLoggedNotFatal(t *testing.T) {
	rec := &captureRecorder{}
	runner := portfolio.NewRunner(analyzer.New(&collector.MockFetcher{}), 1)
	s := NewScheduler(context.Background(), runner, filepath.Join(t.TempDir(), "nope.csv"), rec, nil)

	s.RunNow()

	if len(rec.batches) != 0 {
		t.Errorf("expected no recorded batch for a missing portfolio, got %d", len(rec.batches))
	}
}
