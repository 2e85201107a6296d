package scheduler

import (
	"context"
	"fmt"
	"log"

	"WaveScope/internal/notifier"
	"WaveScope/internal/portfolio"
	"WaveScope/internal/recorder"
	"WaveScope/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the portfolio scan on a cron schedule, records every
// run, and raises an alert when a scan finds 5-3 counts.
type Scheduler struct {
	Cron          *cron.Cron
	Runner        *portfolio.Runner
	PortfolioFile string
	Recorder      recorder.Recorder
	Notifier      *notifier.TelegramNotifier
	Ctx           context.Context
}

// NewScheduler creates a new Scheduler. The notifier may be nil, in
// which case scan outcomes are only logged and recorded.
func NewScheduler(ctx context.Context, runner *portfolio.Runner, portfolioFile string, rec recorder.Recorder, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Runner:        runner,
		PortfolioFile: portfolioFile,
		Recorder:      rec,
		Notifier:      tn,
		Ctx:           ctx,
	}
}

// Register registers the watch task on the given cron expression.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.scanTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the scan immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running portfolio scan")

	// Reloaded every scan so portfolio edits take effect without a restart.
	entries, err := portfolio.Load(s.PortfolioFile)
	if err != nil {
		log.Printf("[ERROR] load portfolio: %v", err)
		return
	}

	results := s.Runner.Run(s.Ctx, entries)
	sum := portfolio.Summarize(results)
	log.Printf("[INFO] scan complete: %d analyzed, %d failed, %d patterns",
		sum.Total, sum.Failed, sum.PatternsFound)

	if err := s.Recorder.RecordBatch(results); err != nil {
		log.Printf("[ERROR] record batch: %v", err)
	}

	if sum.PatternsFound > 0 && s.Notifier != nil {
		msg := notifier.FormatPatternAlert(sum.Matches)
		if err := s.Notifier.SendWithRetry(s.Ctx, msg, 3); err != nil {
			log.Printf("[ERROR] send alert: %v", err)
		}
	}
	if sum.PatternsFound > 0 && s.Notifier == nil {
		log.Printf("[INFO] patterns found:\n%s", report.FormatSummary(sum))
	}
}
