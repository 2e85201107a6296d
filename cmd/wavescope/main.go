package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"WaveScope/internal/analyzer"
	"WaveScope/internal/collector"
	"WaveScope/internal/config"
	"WaveScope/internal/notifier"
	"WaveScope/internal/portfolio"
	"WaveScope/internal/recorder"
	"WaveScope/internal/report"
	"WaveScope/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		cfgPath       = flag.String("config", "configs/config.yaml", "path to the YAML config")
		ticker        = flag.String("ticker", "", "ticker to analyze, like AAPL GOOGL PYPL UNH")
		period        = flag.String("period", "", "range like 6mo 1y 2y 5y max")
		interval      = flag.String("interval", "", "interval like 1d 1h 30m")
		zigzag        = flag.Float64("zigzag", 0, "ZigZag threshold in percent")
		portfolioPath = flag.String("portfolio", "", "portfolio CSV to analyze instead of a single ticker")
		output        = flag.String("output", "", "output CSV for portfolio results")
		watch         = flag.Bool("watch", false, "keep running and rescan the portfolio on the configured cron")
	)
	flag.Parse()

	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" && *cfgPath == "configs/config.yaml" {
		*cfgPath = v
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Flags fall back to configured defaults.
	if *period == "" {
		*period = cfg.Defaults.Period
	}
	if *interval == "" {
		*interval = cfg.Defaults.Interval
	}
	if *zigzag == 0 {
		*zigzag = cfg.Defaults.ZigzagPct
	}
	if *portfolioPath == "" && (*watch || *ticker == "") {
		*portfolioPath = cfg.Portfolio.File
	}
	if *output == "" {
		*output = cfg.Portfolio.Output
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	a := analyzer.New(fetcher)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	switch {
	case *watch:
		runWatch(cfg, a, rec, *portfolioPath)
	case *ticker != "":
		runSingle(a, rec, *ticker, *period, *interval, *zigzag)
	default:
		runBatch(a, rec, *portfolioPath, *output, cfg.Portfolio.Concurrency)
	}
}

func runSingle(a *analyzer.Analyzer, rec recorder.Recorder, ticker, period, interval string, zigzag float64) {
	rep, err := a.Analyze(ticker, period, interval, zigzag)
	if err != nil {
		log.Fatalf("[FATAL] analyze %s: %v", ticker, err)
	}
	if err := rec.RecordAnalysis(rep); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}
	fmt.Print(report.FormatReport(rep))
}

func runBatch(a *analyzer.Analyzer, rec recorder.Recorder, portfolioPath, output string, concurrency int) {
	entries, err := portfolio.Load(portfolioPath)
	if err != nil {
		log.Fatalf("[FATAL] load portfolio: %v", err)
	}

	results := portfolio.NewRunner(a, concurrency).Run(context.Background(), entries)
	if err := rec.RecordBatch(results); err != nil {
		log.Printf("[ERROR] record batch: %v", err)
	}
	if output != "" {
		if err := portfolio.WriteResults(output, results); err != nil {
			log.Fatalf("[FATAL] write results: %v", err)
		}
		log.Printf("[INFO] results saved to %s", output)
	}

	fmt.Print(report.FormatSummary(portfolio.Summarize(results)))
}

func runWatch(cfg *config.Config, a *analyzer.Analyzer, rec recorder.Recorder, portfolioPath string) {
	log.Println("[INFO] WaveScope watch mode starting...")

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := portfolio.NewRunner(a, cfg.Portfolio.Concurrency)
	sched := scheduler.NewScheduler(ctx, runner, portfolioPath, rec, tn)
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning now")
		go sched.RunNow()
	}

	log.Println("[INFO] WaveScope is watching. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] WaveScope stopped")
}
