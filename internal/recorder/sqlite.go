package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"WaveScope/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block recording.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			timestamp  INTEGER NOT NULL,
			ticker     TEXT NOT NULL,
			period     TEXT,
			interval   TEXT,
			zigzag_pct REAL,
			last_price REAL,
			num_swings INTEGER,
			found      INTEGER,
			trend      TEXT,
			fib_start  REAL,
			fib_end    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ticker ON analyses(ticker)`,

		`CREATE TABLE IF NOT EXISTS wave_labels (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			tag        TEXT NOT NULL,
			pivot_time INTEGER NOT NULL,
			price      REAL,
			kind       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_run ON wave_labels(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores one run and its wave labels.
func (r *SQLiteRecorder) RecordAnalysis(rep *model.AnalysisReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recordLocked(rep)
}

func (r *SQLiteRecorder) recordLocked(rep *model.AnalysisReport) error {
	_, err := r.db.Exec(`INSERT INTO analyses
		(run_id, timestamp, ticker, period, interval, zigzag_pct,
		 last_price, num_swings, found, trend, fib_start, fib_end)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		rep.RunID, rep.AnalyzedAt.Unix(), rep.Ticker, rep.Period, rep.Interval, rep.ZigzagPct,
		rep.LastPrice, rep.NumSwings, rep.Result.Found, string(rep.Result.Trend),
		rep.Fib.Start, rep.Fib.End,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	for _, lb := range rep.Result.Labels {
		if _, err := r.db.Exec(`INSERT INTO wave_labels
			(run_id, tag, pivot_time, price, kind)
			VALUES (?,?,?,?,?)`,
			rep.RunID, lb.Tag, lb.Pivot.Time.Unix(), lb.Pivot.Price, string(lb.Pivot.Kind),
		); err != nil {
			return fmt.Errorf("insert wave label %s: %w", lb.Tag, err)
		}
	}
	return nil
}

// RecordBatch stores every successful run of a portfolio batch.
func (r *SQLiteRecorder) RecordBatch(results []model.PortfolioResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if err := r.recordLocked(res.Report); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
