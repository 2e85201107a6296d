package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"WaveScope/internal/model"
)

// Load reads portfolio entries from a CSV file with the columns
// ticker, period, interval, zigzag. A missing file is an error.
func Load(path string) ([]model.PortfolioEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open portfolio: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("portfolio %s has no data rows", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"ticker", "period", "interval", "zigzag"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("portfolio %s missing %q column", path, name)
		}
	}

	entries := make([]model.PortfolioEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		zigzag, err := strconv.ParseFloat(strings.TrimSpace(row[col["zigzag"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("portfolio row %d: bad zigzag value: %w", i+2, err)
		}
		entries = append(entries, model.PortfolioEntry{
			Ticker:    strings.TrimSpace(row[col["ticker"]]),
			Period:    strings.TrimSpace(row[col["period"]]),
			Interval:  strings.TrimSpace(row[col["interval"]]),
			ZigzagPct: zigzag,
		})
	}
	return entries, nil
}

// Summarize aggregates a batch of per-ticker results.
func Summarize(results []model.PortfolioResult) model.PortfolioSummary {
	sum := model.PortfolioSummary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			sum.Failed++
			continue
		}
		sum.Succeeded++
		if r.Report.Result.Found {
			sum.PatternsFound++
			sum.Matches = append(sum.Matches, r.Report)
		}
	}
	return sum
}
