package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"

	"WaveScope/internal/model"
)

// WriteResults writes one CSV row per ticker, with per-wave date and
// price columns populated when a labeling exists.
func WriteResults(path string, results []model.PortfolioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"ticker", "last_price", "period", "interval", "zigzag_pct",
		"num_swings", "elliott_5_3_match", "trend", "analysis_date", "status",
	}
	for _, tag := range model.WaveTags {
		header = append(header, "wave_"+tag+"_date", "wave_"+tag+"_price")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		if err := w.Write(resultRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func resultRow(r model.PortfolioResult) []string {
	if r.Err != nil {
		row := []string{
			r.Entry.Ticker, "0", r.Entry.Period, r.Entry.Interval,
			fmt.Sprintf("%g", r.Entry.ZigzagPct),
			"0", "false", "", "", "Error: " + r.Err.Error(),
		}
		for range model.WaveTags {
			row = append(row, "", "")
		}
		return row
	}

	rep := r.Report
	row := []string{
		rep.Ticker,
		fmt.Sprintf("%.2f", rep.LastPrice),
		rep.Period,
		rep.Interval,
		fmt.Sprintf("%g", rep.ZigzagPct),
		fmt.Sprintf("%d", rep.NumSwings),
		fmt.Sprintf("%t", rep.Result.Found),
		string(rep.Result.Trend),
		rep.AnalyzedAt.Format("2006-01-02 15:04:05"),
		"Success",
	}
	byTag := map[string]model.WaveLabel{}
	for _, lb := range rep.Result.Labels {
		byTag[lb.Tag] = lb
	}
	for _, tag := range model.WaveTags {
		if lb, ok := byTag[tag]; ok {
			row = append(row, lb.Pivot.Time.Format("2006-01-02"), fmt.Sprintf("%.2f", lb.Pivot.Price))
		} else {
			row = append(row, "", "")
		}
	}
	return row
}
