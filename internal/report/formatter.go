package report

import (
	"fmt"
	"strings"

	"WaveScope/internal/model"
)

// FormatReport renders one analysis run as plain text.
func FormatReport(rep *model.AnalysisReport) string {
	var b strings.Builder

	b.WriteString("=== WaveScope Report ===\n")
	b.WriteString(fmt.Sprintf("Ticker: %s\n", rep.Ticker))
	b.WriteString(fmt.Sprintf("Last price: %.2f\n", rep.LastPrice))
	b.WriteString(fmt.Sprintf("Period: %s  Interval: %s  ZigZag: %g%%\n", rep.Period, rep.Interval, rep.ZigzagPct))
	b.WriteString(fmt.Sprintf("Swings: %d\n", rep.NumSwings))
	b.WriteString(fmt.Sprintf("Elliott 5-3 pattern found: %t  Trend: %s\n", rep.Result.Found, rep.Result.Trend))

	if len(rep.Result.Labels) > 0 {
		b.WriteString("Labels:\n")
		for _, lb := range rep.Result.Labels {
			b.WriteString(fmt.Sprintf("  %s: %s  %.2f\n", lb.Tag, lb.Pivot.Time.Format("2006-01-02"), lb.Pivot.Price))
		}
	}

	if len(rep.Fib.Levels) > 0 {
		b.WriteString(fmt.Sprintf("Fibonacci retracements (%.2f -> %.2f):\n", rep.Fib.Start, rep.Fib.End))
		for _, lv := range rep.Fib.Levels {
			b.WriteString(fmt.Sprintf("  %.3f: %.2f\n", lv.Ratio, lv.Price))
		}
	}

	return b.String()
}

// FormatSummary renders a portfolio batch summary.
func FormatSummary(sum model.PortfolioSummary) string {
	var b strings.Builder

	b.WriteString("=== Portfolio Summary ===\n")
	b.WriteString(fmt.Sprintf("Total tickers analyzed: %d\n", sum.Total))
	b.WriteString(fmt.Sprintf("Successful analyses: %d\n", sum.Succeeded))
	b.WriteString(fmt.Sprintf("Failed analyses: %d\n", sum.Failed))
	b.WriteString(fmt.Sprintf("Elliott 5-3 patterns found: %d\n", sum.PatternsFound))
	if sum.Succeeded > 0 {
		b.WriteString(fmt.Sprintf("Hit rate: %.1f%%\n", float64(sum.PatternsFound)/float64(sum.Succeeded)*100))
	}

	if len(sum.Matches) > 0 {
		b.WriteString("\nTickers with Elliott 5-3 patterns:\n")
		for _, rep := range sum.Matches {
			b.WriteString(fmt.Sprintf("  - %s: %.2f (%s trend)\n", rep.Ticker, rep.LastPrice, rep.Result.Trend))
		}
	}

	return b.String()
}
