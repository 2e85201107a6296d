package notifier

import (
	"fmt"
	"strings"
	"time"

	"WaveScope/internal/model"
)

// FormatPatternAlert formats a watch-mode alert for tickers whose latest
// scan produced a 5-3 count.
func FormatPatternAlert(matches []*model.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📐 <b>WaveScope pattern scan</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Elliott 5-3 counts found: %d\n", len(matches)))

	for _, rep := range matches {
		b.WriteString(fmt.Sprintf("\n<b>%s</b> (%s trend) @ %.2f\n", rep.Ticker, rep.Result.Trend, rep.LastPrice))
		for _, lb := range rep.Result.Labels {
			b.WriteString(fmt.Sprintf("  %s: %s %.2f\n", lb.Tag, lb.Pivot.Time.Format("2006-01-02"), lb.Pivot.Price))
		}
	}

	return b.String()
}
