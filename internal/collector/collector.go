package collector

import (
	"time"

	"WaveScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_, _, _ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// BarsFromCloses builds a daily bar series from close prices, for
// fixtures and synthetic runs.
func BarsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	base := time.Now().AddDate(0, 0, -len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   c * 0.999,
			High:   c * 1.005,
			Low:    c * 0.995,
			Close:  c,
			Volume: 1000000,
		}
	}
	return bars
}
