package collector

import "WaveScope/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchBars returns the ordered close-price bars for a symbol over a
	// range like "2y" at an interval like "1d". An empty result is a
	// valid outcome, not an error.
	FetchBars(symbol, period, interval string) ([]model.OHLCV, error)
	Name() string
}
