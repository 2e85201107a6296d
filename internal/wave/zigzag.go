package wave

import (
	"errors"

	"WaveScope/internal/model"
)

// ErrInvalidThreshold is returned when the reversal threshold is not positive.
var ErrInvalidThreshold = errors.New("zigzag threshold must be positive")

// ErrUnsortedBars is returned when the bar series is not strictly increasing in time.
var ErrUnsortedBars = errors.New("bars must be sorted by strictly increasing time")

type seekDirection int

const (
	seekNone seekDirection = iota
	seekPeak
	seekTrough
)

// Extract compresses a bar series into a ZigZag swing series: an ordered
// sequence of alternating peak/trough pivots, where each pivot survived a
// reversal of at least thresholdPct percent (measured against the candidate
// extreme price). Only confirmed reversals become pivots; an in-progress
// move at the end of the series is discarded.
//
// A series with fewer than 2 bars yields an empty SwingSeries. A non-positive
// threshold or an unsorted series is a contract violation.
func Extract(bars []model.OHLCV, thresholdPct float64) (model.SwingSeries, error) {
	if thresholdPct <= 0 {
		return model.SwingSeries{}, ErrInvalidThreshold
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return model.SwingSeries{}, ErrUnsortedBars
		}
	}
	if len(bars) < 2 {
		return model.SwingSeries{}, nil
	}

	var pivots []model.Pivot
	candIdx := 0
	candPrice := bars[0].Close
	dir := seekNone

	confirm := func(kind model.PivotKind) {
		pivots = append(pivots, model.Pivot{
			Index: candIdx,
			Time:  bars[candIdx].Time,
			Price: candPrice,
			Kind:  kind,
		})
	}

	for i := 1; i < len(bars); i++ {
		price := bars[i].Close
		dev := (price - candPrice) / candPrice * 100

		switch dir {
		case seekNone:
			// First move of threshold size fixes the direction and confirms
			// the starting extreme as the opposite-kind pivot.
			if dev >= thresholdPct {
				confirm(model.Trough)
				dir = seekPeak
				candIdx, candPrice = i, price
			} else if dev <= -thresholdPct {
				confirm(model.Peak)
				dir = seekTrough
				candIdx, candPrice = i, price
			}
		case seekPeak:
			if price > candPrice {
				// Still extending: the candidate peak moves forward.
				candIdx, candPrice = i, price
			} else if -dev >= thresholdPct {
				confirm(model.Peak)
				dir = seekTrough
				candIdx, candPrice = i, price
			}
		case seekTrough:
			if price < candPrice {
				candIdx, candPrice = i, price
			} else if dev >= thresholdPct {
				confirm(model.Trough)
				dir = seekPeak
				candIdx, candPrice = i, price
			}
		}
	}

	// The trailing candidate was never confirmed by a further reversal,
	// so it is dropped: confirmed swings only.
	return model.SwingSeries{Pivots: pivots}, nil
}
