package wave

import (
	"errors"
	"math"

	"WaveScope/internal/model"
)

// ErrNonFinite is returned when a swing bound is NaN or infinite.
var ErrNonFinite = errors.New("fibonacci bounds must be finite")

// FibRatios are the standard retracement ratios, in display order.
var FibRatios = []float64{0.236, 0.382, 0.5, 0.618, 0.786, 1.0}

// Retracements computes the standard Fibonacci retracement levels for a
// swing from start to end. Each level projects from the end of the swing
// back toward its start:
//
//	level(r) = end - (end-start)*r
//
// so ratio 0 is the swing end and ratio 1 is the swing start. Direction
// follows the sign of end-start; no other failure modes exist.
func Retracements(start, end float64) (model.FibonacciLevels, error) {
	if !finite(start) || !finite(end) {
		return model.FibonacciLevels{}, ErrNonFinite
	}

	levels := make([]model.FibLevel, len(FibRatios))
	for i, r := range FibRatios {
		levels[i] = model.FibLevel{Ratio: r, Price: Retrace(start, end, r)}
	}
	return model.FibonacciLevels{Start: start, End: end, Levels: levels}, nil
}

// Retrace returns the single retracement price for one ratio.
func Retrace(start, end, ratio float64) float64 {
	return end - (end-start)*ratio
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
