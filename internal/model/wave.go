package model

import "time"

// PivotKind marks a pivot as a confirmed local high or low.
type PivotKind string

const (
	Peak   PivotKind = "PEAK"
	Trough PivotKind = "TROUGH"
)

// Pivot is a confirmed local price extreme surviving the reversal threshold.
type Pivot struct {
	Index int
	Time  time.Time
	Price float64
	Kind  PivotKind
}

// SwingSeries is the ordered sequence of pivots extracted from one bar
// series under one threshold. Consecutive pivots alternate kind.
type SwingSeries struct {
	Pivots []Pivot
}

// Len returns the number of pivots.
func (s SwingSeries) Len() int { return len(s.Pivots) }

// Last returns the trailing n pivots, or all of them if fewer exist.
func (s SwingSeries) Last(n int) []Pivot {
	if len(s.Pivots) <= n {
		return s.Pivots
	}
	return s.Pivots[len(s.Pivots)-n:]
}

// Trend is the direction of the impulse leg.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
)

// WaveTags are the Elliott tags assigned positionally to the 8-pivot window.
var WaveTags = []string{"1", "2", "3", "4", "5", "A", "B", "C"}

// WaveLabel assigns one Elliott tag to one pivot.
type WaveLabel struct {
	Tag   string
	Pivot Pivot
}

// ClassificationResult is the outcome of one 5-3 labeling pass.
// Labels are populated positionally whenever 8 pivots were available,
// even when Found is false; callers must check Found before treating
// the count as a valid pattern.
type ClassificationResult struct {
	Found  bool
	Trend  Trend
	Labels []WaveLabel
}

// FibLevel is one retracement level.
type FibLevel struct {
	Ratio float64
	Price float64
}

// FibonacciLevels holds the standard retracement levels for one swing.
type FibonacciLevels struct {
	Start  float64
	End    float64
	Levels []FibLevel
}
