package wave

import (
	"testing"
	"time"

	"WaveScope/internal/model"
)

func makePivots(prices []float64, first model.PivotKind) model.SwingSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pivots := make([]model.Pivot, len(prices))
	kind := first
	for i, p := range prices {
		pivots[i] = model.Pivot{Index: i * 3, Time: base.AddDate(0, 0, i*3), Price: p, Kind: kind}
		if kind == model.Peak {
			kind = model.Trough
		} else {
			kind = model.Peak
		}
	}
	return model.SwingSeries{Pivots: pivots}
}

func TestClassify_ValidUptrend(t *testing.T) {
	// Ascending 5-3: wave 3 extreme above waves 1 and 5, wave 4 holding
	// above wave 1, correction ending below the impulse top.
	swings := makePivots([]float64{100, 120, 110, 140, 125, 135, 115, 130}, model.Trough)
	res := Classify(swings)

	if !res.Found {
		t.Fatal("expected a valid 5-3 count")
	}
	if res.Trend != model.TrendUp {
		t.Errorf("expected UP trend, got %s", res.Trend)
	}
	if len(res.Labels) != 8 {
		t.Fatalf("expected 8 labels, got %d", len(res.Labels))
	}
	for i, want := range model.WaveTags {
		if res.Labels[i].Tag != want {
			t.Errorf("position %d: expected tag %q, got %q", i, want, res.Labels[i].Tag)
		}
	}
	if res.Labels[3].Pivot.Price != 140 {
		t.Errorf("tag 4 should sit on the 140 pivot, got %.0f", res.Labels[3].Pivot.Price)
	}
}

func TestClassify_ValidDowntrend(t *testing.T) {
	swings := makePivots([]float64{130, 110, 120, 90, 105, 95, 115, 100}, model.Peak)
	res := Classify(swings)

	if !res.Found {
		t.Fatal("expected a valid descending 5-3 count")
	}
	if res.Trend != model.TrendDown {
		t.Errorf("expected DOWN trend, got %s", res.Trend)
	}
}

func TestClassify_WaveFourOverlap(t *testing.T) {
	// Wave 4's trough at 115 drops below wave 1's peak at 120: overlap,
	// the count is rejected but the positional labels remain.
	swings := makePivots([]float64{100, 120, 110, 140, 115, 135, 118, 130}, model.Trough)
	res := Classify(swings)

	if res.Found {
		t.Error("expected overlap to reject the count")
	}
	if res.Trend != model.TrendUp {
		t.Errorf("expected UP trend, got %s", res.Trend)
	}
	if len(res.Labels) != 8 {
		t.Errorf("expected diagnostic labels despite rejection, got %d", len(res.Labels))
	}
}

func TestClassify_WaveThreeNotExtension(t *testing.T) {
	// Wave 5 finishing above wave 3 fails the extension rule.
	swings := makePivots([]float64{100, 120, 110, 140, 125, 145, 120, 135}, model.Trough)
	res := Classify(swings)
	if res.Found {
		t.Error("expected count rejection when wave 3 is not the highest extreme")
	}
}

func TestClassify_CorrectionAboveImpulseTop(t *testing.T) {
	// The bounce past 135 leaves the correction above the impulse extreme.
	swings := makePivots([]float64{100, 120, 110, 140, 125, 135, 115, 138}, model.Trough)
	res := Classify(swings)
	if res.Found {
		t.Error("expected count rejection when the correction exceeds the impulse extreme")
	}
}

func TestClassify_InsufficientPivots(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		first  model.PivotKind
		trend  model.Trend
	}{
		{"empty", nil, model.Trough, model.TrendUp},
		{"single", []float64{100}, model.Trough, model.TrendUp},
		{"rising pair", []float64{100, 110}, model.Trough, model.TrendUp},
		{"falling pair", []float64{110, 100}, model.Peak, model.TrendDown},
		{"seven pivots", []float64{100, 120, 110, 140, 125, 135, 115}, model.Trough, model.TrendUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(makePivots(tt.prices, tt.first))
			if res.Found {
				t.Error("insufficient data must never report a pattern")
			}
			if res.Trend != tt.trend {
				t.Errorf("expected trend %s, got %s", tt.trend, res.Trend)
			}
			if len(res.Labels) != 0 {
				t.Errorf("expected empty labels, got %d", len(res.Labels))
			}
		})
	}
}

func TestClassify_BrokenAlternationRejected(t *testing.T) {
	swings := makePivots([]float64{100, 120, 110, 140, 125, 135, 115, 130}, model.Trough)
	swings.Pivots[4].Kind = swings.Pivots[3].Kind
	if res := Classify(swings); res.Found {
		t.Error("expected rejection when the window does not alternate")
	}
}

func TestClassify_UsesTrailingWindowOnly(t *testing.T) {
	// Two junk pivots ahead of a valid 8-pivot pattern must not matter.
	prices := []float64{500, 50, 100, 120, 110, 140, 125, 135, 115, 130}
	swings := makePivots(prices, model.Trough)
	res := Classify(swings)
	if !res.Found {
		t.Fatal("expected the trailing 8 pivots to classify on their own")
	}
	if res.Labels[0].Pivot.Price != 100 {
		t.Errorf("window should start at the 100 pivot, got %.0f", res.Labels[0].Pivot.Price)
	}
}
