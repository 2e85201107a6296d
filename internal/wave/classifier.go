package wave

import "WaveScope/internal/model"

// patternWindow is the number of trailing pivots a 5-3 count is tested
// against. Older pivots carry no weight in the labeling pass.
const patternWindow = 8

// Classify tests the trailing 8 pivots of a swing series against the
// Elliott 5-3 impulse/correction shape and assigns the tags 1..5,A,B,C
// in pivot order. The labeling is positional: the classifier validates a
// single candidate count, it does not search for one.
//
// Fewer than 8 pivots is a normal insufficient-data outcome, not an
// error: Found is false, Trend is a best effort from whatever pivots
// exist (UP when fewer than two), and Labels is empty.
func Classify(swings model.SwingSeries) model.ClassificationResult {
	if swings.Len() < patternWindow {
		return model.ClassificationResult{
			Found: false,
			Trend: bestEffortTrend(swings.Pivots),
		}
	}

	pts := swings.Last(patternWindow)

	labels := make([]model.WaveLabel, patternWindow)
	for i, p := range pts {
		labels[i] = model.WaveLabel{Tag: model.WaveTags[i], Pivot: p}
	}

	trend := model.TrendUp
	if pts[1].Price <= pts[0].Price {
		trend = model.TrendDown
	}

	found := alternates(pts) && structureHolds(pts, trend)

	return model.ClassificationResult{
		Found:  found,
		Trend:  trend,
		Labels: labels,
	}
}

func bestEffortTrend(pivots []model.Pivot) model.Trend {
	if len(pivots) < 2 {
		return model.TrendUp
	}
	if pivots[1].Price > pivots[0].Price {
		return model.TrendUp
	}
	return model.TrendDown
}

// alternates re-validates the extractor's alternation invariant at the
// boundary of the window slice.
func alternates(pts []model.Pivot) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i].Kind == pts[i-1].Kind {
			return false
		}
	}
	return true
}

// structureHolds applies the 5-3 plausibility rules to the windowed
// pivots. The window is read as the pattern origin p0 followed by the
// extremes of waves 1..5, A and B; wave C is still in progress past the
// last confirmed pivot.
//
// For an uptrend:
//   - every leg must move in its expected direction (impulse legs with
//     the trend, waves 2 and 4 against it, A down, B up);
//   - wave 3's extreme is the highest of waves 1, 3 and 5, wave 3 being
//     the extension wave;
//   - wave 4 must not retrace into wave 1's territory (no-overlap);
//   - the correction must stay below the impulse extreme.
//
// The downtrend rules are the exact mirror.
func structureHolds(pts []model.Pivot, trend model.Trend) bool {
	p := make([]float64, len(pts))
	for i, pt := range pts {
		p[i] = pt.Price
	}

	if trend == model.TrendUp {
		impulse := p[1] > p[0] && p[2] < p[1] && p[3] > p[2] && p[4] < p[3] && p[5] > p[4]
		correction := p[6] < p[5] && p[7] > p[6]
		extension := p[3] > p[1] && p[3] > p[5]
		noOverlap := p[4] > p[1]
		bounded := p[7] < p[5]
		return impulse && correction && extension && noOverlap && bounded
	}

	impulse := p[1] < p[0] && p[2] > p[1] && p[3] < p[2] && p[4] > p[3] && p[5] < p[4]
	correction := p[6] > p[5] && p[7] < p[6]
	extension := p[3] < p[1] && p[3] < p[5]
	noOverlap := p[4] < p[1]
	bounded := p[7] > p[5]
	return impulse && correction && extension && noOverlap && bounded
}
