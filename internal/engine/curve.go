// Package engine implements the uacast forecasting core: retention curve
// construction and cohort revenue projection. Both entry points are pure,
// total functions — any input combination produces a structurally complete,
// finite result and never panics.
package engine

import (
	"math"

	"uacast/internal/model"
)

// Horizon and payout constants. These are fixed configuration of the
// model, not runtime inputs.
const (
	HorizonMonths = 36
	DaysPerMonth  = 30
	HorizonDays   = HorizonMonths * DaysPerMonth

	// NetFactor is the share of gross revenue left after platform and
	// store fees.
	NetFactor = 0.7

	// decayFloor is the minimum base used for the geometric interpolation
	// and extrapolation ratios. An anchor of exactly 0 decays from this
	// floor instead of dividing by zero.
	decayFloor = 1e-9
)

// ROASCheckpoints are the cohort ages at which return on ad spend is
// reported. Checkpoints past the horizon clamp to the final day.
var ROASCheckpoints = []int{7, 30, 90, 180, 360, 720, 1080}

// BuildCurve expands sparse retention anchors into a dense daily curve of
// HorizonDays+1 entries. curve[0] is exactly 1.0, the series is monotone
// non-increasing, and every value lies in [0,1].
func BuildCurve(set model.AnchorSet) []float64 {
	anchors := normalizeAnchors(set)

	curve := make([]float64, HorizonDays+1)
	curve[0] = 1.0

	// Day 0 at 100% acts as an implicit leading anchor.
	prev := model.Anchor{Day: 0, Value: 1.0}
	for _, a := range anchors {
		interpolateSegment(curve, prev, a)
		prev = a
	}

	// Past the last anchor the curve decays at the daily rate of the
	// final anchor segment.
	last := anchors[len(anchors)-1]
	rate := dailyDecayRate(anchors[len(anchors)-2], last)
	for t := last.Day + 1; t <= HorizonDays; t++ {
		curve[t] = curve[t-1] * rate
	}

	// Re-assert the invariant: interpolation rounding or a degenerate
	// anchor pair must never produce an increase or leave [0,1].
	for t := 1; t <= HorizonDays; t++ {
		v := math.Max(0, curve[t])
		curve[t] = math.Min(curve[t-1], v)
	}

	return curve
}

// normalizeAnchors converts each anchor to a fraction in [0,1] and clamps
// it to be no greater than its predecessor, so the anchors themselves are
// monotone before any interpolation happens.
func normalizeAnchors(set model.AnchorSet) []model.Anchor {
	anchors := set.Pairs()
	ceiling := 1.0
	for i, a := range anchors {
		v := a.Value
		if v > 1 {
			v /= 100
		}
		v = math.Max(0, math.Min(1, v))
		if v > ceiling {
			v = ceiling
		}
		ceiling = v
		anchors[i].Value = v
	}
	return anchors
}

// interpolateSegment fills curve[a.Day..b.Day] with a geometric walk from
// a.Value to b.Value: a straight line in log-retention space.
func interpolateSegment(curve []float64, a, b model.Anchor) {
	span := float64(b.Day - a.Day)
	base := math.Max(a.Value, decayFloor)
	ratio := b.Value / base
	for t := a.Day; t <= b.Day && t <= HorizonDays; t++ {
		r := float64(t-a.Day) / span
		v := base * math.Pow(ratio, r)
		curve[t] = math.Max(0, math.Min(1, v))
	}
}

// dailyDecayRate returns the constant per-day multiplier implied by the
// segment from a to b: the (b-a)-th root of the retention ratio.
func dailyDecayRate(a, b model.Anchor) float64 {
	base := math.Max(a.Value, decayFloor)
	return math.Pow(b.Value/base, 1/float64(b.Day-a.Day))
}
