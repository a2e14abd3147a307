package engine

import (
	"math"
	"testing"

	"uacast/internal/model"
)

func testAnchors() model.AnchorSet {
	// Percent form, as a user would type them.
	return model.AnchorSet{D1: 35, D7: 12, D14: 8, D30: 5, D90: 3, D180: 2.2, D360: 1.5}
}

func TestBuildCurveShape(t *testing.T) {
	curve := BuildCurve(testAnchors())

	if len(curve) != HorizonDays+1 {
		t.Fatalf("curve length = %d, want %d", len(curve), HorizonDays+1)
	}
	if curve[0] != 1.0 {
		t.Fatalf("curve[0] = %v, want exactly 1.0", curve[0])
	}
}

func TestBuildCurveMonotoneAndBounded(t *testing.T) {
	sets := map[string]model.AnchorSet{
		"typical":    testAnchors(),
		"fractions":  {D1: 0.35, D7: 0.12, D14: 0.08, D30: 0.05, D90: 0.03, D180: 0.022, D360: 0.015},
		"flat":       {D1: 10, D7: 10, D14: 10, D30: 10, D90: 10, D180: 10, D360: 10},
		"zero tail":  {D1: 35, D7: 12, D14: 8, D30: 5, D90: 0, D180: 0, D360: 0},
		"all zero":   {},
		"increasing": {D1: 5, D7: 12, D14: 20, D30: 40, D90: 60, D180: 80, D360: 90},
	}

	for name, set := range sets {
		curve := BuildCurve(set)
		for d := 1; d <= HorizonDays; d++ {
			if curve[d] > curve[d-1] {
				t.Fatalf("%s: curve[%d]=%v > curve[%d]=%v", name, d, curve[d], d-1, curve[d-1])
			}
			if curve[d] < 0 || curve[d] > 1 {
				t.Fatalf("%s: curve[%d]=%v out of [0,1]", name, d, curve[d])
			}
			if math.IsNaN(curve[d]) || math.IsInf(curve[d], 0) {
				t.Fatalf("%s: curve[%d]=%v not finite", name, d, curve[d])
			}
		}
	}
}

func TestBuildCurveHitsAnchors(t *testing.T) {
	curve := BuildCurve(testAnchors())

	want := map[int]float64{1: 0.35, 7: 0.12, 14: 0.08, 30: 0.05, 90: 0.03, 180: 0.022, 360: 0.015}
	for day, value := range want {
		if math.Abs(curve[day]-value) > 1e-12 {
			t.Errorf("curve[%d] = %v, want %v", day, curve[day], value)
		}
	}
}

func TestBuildCurvePercentVsFraction(t *testing.T) {
	pct := BuildCurve(testAnchors())
	frac := BuildCurve(model.AnchorSet{
		D1: 0.35, D7: 0.12, D14: 0.08, D30: 0.05, D90: 0.03, D180: 0.022, D360: 0.015,
	})

	for d := 0; d <= HorizonDays; d++ {
		if math.Abs(pct[d]-frac[d]) > 1e-12 {
			t.Fatalf("day %d: percent form %v != fraction form %v", d, pct[d], frac[d])
		}
	}
}

func TestBuildCurveIncreasingAnchorsClamped(t *testing.T) {
	// Anchors that rise with age are coerced down to the running minimum
	// before interpolation, so D7..D360 all flatten to D1's level.
	curve := BuildCurve(model.AnchorSet{D1: 5, D7: 12, D14: 20, D30: 40, D90: 60, D180: 80, D360: 90})

	for _, day := range model.AnchorDays {
		if math.Abs(curve[day]-0.05) > 1e-12 {
			t.Errorf("curve[%d] = %v, want 0.05 (clamped to D1)", day, curve[day])
		}
	}
}

func TestBuildCurveFlatSegment(t *testing.T) {
	// Equal adjacent anchors produce a flat segment, not a dip.
	curve := BuildCurve(model.AnchorSet{D1: 10, D7: 10, D14: 8, D30: 5, D90: 3, D180: 2.2, D360: 1.5})

	for d := 1; d <= 7; d++ {
		if math.Abs(curve[d]-0.10) > 1e-12 {
			t.Errorf("curve[%d] = %v, want flat 0.10", d, curve[d])
		}
	}
}

func TestBuildCurveExtrapolationDecays(t *testing.T) {
	curve := BuildCurve(testAnchors())

	// The tail decays at the daily rate of the 180->360 segment.
	wantRate := math.Pow(0.015/0.022, 1.0/180)
	for d := 361; d <= 370; d++ {
		got := curve[d] / curve[d-1]
		if math.Abs(got-wantRate) > 1e-9 {
			t.Fatalf("day %d decay rate = %v, want %v", d, got, wantRate)
		}
	}

	if curve[HorizonDays] <= 0 {
		t.Fatalf("curve[%d] = %v, want positive tail", HorizonDays, curve[HorizonDays])
	}
	if curve[HorizonDays] >= curve[360] {
		t.Fatalf("tail did not decay: curve[%d]=%v >= curve[360]=%v",
			HorizonDays, curve[HorizonDays], curve[360])
	}
}

func TestBuildCurveZeroAnchorsFiniteTail(t *testing.T) {
	// An all-zero anchor set must drive the tail to zero without NaNs.
	curve := BuildCurve(model.AnchorSet{})

	if curve[0] != 1.0 {
		t.Fatalf("curve[0] = %v, want 1.0", curve[0])
	}
	for d := 1; d <= HorizonDays; d++ {
		if math.IsNaN(curve[d]) {
			t.Fatalf("curve[%d] is NaN", d)
		}
	}
	if curve[HorizonDays] != 0 {
		t.Fatalf("curve[%d] = %v, want 0", HorizonDays, curve[HorizonDays])
	}
}
