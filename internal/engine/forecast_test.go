package engine

import (
	"math"
	"testing"

	"uacast/internal/model"
)

func testInputs() model.Inputs {
	return model.Inputs{
		MonthlyBudget: 250000,
		CPI:           4.0,
		ARPDAU:        0.25,
		Anchors:       testAnchors(),
	}
}

func TestForecastReferenceScenario(t *testing.T) {
	res := Forecast(testInputs())

	if res.InstallsPerCohort != 62500 {
		t.Fatalf("InstallsPerCohort = %v, want 62500", res.InstallsPerCohort)
	}
	if res.Curve[0] != 1.0 {
		t.Errorf("Curve[0] = %v, want 1.0", res.Curve[0])
	}
	if math.Abs(res.Curve[1]-0.35) > 1e-12 {
		t.Errorf("Curve[1] = %v, want 0.35", res.Curve[1])
	}

	// Day 0: full cohort active at ARPDAU.
	wantDay0 := 62500 * 0.25
	if math.Abs(res.Daily.Gross[0]-wantDay0) > 1e-9 {
		t.Errorf("Gross[0] = %v, want %v", res.Daily.Gross[0], wantDay0)
	}

	// Early ROAS should be a small positive fraction, nowhere near 1.
	week1 := res.ROASAt(7)
	if week1 <= 0 || week1 >= 0.5 {
		t.Errorf("ROAS[7] = %v, want small positive fraction", week1)
	}

	// ROAS is non-decreasing across checkpoints.
	for i := 1; i < len(res.ROAS); i++ {
		if res.ROAS[i].Ratio < res.ROAS[i-1].Ratio {
			t.Errorf("ROAS[%d] = %v < ROAS[%d] = %v",
				res.ROAS[i].Day, res.ROAS[i].Ratio, res.ROAS[i-1].Day, res.ROAS[i-1].Ratio)
		}
	}

	if res.GrossLTV <= 0 {
		t.Errorf("GrossLTV = %v, want positive", res.GrossLTV)
	}
	if math.Abs(res.NetLTV-res.GrossLTV*NetFactor) > 1e-9 {
		t.Errorf("NetLTV = %v, want GrossLTV*%v = %v", res.NetLTV, NetFactor, res.GrossLTV*NetFactor)
	}
}

func TestForecastNetFactorRatio(t *testing.T) {
	res := Forecast(testInputs())

	for d := 0; d <= HorizonDays; d++ {
		want := res.Daily.Gross[d] * NetFactor
		if math.Abs(res.Daily.Net[d]-want) > 1e-12 {
			t.Fatalf("Net[%d] = %v, want %v", d, res.Daily.Net[d], want)
		}
	}
}

func TestForecastZeroCostDegeneracy(t *testing.T) {
	cases := map[string]model.Inputs{
		"zero budget":     {MonthlyBudget: 0, CPI: 4, ARPDAU: 0.25, Anchors: testAnchors()},
		"zero cpi":        {MonthlyBudget: 250000, CPI: 0, ARPDAU: 0.25, Anchors: testAnchors()},
		"negative budget": {MonthlyBudget: -100, CPI: 4, ARPDAU: 0.25, Anchors: testAnchors()},
		"negative cpi":    {MonthlyBudget: 250000, CPI: -4, ARPDAU: 0.25, Anchors: testAnchors()},
	}

	for name, in := range cases {
		res := Forecast(in)
		if res.InstallsPerCohort != 0 {
			t.Errorf("%s: InstallsPerCohort = %v, want 0", name, res.InstallsPerCohort)
		}
		if res.GrossLTV != 0 || res.NetLTV != 0 {
			t.Errorf("%s: LTV = %v/%v, want 0/0", name, res.GrossLTV, res.NetLTV)
		}
		for d := 0; d <= HorizonDays; d++ {
			if res.Daily.Gross[d] != 0 || res.Daily.Net[d] != 0 {
				t.Fatalf("%s: daily revenue not zero at day %d", name, d)
			}
		}
		// Structurally complete regardless of degenerate inputs.
		if len(res.Curve) != HorizonDays+1 || len(res.Monthly.Margin) != HorizonMonths {
			t.Errorf("%s: result not fully populated", name)
		}
	}
}

func TestForecastROASCheckpointClamp(t *testing.T) {
	res := Forecast(testInputs())

	// The day-1080 checkpoint sits exactly at the horizon edge and must
	// read the final cumulative value, not past the slice.
	var total float64
	for _, v := range res.Daily.Net {
		total += v
	}
	want := total / 250000

	if math.Abs(res.ROASAt(1080)-want) > 1e-9 {
		t.Fatalf("ROAS[1080] = %v, want full-horizon %v", res.ROASAt(1080), want)
	}
}

func TestForecastCalendarConservation(t *testing.T) {
	res := Forecast(testInputs())

	// Independently re-derive in-window net revenue: cohort c's day t is
	// kept iff its absolute month is inside the horizon.
	var want float64
	for c := 0; c < HorizonMonths; c++ {
		for d := 0; d <= HorizonDays; d++ {
			if (c*DaysPerMonth+d)/DaysPerMonth < HorizonMonths {
				want += res.Daily.Net[d]
			}
		}
	}

	var got float64
	for _, v := range res.Monthly.RevenueNet {
		got += v
	}

	if math.Abs(got-want) > math.Abs(want)*1e-9 {
		t.Fatalf("sum of monthly net = %v, want %v", got, want)
	}
}

func TestForecastCalendarSpendAndMargin(t *testing.T) {
	res := Forecast(testInputs())

	var cumNet, cumMargin float64
	for m := 0; m < HorizonMonths; m++ {
		if res.Monthly.UASpend[m] != 250000 {
			t.Fatalf("UASpend[%d] = %v, want 250000", m, res.Monthly.UASpend[m])
		}
		wantMargin := res.Monthly.RevenueNet[m] - res.Monthly.UASpend[m]
		if math.Abs(res.Monthly.Margin[m]-wantMargin) > 1e-9 {
			t.Fatalf("Margin[%d] = %v, want %v", m, res.Monthly.Margin[m], wantMargin)
		}
		cumNet += res.Monthly.RevenueNet[m]
		cumMargin += res.Monthly.Margin[m]
		if math.Abs(res.Monthly.CumulativeNet[m]-cumNet) > 1e-9 {
			t.Fatalf("CumulativeNet[%d] = %v, want %v", m, res.Monthly.CumulativeNet[m], cumNet)
		}
		if math.Abs(res.Monthly.CumulativeMargin[m]-cumMargin) > 1e-9 {
			t.Fatalf("CumulativeMargin[%d] = %v, want %v", m, res.Monthly.CumulativeMargin[m], cumMargin)
		}
	}

	// Calendar revenue ramps up as cohorts stack: later months carry more
	// overlapping cohorts than month 0.
	if res.Monthly.RevenueNet[11] <= res.Monthly.RevenueNet[0] {
		t.Errorf("RevenueNet[11] = %v <= RevenueNet[0] = %v, want stacking ramp",
			res.Monthly.RevenueNet[11], res.Monthly.RevenueNet[0])
	}
}

func TestForecastIdempotent(t *testing.T) {
	a := Forecast(testInputs())
	b := Forecast(testInputs())

	if a.InstallsPerCohort != b.InstallsPerCohort || a.GrossLTV != b.GrossLTV {
		t.Fatal("scalar outputs differ between identical evaluations")
	}
	for d := 0; d <= HorizonDays; d++ {
		if a.Curve[d] != b.Curve[d] || a.Daily.Net[d] != b.Daily.Net[d] {
			t.Fatalf("day %d differs between identical evaluations", d)
		}
	}
	for m := 0; m < HorizonMonths; m++ {
		if a.Monthly.RevenueNet[m] != b.Monthly.RevenueNet[m] {
			t.Fatalf("month %d differs between identical evaluations", m)
		}
	}
}

func TestForecastResultsAreIndependent(t *testing.T) {
	a := Forecast(testInputs())
	b := Forecast(testInputs())

	// Mutating one result must not leak into the other.
	a.Daily.Net[0] = -1
	a.Monthly.RevenueNet[0] = -1
	if b.Daily.Net[0] == -1 || b.Monthly.RevenueNet[0] == -1 {
		t.Fatal("evaluations share backing arrays")
	}
}
