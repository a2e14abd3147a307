package scenario

import (
	"sync/atomic"
	"testing"

	"uacast/internal/engine"
	"uacast/internal/model"
)

func testScenarios() []Scenario {
	anchors := model.AnchorSet{D1: 35, D7: 12, D14: 8, D30: 5, D90: 3, D180: 2.2, D360: 1.5}
	return []Scenario{
		{Name: "base", MonthlyBudget: 250000, CPI: 4.0, ARPDAU: 0.25, Retention: anchors},
		{Name: "lean", MonthlyBudget: 50000, CPI: 2.0, ARPDAU: 0.10, Retention: anchors},
		{Name: "zero", MonthlyBudget: 0, CPI: 4.0, ARPDAU: 0.25, Retention: anchors},
	}
}

func TestRunMatchesDirectEvaluation(t *testing.T) {
	scenarios := testScenarios()
	outcomes := Run(scenarios, 2, nil)

	if len(outcomes) != len(scenarios) {
		t.Fatalf("outcome count = %d, want %d", len(outcomes), len(scenarios))
	}

	for i, o := range outcomes {
		if o.Scenario.Name != scenarios[i].Name {
			t.Fatalf("outcome %d is %q, want input order %q", i, o.Scenario.Name, scenarios[i].Name)
		}
		want := engine.Forecast(scenarios[i].Inputs())
		if o.Result.InstallsPerCohort != want.InstallsPerCohort {
			t.Errorf("%s: installs = %v, want %v",
				o.Scenario.Name, o.Result.InstallsPerCohort, want.InstallsPerCohort)
		}
		if o.Result.NetLTV != want.NetLTV {
			t.Errorf("%s: NetLTV = %v, want %v", o.Scenario.Name, o.Result.NetLTV, want.NetLTV)
		}
	}

	if outcomes[2].Result.InstallsPerCohort != 0 {
		t.Errorf("zero-budget scenario installs = %v, want 0", outcomes[2].Result.InstallsPerCohort)
	}
}

func TestRunReportsProgress(t *testing.T) {
	var calls atomic.Int64
	var sawTotal atomic.Bool

	Run(testScenarios(), 3, func(done, total int) {
		calls.Add(1)
		if done == total {
			sawTotal.Store(true)
		}
	})

	if calls.Load() != 3 {
		t.Errorf("progress calls = %d, want 3", calls.Load())
	}
	if !sawTotal.Load() {
		t.Error("progress never reported completion")
	}
}

func TestRunEmptyAndDefaults(t *testing.T) {
	if out := Run(nil, 4, nil); out != nil {
		t.Errorf("Run(nil) = %v, want nil", out)
	}

	// workers <= 0 falls back to GOMAXPROCS.
	out := Run(testScenarios(), 0, nil)
	if len(out) != 3 {
		t.Fatalf("outcome count = %d, want 3", len(out))
	}
}
