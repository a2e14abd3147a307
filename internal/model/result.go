package model

// CohortSeries holds per-day revenue for a single cohort across its own
// lifetime (index 0 = install day). Both slices have HorizonDays+1 entries
// and Net[t] is always Gross[t] scaled by the net revenue factor.
type CohortSeries struct {
	Gross []float64 `json:"gross"`
	Net   []float64 `json:"net"`
}

// CalendarAggregate holds per-calendar-month totals across all cohorts.
// Every slice has one entry per horizon month.
type CalendarAggregate struct {
	UASpend          []float64 `json:"ua_spend"`
	RevenueGross     []float64 `json:"revenue_gross"`
	RevenueNet       []float64 `json:"revenue_net"`
	Margin           []float64 `json:"margin"`
	CumulativeNet    []float64 `json:"cumulative_net"`
	CumulativeMargin []float64 `json:"cumulative_margin"`
}

// ROASEntry is the return ratio at one cohort-age checkpoint: cumulative
// net revenue through Day divided by the cohort's UA spend.
type ROASEntry struct {
	Day   int     `json:"day"`
	Ratio float64 `json:"ratio"`
}

// Result bundles everything one engine evaluation produces. All slices are
// freshly allocated per evaluation and safe to hand to concurrent readers.
type Result struct {
	Curve             []float64         `json:"curve"`
	Daily             CohortSeries      `json:"daily"`
	InstallsPerCohort float64           `json:"installs_per_cohort"`
	GrossLTV          float64           `json:"gross_ltv"`
	NetLTV            float64           `json:"net_ltv"`
	ROAS              []ROASEntry       `json:"roas"`
	Monthly           CalendarAggregate `json:"monthly"`
}

// ROASAt returns the ratio for a checkpoint day, or 0 if the day is not a
// checkpoint.
func (r Result) ROASAt(day int) float64 {
	for _, e := range r.ROAS {
		if e.Day == day {
			return e.Ratio
		}
	}
	return 0
}
