package engine

import "uacast/internal/model"

// Forecast evaluates the full model for one scenario: retention curve,
// per-day cohort revenue, LTV scalars, ROAS checkpoints, and the calendar
// aggregation of one cohort launched per month across the horizon.
func Forecast(in model.Inputs) model.Result {
	return ForecastWithCurve(in, BuildCurve(in.Anchors))
}

// ForecastWithCurve is Forecast with a pre-built retention curve, keeping
// the curve builder and the cohort engine independently testable. The
// curve must have HorizonDays+1 entries.
func ForecastWithCurve(in model.Inputs, curve []float64) model.Result {
	// A zero or negative budget or CPI means no installs; every per-user
	// figure degrades to zero instead of dividing by zero.
	installs := 0.0
	if in.MonthlyBudget > 0 && in.CPI > 0 {
		installs = in.MonthlyBudget / in.CPI
	}

	gross := make([]float64, HorizonDays+1)
	net := make([]float64, HorizonDays+1)
	var totalGross float64
	for t := 0; t <= HorizonDays; t++ {
		g := installs * curve[t] * in.ARPDAU
		gross[t] = g
		net[t] = g * NetFactor
		totalGross += g
	}

	// LTV per install; the denominator floor keeps the zero-install case
	// defined (0 revenue / 1 = 0).
	denom := installs
	if denom < 1 {
		denom = 1
	}
	grossLTV := totalGross / denom
	netLTV := grossLTV * NetFactor

	return model.Result{
		Curve:             curve,
		Daily:             model.CohortSeries{Gross: gross, Net: net},
		InstallsPerCohort: installs,
		GrossLTV:          grossLTV,
		NetLTV:            netLTV,
		ROAS:              roasTable(in.MonthlyBudget, net),
		Monthly:           aggregateCalendar(in.MonthlyBudget, gross, net),
	}
}

// roasTable computes cumulative net revenue through each checkpoint day,
// expressed as a multiple of the cohort's UA spend.
func roasTable(budget float64, net []float64) []model.ROASEntry {
	cum := make([]float64, len(net))
	running := 0.0
	for t, v := range net {
		running += v
		cum[t] = running
	}

	table := make([]model.ROASEntry, 0, len(ROASCheckpoints))
	for _, day := range ROASCheckpoints {
		idx := day
		if idx > HorizonDays {
			idx = HorizonDays
		}
		ratio := 0.0
		if budget > 0 {
			ratio = cum[idx] / budget
		}
		table = append(table, model.ROASEntry{Day: day, Ratio: ratio})
	}
	return table
}

// aggregateCalendar folds one cohort per launch month into calendar-month
// totals. Cohort c's lifetime day t lands in absolute month
// (c*DaysPerMonth+t)/DaysPerMonth; t only increases, so once that month
// passes the horizon no later day can land back inside and the inner loop
// exits early.
func aggregateCalendar(budget float64, gross, net []float64) model.CalendarAggregate {
	agg := model.CalendarAggregate{
		UASpend:          make([]float64, HorizonMonths),
		RevenueGross:     make([]float64, HorizonMonths),
		RevenueNet:       make([]float64, HorizonMonths),
		Margin:           make([]float64, HorizonMonths),
		CumulativeNet:    make([]float64, HorizonMonths),
		CumulativeMargin: make([]float64, HorizonMonths),
	}

	for c := 0; c < HorizonMonths; c++ {
		// Spend always lands in the cohort's own launch month.
		agg.UASpend[c] += budget

		for t := 0; t < len(gross); t++ {
			m := (c*DaysPerMonth + t) / DaysPerMonth
			if m >= HorizonMonths {
				break
			}
			agg.RevenueGross[m] += gross[t]
			agg.RevenueNet[m] += net[t]
		}
	}

	var cumNet, cumMargin float64
	for m := 0; m < HorizonMonths; m++ {
		agg.Margin[m] = agg.RevenueNet[m] - agg.UASpend[m]
		cumNet += agg.RevenueNet[m]
		cumMargin += agg.Margin[m]
		agg.CumulativeNet[m] = cumNet
		agg.CumulativeMargin[m] = cumMargin
	}

	return agg
}
