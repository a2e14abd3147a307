// Package model defines domain types shared by the uacast engine and its
// presentation surfaces.
package model

// AnchorDays are the cohort ages (in days) at which retention is observed.
var AnchorDays = []int{1, 7, 14, 30, 90, 180, 360}

// AnchorSet holds observed retention at the fixed anchor ages. Values may
// be entered as percentages (35 for 35%) or fractions (0.35); anything
// greater than 1 is treated as a percentage and divided by 100.
type AnchorSet struct {
	D1   float64 `json:"d1" toml:"d1"`
	D7   float64 `json:"d7" toml:"d7"`
	D14  float64 `json:"d14" toml:"d14"`
	D30  float64 `json:"d30" toml:"d30"`
	D90  float64 `json:"d90" toml:"d90"`
	D180 float64 `json:"d180" toml:"d180"`
	D360 float64 `json:"d360" toml:"d360"`
}

// Anchor is a single (cohort age, retention value) control point.
type Anchor struct {
	Day   int
	Value float64
}

// Pairs returns the anchors as (day, value) pairs ordered by day ascending.
func (a AnchorSet) Pairs() []Anchor {
	return []Anchor{
		{Day: 1, Value: a.D1},
		{Day: 7, Value: a.D7},
		{Day: 14, Value: a.D14},
		{Day: 30, Value: a.D30},
		{Day: 90, Value: a.D90},
		{Day: 180, Value: a.D180},
		{Day: 360, Value: a.D360},
	}
}

// Inputs is the complete parameter set for one forecast evaluation.
// Every downstream figure is a pure function of these values.
type Inputs struct {
	MonthlyBudget float64   `json:"monthly_budget" toml:"monthly_budget"`
	CPI           float64   `json:"cpi" toml:"cpi"`
	ARPDAU        float64   `json:"arpdau" toml:"arpdau"`
	Anchors       AnchorSet `json:"anchors" toml:"retention"`
}
