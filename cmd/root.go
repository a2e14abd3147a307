// Package cmd implements the uacast CLI commands.
package cmd

import (
	"os"

	"uacast/internal/config"
	"uacast/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBudget float64
	flagCPI    float64
	flagARPDAU float64
	flagD1     float64
	flagD7     float64
	flagD14    float64
	flagD30    float64
	flagD90    float64
	flagD180   float64
	flagD360   float64
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "uacast",
	Short: "UA spend forecasting CLI",
	Long: "Model the economics of a recurring monthly user-acquisition spend:\n" +
		"retention curves, cohort LTV, ROAS checkpoints, and 36-month\ncalendar projections.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the composite literal: runForecast
	// reaches resolveInputs, which reads rootCmd's flags.
	rootCmd.RunE = runForecast

	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagBudget, "budget", "b", 0, "Monthly UA budget")
	pf.Float64VarP(&flagCPI, "cpi", "c", 0, "Cost per install")
	pf.Float64VarP(&flagARPDAU, "arpdau", "a", 0, "Average daily revenue per active user")
	pf.Float64Var(&flagD1, "d1", 0, "Day-1 retention (percent or fraction)")
	pf.Float64Var(&flagD7, "d7", 0, "Day-7 retention")
	pf.Float64Var(&flagD14, "d14", 0, "Day-14 retention")
	pf.Float64Var(&flagD30, "d30", 0, "Day-30 retention")
	pf.Float64Var(&flagD90, "d90", 0, "Day-90 retention")
	pf.Float64Var(&flagD180, "d180", 0, "Day-180 retention")
	pf.Float64Var(&flagD360, "d360", 0, "Day-360 retention")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// resolveInputs builds the scenario from config, with any explicitly set
// flag overriding its configured value.
func resolveInputs() model.Inputs {
	cfg, _ := config.Load()
	in := cfg.Inputs()

	pf := rootCmd.PersistentFlags()
	if pf.Changed("budget") {
		in.MonthlyBudget = flagBudget
	}
	if pf.Changed("cpi") {
		in.CPI = flagCPI
	}
	if pf.Changed("arpdau") {
		in.ARPDAU = flagARPDAU
	}

	overrides := map[string]struct {
		flag  float64
		field *float64
	}{
		"d1":   {flagD1, &in.Anchors.D1},
		"d7":   {flagD7, &in.Anchors.D7},
		"d14":  {flagD14, &in.Anchors.D14},
		"d30":  {flagD30, &in.Anchors.D30},
		"d90":  {flagD90, &in.Anchors.D90},
		"d180": {flagD180, &in.Anchors.D180},
		"d360": {flagD360, &in.Anchors.D360},
	}
	for name, o := range overrides {
		if pf.Changed(name) {
			*o.field = o.flag
		}
	}

	return in
}
