package cmd

import (
	"fmt"

	"uacast/internal/cli"
	"uacast/internal/engine"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Cohort KPIs and ROAS checkpoints",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	in := resolveInputs()
	res := engine.Forecast(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle("UA FORECAST  36-month horizon"))
	fmt.Println()

	rows := [][]string{
		{"Monthly Budget", cli.FormatCost(in.MonthlyBudget)},
		{"CPI", cli.FormatCost(in.CPI)},
		{"ARPDAU", cli.FormatCost(in.ARPDAU)},
		{"---"},
		{"Installs / cohort", cli.FormatInstalls(res.InstallsPerCohort)},
		{"Gross LTV", cli.FormatCost(res.GrossLTV)},
		{"Net LTV", cli.FormatCost(res.NetLTV)},
		{"---"},
		{"Payback month", paybackLabel(res.Monthly.CumulativeMargin)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	roasRows := make([][]string, 0, len(res.ROAS))
	for _, e := range res.ROAS {
		value := cli.FormatMultiple(e.Ratio)
		if e.Ratio >= 1 {
			value = cli.Good(value)
		}
		roasRows = append(roasRows, []string{cli.FormatDay(e.Day), value})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "ROAS (net revenue / spend)",
		Headers: []string{"Cohort Age", "ROAS"},
		Rows:    roasRows,
	}))

	return nil
}

// paybackLabel reports the first calendar month where cumulative margin
// turns non-negative, or "beyond horizon" if it never does.
func paybackLabel(cumMargin []float64) string {
	for m, v := range cumMargin {
		if v >= 0 {
			return cli.FormatMonth(m)
		}
	}
	return "beyond horizon"
}
