package cmd

import (
	"fmt"

	"uacast/internal/cli"
	"uacast/internal/engine"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Calendar-month P&L table",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	res := engine.Forecast(resolveInputs())
	monthly := res.Monthly

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY P&L  one cohort launched per month"))
	fmt.Println()

	rows := make([][]string, 0, engine.HorizonMonths)
	for m := 0; m < engine.HorizonMonths; m++ {
		margin := cli.FormatCost(monthly.Margin[m])
		if monthly.Margin[m] >= 0 {
			margin = cli.Good(margin)
		} else {
			margin = cli.Bad(margin)
		}
		rows = append(rows, []string{
			cli.FormatMonth(m),
			cli.FormatCost(monthly.UASpend[m]),
			cli.FormatCost(monthly.RevenueGross[m]),
			cli.FormatCost(monthly.RevenueNet[m]),
			margin,
			cli.FormatCost(monthly.CumulativeNet[m]),
			cli.FormatCost(monthly.CumulativeMargin[m]),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Spend", "Gross", "Net", "Margin", "Cum Net", "Cum Margin"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Net revenue   %s\n", cli.RenderSparkline(monthly.RevenueNet))
	fmt.Printf("  Margin        %s\n", cli.RenderSparkline(monthly.Margin))
	fmt.Println()

	return nil
}
