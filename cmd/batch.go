package cmd

import (
	"fmt"

	"uacast/internal/cli"
	"uacast/internal/export"
	"uacast/internal/scenario"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	flagBatchWorkers int
	flagBatchOut     string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.toml>",
	Short: "Evaluate many scenarios from a batch file",
	Long: "Evaluate every [[scenario]] block in a TOML batch file in parallel\n" +
		"and print a comparison table. With --out, each scenario's daily and\n" +
		"monthly sheets are also written as CSV.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&flagBatchWorkers, "workers", "w", 0, "Worker count (0 = all CPUs)")
	batchCmd.Flags().StringVarP(&flagBatchOut, "out", "o", "", "Directory for per-scenario CSV sheets")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	scenarios, err := scenario.LoadFile(args[0])
	if err != nil {
		return err
	}

	var progressFn scenario.ProgressFunc
	var bar *progressbar.ProgressBar
	if !flagQuiet {
		bar = progressbar.Default(int64(len(scenarios)))
		progressFn = func(_, _ int) {
			_ = bar.Add(1)
		}
	}

	outcomes := scenario.Run(scenarios, flagBatchWorkers, progressFn)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO COMPARISON  %d scenarios", len(outcomes))))
	fmt.Println()

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		final := o.Result.Monthly.CumulativeMargin[len(o.Result.Monthly.CumulativeMargin)-1]
		finalCell := cli.FormatCost(final)
		if final >= 0 {
			finalCell = cli.Good(finalCell)
		} else {
			finalCell = cli.Bad(finalCell)
		}
		rows = append(rows, []string{
			o.Scenario.Name,
			cli.FormatInstalls(o.Result.InstallsPerCohort),
			cli.FormatCost(o.Result.GrossLTV),
			cli.FormatCost(o.Result.NetLTV),
			cli.FormatMultiple(o.Result.ROASAt(360)),
			finalCell,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Installs/mo", "Gross LTV", "Net LTV", "ROAS D360", "Final Margin"},
		Rows:    rows,
	}))

	if flagBatchOut != "" {
		for _, o := range outcomes {
			daily, monthly, err := export.WriteFiles(flagBatchOut, o.Scenario.Name, o.Result)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", o.Scenario.Name, err)
			}
			if !flagQuiet {
				fmt.Printf("  Wrote %s, %s\n", daily, monthly)
			}
		}
	}

	return nil
}
