package cmd

import (
	"fmt"

	"uacast/internal/cli"
	"uacast/internal/engine"
	"uacast/internal/model"

	"github.com/spf13/cobra"
)

var flagCurveEvery int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Dense retention curve from the sparse anchors",
	RunE:  runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&flagCurveEvery, "every", 30, "Print one row every N days")
	rootCmd.AddCommand(curveCmd)
}

func runCurve(_ *cobra.Command, _ []string) error {
	in := resolveInputs()
	curve := engine.BuildCurve(in.Anchors)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RETENTION CURVE  day 0 to 1080"))
	fmt.Println()

	anchorRows := make([][]string, 0, len(model.AnchorDays))
	for _, day := range model.AnchorDays {
		anchorRows = append(anchorRows, []string{
			cli.FormatDay(day),
			cli.FormatRetention(curve[day]),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Anchors (normalized)",
		Headers: []string{"Day", "Retained"},
		Rows:    anchorRows,
	}))
	fmt.Println()

	every := flagCurveEvery
	if every < 1 {
		every = 1
	}
	rows := make([][]string, 0, engine.HorizonDays/every+1)
	for d := 0; d <= engine.HorizonDays; d += every {
		rows = append(rows, []string{
			cli.FormatDay(d),
			cli.FormatRetention(curve[d]),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Curve (every %d days)", every),
		Headers: []string{"Day", "Retained"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(cli.Downsample(curve, 60)))
	fmt.Println()

	return nil
}
