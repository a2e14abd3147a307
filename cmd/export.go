package cmd

import (
	"fmt"

	"uacast/internal/engine"
	"uacast/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportDir    string
	flagExportPrefix string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write daily and monthly CSV sheets",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportDir, "out", "o", ".", "Output directory")
	exportCmd.Flags().StringVar(&flagExportPrefix, "prefix", "uacast", "Output file prefix")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	res := engine.Forecast(resolveInputs())

	daily, monthly, err := export.WriteFiles(flagExportDir, flagExportPrefix, res)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Wrote %s\n", daily)
		fmt.Printf("  Wrote %s\n", monthly)
	}

	return nil
}
