package cmd

import (
	"fmt"

	"uacast/internal/cli"
	"uacast/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Scenario]")
	fmt.Printf("    Monthly budget: %s\n", cli.FormatCost(cfg.Scenario.MonthlyBudget))
	fmt.Printf("    CPI:            %s\n", cli.FormatCost(cfg.Scenario.CPI))
	fmt.Printf("    ARPDAU:         %s\n", cli.FormatCost(cfg.Scenario.ARPDAU))
	fmt.Println()

	fmt.Println("  [Retention]")
	a := cfg.Retention
	fmt.Printf("    D1=%.4g  D7=%.4g  D14=%.4g  D30=%.4g\n", a.D1, a.D7, a.D14, a.D30)
	fmt.Printf("    D90=%.4g  D180=%.4g  D360=%.4g\n", a.D90, a.D180, a.D360)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `uacast setup` to reconfigure.")
	return nil
}
