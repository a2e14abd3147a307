package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"uacast/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to uacast!")
	fmt.Println("  Press Enter at any prompt to keep the current value.")
	fmt.Println()

	fmt.Println("  1. Acquisition scenario")
	cfg.Scenario.MonthlyBudget = promptFloat(reader, "Monthly budget", cfg.Scenario.MonthlyBudget)
	cfg.Scenario.CPI = promptFloat(reader, "Cost per install", cfg.Scenario.CPI)
	cfg.Scenario.ARPDAU = promptFloat(reader, "ARPDAU", cfg.Scenario.ARPDAU)
	fmt.Println()

	fmt.Println("  2. Retention anchors (percent, e.g. 35 for 35%)")
	cfg.Retention.D1 = promptFloat(reader, "Day 1", cfg.Retention.D1)
	cfg.Retention.D7 = promptFloat(reader, "Day 7", cfg.Retention.D7)
	cfg.Retention.D14 = promptFloat(reader, "Day 14", cfg.Retention.D14)
	cfg.Retention.D30 = promptFloat(reader, "Day 30", cfg.Retention.D30)
	cfg.Retention.D90 = promptFloat(reader, "Day 90", cfg.Retention.D90)
	cfg.Retention.D180 = promptFloat(reader, "Day 180", cfg.Retention.D180)
	cfg.Retention.D360 = promptFloat(reader, "Day 360", cfg.Retention.D360)
	fmt.Println()

	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Tokyo Night")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "tokyo-night"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `uacast setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// promptFloat asks for a number, keeping the current value on blank or
// unparseable input.
func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%g] > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("     (keeping %g)\n", current)
		return current
	}
	return v
}
