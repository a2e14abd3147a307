// Package export writes forecast results as CSV sheets for spreadsheet
// hand-off: one row per cohort-lifetime day and one row per calendar month.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"uacast/internal/model"
)

// WriteDailySheet writes the per-day cohort sheet: retention and revenue
// for a single cohort across its own lifetime.
func WriteDailySheet(w io.Writer, res model.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"day", "retention", "gross_revenue", "net_revenue", "cumulative_net"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var cumNet float64
	for d := 0; d < len(res.Curve); d++ {
		cumNet += res.Daily.Net[d]
		row := []string{
			strconv.Itoa(d),
			formatFloat(res.Curve[d]),
			formatFloat(res.Daily.Gross[d]),
			formatFloat(res.Daily.Net[d]),
			formatFloat(cumNet),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing day %d: %w", d, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMonthlySheet writes the calendar-month sheet: spend, revenue,
// margin, and running totals across the horizon.
func WriteMonthlySheet(w io.Writer, res model.Result) error {
	cw := csv.NewWriter(w)

	header := []string{
		"month", "ua_spend", "gross_revenue", "net_revenue",
		"margin", "cumulative_net", "cumulative_margin",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for m := 0; m < len(res.Monthly.UASpend); m++ {
		row := []string{
			strconv.Itoa(m + 1),
			formatFloat(res.Monthly.UASpend[m]),
			formatFloat(res.Monthly.RevenueGross[m]),
			formatFloat(res.Monthly.RevenueNet[m]),
			formatFloat(res.Monthly.Margin[m]),
			formatFloat(res.Monthly.CumulativeNet[m]),
			formatFloat(res.Monthly.CumulativeMargin[m]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing month %d: %w", m+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFiles writes both sheets into dir as <prefix>_daily.csv and
// <prefix>_monthly.csv, returning the written paths.
func WriteFiles(dir, prefix string, res model.Result) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating output dir: %w", err)
	}

	dailyPath := filepath.Join(dir, prefix+"_daily.csv")
	monthlyPath := filepath.Join(dir, prefix+"_monthly.csv")

	if err := writeFile(dailyPath, res, WriteDailySheet); err != nil {
		return "", "", err
	}
	if err := writeFile(monthlyPath, res, WriteMonthlySheet); err != nil {
		return "", "", err
	}

	return dailyPath, monthlyPath, nil
}

func writeFile(path string, res model.Result, sheet func(io.Writer, model.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := sheet(f, res); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
