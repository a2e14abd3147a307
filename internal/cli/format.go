// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCost formats a currency amount, dropping precision as values grow.
// e.g., 3.50 -> "$3.50", 62500 -> "$62,500", -1200 -> "-$1,200"
func FormatCost(amount float64) string {
	if amount < 0 {
		return "-" + FormatCost(-amount)
	}
	if amount >= 1000 {
		return "$" + FormatNumber(int64(math.Round(amount)))
	}
	if amount >= 100 {
		return fmt.Sprintf("$%.0f", amount)
	}
	if amount >= 10 {
		return fmt.Sprintf("$%.1f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
// e.g., 0.3521 -> "35.2%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRetention formats a retention fraction with enough precision for
// the long tail, where values sit well under 1%.
func FormatRetention(f float64) string {
	pct := f * 100
	if pct >= 10 {
		return fmt.Sprintf("%.1f%%", pct)
	}
	if pct >= 1 {
		return fmt.Sprintf("%.2f%%", pct)
	}
	return fmt.Sprintf("%.3f%%", pct)
}

// FormatMultiple formats a ROAS ratio as a spend multiple.
// e.g., 0.114 -> "0.11x", 1.5 -> "1.50x"
func FormatMultiple(ratio float64) string {
	return fmt.Sprintf("%.2fx", ratio)
}

// FormatMonth renders a zero-based month index as a 1-based label.
// e.g., 0 -> "M1", 35 -> "M36"
func FormatMonth(m int) string {
	return fmt.Sprintf("M%d", m+1)
}

// FormatDay renders a cohort-age day as a label. e.g., 7 -> "D7"
func FormatDay(d int) string {
	return fmt.Sprintf("D%d", d)
}

// FormatInstalls rounds installs-per-cohort to a whole count for display.
func FormatInstalls(n float64) string {
	return FormatNumber(int64(math.Round(n)))
}
