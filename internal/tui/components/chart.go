package components

import (
	"strings"

	"uacast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// BarChart renders a column chart of values, height rows tall, one
// two-cell bar per value. Negative values render as empty columns.
func BarChart(values []float64, color lipgloss.Color, width, height int) string {
	if len(values) == 0 || height < 2 {
		return Sparkline(values, color)
	}

	// Fit bars into width: each bar is 2 cells + 1 gap.
	maxBars := (width + 1) / 3
	if maxBars < 2 {
		maxBars = 2
	}
	if len(values) > maxBars {
		sampled := make([]float64, maxBars)
		for i := range sampled {
			sampled[i] = values[i*(len(values)-1)/(maxBars-1)]
		}
		values = sampled
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(theme.Active.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		threshold := float64(row-1) / float64(height)
		for i, v := range values {
			if i > 0 {
				b.WriteString(" ")
			}
			if v/peak > threshold {
				b.WriteString(barStyle.Render("██"))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", len(values)*3-1)))

	return b.String()
}
