package tui

import (
	"fmt"
	"strings"

	"uacast/internal/cli"
	"uacast/internal/model"
	"uacast/internal/tui/components"
	"uacast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview() string {
	cw := a.contentWidth()
	r := a.result

	cards := [][2]string{
		{"Installs / cohort", cli.FormatInstalls(r.InstallsPerCohort)},
		{"Gross LTV", cli.FormatCost(r.GrossLTV)},
		{"Net LTV", cli.FormatCost(r.NetLTV)},
		{"Payback", a.paybackLabel()},
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricCardRow(cards, cw),
		a.roasCard(cw),
		a.outcomeCard(cw),
	)
}

// roasCard renders one bar per ROAS checkpoint, filled up to break-even.
func (a App) roasCard(outerWidth int) string {
	t := theme.Active

	barWidth := outerWidth - 24
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for i, e := range a.result.ROAS {
		if i > 0 {
			b.WriteString("\n")
		}

		fill := string(t.Accent)
		if e.Ratio >= 1 {
			fill = string(t.Green)
		}
		bar := progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
		bar.Width = barWidth
		bar.EmptyColor = string(t.TextDim)

		pct := e.Ratio
		if pct > 1 {
			pct = 1
		}

		label := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("%-6s", cli.FormatDay(e.Day)))
		value := lipgloss.NewStyle().Foreground(t.TextPrimary).
			Render(fmt.Sprintf("%8s", cli.FormatMultiple(e.Ratio)))

		b.WriteString(label + bar.ViewAs(pct) + value)
	}

	return components.ContentCard("ROAS by cohort age", b.String(), outerWidth)
}

// outcomeCard summarizes the full-horizon position: total spend, net
// revenue collected, and where the cumulative margin lands.
func (a App) outcomeCard(outerWidth int) string {
	t := theme.Active
	m := a.result.Monthly

	last := len(m.CumulativeMargin) - 1
	if last < 0 {
		return ""
	}

	totalSpend := 0.0
	for _, v := range m.UASpend {
		totalSpend += v
	}

	marginStyle := lipgloss.NewStyle().Foreground(t.Green)
	if m.CumulativeMargin[last] < 0 {
		marginStyle = lipgloss.NewStyle().Foreground(t.Red)
	}

	lines := []string{
		kvLine("Total UA spend", cli.FormatCost(totalSpend)),
		kvLine("Cumulative net revenue", cli.FormatCost(m.CumulativeNet[last])),
		kvLine("Cumulative margin", marginStyle.Render(cli.FormatCost(m.CumulativeMargin[last]))),
		kvLine("Final month margin", cli.FormatCost(m.Margin[last])),
	}

	title := fmt.Sprintf("Position after %s", cli.FormatMonth(last))
	return components.ContentCard(title, strings.Join(lines, "\n"), outerWidth)
}

func (a App) viewMonthly() string {
	cw := a.contentWidth()
	t := theme.Active
	m := a.result.Monthly

	chart := components.BarChart(m.RevenueNet, t.Green, cw-6, 8)

	var b strings.Builder
	b.WriteString(chart)
	b.WriteString("\n\n")

	if n := len(m.Margin); n > 0 {
		b.WriteString(kvLine("Margin trend", components.Sparkline(shiftPositive(m.Margin), t.Blue)))
		b.WriteString("\n")
		b.WriteString(kvLine("First month margin", cli.FormatCost(m.Margin[0])))
		b.WriteString("\n")
		b.WriteString(kvLine("Final month margin", cli.FormatCost(m.Margin[n-1])))
		b.WriteString("\n")
		b.WriteString(kvLine("Break-even month", a.paybackLabel()))
	}

	return components.ContentCard("Net revenue by calendar month", b.String(), cw)
}

func (a App) viewCurve() string {
	cw := a.contentWidth()
	t := theme.Active
	r := a.result

	spark := components.Sparkline(cli.Downsample(r.Curve, cw-6), t.Accent)

	var b strings.Builder
	b.WriteString(spark)
	b.WriteString("\n\n")

	for i, anchor := range model.AnchorDays {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(kvLine(cli.FormatDay(anchor), cli.FormatRetention(r.Curve[anchor])))
	}

	title := fmt.Sprintf("Retention curve, day 0 through day %d", len(r.Curve)-1)
	return components.ContentCard(title, b.String(), cw)
}

func (a App) viewSettings() string {
	cw := a.contentWidth()
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	focusedStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, f := range a.settings.fields {
		style := labelStyle
		if i == a.settings.focus {
			style = focusedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%-22s", settingsLabels[i])))
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓ move  ctrl+s save  esc back"))

	return components.ContentCard("Scenario", b.String(), cw)
}

// paybackLabel is the first calendar month whose cumulative margin is
// non-negative.
func (a App) paybackLabel() string {
	for m, v := range a.result.Monthly.CumulativeMargin {
		if v >= 0 {
			return cli.FormatMonth(m)
		}
	}
	return "beyond horizon"
}

func kvLine(key, value string) string {
	dim := lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
	return fmt.Sprintf("%s %s", dim.Render(fmt.Sprintf("%-24s", key)), value)
}

// shiftPositive offsets a series so its minimum sits at zero, letting the
// sparkline show shape for series that cross below zero.
func shiftPositive(values []float64) []float64 {
	low := 0.0
	for _, v := range values {
		if v < low {
			low = v
		}
	}
	if low >= 0 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v - low
	}
	return out
}
