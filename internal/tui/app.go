// Package tui provides the interactive Bubble Tea dashboard for uacast.
// Every input edit triggers a fresh engine evaluation; an evaluation is a
// pure function over ~1081-day arrays and is cheap enough to run on every
// keystroke, so there is no caching or debouncing anywhere.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"uacast/internal/config"
	"uacast/internal/engine"
	"uacast/internal/model"
	"uacast/internal/tui/components"
	"uacast/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	tabOverview = iota
	tabMonthly
	tabCurve
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 150
)

// App is the root Bubble Tea model.
type App struct {
	inputs model.Inputs
	result model.Result

	width     int
	height    int
	activeTab int

	settings settingsState

	// First-run scenario form (huh)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	statusNote string
}

type setupValues struct {
	budget string
	cpi    string
	arpdau string
}

// NewApp creates the dashboard model. When no config file exists yet, the
// first view is a short scenario form instead of the dashboard.
func NewApp(in model.Inputs, needSetup bool) App {
	a := App{
		inputs:    in,
		needSetup: needSetup,
		settings:  newSettingsState(in),
	}
	if needSetup {
		a.setupVals = setupValues{
			budget: formatInput(in.MonthlyBudget),
			cpi:    formatInput(in.CPI),
			arpdau: formatInput(in.ARPDAU),
		}
		a.setupForm = buildSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// Run starts the dashboard and blocks until the user quits.
func Run(in model.Inputs, cfg config.Config) error {
	theme.SetActive(cfg.Appearance.Theme)

	p := tea.NewProgram(NewApp(in, !config.Exists()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func buildSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly UA budget").
				Description("Total acquisition spend per calendar month").
				Value(&v.budget),
			huh.NewInput().
				Title("Cost per install").
				Value(&v.cpi),
			huh.NewInput().
				Title("ARPDAU").
				Description("Average daily revenue per active user").
				Value(&v.arpdau),
		),
	)
}

func (a *App) recompute() {
	a.result = engine.Forecast(a.inputs)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.settings = a.settings.resize(a.contentWidth())
		return a, nil

	case tea.KeyMsg:
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		return a.handleKey(msg)
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.activeTab == tabSettings {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// On the settings tab every printable key belongs to the focused
	// field, so only esc and ctrl+s stay global there.
	if a.activeTab == tabSettings {
		switch key {
		case "esc":
			a.activeTab = tabOverview
			return a, nil
		case "ctrl+s":
			a.statusNote = a.saveConfig()
			return a, nil
		}

		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		a.inputs = a.settings.inputs()
		a.recompute()
		return a, cmd
	}

	switch key {
	case "q", "esc":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.inputs.MonthlyBudget = toNumber(a.setupVals.budget)
		a.inputs.CPI = toNumber(a.setupVals.cpi)
		a.inputs.ARPDAU = toNumber(a.setupVals.arpdau)
		a.settings = newSettingsState(a.inputs)
		a.recompute()
		a.statusNote = a.saveConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveConfig persists the current scenario, returning a status bar note.
func (a App) saveConfig() string {
	cfg, _ := config.Load()
	cfg.Scenario.MonthlyBudget = a.inputs.MonthlyBudget
	cfg.Scenario.CPI = a.inputs.CPI
	cfg.Scenario.ARPDAU = a.inputs.ARPDAU
	cfg.Retention = a.inputs.Anchors
	if err := config.Save(cfg); err != nil {
		return "save failed"
	}
	return "saved"
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  uacast needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	var body string
	switch a.activeTab {
	case tabOverview:
		body = a.viewOverview()
	case tabMonthly:
		body = a.viewMonthly()
	case tabCurve:
		body = a.viewCurve()
	case tabSettings:
		body = a.viewSettings()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.width, a.statusNote))

	return b.String()
}

// toNumber is the total parse used for every user-typed value: anything
// unparseable or non-finite becomes 0 so the engine never sees a NaN.
func toNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
