package tui

import (
	"uacast/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field order on the settings tab: scenario first, then the retention
// anchors by ascending age.
var settingsLabels = []string{
	"Monthly budget ($)",
	"Cost per install ($)",
	"ARPDAU ($)",
	"D1 retention",
	"D7 retention",
	"D14 retention",
	"D30 retention",
	"D90 retention",
	"D180 retention",
	"D360 retention",
}

type settingsState struct {
	fields []textinput.Model
	focus  int
	width  int
}

func newSettingsState(in model.Inputs) settingsState {
	values := []float64{
		in.MonthlyBudget, in.CPI, in.ARPDAU,
		in.Anchors.D1, in.Anchors.D7, in.Anchors.D14, in.Anchors.D30,
		in.Anchors.D90, in.Anchors.D180, in.Anchors.D360,
	}

	fields := make([]textinput.Model, len(values))
	for i, v := range values {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 14
		ti.SetValue(formatInput(v))
		fields[i] = ti
	}
	fields[0].Focus()

	return settingsState{fields: fields}
}

func (s settingsState) resize(width int) settingsState {
	s.width = width
	return s
}

// update moves focus on navigation keys and forwards everything else to
// the focused field.
func (s settingsState) update(msg tea.Msg) (settingsState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "shift+tab":
			return s.moveFocus(-1), nil
		case "down", "tab", "enter":
			return s.moveFocus(1), nil
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s settingsState) moveFocus(delta int) settingsState {
	s.fields[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	s.fields[s.focus].Focus()
	return s
}

// inputs reads the current field values back into an engine parameter set.
// Blank or malformed fields read as 0, which the engine tolerates.
func (s settingsState) inputs() model.Inputs {
	v := make([]float64, len(s.fields))
	for i, f := range s.fields {
		v[i] = toNumber(f.Value())
	}

	return model.Inputs{
		MonthlyBudget: v[0],
		CPI:           v[1],
		ARPDAU:        v[2],
		Anchors: model.AnchorSet{
			D1:   v[3],
			D7:   v[4],
			D14:  v[5],
			D30:  v[6],
			D90:  v[7],
			D180: v[8],
			D360: v[9],
		},
	}
}
