// Package scenario loads multi-scenario batch files and evaluates them
// through the forecast engine.
package scenario

import (
	"fmt"
	"os"

	"uacast/internal/model"

	"github.com/BurntSushi/toml"
)

// Scenario is one named forecast parameter set in a batch file.
type Scenario struct {
	Name          string          `toml:"name"`
	MonthlyBudget float64         `toml:"monthly_budget"`
	CPI           float64         `toml:"cpi"`
	ARPDAU        float64         `toml:"arpdau"`
	Retention     model.AnchorSet `toml:"retention"`
}

// Inputs converts the scenario into an engine parameter set.
func (s Scenario) Inputs() model.Inputs {
	return model.Inputs{
		MonthlyBudget: s.MonthlyBudget,
		CPI:           s.CPI,
		ARPDAU:        s.ARPDAU,
		Anchors:       s.Retention,
	}
}

// File is the shape of a batch file: a list of [[scenario]] blocks.
type File struct {
	Scenarios []Scenario `toml:"scenario"`
}

// LoadFile parses a TOML batch file. Unnamed scenarios get a positional
// name so output rows stay distinguishable.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no [[scenario]] blocks found", path)
	}

	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}

	return f.Scenarios, nil
}
