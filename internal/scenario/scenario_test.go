package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const batchFile = `
[[scenario]]
name = "base"
monthly_budget = 250000
cpi = 4.0
arpdau = 0.25

[scenario.retention]
d1 = 35
d7 = 12
d14 = 8
d30 = 5
d90 = 3
d180 = 2.2
d360 = 1.5

[[scenario]]
monthly_budget = 100000
cpi = 2.0
arpdau = 0.10

[scenario.retention]
d1 = 40
d7 = 15
d14 = 10
d30 = 6
d90 = 3.5
d180 = 2.5
d360 = 1.8
`

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing batch file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	scenarios, err := LoadFile(writeBatchFile(t, batchFile))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(scenarios) != 2 {
		t.Fatalf("scenario count = %d, want 2", len(scenarios))
	}
	if scenarios[0].Name != "base" {
		t.Errorf("name = %q, want base", scenarios[0].Name)
	}
	if scenarios[1].Name != "scenario-2" {
		t.Errorf("unnamed scenario got %q, want scenario-2", scenarios[1].Name)
	}
	if scenarios[0].MonthlyBudget != 250000 || scenarios[0].Retention.D360 != 1.5 {
		t.Errorf("scenario 1 parsed wrong: %+v", scenarios[0])
	}

	in := scenarios[1].Inputs()
	if in.CPI != 2.0 || in.Anchors.D1 != 40 {
		t.Errorf("Inputs() = %+v", in)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	_, err := LoadFile(writeBatchFile(t, "# nothing here\n"))
	if err == nil {
		t.Fatal("want error for batch file without scenarios")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}
