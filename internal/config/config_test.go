package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Setenv(homeEnv, t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Theme != "light" || c.Storage.Backend != "file" {
		t.Errorf("theme %q backend %q", c.Theme, c.Storage.Backend)
	}
	if c.Rates.EURFactor != 0.92 || c.Rates.Path != "$.rates.INR" {
		t.Errorf("rates = %+v", c.Rates)
	}
	if got := len(c.Quiz.Questions); got != 5 {
		t.Errorf("got %d questions", got)
	}
	if c.Quiz.Questions[4].Options[0] != "No" {
		t.Errorf("option parsed as %q", c.Quiz.Questions[4].Options[0])
	}
	if got := len(c.Tax.Regimes); got != 2 {
		t.Fatalf("got %d regimes", got)
	}
	rough := c.Tax.Regimes[1].Slabs[3]
	if rough.Above != 700000 || rough.Offset != 300000 || rough.Rate != 0.05 {
		t.Errorf("rough slab = %+v", rough)
	}
	if c.Calculators.SIP.Amount != 5000 || c.Calculators.EMI.Months != 240 {
		t.Errorf("calculators = %+v", c.Calculators)
	}
}

func TestDefaultTaxFigures(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	old, nu := c.Tax.Regimes[0], c.Tax.Regimes[1]
	if got := old.Tax(1500000); math.Abs(got-202500) > 0.01 {
		t.Errorf("old Tax(1.5M) = %v, want 202500", got)
	}
	if got := nu.Tax(1500000); math.Abs(got-135000) > 0.01 {
		t.Errorf("new Tax(1.5M) = %v, want 135000", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(homeEnv, dir)
	user := "theme: dark\nstorage:\n  backend: redis\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(user), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Theme != "dark" || c.Storage.Backend != "redis" {
		t.Errorf("overlay not applied: %q %q", c.Theme, c.Storage.Backend)
	}
	// untouched keys keep their defaults
	if c.Storage.Redis.Key != "expenses" || len(c.Quiz.Questions) != 5 {
		t.Errorf("defaults lost: %+v", c.Storage)
	}
	if c.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", c.DataDir, dir)
	}
	if c.LedgerPath() != filepath.Join(dir, "expenses.json") {
		t.Errorf("LedgerPath() = %q", c.LedgerPath())
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"theme", "theme: neon\n", "theme"},
		{"backend", "storage:\n  backend: s3\n", "storage.backend"},
		{"slab order", "tax:\n  regimes:\n    - name: x\n      slabs:\n        - {above: 1, rate: 0.1}\n        - {above: 2, rate: 0.2}\n", "ordered"},
		{"options", "quiz:\n  questions:\n    - {prompt: q, options: [a, b], answer: 0}\n", "3 options"},
		{"route", "default_route: nowhere\n", "default_route"},
	}
	for _, tc := range tests {
		p := filepath.Join(t.TempDir(), "c.yaml")
		if err := os.WriteFile(p, []byte(tc.yaml), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := Load(p)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error = %v, want mention of %q", tc.name, err, tc.want)
		}
	}
}
