package util

import (
	"path/filepath"
	"testing"
)

func TestFileStem(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"portfolio.csv", "portfolio"},
		{filepath.Join("home", "data", "retirement.csv"), "retirement"},
		{filepath.Join("data", "my portfolio.csv"), "my portfolio"},
		{"noext", "noext"},
	}
	for _, c := range cases {
		if got := FileStem(c.path); got != c.want {
			t.Errorf("FileStem(%q): got %q, want %q", c.path, got, c.want)
		}
	}
}

func TestOutputFolder_DefaultsToPortfolioDir(t *testing.T) {
	got := OutputFolder(filepath.Join("home", "data", "retirement.csv"), "")
	if got != filepath.Join("home", "data") {
		t.Errorf("got %q", got)
	}
}

func TestOutputFolder_OverrideWins(t *testing.T) {
	got := OutputFolder(filepath.Join("home", "data", "retirement.csv"), "/tmp/reports")
	if got != "/tmp/reports" {
		t.Errorf("got %q", got)
	}
}
