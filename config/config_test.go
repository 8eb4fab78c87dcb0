package config

import (
	"os"
	"path/filepath"
	"testing"

	"genpdf"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoadAppliesLineSpacingDefault(t *testing.T) {
	path := writeConfig(t, "title: Report\npage_size: Letter\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LineSpacing != 1.0 {
		t.Errorf("LineSpacing = %v, want 1.0 default", cfg.LineSpacing)
	}
	if cfg.Title != "Report" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Report")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if !genpdf.IsInternal(err) {
		t.Errorf("expected Internal error kind, got %v", err)
	}
}

func TestResolvePageSize(t *testing.T) {
	cases := []struct {
		name string
		cfg  DocumentDefaults
		want genpdf.PageSize
	}{
		{"default", DocumentDefaults{}, genpdf.A4},
		{"letter", DocumentDefaults{PageSize: "Letter"}, genpdf.Letter},
		{"legal landscape", DocumentDefaults{PageSize: "Legal", Landscape: true}, genpdf.Legal.Landscape()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cfg.ResolvePageSize(); got != c.want {
				t.Errorf("ResolvePageSize() = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestMarginsConfigConversion(t *testing.T) {
	m := MarginsConfig{Top: 1, Right: 2, Bottom: 3, Left: 4}
	got := m.Margins()
	want := genpdf.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if got != want {
		t.Errorf("Margins() = %+v, want %+v", got, want)
	}
}
