package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gobeam.ini")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultMatchesBeamDefaults(t *testing.T) {
	got := Default().BeamOptions()
	want := beam.DefaultOptions()
	if got != want {
		t.Errorf("BeamOptions() = %+v, want %+v", got, want)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[solver]
tolerance = 1e-10
max_iterations = 500

[quadrature]
max_depth = 12

[diagram]
samples = 101

[server]
addr = 127.0.0.1:9000
burst = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SolverTolerance != 1e-10 || cfg.SolverMaxIterations != 500 {
		t.Errorf("solver = %g/%d", cfg.SolverTolerance, cfg.SolverMaxIterations)
	}
	if cfg.QuadratureMaxDepth != 12 || cfg.QuadratureTolerance != 1e-6 {
		t.Errorf("quadrature = %g/%d", cfg.QuadratureTolerance, cfg.QuadratureMaxDepth)
	}
	if cfg.DiagramSamples != 101 {
		t.Errorf("samples = %d", cfg.DiagramSamples)
	}
	if cfg.ServerAddr != "127.0.0.1:9000" || cfg.ServerBurst != 3 || cfg.ServerRate != 5 {
		t.Errorf("server = %s %g %d", cfg.ServerAddr, cfg.ServerRate, cfg.ServerBurst)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "[diagram]\nsamples = 1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
