// Package config loads analysis and server settings from an ini file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/quadrature"
	"github.com/alexiusacademia/gobeam/internal/solver"
)

// DefaultFile is read when no config path is given and the file exists
const DefaultFile = "gobeam.ini"

// Config holds every tunable setting
type Config struct {
	SolverTolerance     float64
	SolverMaxIterations int

	QuadratureTolerance float64
	QuadratureMaxDepth  int

	// DiagramSamples is the number of points per element used for charts and exports
	DiagramSamples int

	ServerAddr  string
	ServerRate  float64 // requests per second per client
	ServerBurst int
}

// Default returns the settings used when no file is present
func Default() Config {
	return fromFile(ini.Empty())
}

// Load reads path. An empty path falls back to DefaultFile when it exists and
// to the defaults otherwise.
func Load(path string) (Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		path = DefaultFile
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := fromFile(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func fromFile(file *ini.File) Config {
	sol := solver.DefaultOptions()
	quad := quadrature.DefaultOptions()
	return Config{
		SolverTolerance:     file.Section("solver").Key("tolerance").MustFloat64(sol.Tolerance),
		SolverMaxIterations: file.Section("solver").Key("max_iterations").MustInt(sol.MaxIterations),
		QuadratureTolerance: file.Section("quadrature").Key("tolerance").MustFloat64(quad.Tolerance),
		QuadratureMaxDepth:  file.Section("quadrature").Key("max_depth").MustInt(quad.MaxDepth),
		DiagramSamples:      file.Section("diagram").Key("samples").MustInt(51),
		ServerAddr:          file.Section("server").Key("addr").MustString(":8080"),
		ServerRate:          file.Section("server").Key("rate").MustFloat64(5),
		ServerBurst:         file.Section("server").Key("burst").MustInt(10),
	}
}

// Validate rejects settings the analysis cannot run with
func (c Config) Validate() error {
	switch {
	case c.SolverTolerance <= 0:
		return errors.New("solver tolerance must be positive")
	case c.SolverMaxIterations <= 0:
		return errors.New("solver max_iterations must be positive")
	case c.QuadratureTolerance <= 0:
		return errors.New("quadrature tolerance must be positive")
	case c.QuadratureMaxDepth <= 0:
		return errors.New("quadrature max_depth must be positive")
	case c.DiagramSamples < 2:
		return errors.New("diagram samples must be at least 2")
	case c.ServerRate <= 0 || c.ServerBurst <= 0:
		return errors.New("server rate and burst must be positive")
	}
	return nil
}

// BeamOptions maps the solver and quadrature settings onto analysis options
func (c Config) BeamOptions() beam.Options {
	return beam.Options{
		Solver: solver.Options{
			Tolerance:     c.SolverTolerance,
			MaxIterations: c.SolverMaxIterations,
		},
		Quadrature: quadrature.Options{
			Tolerance: c.QuadratureTolerance,
			MaxDepth:  c.QuadratureMaxDepth,
		},
	}
}
