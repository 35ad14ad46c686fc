package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
)

var (
	configFile string
	verbose    bool

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Continuous Beam Analysis Tool",
	Long: `gobeam - Go Continuous Beam Analyzer

A CLI tool for the linear-elastic analysis of multi-span beams
by the direct stiffness method.

This tool helps structural engineers compute:
  - Support reactions and nodal displacements
  - Shear, moment, rotation and deflection diagrams
  - Effects of support settlements, imposed rotations and internal hinges
  - Section properties of arbitrary polygonal sections

Beams are described in JSON files with metric or imperial units.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.WithFields(log.Fields{
			"solver_tolerance": cfg.SolverTolerance,
			"max_iterations":   cfg.SolverMaxIterations,
			"samples":          cfg.DiagramSamples,
		}).Debug("Configuration loaded")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Continuous Beam Analyzer                             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis of continuous beams")
		fmt.Println("  by the direct stiffness method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Fixed, pinned, roller, free end and internal hinge supports")
		fmt.Println("    • Point loads, concentrated moments and linearly varying loads")
		fmt.Println("    • Support settlements and imposed rotations")
		fmt.Println("    • Diagrams in the terminal, as images, XLSX and PDF reports")
		fmt.Println("    • HTTP API for remote analysis")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
