package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Continuous beam analysis",
	Long: `Analyze multi-span beams defined in JSON files.

Subcommands:
  analyze   - Solve a beam and print reactions, displacements and diagrams
  validate  - Check a beam definition without solving it

Example JSON file structure:
{
  "name": "Two-span beam",
  "system": "metric",
  "length": {"value": 10, "unit": "m"},
  "supports": [
    {"type": "fixed", "position": 0},
    {"type": "pinned", "position": 5},
    {"type": "roller", "position": 10, "settlement": {"value": 5, "unit": "mm", "set": true}}
  ],
  "sections": [
    {"young_modulus": {"material": "concrete", "fc": 28},
     "moment_of_inertia": {"value": 3125000000, "unit": "mm^4"}}
  ],
  "loads": {
    "point_loads": [{"position": 2, "magnitude": 50, "unit": "kn"}],
    "distributed_loads": [{"start": 5, "end": 10, "start_magnitude": 24, "end_magnitude": 24, "unit": "kn/m"}],
    "moments": [{"position": 7, "magnitude": 10, "unit": "kn.m", "clockwise": true}]
  }
}`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
