package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal section properties",
	Long: `Compute the geometric properties of beam sections defined in
JSON files as closed polygons.

The moment of inertia about the horizontal centroidal axis can be used
directly in a beam definition through the "shape" field of a section.

Subcommands:
  properties  - Area, centroid and moments of inertia of a section

Example JSON file structure:
{
  "name": "T-Beam Section",
  "unit": "mm",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": -300, "y": 500},
    {"x": -300, "y": 400},
    {"x": 0, "y": 400}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
