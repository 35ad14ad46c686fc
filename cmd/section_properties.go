package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/section"
)

var (
	sectionFile       string
	sectionExportFile string
	sectionFc         float64
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Calculate properties of a polygonal section",
	Long: `Calculate the area, centroid, centroidal moments of inertia, fibre
widths and elastic section moduli of a section defined in a JSON file.

With --fc the concrete modulus Ec = 4700√f'c and the flexural rigidity
Ec·Ix are reported as well.

Examples:
  gobeam section properties --file t-beam.json
  gobeam section properties -f t-beam.json --fc 28 -o t-beam.png`,
	Run: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropertiesCmd.MarkFlagRequired("file")
	sectionPropertiesCmd.Flags().Float64Var(&sectionFc, "fc", 0, "Concrete compressive strength f'c (MPa)")
	sectionPropertiesCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export section outline to file (png, svg, pdf)")
}

func runSectionProperties(cmd *cobra.Command, args []string) {
	sec, err := section.LoadFromFile(sectionFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}
	props := sec.CalculateProperties()
	unit := sec.LengthUnit()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 POLYGONAL SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.2f %s\n", props.Width, unit)
	fmt.Fprintf(w, "  Height:\t%.2f %s\n", props.Height, unit)
	fmt.Fprintf(w, "  Area:\t%.2f %s²\n", props.Area, unit)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.2f, %.2f) %s\n", props.CentroidX, props.CentroidY, unit)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	fmt.Println("CENTROIDAL MOMENTS OF INERTIA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ix:\t%.6g %s\n", props.Ix, sec.InertiaUnit())
	fmt.Fprintf(w, "  Iy:\t%.6g %s\n", props.Iy, sec.InertiaUnit())
	w.Flush()
	fmt.Println()

	fibres := sec.Fibres()
	fmt.Println("EXTREME FIBRES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fibre\tWidth (%s)\tc (%s)\tS = Ix/c (%s³)\n", unit, unit, unit)
	fmt.Fprintf(w, "  ─────\t─────────\t─────\t──────────────\n")
	fmt.Fprintf(w, "  Top\t%.2f\t%.2f\t%.6g\n", fibres.TopWidth, fibres.CTop, fibres.STop)
	fmt.Fprintf(w, "  Centroid\t%.2f\t-\t-\n", fibres.CentroidWidth)
	fmt.Fprintf(w, "  Bottom\t%.2f\t%.2f\t%.6g\n", fibres.BottomWidth, fibres.CBottom, fibres.SBottom)
	w.Flush()
	fmt.Println()

	if sectionFc > 0 {
		ec, err := nscp.Modulus(nscp.Concrete, sectionFc)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(diagram.DrawSummaryBox("FLEXURAL RIGIDITY", []string{
			fmt.Sprintf("Ec = %.1f MPa", ec),
			fmt.Sprintf("Ec·Ix = %.6g MPa·%s", ec*props.Ix, sec.InertiaUnit()),
		}))
		fmt.Println()
	}

	if sectionExportFile != "" {
		if err := diagram.ExportSectionOutline(sec, sectionExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionExportFile)
		}
	}
}
