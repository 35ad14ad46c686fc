package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	analyzeFile        string
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeXLSXFile    string
	analyzePDFFile     string
	analyzeJSON        bool
	analyzeWidth       int
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a continuous beam",
	Long: `Solve a multi-span beam defined in a JSON file by the direct
stiffness method.

Prints the support reactions, nodal displacements and the extreme
values of the shear, moment, rotation and deflection diagrams. Beams with
internal hinges are solved twice, releasing the element end and then
the element start at every hinge.

Examples:
  gobeam beam analyze --file two-span.json
  gobeam beam analyze -f two-span.json --diagram
  gobeam beam analyze -f two-span.json -o diagrams.png --xlsx results.xlsx --pdf report.pdf`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to beam JSON file [required]")
	beamAnalyzeCmd.MarkFlagRequired("file")

	// Output options
	beamAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII diagrams")
	beamAnalyzeCmd.Flags().IntVar(&analyzeWidth, "width", 60, "Width of ASCII diagrams")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeXLSXFile, "xlsx", "", "Export results to an XLSX workbook")
	beamAnalyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Export a PDF report")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	in, err := beam.LoadFromFile(analyzeFile)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}

	result, err := beam.Analyze(in, cfg.BeamOptions())
	if err != nil {
		fmt.Printf("Error analyzing beam: %v\n", err)
		return
	}

	if analyzeJSON {
		if err := printJSON(result); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
		}
		return
	}

	lengthUnit, byKind := diagram.Units(result.System)
	force, moment := byKind["shear"], byKind["moment"]

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CONTINUOUS BEAM ANALYSIS - STIFFNESS METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if result.Name != "" {
		fmt.Printf("  Beam: %s\n", result.Name)
	}
	fmt.Printf("  Length: %g %s, %d elements, %s units\n",
		result.Model.Length, lengthUnit, len(result.Elements), result.System)
	fmt.Println(diagram.DrawBeamSketch(result, analyzeWidth))

	// Supports
	fmt.Println("SUPPORTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tType\tx (%s)\tSettlement (%s)\tRotation (rad)\n", lengthUnit, lengthUnit)
	fmt.Fprintf(w, "  ────\t────\t──────\t──────────────\t──────────────\n")
	for i, b := range result.Model.Boundaries {
		if !b.Physical() {
			continue
		}
		settlement, rotation := "-", "-"
		if b.SettlementSet {
			settlement = fmt.Sprintf("%g", b.Settlement)
		}
		if b.RotationSet {
			rotation = fmt.Sprintf("%g", b.Rotation)
		}
		fmt.Fprintf(w, "  %d\t%s\t%g\t%s\t%s\n", i, b.Kind, b.Position, settlement, rotation)
	}
	w.Flush()
	fmt.Println()

	// Reactions
	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tType\tx (%s)\tForce (%s)\tMoment (%s)\n", lengthUnit, force, moment)
	fmt.Fprintf(w, "  ────\t────\t──────\t──────────\t───────────\n")
	var totalReaction float64
	for _, sr := range result.SupportReactions() {
		fmt.Fprintf(w, "  %d\t%s\t%g\t%.4f\t%.4f\n", sr.Node, sr.Kind, sr.Position, sr.Force, sr.Moment)
		totalReaction += sr.Force
	}
	w.Flush()
	fmt.Println()

	// Displacements
	fmt.Println("NODAL DISPLACEMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tx (%s)\tDeflection (%s)\tRotation (rad)\n", lengthUnit, lengthUnit)
	fmt.Fprintf(w, "  ────\t──────\t───────────────\t──────────────\n")
	d := result.Primary.Displacements
	for i, b := range result.Model.Boundaries {
		fmt.Fprintf(w, "  %d\t%g\t%.6g\t%.6g\n", i, b.Position, d[2*i], d[2*i+1])
	}
	w.Flush()
	fmt.Println()

	// Extremes
	fmt.Println("DIAGRAM EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diagram\tMaximum\tat x\tMinimum\tat x\n")
	fmt.Fprintf(w, "  ───────\t───────\t────\t───────\t────\n")
	for _, kind := range diagram.Kinds[1:] {
		s, err := diagram.Sample(result, kind, cfg.DiagramSamples)
		if err != nil {
			fmt.Printf("Error sampling %s: %v\n", kind, err)
			return
		}
		minX, minY, maxX, maxY := s.Extremes()
		fmt.Fprintf(w, "  %s (%s)\t%.5g\t%g\t%.5g\t%g\n", s.Title, s.Unit, maxY, maxX, minY, minX)
	}
	w.Flush()
	fmt.Println()

	fx, mx := result.Equilibrium()
	status := "✓"
	if absFloat(fx) > 1e-6*(1+absFloat(result.AppliedLoad())) {
		status = "⚠"
	}
	lines := []string{
		fmt.Sprintf("Applied load:     %.4f %s", result.AppliedLoad(), force),
		fmt.Sprintf("Total reaction:   %.4f %s", totalReaction, force),
		fmt.Sprintf("Force residual:   %.3e %s", fx, status),
		fmt.Sprintf("Moment residual:  %.3e", mx),
		fmt.Sprintf("CG iterations:    %d", result.Primary.Iterations),
	}
	if result.Secondary != nil {
		lines = append(lines, "Hinge passes:     2")
	}
	fmt.Print(diagram.DrawSummaryBox("EQUILIBRIUM CHECK", lines))
	fmt.Println()

	if len(result.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
		fmt.Println()
	}

	if analyzeShowDiagram {
		for _, kind := range diagram.Kinds[1:] {
			chart, err := diagram.DrawASCIIDiagram(result, kind, analyzeWidth, 10)
			if err != nil {
				fmt.Printf("Error drawing %s diagram: %v\n", kind, err)
				return
			}
			fmt.Println(chart)
			fmt.Println()
		}
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportBeamDiagrams(result, cfg.DiagramSamples, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagrams exported to: %s\n", analyzeExportFile)
		}
	}

	if analyzeXLSXFile != "" {
		if err := report.SaveXLSX(analyzeXLSXFile, result, cfg.DiagramSamples); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", analyzeXLSXFile)
		}
	}

	if analyzePDFFile != "" {
		opts := report.PDFOptions{Samples: cfg.DiagramSamples, Diagrams: true}
		if err := report.SavePDF(analyzePDFFile, result, opts); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", analyzePDFFile)
		}
	}

	log.WithFields(log.Fields{
		"file":     analyzeFile,
		"elements": len(result.Elements),
		"warnings": len(result.Warnings),
	}).Debug("Analysis finished")
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
