package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/units"
)

var (
	femLength      float64
	femSystem      string
	femPoints      []string
	femMoments     []string
	femDistributed []string
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate fixed-end moments of a single span",
	Long: `Calculate the fixed-end moments and equivalent end forces of one
span loaded by point loads, concentrated moments and linearly varying
distributed loads.

Values are in the canonical units of the unit system:
  metric    m, kN, kN-m, kN/m
  imperial  in, lbf, lbf-in, lbf/in

Loads:
  --point P@a              downward point load P at distance a
  --moment M@a             counterclockwise moment M at distance a
  --distributed w1,w2,a,b  load varying from w1 at a to w2 at b

The moments are given for both ends fixed, and for each end released
with half of the released moment carried over to the other end.

Examples:
  gobeam moment --length 8 --point 50@3
  gobeam moment -L 6 --distributed 10,10,0,6 --moment 20@2`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentCmd.Flags().Float64VarP(&femLength, "length", "L", 0, "Span length [required]")
	momentCmd.MarkFlagRequired("length")
	momentCmd.Flags().StringVar(&femSystem, "system", "metric", "Unit system (metric or imperial)")
	momentCmd.Flags().StringArrayVar(&femPoints, "point", nil, "Point load as P@a (repeatable)")
	momentCmd.Flags().StringArrayVar(&femMoments, "moment", nil, "Concentrated moment as M@a (repeatable)")
	momentCmd.Flags().StringArrayVar(&femDistributed, "distributed", nil, "Distributed load as w1,w2,a,b (repeatable)")
}

func runMoment(cmd *cobra.Command, args []string) {
	sys, err := units.ParseSystem(femSystem)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	m, err := spanModel(sys, femLength, femPoints, femMoments, femDistributed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	e := beam.Elements(m)[0]
	q := cfg.BeamOptions().Quadrature
	_, byKind := diagram.Units(sys)
	force, moment := byKind["shear"], byKind["moment"]

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              FIXED-END MOMENTS OF A SINGLE SPAN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Condition\tM start (%s)\tM end (%s)\tV start (%s)\tV end (%s)\n", moment, moment, force, force)
	fmt.Fprintf(w, "  ─────────\t────────────\t──────────\t────────────\t──────────\n")
	for _, c := range []struct {
		name    string
		release beam.Release
	}{
		{"Both ends fixed", beam.NoRelease},
		{"Start released", beam.StartReleased},
		{"End released", beam.EndReleased},
	} {
		m1, m2 := e.FixedEndMoments(c.release, q)
		eq := e.EquivalentForces(c.release, q)
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\n", c.name, m1, m2, -eq[0], -eq[2])
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("TOTAL LOAD", []string{
		fmt.Sprintf("Downward force: %.4f %s", totalLoad(m), force),
	}))
	fmt.Println()
}

// spanModel builds a fixed-fixed single span from the load flags
func spanModel(sys units.System, length float64, points, moments, distributed []string) (*beam.Model, error) {
	if length <= 0 {
		return nil, fmt.Errorf("span length must be positive")
	}
	m := &beam.Model{
		System: sys,
		Length: length,
		Boundaries: []beam.Boundary{
			{Kind: beam.Fixed, Position: 0},
			{Kind: beam.Fixed, Position: length},
		},
		Rigidities: []float64{1},
	}
	within := func(x float64) bool { return x >= 0 && x <= length }

	for _, s := range points {
		var p beam.PointLoad
		if _, err := fmt.Sscanf(s, "%g@%g", &p.Magnitude, &p.Position); err != nil || !within(p.Position) {
			return nil, fmt.Errorf("invalid point load %q", s)
		}
		m.PointLoads = append(m.PointLoads, p)
	}
	for _, s := range moments {
		var mo beam.Moment
		if _, err := fmt.Sscanf(s, "%g@%g", &mo.Magnitude, &mo.Position); err != nil || !within(mo.Position) {
			return nil, fmt.Errorf("invalid moment %q", s)
		}
		m.Moments = append(m.Moments, mo)
	}
	for _, s := range distributed {
		var d beam.DistributedLoad
		_, err := fmt.Sscanf(s, "%g,%g,%g,%g", &d.StartMagnitude, &d.EndMagnitude, &d.Start, &d.End)
		if err != nil || d.End <= d.Start || !within(d.Start) || !within(d.End) {
			return nil, fmt.Errorf("invalid distributed load %q", s)
		}
		m.DistributedLoads = append(m.DistributedLoads, d)
	}

	if len(m.PointLoads)+len(m.Moments)+len(m.DistributedLoads) == 0 {
		return nil, fmt.Errorf("at least one load is required")
	}
	return m, nil
}

func totalLoad(m *beam.Model) float64 {
	total := 0.0
	for _, p := range m.PointLoads {
		total += p.Magnitude
	}
	for _, d := range m.DistributedLoads {
		total += d.Resultant()
	}
	return total
}
