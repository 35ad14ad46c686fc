// Package report writes analysis results to spreadsheets and PDF summaries.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

// Sheet names of the workbook
const (
	SheetSummary   = "Summary"
	SheetNodes     = "Nodes"
	SheetReactions = "Reactions"
	SheetDiagrams  = "Diagrams"
)

// NewWorkbook builds a workbook with the summary, nodal displacements,
// support reactions and sampled diagrams of a result
func NewWorkbook(r *beam.Result, samples int) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetNodes, SheetReactions, SheetDiagrams} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return nil, err
	}

	lengthUnit, byKind := diagram.Units(r.System)
	force, moment := byKind["shear"], byKind["moment"]

	w := &sheetWriter{f: f, header: header}

	w.sheet = SheetSummary
	w.row("Beam", r.Name)
	w.row("System", string(r.System))
	w.row("Length ("+lengthUnit+")", r.Model.Length)
	w.row("Elements", len(r.Elements))
	w.row("Passes", passes(r))
	w.row("Converged", r.Primary.Converged)
	w.row("CG iterations", r.Primary.Iterations)
	fx, mx := r.Equilibrium()
	w.row("Force residual ("+force+")", fx)
	w.row("Moment residual ("+moment+")", mx)
	for _, warning := range r.Warnings {
		w.row("Warning", warning)
	}

	w.sheet = SheetNodes
	w.headerRow("Node", "Kind", "x ("+lengthUnit+")", "Deflection ("+lengthUnit+")", "Rotation (rad)",
		"Force ("+force+")", "Moment ("+moment+")")
	d := r.Primary.Displacements
	for i, b := range r.Model.Boundaries {
		w.row(i, b.Kind.String(), b.Position, d[2*i], d[2*i+1], r.Reactions[2*i], r.Reactions[2*i+1])
	}

	w.sheet = SheetReactions
	w.headerRow("Node", "Support", "x ("+lengthUnit+")", "Force ("+force+")", "Moment ("+moment+")")
	for _, sr := range r.SupportReactions() {
		w.row(sr.Node, sr.Kind.String(), sr.Position, sr.Force, sr.Moment)
	}

	w.sheet = SheetDiagrams
	titles := []interface{}{"x (" + lengthUnit + ")"}
	series := make([]diagram.Series, len(diagram.Kinds))
	for i, kind := range diagram.Kinds {
		s, err := diagram.Sample(r, kind, samples)
		if err != nil {
			return nil, err
		}
		series[i] = s
		titles = append(titles, fmt.Sprintf("%s (%s)", s.Title, s.Unit))
	}
	w.headerRow(titles...)
	for j := range series[0].X {
		values := []interface{}{series[0].X[j]}
		for _, s := range series {
			values = append(values, s.Y[j])
		}
		w.row(values...)
	}

	if w.err != nil {
		return nil, w.err
	}
	return f, nil
}

// WriteXLSX writes the workbook of a result to w
func WriteXLSX(out io.Writer, r *beam.Result, samples int) error {
	f, err := NewWorkbook(r, samples)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(out)
}

// SaveXLSX writes the workbook of a result to path
func SaveXLSX(path string, r *beam.Result, samples int) error {
	f, err := NewWorkbook(r, samples)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// sheetWriter appends rows to the current sheet and keeps the first error
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	header int
	next   map[string]int
	err    error
}

func (w *sheetWriter) headerRow(values ...interface{}) {
	cell := w.row(values...)
	if w.err != nil || cell == "" {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(values), w.next[w.sheet])
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, last, w.header)
}

// row writes values to the next free row and returns its first cell
func (w *sheetWriter) row(values ...interface{}) string {
	if w.err != nil {
		return ""
	}
	if w.next == nil {
		w.next = map[string]int{}
	}
	n := w.next[w.sheet] + 1
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return ""
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = err
		return ""
	}
	w.next[w.sheet] = n
	return cell
}

func passes(r *beam.Result) int {
	if r.Secondary != nil {
		return 2
	}
	return 1
}
