package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

// PDFOptions controls the content of the PDF report
type PDFOptions struct {
	Title   string
	Author  string
	Samples int
	// Diagrams embeds the stacked diagram image on its own page
	Diagrams bool
	// Date is printed on the report; zero prints today
	Date time.Time
}

// WritePDF renders a summary report of a result to w
func WritePDF(w io.Writer, r *beam.Result, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Beam Analysis Report"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	if opts.Samples < 2 {
		opts.Samples = 51
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	lengthUnit, byKind := diagram.Units(r.System)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if r.Name != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Beam: %s", r.Name)))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", opts.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Length: %g %s, %d elements, unit system %s",
		r.Model.Length, lengthUnit, len(r.Elements), r.System)))
	pdf.Ln(10)

	heading(pdf, "Supports")
	table(pdf, tr,
		[]string{"Node", "Type", "x (" + lengthUnit + ")", "Settlement (" + lengthUnit + ")", "Rotation (rad)"},
		supportRows(r))

	heading(pdf, "Reactions")
	var rows [][]string
	for _, sr := range r.SupportReactions() {
		rows = append(rows, []string{
			fmt.Sprint(sr.Node), sr.Kind.String(), fmt.Sprintf("%g", sr.Position),
			fmt.Sprintf("%.4f", sr.Force), fmt.Sprintf("%.4f", sr.Moment),
		})
	}
	table(pdf, tr,
		[]string{"Node", "Type", "x (" + lengthUnit + ")", "Force (" + byKind["shear"] + ")", "Moment (" + byKind["moment"] + ")"},
		rows)

	heading(pdf, "Extreme values")
	rows = nil
	for _, kind := range diagram.Kinds {
		s, err := diagram.Sample(r, kind, opts.Samples)
		if err != nil {
			return err
		}
		minX, minY, maxX, maxY := s.Extremes()
		rows = append(rows, []string{
			s.Title, s.Unit,
			fmt.Sprintf("%.5g at %g", maxY, maxX),
			fmt.Sprintf("%.5g at %g", minY, minX),
		})
	}
	table(pdf, tr, []string{"Diagram", "Unit", "Maximum", "Minimum"}, rows)

	fx, mx := r.Equilibrium()
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Equilibrium residual: force %.3e, moment %.3e", fx, mx))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Solver: converged %t after %d iterations, residual %.3e",
		r.Primary.Converged, r.Primary.Iterations, r.Primary.Residual))
	pdf.Ln(8)

	if len(r.Warnings) > 0 {
		heading(pdf, "Warnings")
		pdf.SetFont("Helvetica", "", 10)
		for _, warning := range r.Warnings {
			pdf.MultiCell(0, 5, tr(warning), "", "L", false)
		}
	}

	if opts.Diagrams {
		var img bytes.Buffer
		if err := diagram.WriteBeamDiagrams(&img, r, opts.Samples, ".png"); err != nil {
			return err
		}
		pdf.AddPage()
		heading(pdf, "Diagrams")
		pdf.RegisterImageOptionsReader("diagrams", gofpdf.ImageOptions{ImageType: "PNG"}, &img)
		// Stacked image is 8 x 15 inches; fit to the page height
		pdf.ImageOptions("diagrams", 30, pdf.GetY(), 0, 250, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF writes the PDF report of a result to path
func SavePDF(path string, r *beam.Result, opts PDFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(f, r, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func supportRows(r *beam.Result) [][]string {
	var rows [][]string
	for i, b := range r.Model.Boundaries {
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
		rows = append(rows, []string{
			fmt.Sprint(i), b.Kind.String(), fmt.Sprintf("%g", b.Position), settlement, rotation,
		})
	}
	return rows
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

// table draws a bordered table with equal-width columns across the page
func table(pdf *gofpdf.Fpdf, tr func(string) string, header []string, rows [][]string) {
	width := 190 / float64(len(header))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 230, 241)
	for _, h := range header {
		pdf.CellFormat(width, 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, c := range row {
			pdf.CellFormat(width, 6, tr(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}
