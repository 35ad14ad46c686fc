package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
)

var (
	lineColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	fillColor  = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	axisColor  = color.Gray{Y: 128}
	extremeHue = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// NewDiagramPlot builds the plot of one sampled diagram
func NewDiagramPlot(s Series, lengthUnit string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = fmt.Sprintf("x (%s)", lengthUnit)
	p.Y.Label.Text = s.Unit

	if len(s.X) == 0 {
		return p, nil
	}

	// Filled region between the curve and the beam axis
	outline := make(plotter.XYs, 0, len(s.X)+2)
	outline = append(outline, plotter.XY{X: s.X[0], Y: 0})
	for i := range s.X {
		outline = append(outline, plotter.XY{X: s.X[i], Y: s.Y[i]})
	}
	outline = append(outline, plotter.XY{X: s.X[len(s.X)-1], Y: 0})
	area, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	area.Color = fillColor
	area.LineStyle.Width = 0
	p.Add(area)

	curve := make(plotter.XYs, len(s.X))
	for i := range s.X {
		curve[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor
	p.Add(line)

	axis, err := plotter.NewLine(plotter.XYs{
		{X: s.X[0], Y: 0},
		{X: s.X[len(s.X)-1], Y: 0},
	})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = axisColor
	axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(axis)

	// Mark the extremes
	minX, minY, maxX, maxY := s.Extremes()
	marks, err := plotter.NewScatter(plotter.XYs{{X: minX, Y: minY}, {X: maxX, Y: maxY}})
	if err != nil {
		return nil, err
	}
	marks.GlyphStyle.Color = extremeHue
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: minX, Y: minY}, {X: maxX, Y: maxY}},
		Labels: []string{fmt.Sprintf("%.4g", minY), fmt.Sprintf("%.4g", maxY)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	return p, nil
}

// ExportDiagram exports one diagram of the beam to an image file
func ExportDiagram(r *beam.Result, kind string, samples int, filename string) error {
	s, err := Sample(r, kind, samples)
	if err != nil {
		return err
	}
	lengthUnit, _ := Units(r.System)
	p, err := NewDiagramPlot(s, lengthUnit)
	if err != nil {
		return err
	}
	filename, err = prepare(filename)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// ExportBeamDiagrams stacks every diagram of the beam into one image file
func ExportBeamDiagrams(r *beam.Result, samples int, filename string) error {
	filename, err := prepare(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteBeamDiagrams(f, r, samples, filepath.Ext(filename)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteBeamDiagrams renders the stacked diagrams in the format named by ext
// (".png", ".svg" or ".pdf")
func WriteBeamDiagrams(w io.Writer, r *beam.Result, samples int, ext string) error {
	lengthUnit, _ := Units(r.System)
	plots := make([][]*plot.Plot, len(Kinds))
	for i, kind := range Kinds {
		s, err := Sample(r, kind, samples)
		if err != nil {
			return err
		}
		p, err := NewDiagramPlot(s, lengthUnit)
		if err != nil {
			return err
		}
		if r.Name != "" && i == 0 {
			p.Title.Text = r.Name + ": " + p.Title.Text
		}
		plots[i] = []*plot.Plot{p}
	}

	width := 8 * vg.Inch
	height := vg.Length(len(Kinds)) * 3 * vg.Inch
	c, err := newCanvas(ext, width, height)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      len(Kinds),
		Cols:      1,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

// ExportSectionOutline exports a section outline with its centroidal axis
func ExportSectionOutline(s *section.Shape, filename string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	props := s.CalculateProperties()
	unit := s.LengthUnit()

	p := plot.New()
	p.Title.Text = "Beam Section"
	if s.Name != "" {
		p.Title.Text = s.Name
	}
	p.X.Label.Text = fmt.Sprintf("Width (%s)", unit)
	p.Y.Label.Text = fmt.Sprintf("Height (%s)", unit)

	pts := make(plotter.XYs, len(s.Vertices))
	for i, v := range s.Vertices {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	body, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	body.Color = fillColor
	body.LineStyle.Width = vg.Points(2)
	body.LineStyle.Color = color.Black
	p.Add(body)

	margin := props.Width * 0.1
	na, err := plotter.NewLine(plotter.XYs{
		{X: props.MinX - margin, Y: props.CentroidY},
		{X: props.MaxX + margin, Y: props.CentroidY},
	})
	if err != nil {
		return err
	}
	na.LineStyle.Width = vg.Points(1.5)
	na.LineStyle.Color = extremeHue
	na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(na)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: props.CentroidX, Y: props.CentroidY}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = extremeHue
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: props.MaxX + margin, Y: props.CentroidY}},
		Labels: []string{fmt.Sprintf("Ix=%.4g%s", props.Ix, s.InertiaUnit())},
	})
	if err != nil {
		return err
	}
	p.Add(l)

	filename, err = prepare(filename)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

type canvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(ext string, w, h vg.Length) (canvas, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".svg":
		return vgsvg.New(w, h), nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
}

// prepare creates the output directory and defaults the format to PNG
func prepare(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	return filename, nil
}
