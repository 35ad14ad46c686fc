package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func rectangle(b, h float64) *Shape {
	return &Shape{Vertices: []Point{{0, 0}, {b, 0}, {b, h}, {0, h}}}
}

func TestRectangleProperties(t *testing.T) {
	props := rectangle(300, 500).CalculateProperties()
	if props.Area != 150000 {
		t.Errorf("area = %v, want 150000", props.Area)
	}
	if props.CentroidX != 150 || props.CentroidY != 250 {
		t.Errorf("centroid = (%v, %v), want (150, 250)", props.CentroidX, props.CentroidY)
	}
	wantIx := 300.0 * 500 * 500 * 500 / 12
	if !scalar.EqualWithinRel(props.Ix, wantIx, 1e-9) {
		t.Errorf("Ix = %v, want %v", props.Ix, wantIx)
	}
	wantIy := 500.0 * 300 * 300 * 300 / 12
	if !scalar.EqualWithinRel(props.Iy, wantIy, 1e-9) {
		t.Errorf("Iy = %v, want %v", props.Iy, wantIy)
	}
}

func TestClockwiseOrderGivesSameInertia(t *testing.T) {
	ccw := rectangle(200, 400)
	cw := &Shape{Vertices: []Point{{0, 0}, {0, 400}, {200, 400}, {200, 0}}}
	if !scalar.EqualWithinRel(ccw.Ix(), cw.Ix(), 1e-9) {
		t.Errorf("Ix ccw = %v, cw = %v", ccw.Ix(), cw.Ix())
	}
}

func TestTeeSection(t *testing.T) {
	// 600x100 flange on a 300x400 web
	tee := &Shape{Vertices: []Point{
		{150, 0}, {450, 0}, {450, 400}, {600, 400},
		{600, 500}, {0, 500}, {0, 400}, {150, 400},
	}}
	props := tee.CalculateProperties()
	// Web: A=120000, y=200. Flange: A=60000, y=450.
	wantY := (120000.0*200 + 60000.0*450) / 180000
	if !scalar.EqualWithinAbs(props.CentroidY, wantY, 1e-9) {
		t.Errorf("centroid y = %v, want %v", props.CentroidY, wantY)
	}
	web := 300.0*400*400*400/12 + 120000*(200-wantY)*(200-wantY)
	flange := 600.0*100*100*100/12 + 60000*(450-wantY)*(450-wantY)
	if !scalar.EqualWithinRel(props.Ix, web+flange, 1e-9) {
		t.Errorf("Ix = %v, want %v", props.Ix, web+flange)
	}
	if w := tee.WidthAt(450); w != 600 {
		t.Errorf("width in flange = %v, want 600", w)
	}
	if w := tee.WidthAt(200); w != 300 {
		t.Errorf("width in web = %v, want 300", w)
	}
	if w := tee.WidthAt(600); w != 0 {
		t.Errorf("width above section = %v, want 0", w)
	}

	f := tee.Fibres()
	if !scalar.EqualWithinAbs(f.TopWidth, 600, 1e-6) || !scalar.EqualWithinAbs(f.BottomWidth, 300, 1e-6) {
		t.Errorf("fibre widths = %v / %v, want 600 / 300", f.TopWidth, f.BottomWidth)
	}
	if !scalar.EqualWithinAbs(f.CTop, 500-wantY, 1e-9) || !scalar.EqualWithinAbs(f.CBottom, wantY, 1e-9) {
		t.Errorf("fibre distances = %v / %v", f.CTop, f.CBottom)
	}
	if !scalar.EqualWithinRel(f.STop, props.Ix/(500-wantY), 1e-9) || !scalar.EqualWithinRel(f.SBottom, props.Ix/wantY, 1e-9) {
		t.Errorf("section moduli = %v / %v", f.STop, f.SBottom)
	}
}

func TestRectangleFibres(t *testing.T) {
	f := rectangle(300, 500).Fibres()
	// bh²/6 at both fibres
	want := 300.0 * 500 * 500 / 6
	if !scalar.EqualWithinRel(f.STop, want, 1e-9) || !scalar.EqualWithinRel(f.SBottom, want, 1e-9) {
		t.Errorf("section moduli = %v / %v, want %v", f.STop, f.SBottom, want)
	}
	if !scalar.EqualWithinAbs(f.CentroidWidth, 300, 1e-9) {
		t.Errorf("centroid width = %v, want 300", f.CentroidWidth)
	}
	if (&Shape{}).Fibres() != (Fibres{}) {
		t.Error("empty shape should have zero fibres")
	}
}

func TestValidate(t *testing.T) {
	var verr *ValidationError
	if err := (&Shape{Vertices: []Point{{0, 0}, {1, 1}}}).Validate(); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	collinear := &Shape{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}
	if err := collinear.Validate(); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for collinear vertices, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rect.json")
	data := `{"name": "R", "unit": "cm", "vertices": [{"x":0,"y":0},{"x":30,"y":0},{"x":30,"y":50},{"x":0,"y":50}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	shape, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if shape.InertiaUnit() != "cm^4" {
		t.Errorf("inertia unit = %q, want cm^4", shape.InertiaUnit())
	}
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
