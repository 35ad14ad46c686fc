package section

import (
	"math"
	"sort"
)

// CalculateProperties computes geometric properties of the shape
func (s *Shape) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	props.Area, props.CentroidX, props.CentroidY = s.areaAndCentroid()
	props.Ix, props.Iy = s.centroidalInertia(props.Area, props.CentroidX, props.CentroidY)

	return props
}

// Ix returns the second moment of area about the horizontal centroidal axis
func (s *Shape) Ix() float64 {
	return s.CalculateProperties().Ix
}

// areaAndCentroid uses the shoelace formula
func (s *Shape) areaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// centroidalInertia computes Ix and Iy about the origin with the shoelace
// family of formulas, then shifts them to the centroid (parallel axis theorem)
func (s *Shape) centroidalInertia(area, cx, cy float64) (ix, iy float64) {
	n := len(s.Vertices)
	var signedArea, sumIx, sumIy float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := s.Vertices[i].X, s.Vertices[i].Y
		xj, yj := s.Vertices[j].X, s.Vertices[j].Y
		cross := xi*yj - xj*yi
		signedArea += cross
		sumIx += (yi*yi + yi*yj + yj*yj) * cross
		sumIy += (xi*xi + xi*xj + xj*xj) * cross
	}
	if signedArea == 0 {
		return 0, 0
	}

	// Clockwise vertex order flips the sign of every term
	sign := 1.0
	if signedArea < 0 {
		sign = -1
	}
	ix = sign*sumIx/12 - area*cy*cy
	iy = sign*sumIy/12 - area*cx*cx
	return ix, iy
}

// Fibres describes the section at its extreme fibres and centroidal axis,
// measured from the horizontal centroidal axis
type Fibres struct {
	TopWidth      float64
	CentroidWidth float64
	BottomWidth   float64

	// Distances from the centroid to the top and bottom fibres
	CTop    float64
	CBottom float64

	// Elastic section moduli Ix/c
	STop    float64
	SBottom float64
}

// Fibres computes the fibre widths and elastic section moduli of the shape
func (s *Shape) Fibres() Fibres {
	p := s.CalculateProperties()
	if p.Area == 0 {
		return Fibres{}
	}
	// Extreme fibres are sampled just inside the outline so horizontal
	// edges lying on the fibre count as width
	inset := p.Height * 1e-9
	f := Fibres{
		TopWidth:      s.WidthAt(p.MaxY - inset),
		CentroidWidth: s.WidthAt(p.CentroidY),
		BottomWidth:   s.WidthAt(p.MinY + inset),
		CTop:          p.MaxY - p.CentroidY,
		CBottom:       p.CentroidY - p.MinY,
	}
	if f.CTop > 0 {
		f.STop = p.Ix / f.CTop
	}
	if f.CBottom > 0 {
		f.SBottom = p.Ix / f.CBottom
	}
	return f
}

// WidthAt returns the total width of material cut by the horizontal line at y.
// Edges are half-open in y so a vertex on the line is counted once.
func (s *Shape) WidthAt(y float64) float64 {
	var xs []float64
	for i, a := range s.Vertices {
		b := s.Vertices[(i+1)%len(s.Vertices)]
		if (a.Y > y) == (b.Y > y) {
			continue
		}
		xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
	}
	sort.Float64s(xs)

	width := 0.0
	for i := 1; i < len(xs); i += 2 {
		width += xs[i] - xs[i-1]
	}
	return width
}
