package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// Shape represents a beam cross-section defined by polygon vertices.
// The shape is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Shape struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Length unit of the vertex coordinates (default mm)
	Unit string `json:"unit,omitempty"`

	// Vertices of a simple polygon (no holes), either winding
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties, in the shape's unit
type Properties struct {
	// Overall dimensions
	Width  float64
	Height float64
	Area   float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moments of area about the centroidal axes
	Ix float64
	Iy float64
}

// LengthUnit returns the vertex unit, defaulting to millimeters
func (s *Shape) LengthUnit() string {
	if s.Unit == "" {
		return "mm"
	}
	return s.Unit
}

// InertiaUnit returns the unit of Ix and Iy, e.g. "mm^4"
func (s *Shape) InertiaUnit() string {
	return s.LengthUnit() + "^4"
}

// Validate checks if the shape definition is valid
func (s *Shape) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	area, _, _ := s.areaAndCentroid()
	if area == 0 {
		return &ValidationError{"section vertices enclose no area"}
	}
	return nil
}

// LoadFromFile loads a shape definition from a JSON file
func LoadFromFile(filepath string) (*Shape, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var shape Shape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath, err)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &shape, nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
