package payload

import (
	"errors"
	"fmt"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/geom"
)

// ErrDimension is returned for coordinates that are not 3-dimensional.
var ErrDimension = errors.New("coordinates must be 3-dimensional")

const (
	DefaultBorderRadius = 0.1
	DefaultShapeColor   = "red"
	DefaultBoxLabel     = "Bounding Box"
	DefaultSphereLabel  = "Bounding Sphere"
)

// ShapeOptions styles a shape. Zero fields take the package defaults.
type ShapeOptions struct {
	// Radius is the box border thickness. Spheres ignore it.
	Radius float64
	Label  string
	Color  string
}

func (o ShapeOptions) withDefaults(label string) ShapeOptions {
	if o.Radius <= 0 {
		o.Radius = DefaultBorderRadius
	}
	if o.Label == "" {
		o.Label = label
	}
	if o.Color == "" {
		o.Color = DefaultShapeColor
	}
	return o
}

func vec3(name string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("%s has %d components: %w", name, len(v), ErrDimension)
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

// Box builds a box outline payload from two opposite corners.
func Box(min, max []float64, opts ShapeOptions) (api.BoxShape, error) {
	lo, err := vec3("min", min)
	if err != nil {
		return api.BoxShape{}, err
	}
	hi, err := vec3("max", max)
	if err != nil {
		return api.BoxShape{}, err
	}
	return BoxFromGeom(geom.Box{Min: lo, Max: hi}, opts), nil
}

// BoxFromGeom builds a box outline payload from a computed box.
func BoxFromGeom(b geom.Box, opts ShapeOptions) api.BoxShape {
	opts = opts.withDefaults(DefaultBoxLabel)
	return api.BoxShape{
		Type:   api.PayloadShape,
		Shape:  "box",
		Min:    b.Min,
		Max:    b.Max,
		Radius: opts.Radius,
		Label:  opts.Label,
		Color:  opts.Color,
	}
}

// Sphere builds a sphere payload. radius must be positive.
func Sphere(center []float64, radius float64, opts ShapeOptions) (api.SphereShape, error) {
	c, err := vec3("center", center)
	if err != nil {
		return api.SphereShape{}, err
	}
	if radius <= 0 {
		return api.SphereShape{}, fmt.Errorf("sphere radius %g: %w", radius, geom.ErrInvalidCoords)
	}
	return SphereFromGeom(geom.Sphere{Center: c, Radius: radius}, opts), nil
}

// SphereFromGeom builds a sphere payload from a computed sphere.
func SphereFromGeom(s geom.Sphere, opts ShapeOptions) api.SphereShape {
	opts = opts.withDefaults(DefaultSphereLabel)
	return api.SphereShape{
		Type:   api.PayloadShape,
		Shape:  "sphere",
		Center: s.Center,
		Radius: s.Radius,
		Label:  opts.Label,
		Color:  opts.Color,
	}
}
