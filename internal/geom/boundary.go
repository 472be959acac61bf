package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoords is returned when a coordinate set is empty, ragged or
// contains non-finite values.
var ErrInvalidCoords = errors.New("invalid coordinates provided to boundary")

// Boundary is the bounding box of a point set together with a sphere
// centered on that box.
type Boundary struct {
	Box    Box
	Sphere Sphere
}

// NewBoundary computes a Boundary from an N×3 coordinate matrix.
func NewBoundary(coords [][]float64) (*Boundary, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("%w: no coordinates", ErrInvalidCoords)
	}
	points := make([]Vec3, len(coords))
	for i, row := range coords {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 3", ErrInvalidCoords, i, len(row))
		}
		points[i] = Vec3{row[0], row[1], row[2]}
	}
	return BoundaryOf(points)
}

// BoundaryOf computes the tight box around points and the sphere centered on
// that box's midpoint whose radius reaches the farthest point. The sphere is
// not the minimal enclosing sphere.
func BoundaryOf(points []Vec3) (*Boundary, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no coordinates", ErrInvalidCoords)
	}

	lo := Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, p := range points {
		for axis, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidCoords, i)
			}
			lo[axis] = math.Min(lo[axis], v)
			hi[axis] = math.Max(hi[axis], v)
		}
	}

	center := Midpoint(lo, hi)
	var radius float64
	for _, p := range points {
		radius = math.Max(radius, p.Sub(center).Norm())
	}

	return &Boundary{
		Box:    Box{Min: lo, Max: hi},
		Sphere: Sphere{Center: center, Radius: radius},
	}, nil
}
