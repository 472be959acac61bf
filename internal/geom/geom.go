// Package geom computes axis-aligned bounding boxes and bounding spheres for
// atom coordinates. The box/sphere conversions are approximate. Box.ToSphere
// uses half the largest edge, not the half-diagonal, and Sphere.ToBox returns
// the enclosing cube, so a round trip does not reproduce the input box.
package geom

import "math"

// Vec3 is a point or extent in angstrom.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Center returns the midpoint of Min and Max.
func (b Box) Center() Vec3 {
	return Midpoint(b.Min, b.Max)
}

// Size returns the edge length along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// MinX through MaxZ return single corner coordinates.
func (b Box) MinX() float64 { return b.Min[0] }
func (b Box) MinY() float64 { return b.Min[1] }
func (b Box) MinZ() float64 { return b.Min[2] }
func (b Box) MaxX() float64 { return b.Max[0] }
func (b Box) MaxY() float64 { return b.Max[1] }
func (b Box) MaxZ() float64 { return b.Max[2] }

// SizeX, SizeY and SizeZ return the edge lengths.
func (b Box) SizeX() float64 { return b.Size()[0] }
func (b Box) SizeY() float64 { return b.Size()[1] }
func (b Box) SizeZ() float64 { return b.Size()[2] }

// CenterX, CenterY and CenterZ return the box midpoint coordinates.
func (b Box) CenterX() float64 { return b.Center()[0] }
func (b Box) CenterY() float64 { return b.Center()[1] }
func (b Box) CenterZ() float64 { return b.Center()[2] }

// ToSphere returns a sphere at the box center whose radius is half the
// largest edge.
func (b Box) ToSphere() Sphere {
	s := b.Size()
	return Sphere{
		Center: b.Center(),
		Radius: math.Max(s[0], math.Max(s[1], s[2])) / 2,
	}
}

// Sphere is a center and radius.
type Sphere struct {
	Center Vec3
	Radius float64
}

// CenterX, CenterY and CenterZ return the sphere center coordinates.
func (s Sphere) CenterX() float64 { return s.Center[0] }
func (s Sphere) CenterY() float64 { return s.Center[1] }
func (s Sphere) CenterZ() float64 { return s.Center[2] }

// RadiusX, RadiusY and RadiusZ exist for symmetry with Box; a sphere has the
// same extent on every axis.
func (s Sphere) RadiusX() float64 { return s.Radius }
func (s Sphere) RadiusY() float64 { return s.Radius }
func (s Sphere) RadiusZ() float64 { return s.Radius }

// ToBox returns the cube of half-width Radius centered on the sphere.
func (s Sphere) ToBox() Box {
	r := s.Radius
	c := s.Center
	return Box{
		Min: Vec3{c[0] - r, c[1] - r, c[2] - r},
		Max: Vec3{c[0] + r, c[1] + r, c[2] + r},
	}
}
