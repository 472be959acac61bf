package target

import (
	"strconv"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/geom"
)

// Atom is the leaf of the hierarchy. An Atom without an index is the
// "not found" sentinel.
type Atom struct {
	Name    string
	index   api.Index
	x, y, z *float64
}

// NewAtom returns an atom with its coordinates rounded to 6 decimal places.
// Any coordinate may be nil.
func NewAtom(index api.Index, name string, x, y, z *float64) *Atom {
	return &Atom{
		Name:  name,
		index: index,
		x:     round6(x),
		y:     round6(y),
		z:     round6(z),
	}
}

func atomFromData(d api.AtomData) *Atom {
	return NewAtom(d.Index, d.Name, d.X, d.Y, d.Z)
}

// Valid reports whether the atom has an index.
func (a *Atom) Valid() bool {
	return a.index.Set
}

// Index returns the atom's index in the structure file.
func (a *Atom) Index() api.Index {
	return a.index
}

// SetIndex sets the index, which also makes the atom valid.
func (a *Atom) SetIndex(n int) {
	a.index = api.Int(n)
}

// X, Y and Z return a coordinate and whether it is present.
func (a *Atom) X() (float64, bool) { return deref(a.x) }
func (a *Atom) Y() (float64, bool) { return deref(a.y) }
func (a *Atom) Z() (float64, bool) { return deref(a.z) }

// Coords returns the atom position. The second result is false unless all
// three coordinates are present.
func (a *Atom) Coords() (geom.Vec3, bool) {
	if a.x == nil || a.y == nil || a.z == nil {
		return geom.Vec3{}, false
	}
	return geom.Vec3{*a.x, *a.y, *a.z}, true
}

func (a *Atom) data() api.AtomData {
	return api.AtomData{
		Name:  a.Name,
		Index: a.index,
		X:     clone(a.x),
		Y:     clone(a.y),
		Z:     clone(a.z),
	}
}

// round6 rounds the exact binary value of *p to 6 decimal places.
func round6(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v, _ := strconv.ParseFloat(strconv.FormatFloat(*p, 'f', 6, 64), 64)
	return &v
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func clone(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
