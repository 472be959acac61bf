package target

import (
	"fmt"
	"slices"

	"github.com/agentic-research/molview/api"
)

// Residue is an ordered collection of atoms, addressed by file index and/or
// author number plus insertion code.
type Residue struct {
	// Name is the residue type, e.g. "GLY".
	Name string
	// InsCode is the insertion code; empty means none.
	InsCode string

	index  api.Index
	number api.Index
	atoms  []*Atom
}

// NewResidue builds a residue from nested atom data. When number is unset it
// defaults to index.
func NewResidue(index, number api.Index, insCode, name string, atoms ...api.AtomData) *Residue {
	if index.Set && !number.Set {
		number = index
	}
	r := &Residue{
		Name:    name,
		InsCode: insCode,
		index:   index,
		number:  number,
	}
	for _, a := range atoms {
		r.atoms = append(r.atoms, atomFromData(a))
	}
	return r
}

func residueFromData(d api.ResidueData) *Residue {
	return NewResidue(d.Index, d.Number, d.InsCode, d.Name, d.Atoms...)
}

// Valid reports whether the residue has a number or an index.
func (r *Residue) Valid() bool {
	return r.number.Set || r.index.Set
}

// Index is the residue's position in the structure file; Number is its
// author residue number.
func (r *Residue) Index() api.Index  { return r.index }
func (r *Residue) Number() api.Index { return r.number }

// SetIndex and SetNumber set one address and make the residue valid.
func (r *Residue) SetIndex(n int)  { r.index = api.Int(n) }
func (r *Residue) SetNumber(n int) { r.number = api.Int(n) }

// Len returns the number of atoms, valid or not.
func (r *Residue) Len() int {
	return len(r.atoms)
}

// Atoms returns the residue's atoms in insertion order.
func (r *Residue) Atoms() []*Atom {
	return slices.Clone(r.atoms)
}

// AddAtom appends a new atom and returns it.
func (r *Residue) AddAtom(index api.Index, name string, x, y, z *float64) *Atom {
	a := NewAtom(index, name, x, y, z)
	r.atoms = append(r.atoms, a)
	return a
}

// FindAtom returns the first valid atom with the given name, or an invalid
// Atom if there is none.
func (r *Residue) FindAtom(name string) (*Atom, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("find atom %q in residue: %w", name, ErrInvalidReceiver)
	}
	if i, ok := r.atomAt(name); ok {
		return r.atoms[i], nil
	}
	return &Atom{}, nil
}

// RemoveAtom removes a. It reports false if a does not belong to r.
func (r *Residue) RemoveAtom(a *Atom) bool {
	i := slices.Index(r.atoms, a)
	if i < 0 {
		return false
	}
	r.atoms = slices.Delete(r.atoms, i, i+1)
	return true
}

// RemoveAtomNamed removes the first atom that FindAtom(name) would return.
func (r *Residue) RemoveAtomNamed(name string) (bool, error) {
	if !r.Valid() {
		return false, fmt.Errorf("remove atom %q from residue: %w", name, ErrInvalidReceiver)
	}
	i, ok := r.atomAt(name)
	if !ok {
		return false, nil
	}
	r.atoms = slices.Delete(r.atoms, i, i+1)
	return true, nil
}

func (r *Residue) atomAt(name string) (int, bool) {
	for i, a := range r.atoms {
		if a.Valid() && a.Name == name {
			return i, true
		}
	}
	return -1, false
}

// is reports whether r answers to the author number and insertion code.
func (r *Residue) is(number int, insCode string) bool {
	return r.number.Is(number) && r.InsCode == insCode
}

func (r *Residue) data() api.ResidueData {
	d := api.ResidueData{
		Name:    r.Name,
		Index:   r.index,
		Number:  r.number,
		InsCode: r.InsCode,
		Atoms:   make([]api.AtomData, 0, len(r.atoms)),
	}
	for _, a := range r.atoms {
		d.Atoms = append(d.Atoms, a.data())
	}
	return d
}
