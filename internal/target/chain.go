package target

import (
	"fmt"
	"slices"

	"github.com/agentic-research/molview/api"
)

// Chain is an ordered collection of residues. A chain stays valid when its
// last residue is removed.
type Chain struct {
	name     string
	authName string
	residues []*Residue
}

// NewChain builds a chain from nested residue data. authName defaults to name.
func NewChain(name, authName string, residues ...api.ResidueData) *Chain {
	if authName == "" {
		authName = name
	}
	c := &Chain{name: name, authName: authName}
	for _, r := range residues {
		c.residues = append(c.residues, residueFromData(r))
	}
	return c
}

// Valid reports whether the chain has a name or an author name.
func (c *Chain) Valid() bool {
	return c.name != "" || c.authName != ""
}

// Name returns the label_asym_id style chain name.
func (c *Chain) Name() string { return c.name }

// AuthName returns the author chain name.
func (c *Chain) AuthName() string { return c.authName }

// SetName renames the chain; an empty name and auth name make it invalid.
func (c *Chain) SetName(name string) { c.name = name }

// SetAuthName sets the author chain name.
func (c *Chain) SetAuthName(name string) { c.authName = name }

// Len returns the number of residues, valid or not.
func (c *Chain) Len() int {
	return len(c.residues)
}

// Residues returns the chain's residues in insertion order.
func (c *Chain) Residues() []*Residue {
	return slices.Clone(c.residues)
}

// Atoms returns every valid atom of the chain, in residue then atom order.
func (c *Chain) Atoms() []*Atom {
	var atoms []*Atom
	for _, r := range c.residues {
		for _, a := range r.atoms {
			if a.Valid() {
				atoms = append(atoms, a)
			}
		}
	}
	return atoms
}

// AddResidue appends a new residue and returns it.
func (c *Chain) AddResidue(index, number api.Index, insCode, name string, atoms ...api.AtomData) *Residue {
	r := NewResidue(index, number, insCode, name, atoms...)
	c.residues = append(c.residues, r)
	return r
}

// FindResidue returns the first residue with the given author number and
// insertion code, or an invalid Residue if there is none.
func (c *Chain) FindResidue(number int, insCode string) (*Residue, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("find residue %d%s in chain: %w", number, insCode, ErrInvalidReceiver)
	}
	if i, ok := c.residueAt(number, insCode); ok {
		return c.residues[i], nil
	}
	return &Residue{}, nil
}

// FindAtom looks up an atom by residue number, insertion code and atom name.
func (c *Chain) FindAtom(number int, atomName, insCode string) (*Atom, error) {
	r, err := c.FindResidue(number, insCode)
	if err != nil {
		return nil, err
	}
	if !r.Valid() {
		return &Atom{}, nil
	}
	return r.FindAtom(atomName)
}

// RemoveResidue removes r. It reports false if r does not belong to c.
func (c *Chain) RemoveResidue(r *Residue) bool {
	i := slices.Index(c.residues, r)
	if i < 0 {
		return false
	}
	c.residues = slices.Delete(c.residues, i, i+1)
	return true
}

// RemoveResidueNumbered removes the first residue that
// FindResidue(number, insCode) would return.
func (c *Chain) RemoveResidueNumbered(number int, insCode string) (bool, error) {
	if !c.Valid() {
		return false, fmt.Errorf("remove residue %d%s from chain: %w", number, insCode, ErrInvalidReceiver)
	}
	i, ok := c.residueAt(number, insCode)
	if !ok {
		return false, nil
	}
	c.residues = slices.Delete(c.residues, i, i+1)
	return true, nil
}

func (c *Chain) residueAt(number int, insCode string) (int, bool) {
	for i, r := range c.residues {
		if r.is(number, insCode) {
			return i, true
		}
	}
	return -1, false
}

func (c *Chain) data() api.ChainData {
	d := api.ChainData{
		Name:     c.name,
		AuthName: c.authName,
		Residues: make([]api.ResidueData, 0, len(c.residues)),
	}
	for _, r := range c.residues {
		d.Residues = append(d.Residues, r.data())
	}
	return d
}
