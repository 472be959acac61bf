package target

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/geom"
)

// ErrInvalidReceiver is returned when a query is made on an entity whose
// Valid is false.
var ErrInvalidReceiver = errors.New("invalid receiver")

// Target is an ordered collection of chains: the unit exchanged with the
// viewer for selection, focus and measurement. A Target is valid while it
// holds at least one chain.
type Target struct {
	// Auth marks residue numbers and chain names as author-provided.
	Auth bool

	chains []*Chain

	// boundary is computed on first access and never recomputed. Adding or
	// removing atoms afterwards leaves it stale.
	boundary *geom.Boundary
}

// FromData builds a Target from its nested wire form.
func FromData(d api.TargetData) *Target {
	t := &Target{Auth: d.Auth}
	for _, c := range d.Chains {
		t.AddChain(c.Name, c.AuthName, c.Residues...)
	}
	return t
}

// Parse decodes a JSON target. Residue numbers and atom indices may be JSON
// numbers or numeric strings; anything else fails with api.ErrInvalidNumber.
func Parse(data []byte) (*Target, error) {
	var d api.TargetData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode target: %w", err)
	}
	return FromData(d), nil
}

// FromValue builds a Target from an already-decoded generic value such as a
// map[string]any produced by a JSON parser.
func FromValue(v any) (*Target, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode target value: %w", err)
	}
	return Parse(data)
}

// Valid reports whether the target holds any chain.
func (t *Target) Valid() bool {
	return len(t.chains) > 0
}

// Len returns the number of chains.
func (t *Target) Len() int {
	return len(t.chains)
}

// Chains returns the target's chains in insertion order.
func (t *Target) Chains() []*Chain {
	return slices.Clone(t.chains)
}

// Residues returns every valid residue, in chain then residue order.
func (t *Target) Residues() []*Residue {
	var residues []*Residue
	for _, c := range t.chains {
		for _, r := range c.residues {
			if r.Valid() {
				residues = append(residues, r)
			}
		}
	}
	return residues
}

// Atoms returns every valid atom, in chain, residue, then atom order.
func (t *Target) Atoms() []*Atom {
	var atoms []*Atom
	for _, c := range t.chains {
		atoms = append(atoms, c.Atoms()...)
	}
	return atoms
}

// AddChain appends a new chain and returns it.
func (t *Target) AddChain(name, authName string, residues ...api.ResidueData) *Chain {
	c := NewChain(name, authName, residues...)
	t.chains = append(t.chains, c)
	return c
}

// FindChain returns the first chain with the given name, or an invalid Chain
// if there is none.
func (t *Target) FindChain(name string) (*Chain, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("find chain %q in target: %w", name, ErrInvalidReceiver)
	}
	if i, ok := t.chainAt(name); ok {
		return t.chains[i], nil
	}
	return &Chain{}, nil
}

// FindResidue looks up a residue by chain name, author number and insertion
// code.
func (t *Target) FindResidue(chain string, number int, insCode string) (*Residue, error) {
	c, err := t.FindChain(chain)
	if err != nil {
		return nil, err
	}
	if !c.Valid() {
		return &Residue{}, nil
	}
	return c.FindResidue(number, insCode)
}

// FindAtom looks up an atom by chain name, residue number, atom name and
// insertion code.
func (t *Target) FindAtom(chain string, number int, atomName, insCode string) (*Atom, error) {
	c, err := t.FindChain(chain)
	if err != nil {
		return nil, err
	}
	if !c.Valid() {
		return &Atom{}, nil
	}
	return c.FindAtom(number, atomName, insCode)
}

// RemoveChain removes c. It reports false if c does not belong to t.
func (t *Target) RemoveChain(c *Chain) bool {
	i := slices.Index(t.chains, c)
	if i < 0 {
		return false
	}
	t.chains = slices.Delete(t.chains, i, i+1)
	return true
}

// RemoveChainNamed removes the first chain that FindChain(name) would return.
func (t *Target) RemoveChainNamed(name string) (bool, error) {
	if !t.Valid() {
		return false, fmt.Errorf("remove chain %q from target: %w", name, ErrInvalidReceiver)
	}
	i, ok := t.chainAt(name)
	if !ok {
		return false, nil
	}
	t.chains = slices.Delete(t.chains, i, i+1)
	return true, nil
}

func (t *Target) chainAt(name string) (int, bool) {
	for i, c := range t.chains {
		if c.Valid() && c.name == name {
			return i, true
		}
	}
	return -1, false
}

// Boundary returns the bounding box and sphere of the target's valid atoms.
// The result is computed once and cached; later mutations are not reflected.
func (t *Target) Boundary() (*geom.Boundary, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("boundary of target: %w", ErrInvalidReceiver)
	}
	if t.boundary != nil {
		return t.boundary, nil
	}

	atoms := t.Atoms()
	points := make([]geom.Vec3, 0, len(atoms))
	for _, a := range atoms {
		p, ok := a.Coords()
		if !ok {
			return nil, fmt.Errorf("%w: atom %s (%s) has no coordinates", geom.ErrInvalidCoords, a.Name, a.index)
		}
		points = append(points, p)
	}
	b, err := geom.BoundaryOf(points)
	if err != nil {
		return nil, err
	}
	t.boundary = b
	return b, nil
}

// ToData returns the canonical nested form. FromData(t.ToData()).ToData()
// equals t.ToData().
func (t *Target) ToData() api.TargetData {
	d := api.TargetData{
		Chains: make([]api.ChainData, 0, len(t.chains)),
		Auth:   t.Auth,
	}
	for _, c := range t.chains {
		d.Chains = append(d.Chains, c.data())
	}
	return d
}

// MarshalJSON implements json.Marshaler using ToData.
func (t *Target) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToData())
}
