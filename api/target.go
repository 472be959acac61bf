package api

// TargetData is the nested selection shape exchanged with the viewer in both
// directions: the selection, hover, focus and measurement payloads carry it,
// and the viewer emits it back for on-screen selections.
type TargetData struct {
	// Chains in selection order.
	Chains []ChainData `json:"chains"`
	// Auth selects author-provided chain names and residue numbers instead
	// of the sequential label scheme.
	Auth bool `json:"auth"`
}

// ChainData addresses a chain and, optionally, residues within it.
type ChainData struct {
	Name string `json:"name"`
	// AuthName defaults to Name when empty.
	AuthName string        `json:"auth_name"`
	Residues []ResidueData `json:"residues"`
}

// ResidueData addresses a residue by file index and/or author number.
type ResidueData struct {
	// Name is the residue type, e.g. "GLY".
	Name  string `json:"name"`
	Index Index  `json:"index"`
	// Number defaults to Index when unset.
	Number Index `json:"number"`
	// InsCode is the insertion code; empty means none.
	InsCode string     `json:"ins_code"`
	Atoms   []AtomData `json:"atoms"`
}

// AtomData addresses a single atom. Coordinates are optional.
type AtomData struct {
	Name  string   `json:"name"`
	Index Index    `json:"index"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Z     *float64 `json:"z"`
}

// Float returns a pointer to v, for filling optional coordinates.
func Float(v float64) *float64 {
	return &v
}
