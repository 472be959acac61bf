package target

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agentic-research/molview/api"
)

var residueIDPattern = regexp.MustCompile(`^([+-]?\d+)([A-Za-z]?)$`)

// ParseResidueID splits a residue identifier such as "99", "99B" or "-3"
// into its author number and insertion code.
func ParseResidueID(id string) (number int, insCode string, err error) {
	m := residueIDPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return 0, "", &api.NumberError{Input: strconv.Quote(id)}
	}
	number, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, "", &api.NumberError{Input: strconv.Quote(id)}
	}
	return number, m[2], nil
}

// New builds a single-chain Target from residue or atom identifiers. A
// residue is an author number with an optional insertion code suffix ("99",
// "99B", "-3"); an atom appends ":" and the atom name ("99B:CA"). Atoms named
// this way carry no index, so the viewer matches them by name. Identifiers
// naming the same residue share one Residue. With no identifiers the whole
// chain is selected.
func New(chain string, auth bool, ids ...string) (*Target, error) {
	t := &Target{Auth: auth}
	c := t.AddChain(chain, "")
	for _, id := range ids {
		resID, atomName, _ := strings.Cut(id, ":")
		number, insCode, err := ParseResidueID(resID)
		if err != nil {
			return nil, err
		}

		var r *Residue
		if i, ok := c.residueAt(number, insCode); ok {
			r = c.residues[i]
		} else {
			r = c.AddResidue(api.Index{}, api.Int(number), insCode, "")
		}
		if atomName = strings.TrimSpace(atomName); atomName != "" {
			r.AddAtom(api.Index{}, atomName, nil, nil, nil)
		}
	}
	return t, nil
}

// Merge concatenates the chains of ts into a new Target. The result takes
// Auth from the first target. Inputs are not modified.
func Merge(ts ...*Target) *Target {
	out := &Target{}
	for i, t := range ts {
		if i == 0 {
			out.Auth = t.Auth
		}
		for _, c := range t.ToData().Chains {
			out.AddChain(c.Name, c.AuthName, c.Residues...)
		}
	}
	return out
}
