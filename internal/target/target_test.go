package target

import (
	"encoding/json"
	"testing"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSelection = `{
  "chains": [
    {"name": "L", "auth_name": "L", "residues": [
      {"name": "GLY", "index": 62, "number": 62, "ins_code": "", "atoms": [
        {"name": "N", "index": 4817, "x": 3.759000062942505, "y": -11.343000411987305, "z": -5.960999965667725},
        {"name": "CA", "index": 4818, "x": 4.876999855041504, "y": -12.213000297546387, "z": -6.27400016784668}
      ]}
    ]},
    {"name": "H", "auth_name": "H", "residues": [
      {"name": "ARG", "index": 105, "number": 99, "ins_code": "B", "atoms": [
        {"name": "N", "index": 825, "x": 1.0479999780654907, "y": -5.711999893188477, "z": -34.37200164794922},
        {"name": "CA", "index": 826, "x": 2.497999906539917, "y": -5.5329999923706055, "z": -34.34299850463867},
        {"name": "CB", "index": 829, "x": 2.881999969482422, "y": -4.296999931335449, "z": -33.5260009765625}
      ]},
      {"name": "GLY", "index": 116, "number": 108, "ins_code": "", "atoms": [
        {"name": "CA", "index": 943, "x": -11.680999755859375, "y": -22.361000061035156, "z": -22.992000579833984}
      ]}
    ]}
  ],
  "auth": false
}`

func parseSample(t *testing.T) *Target {
	t.Helper()
	tg, err := Parse([]byte(sampleSelection))
	require.NoError(t, err)
	return tg
}

func TestParse_Sample(t *testing.T) {
	tg := parseSample(t)

	assert.True(t, tg.Valid())
	assert.Equal(t, 2, tg.Len())
	assert.Len(t, tg.Residues(), 3)
	assert.Len(t, tg.Atoms(), 6)

	names := []string{}
	for _, a := range tg.Atoms() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"N", "CA", "N", "CA", "CB", "CA"}, names)
}

func TestParse_Defaults(t *testing.T) {
	tg, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"index": 7, "atoms": [{"index": 1}]}]}]}`))
	require.NoError(t, err)

	want := api.TargetData{
		Chains: []api.ChainData{{
			Name:     "A",
			AuthName: "A",
			Residues: []api.ResidueData{{
				Index:  api.Int(7),
				Number: api.Int(7),
				Atoms:  []api.AtomData{{Index: api.Int(1)}},
			}},
		}},
	}
	assert.Equal(t, want, tg.ToData())
}

func TestParse_NumericStrings(t *testing.T) {
	t.Run("numeric string accepted", func(t *testing.T) {
		tg, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"index": "12", "number": " 99 ", "atoms": [{"index": "3"}]}]}]}`))
		require.NoError(t, err)
		r, err := tg.FindResidue("A", 99, "")
		require.NoError(t, err)
		assert.True(t, r.Valid())
		assert.Equal(t, api.Int(12), r.Index())
		assert.Equal(t, api.Int(3), r.Atoms()[0].Index())
	})

	t.Run("non numeric string rejected", func(t *testing.T) {
		_, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"number": "12x"}]}]}`))
		require.ErrorIs(t, err, api.ErrInvalidNumber)
	})

	t.Run("fractional number rejected", func(t *testing.T) {
		_, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"index": 1.5}]}]}`))
		require.ErrorIs(t, err, api.ErrInvalidNumber)
	})

	t.Run("integral float accepted", func(t *testing.T) {
		tg, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"index": 7.0}]}]}`))
		require.NoError(t, err)
		assert.Equal(t, api.Int(7), tg.Residues()[0].Index())
	})

	t.Run("out of range number rejected", func(t *testing.T) {
		for _, v := range []string{"1e30", "-1e30", "9.3e18", "9223372036854775808"} {
			_, err := Parse([]byte(`{"chains": [{"name": "A", "residues": [{"index": ` + v + `}]}]}`))
			require.ErrorIs(t, err, api.ErrInvalidNumber, v)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	tg := parseSample(t)
	d := tg.ToData()

	assert.Equal(t, d, FromData(d).ToData())

	raw, err := json.Marshal(tg)
	require.NoError(t, err)
	again, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, d, again.ToData())
}

func TestRoundTrip_AuthFlag(t *testing.T) {
	tg, err := New("A", true, "5")
	require.NoError(t, err)
	assert.True(t, FromData(tg.ToData()).Auth)
}

func TestAtom_Rounding(t *testing.T) {
	a := NewAtom(api.Int(1), "CA", api.Float(3.759000062942505), api.Float(-12.2130004), nil)

	x, ok := a.X()
	require.True(t, ok)
	assert.Equal(t, 3.759, x)
	y, _ := a.Y()
	assert.Equal(t, -12.213, y)
	_, ok = a.Z()
	assert.False(t, ok)
	_, ok = a.Coords()
	assert.False(t, ok)
}

func TestAtom_RoundingHalfway(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{20.9320575, 20.932057},
		{-55.5421165, -55.542116},
		{0.1234564, 0.123456},
		{-0.0000004, 0},
	} {
		a := NewAtom(api.Int(1), "CA", api.Float(tc.in), nil, nil)
		x, ok := a.X()
		require.True(t, ok)
		assert.Equal(t, tc.want, x, "%v", tc.in)
	}
}

func TestAtom_Validity(t *testing.T) {
	a := NewAtom(api.Index{}, "CA", nil, nil, nil)
	assert.False(t, a.Valid())
	a.SetIndex(0)
	assert.True(t, a.Valid())
}

func TestFind(t *testing.T) {
	tg := parseSample(t)

	t.Run("chain hit and miss", func(t *testing.T) {
		c, err := tg.FindChain("L")
		require.NoError(t, err)
		assert.True(t, c.Valid())
		assert.Equal(t, "L", c.Name())

		c, err = tg.FindChain("X")
		require.NoError(t, err)
		assert.False(t, c.Valid())
	})

	t.Run("residue requires insertion code", func(t *testing.T) {
		r, err := tg.FindResidue("H", 99, "B")
		require.NoError(t, err)
		assert.True(t, r.Valid())
		assert.Equal(t, "ARG", r.Name)
		assert.Equal(t, api.Int(105), r.Index())

		r, err = tg.FindResidue("H", 99, "")
		require.NoError(t, err)
		assert.False(t, r.Valid())
	})

	t.Run("residue miss on unknown chain", func(t *testing.T) {
		r, err := tg.FindResidue("X", 71, "")
		require.NoError(t, err)
		assert.False(t, r.Valid())

		r, err = tg.FindResidue("L", 71, "")
		require.NoError(t, err)
		assert.False(t, r.Valid())
	})

	t.Run("atom", func(t *testing.T) {
		a, err := tg.FindAtom("H", 99, "N", "B")
		require.NoError(t, err)
		assert.True(t, a.Valid())
		assert.Equal(t, api.Int(825), a.Index())

		a, err = tg.FindAtom("H", 99, "OXT", "B")
		require.NoError(t, err)
		assert.False(t, a.Valid())

		a, err = tg.FindAtom("Q", 99, "N", "B")
		require.NoError(t, err)
		assert.False(t, a.Valid())
	})

	t.Run("chain level", func(t *testing.T) {
		c, err := tg.FindChain("H")
		require.NoError(t, err)
		a, err := c.FindAtom(108, "CA", "")
		require.NoError(t, err)
		assert.True(t, a.Valid())
		assert.Equal(t, api.Int(943), a.Index())
	})
}

func TestFind_InvalidReceiver(t *testing.T) {
	_, err := (&Target{}).FindChain("A")
	require.ErrorIs(t, err, ErrInvalidReceiver)

	_, err = (&Target{}).FindResidue("A", 1, "")
	require.ErrorIs(t, err, ErrInvalidReceiver)

	_, err = (&Chain{}).FindResidue(1, "")
	require.ErrorIs(t, err, ErrInvalidReceiver)

	_, err = (&Residue{}).FindAtom("CA")
	require.ErrorIs(t, err, ErrInvalidReceiver)

	_, err = (&Chain{}).RemoveResidueNumbered(1, "")
	require.ErrorIs(t, err, ErrInvalidReceiver)
}

func TestFind_EmptyCollectionsAreMisses(t *testing.T) {
	tg := &Target{}
	c := tg.AddChain("A", "")

	r, err := c.FindResidue(1, "")
	require.NoError(t, err)
	assert.False(t, r.Valid())

	res := c.AddResidue(api.Int(1), api.Index{}, "", "ALA")
	a, err := res.FindAtom("CA")
	require.NoError(t, err)
	assert.False(t, a.Valid())
}

func TestRemove(t *testing.T) {
	t.Run("atom by name and by instance", func(t *testing.T) {
		tg := parseSample(t)
		r, err := tg.FindResidue("H", 99, "B")
		require.NoError(t, err)

		cb, err := r.FindAtom("CB")
		require.NoError(t, err)

		ok, err := r.RemoveAtomNamed("CA")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, r.RemoveAtom(cb))
		assert.False(t, r.RemoveAtom(cb))

		a, err := r.FindAtom("CA")
		require.NoError(t, err)
		assert.False(t, a.Valid())
		a, err = tg.FindAtom("H", 99, "CB", "B")
		require.NoError(t, err)
		assert.False(t, a.Valid())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("residue", func(t *testing.T) {
		tg := parseSample(t)
		c, err := tg.FindChain("H")
		require.NoError(t, err)

		ok, err := c.RemoveResidueNumbered(108, "")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = c.RemoveResidueNumbered(108, "")
		require.NoError(t, err)
		assert.False(t, ok)

		r, err := c.FindResidue(99, "B")
		require.NoError(t, err)
		assert.True(t, c.RemoveResidue(r))

		assert.Equal(t, 0, c.Len())
		assert.True(t, c.Valid(), "chains stay valid when emptied")
	})

	t.Run("last chain invalidates target", func(t *testing.T) {
		tg := parseSample(t)
		l, err := tg.FindChain("L")
		require.NoError(t, err)

		assert.True(t, tg.RemoveChain(l))
		ok, err := tg.RemoveChainNamed("H")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.False(t, tg.Valid())
		_, err = tg.FindChain("H")
		require.ErrorIs(t, err, ErrInvalidReceiver)
		_, err = tg.RemoveChainNamed("H")
		require.ErrorIs(t, err, ErrInvalidReceiver)

		tg.AddChain("Z", "")
		assert.True(t, tg.Valid())
	})

	t.Run("foreign instance", func(t *testing.T) {
		tg := parseSample(t)
		assert.False(t, tg.RemoveChain(NewChain("L", "")))
	})
}

func TestBoundary(t *testing.T) {
	tg := &Target{}
	r := tg.AddChain("A", "").AddResidue(api.Int(1), api.Index{}, "", "ALA")
	r.AddAtom(api.Int(1), "N", api.Float(0), api.Float(0), api.Float(0))
	r.AddAtom(api.Int(2), "CA", api.Float(2), api.Float(0), api.Float(0))
	r.AddAtom(api.Int(3), "C", api.Float(1), api.Float(2), api.Float(0))

	b, err := tg.Boundary()
	require.NoError(t, err)
	assert.Equal(t, geom.Vec3{0, 0, 0}, b.Box.Min)
	assert.Equal(t, geom.Vec3{2, 2, 0}, b.Box.Max)
	assert.Equal(t, geom.Vec3{1, 1, 0}, b.Sphere.Center)

	// Cached: later atoms do not move the boundary.
	r.AddAtom(api.Int(4), "O", api.Float(10), api.Float(10), api.Float(10))
	again, err := tg.Boundary()
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.Equal(t, geom.Vec3{2, 2, 0}, again.Box.Max)
}

func TestBoundary_Errors(t *testing.T) {
	_, err := (&Target{}).Boundary()
	require.ErrorIs(t, err, ErrInvalidReceiver)

	tg := &Target{}
	tg.AddChain("A", "")
	_, err = tg.Boundary()
	require.ErrorIs(t, err, geom.ErrInvalidCoords)

	tg.Chains()[0].AddResidue(api.Int(1), api.Index{}, "", "").AddAtom(api.Int(1), "CA", api.Float(1), nil, api.Float(1))
	_, err = tg.Boundary()
	require.ErrorIs(t, err, geom.ErrInvalidCoords)
}

func TestNew(t *testing.T) {
	tg, err := New("H", false, "99B", "108")
	require.NoError(t, err)

	r, err := tg.FindResidue("H", 99, "B")
	require.NoError(t, err)
	assert.True(t, r.Valid())
	assert.False(t, r.Index().Set)

	r, err = tg.FindResidue("H", 108, "")
	require.NoError(t, err)
	assert.True(t, r.Valid())

	_, err = New("H", false, "9.5")
	require.ErrorIs(t, err, api.ErrInvalidNumber)
}

func TestNew_AtomIDs(t *testing.T) {
	tg, err := New("H", false, "99B:CA", "99B:CB", "108", "99B")
	require.NoError(t, err)

	d := tg.ToData()
	require.Len(t, d.Chains, 1)
	require.Len(t, d.Chains[0].Residues, 2)

	r := d.Chains[0].Residues[0]
	assert.Equal(t, api.Int(99), r.Number)
	assert.Equal(t, "B", r.InsCode)
	require.Len(t, r.Atoms, 2)
	assert.Equal(t, "CA", r.Atoms[0].Name)
	assert.Equal(t, "CB", r.Atoms[1].Name)
	assert.False(t, r.Atoms[0].Index.Set)

	assert.Empty(t, d.Chains[0].Residues[1].Atoms)

	tg, err = New("H", false, "99B:")
	require.NoError(t, err)
	assert.Empty(t, tg.ToData().Chains[0].Residues[0].Atoms)

	_, err = New("H", false, "x:CA")
	require.ErrorIs(t, err, api.ErrInvalidNumber)
}

func TestParseResidueID(t *testing.T) {
	for _, tc := range []struct {
		in      string
		number  int
		insCode string
	}{
		{"99", 99, ""},
		{"99B", 99, "B"},
		{"-3", -3, ""},
		{" 12a ", 12, "a"},
	} {
		n, ins, err := ParseResidueID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.number, n, tc.in)
		assert.Equal(t, tc.insCode, ins, tc.in)
	}

	for _, bad := range []string{"", "B99", "99BB", "x"} {
		_, _, err := ParseResidueID(bad)
		require.ErrorIs(t, err, api.ErrInvalidNumber, bad)
	}
}

func TestEndToEnd_InsertionCode(t *testing.T) {
	tg, err := New("H", false, "99B")
	require.NoError(t, err)
	orig, err := tg.FindResidue("H", 99, "B")
	require.NoError(t, err)

	raw, err := json.Marshal(tg.ToData())
	require.NoError(t, err)
	back, err := Parse(raw)
	require.NoError(t, err)

	got, err := back.FindResidue("H", 99, "B")
	require.NoError(t, err)
	assert.True(t, got.Valid())
	assert.Equal(t, orig.data(), got.data())
}

func TestAtomIndices(t *testing.T) {
	a := parseSample(t)
	b, err := Parse([]byte(`{"chains": [{"name": "H", "residues": [{"number": 99, "ins_code": "B", "atoms": [
		{"name": "N", "index": 825}, {"name": "CA", "index": 826}, {"name": "X", "index": -1}, {"name": "Y"}
	]}]}]}`))
	require.NoError(t, err)

	assert.Equal(t, uint64(6), a.AtomIndices().GetCardinality())
	assert.Equal(t, uint64(2), b.AtomIndices().GetCardinality())
	assert.True(t, a.AtomIndices().Contains(4817))

	shared := SharedAtoms(a, b)
	assert.Equal(t, []uint32{825, 826}, shared.ToArray())
}

func TestMerge(t *testing.T) {
	a := parseSample(t)
	b, err := New("A", true, "10")
	require.NoError(t, err)

	m := Merge(a, b)
	assert.False(t, m.Auth)
	assert.Equal(t, 3, m.Len())
	assert.Len(t, m.Atoms(), 6)

	c, err := m.FindChain("A")
	require.NoError(t, err)
	assert.True(t, c.Valid())

	m.RemoveChainNamed("A")
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())

	assert.False(t, Merge().Valid())
}
