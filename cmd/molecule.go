package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/payload"
	"github.com/agentic-research/molview/internal/preset"
	"github.com/agentic-research/molview/internal/repr"
	"github.com/agentic-research/molview/internal/target"
)

// componentFlags optionally attach one labelled component to a payload.
type componentFlags struct {
	label    string
	chain    string
	residues []string
	auth     bool
	preset   string
	repr     reprFlags
}

func (f *componentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "selection", "Component label")
	cmd.Flags().StringVar(&f.chain, "chain", "", "Add a component for this chain")
	cmd.Flags().StringSliceVarP(&f.residues, "residue", "r", nil, "Restrict the component to these residue ids")
	cmd.Flags().BoolVar(&f.auth, "auth", false, "Use author chain names and residue numbers")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Draw the component with a stored preset")
	f.repr.register(cmd)
}

// components returns nil when no chain was given.
func (f *componentFlags) components(a *app) ([]api.ComponentData, error) {
	if f.chain == "" {
		return nil, nil
	}
	t, err := target.New(f.chain, f.auth, f.residues...)
	if err != nil {
		return nil, err
	}

	var r *repr.Representation
	if f.preset != "" {
		err = a.withPresets(func(s *preset.Store) error {
			p, err := s.Get(f.preset)
			if err != nil {
				return err
			}
			r = p.Representation
			return nil
		})
	} else {
		r, err = f.repr.build(a)
	}
	if err != nil {
		return nil, err
	}

	c, err := payload.Component(f.label, []*target.Target{t}, r)
	if err != nil {
		return nil, err
	}
	return []api.ComponentData{c}, nil
}

func newMoleculeCmd(a *app) *cobra.Command {
	var (
		format string
		comp   componentFlags
	)
	cmd := &cobra.Command{
		Use:   "molecule FILE",
		Short: "Print a molecule payload for a local structure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := comp.components(a)
			if err != nil {
				return err
			}
			m, err := payload.MoleculeFile(a.fs, a.path(args[0]), format, components...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Structure format (default from extension)")
	comp.register(cmd)
	return cmd
}

func newURLCmd(a *app) *cobra.Command {
	var (
		format   string
		snapshot bool
		comp     componentFlags
	)
	cmd := &cobra.Command{
		Use:   "url URL",
		Short: "Print a payload that loads a structure or snapshot from a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := comp.components(a)
			if err != nil {
				return err
			}
			u, err := payload.URL(args[0], format, snapshot, components...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "File format (default from URL extension)")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "URL points to a saved state or session")
	comp.register(cmd)
	return cmd
}
