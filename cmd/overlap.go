package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/target"
)

type overlapOutput struct {
	Shared int      `json:"shared"`
	Atoms  []uint32 `json:"atoms"`
	Left   uint64   `json:"left"`
	Right  uint64   `json:"right"`
}

func newOverlapCmd(a *app) *cobra.Command {
	var selector string
	cmd := &cobra.Command{
		Use:   "overlap A B",
		Short: "Report the atom indices two target files have in common",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.readTargets(args[0], selector)
			if err != nil {
				return err
			}
			right, err := a.readTargets(args[1], selector)
			if err != nil {
				return err
			}

			shared := target.SharedAtoms(left, right)
			out := overlapOutput{
				Shared: int(shared.GetCardinality()),
				Atoms:  shared.ToArray(),
				Left:   left.AtomIndices().GetCardinality(),
				Right:  right.AtomIndices().GetCardinality(),
			}
			if out.Atoms == nil {
				out.Atoms = []uint32{}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&selector, "path", "p", "", "JSONPath selecting targets in both files")
	return cmd
}
