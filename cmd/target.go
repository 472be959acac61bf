package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/target"
)

func newTargetCmd(a *app) *cobra.Command {
	var (
		chain    string
		residues []string
		auth     bool
	)
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Print the target JSON for a chain and residues",
		Long: `Print the target JSON for a chain and optional residues.

Residues are author numbers with an optional insertion code, e.g. 99 or 99B.
Append :NAME to target a single atom, e.g. 99B:CA. Without --residue the whole
chain is targeted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := target.New(chain, auth, residues...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVar(&chain, "chain", "", "Chain name")
	cmd.Flags().StringSliceVarP(&residues, "residue", "r", nil, "Residue or atom id (repeatable)")
	cmd.Flags().BoolVar(&auth, "auth", false, "Use author chain names and residue numbers")
	_ = cmd.MarkFlagRequired("chain")
	return cmd
}
