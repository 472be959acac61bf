package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/preset"
	"github.com/agentic-research/molview/internal/repr"
)

func (a *app) openPresets() (*preset.Store, error) {
	if err := os.MkdirAll(filepath.Dir(a.cfg.PresetDB), 0o755); err != nil {
		return nil, fmt.Errorf("create preset dir: %w", err)
	}
	return preset.Open(a.cfg.PresetDB, repr.WithLogger(a.log))
}

// withPresets opens the store for the duration of fn.
func (a *app) withPresets(fn func(*preset.Store) error) error {
	s, err := a.openPresets()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named representation presets",
	}

	var flags reprFlags
	save := &cobra.Command{
		Use:   "save NAME",
		Short: "Store a representation under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.build(a)
			if err != nil {
				return err
			}
			return a.withPresets(func(s *preset.Store) error {
				if err := s.Save(args[0], r); err != nil {
					return err
				}
				a.log.Info("preset saved", "name", args[0], "type", r.Type())
				return nil
			})
		},
	}
	flags.register(save)

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a stored representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withPresets(func(s *preset.Store) error {
				p, err := s.Get(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p.Representation)
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withPresets(func(s *preset.Store) error {
				presets, err := s.List()
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, p := range presets {
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Type, p.Updated.Format(time.RFC3339))
				}
				return w.Flush()
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withPresets(func(s *preset.Store) error {
				ok, err := s.Delete(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %q", preset.ErrNotFound, args[0])
				}
				a.log.Info("preset deleted", "name", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(save, get, list, del)
	return cmd
}
