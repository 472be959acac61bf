package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/repr"
)

// reprFlags are the flags that describe a representation. Unset type and
// color fall back to the configured defaults.
type reprFlags struct {
	typ, color, size                    string
	typeParams, colorParams, sizeParams []string
}

func (f *reprFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.typ, "type", "t", "", "Representation type (default from config)")
	cmd.Flags().StringVar(&f.color, "color", "", "Color theme")
	cmd.Flags().StringVar(&f.size, "size", "", "Size theme")
	cmd.Flags().StringArrayVar(&f.typeParams, "type-param", nil, "Type parameter key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.colorParams, "color-param", nil, "Color parameter key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.sizeParams, "size-param", nil, "Size parameter key=value (repeatable)")
}

func (f *reprFlags) build(a *app) (*repr.Representation, error) {
	typ, color, size := f.typ, f.color, f.size
	if typ == "" {
		typ = a.cfg.Representation.Type
	}
	if color == "" {
		color = a.cfg.Representation.Color
	}
	if size == "" {
		size = a.cfg.Representation.Size
	}

	r, err := repr.New(typ, repr.WithColor(color), repr.WithSize(size), repr.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	params, err := parseParams(f.typeParams)
	if err != nil {
		return nil, err
	}
	r.SetTypeParams(params)

	if params, err = parseParams(f.colorParams); err != nil {
		return nil, err
	}
	if params != nil {
		if _, err := r.SetColorParams(params); err != nil {
			return nil, err
		}
	}

	if params, err = parseParams(f.sizeParams); err != nil {
		return nil, err
	}
	if params != nil {
		if _, err := r.SetSizeParams(params); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func newReprCmd(a *app) *cobra.Command {
	var (
		flags reprFlags
		save  string
	)
	cmd := &cobra.Command{
		Use:   "repr",
		Short: "Build a representation and optionally save it as a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.build(a)
			if err != nil {
				return err
			}
			if save != "" {
				name, err := r.SaveConfig(a.fs, a.path(save))
				if err != nil {
					return err
				}
				a.log.Info("representation saved", "path", name)
			}
			return printJSON(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&save, "save", "", "Write the representation to this config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "show FILE",
		Short: "Print a saved representation config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repr.FromConfig(a.fs, a.path(args[0]), repr.WithLogger(a.log))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), r)
		},
	})
	return cmd
}
