package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/event"
	"github.com/agentic-research/molview/internal/geom"
	"github.com/agentic-research/molview/internal/payload"
)

type boundaryOutput struct {
	Box struct {
		Min    [3]float64 `json:"min"`
		Max    [3]float64 `json:"max"`
		Size   [3]float64 `json:"size"`
		Center [3]float64 `json:"center"`
	} `json:"box"`
	Sphere struct {
		Center [3]float64 `json:"center"`
		Radius float64    `json:"radius"`
	} `json:"sphere"`
}

func newBoundaryOutput(b *geom.Boundary) boundaryOutput {
	var out boundaryOutput
	out.Box.Min = b.Box.Min
	out.Box.Max = b.Box.Max
	out.Box.Size = b.Box.Size()
	out.Box.Center = b.Box.Center()
	out.Sphere.Center = b.Sphere.Center
	out.Sphere.Radius = b.Sphere.Radius
	return out
}

func newBoundaryCmd(a *app) *cobra.Command {
	var (
		selector string
		shape    string
		label    string
	)
	cmd := &cobra.Command{
		Use:   "boundary FILE",
		Short: "Compute the bounding box and sphere of the targets in a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTargets(args[0], selector)
			if err != nil {
				return err
			}
			b, err := t.Boundary()
			if err != nil {
				return err
			}

			opts := payload.ShapeOptions{Radius: a.cfg.Shape.Radius, Color: a.cfg.Shape.Color, Label: label}
			switch shape {
			case "":
				return printJSON(cmd.OutOrStdout(), newBoundaryOutput(b))
			case "box":
				return printJSON(cmd.OutOrStdout(), payload.BoxFromGeom(b.Box, opts))
			case "sphere":
				return printJSON(cmd.OutOrStdout(), payload.SphereFromGeom(b.Sphere, opts))
			}
			return fmt.Errorf("unknown shape %q, want box or sphere", shape)
		},
	}
	cmd.Flags().StringVarP(&selector, "path", "p", event.DefaultSelector, "JSONPath selecting targets in FILE")
	cmd.Flags().StringVar(&shape, "shape", "", "Emit a shape payload instead: box or sphere")
	cmd.Flags().StringVar(&label, "label", "", "Shape label")
	return cmd
}
