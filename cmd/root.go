package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/agentic-research/molview/internal/config"
	"github.com/agentic-research/molview/internal/event"
	"github.com/agentic-research/molview/internal/target"
)

// app is the state shared by every command once the root has loaded config.
type app struct {
	cfgPath string
	cfg     *config.Config
	log     *slog.Logger
	fs      billy.Filesystem
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "molview",
		Short:         "Build and inspect Mol* viewer payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "Path to molview.yaml")

	root.AddCommand(
		newTargetCmd(a),
		newBoundaryCmd(a),
		newMoleculeCmd(a),
		newURLCmd(a),
		newReprCmd(a),
		newPresetCmd(a),
		newOverlapCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	a.fs = osfs.New("/")
	a.log.Debug("config loaded", "data_dir", cfg.DataDir, "preset_db", cfg.PresetDB)
	return nil
}

// path makes p absolute so it resolves inside the root-anchored filesystem.
func (a *app) path(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (a *app) readFile(p string) ([]byte, error) {
	data, err := util.ReadFile(a.fs, a.path(p))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

// readTargets decodes every target selected by selector from a JSON file and
// merges them into one.
func (a *app) readTargets(p, selector string) (*target.Target, error) {
	raw, err := a.readFile(p)
	if err != nil {
		return nil, err
	}
	ts, err := event.Targets(raw, selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	a.log.Debug("targets decoded", "file", p, "count", len(ts))
	return target.Merge(ts...), nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// parseParams turns key=value flags into a params map. Values that parse as
// JSON keep their JSON type; anything else is a string.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("parameter %q: want key=value", p)
		}
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			decoded = v
		}
		out[k] = decoded
	}
	return out, nil
}

// Execute runs the molview command tree and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
