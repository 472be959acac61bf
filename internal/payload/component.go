package payload

import (
	"errors"
	"fmt"

	"github.com/agentic-research/molview/api"
	"github.com/agentic-research/molview/internal/repr"
	"github.com/agentic-research/molview/internal/target"
)

var (
	// ErrMeasurement is returned for an unknown measurement kind or a target
	// count the kind cannot use.
	ErrMeasurement = errors.New("invalid measurement")
	// ErrNoTargets is returned when a payload needs at least one target.
	ErrNoTargets = errors.New("no targets")
)

// Measurement kinds understood by the viewer.
const (
	MeasureDistance    = "distance"
	MeasureAngle       = "angle"
	MeasureDihedral    = "dihedral"
	MeasureLabel       = "label"
	MeasureOrientation = "orientation"
)

// minTargets is the fewest targets each measurement kind can use.
var minTargets = map[string]int{
	MeasureDistance:    2,
	MeasureAngle:       3,
	MeasureDihedral:    4,
	MeasureLabel:       1,
	MeasureOrientation: 1,
}

func targetData(targets []*target.Target) []api.TargetData {
	out := make([]api.TargetData, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.ToData())
	}
	return out
}

func modifier(add bool) string {
	if add {
		return "add"
	}
	return "set"
}

// Component groups targets under a label. With no representations the
// component is drawn as cartoon.
func Component(label string, targets []*target.Target, reps ...*repr.Representation) (api.ComponentData, error) {
	if len(targets) == 0 {
		return api.ComponentData{}, fmt.Errorf("component %q: %w", label, ErrNoTargets)
	}
	if len(reps) == 0 {
		r, err := repr.New(repr.DefaultType)
		if err != nil {
			return api.ComponentData{}, fmt.Errorf("component %q: %w", label, err)
		}
		reps = []*repr.Representation{r}
	}
	data := make([]api.RepresentationData, 0, len(reps))
	for _, r := range reps {
		data = append(data, r.ToData())
	}
	return api.ComponentData{
		Label:          label,
		Targets:        targetData(targets),
		Representation: data,
	}, nil
}

// Selection highlights targets. selectMode chooses selection over hover, and
// add extends the current highlight instead of replacing it.
func Selection(targets []*target.Target, selectMode, add bool) api.SelectionData {
	mode := "hover"
	if selectMode {
		mode = "select"
	}
	return api.SelectionData{
		Targets:  targetData(targets),
		Mode:     mode,
		Modifier: modifier(add),
	}
}

// Focus moves the camera onto targets.
func Focus(targets []*target.Target, analyse bool) api.FocusData {
	return api.FocusData{
		Targets: targetData(targets),
		Analyse: analyse,
	}
}

// Measurement measures across ordered targets.
func Measurement(kind string, targets []*target.Target, add bool) (api.MeasurementData, error) {
	need, ok := minTargets[kind]
	if !ok {
		return api.MeasurementData{}, fmt.Errorf("%w: unknown kind %q", ErrMeasurement, kind)
	}
	if len(targets) < need {
		return api.MeasurementData{}, fmt.Errorf("%w: %s needs %d targets, got %d", ErrMeasurement, kind, need, len(targets))
	}
	return api.MeasurementData{
		Targets:  targetData(targets),
		Type:     kind,
		Modifier: modifier(add),
	}, nil
}
