package api

// Payload type discriminators understood by the viewer's data property.
const (
	PayloadMolecule   = "mol"
	PayloadURL        = "url"
	PayloadShape      = "shape"
	PayloadTrajectory = "traj"
)

// MoleculeData loads a structure from inline file content.
type MoleculeData struct {
	Type   string `json:"type"`
	Data   string `json:"data"`
	Format string `json:"format"`
	// Component is omitted when the viewer's default components should be used.
	Component []ComponentData `json:"component,omitempty"`
}

// URLData loads a structure or a saved viewer state from a URL.
type URLData struct {
	Type string `json:"type"`
	// URLFor is "mol" for structures and "snapshot" for states/sessions.
	URLFor    string          `json:"urlfor"`
	Data      string          `json:"data"`
	Format    string          `json:"format"`
	Component []ComponentData `json:"component,omitempty"`
}

// CoordinatesData is the frame data half of a trajectory.
type CoordinatesData struct {
	Data   string `json:"data"`
	Format string `json:"format"`
	// Encoding is "base64" for binary formats and empty for text.
	Encoding string `json:"encoding,omitempty"`
}

// TrajectoryData pairs a topology structure with a coordinates file.
type TrajectoryData struct {
	Type        string          `json:"type"`
	Topology    MoleculeData    `json:"topology"`
	Coordinates CoordinatesData `json:"coordinates"`
}

// BoxShape draws an axis-aligned box outline.
type BoxShape struct {
	Type  string     `json:"type"`
	Shape string     `json:"shape"`
	Min   [3]float64 `json:"min"`
	Max   [3]float64 `json:"max"`
	// Radius is the border thickness in angstrom.
	Radius float64 `json:"radius"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
}

// SphereShape draws a translucent sphere.
type SphereShape struct {
	Type   string     `json:"type"`
	Shape  string     `json:"shape"`
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Label  string     `json:"label"`
	Color  string     `json:"color"`
}

// RepresentationData is the sparse serialized form of a representation.
// Unset optional fields are omitted, never sent as null.
type RepresentationData struct {
	Type        string         `json:"type"`
	TypeParams  map[string]any `json:"typeParams,omitempty"`
	Color       string         `json:"color,omitempty"`
	ColorParams map[string]any `json:"colorParams,omitempty"`
	Size        string         `json:"size,omitempty"`
	SizeParams  map[string]any `json:"sizeParams,omitempty"`
}

// NamedParams is the {name, params} pair Mol* uses for mapped parameters.
type NamedParams struct {
	Name   string `json:"name"`
	Params any    `json:"params"`
}

// ComponentData groups targets under a label and renders them with the
// given representations.
type ComponentData struct {
	Label          string               `json:"label"`
	Targets        []TargetData         `json:"targets"`
	Representation []RepresentationData `json:"representation"`
}

// SelectionData sets or extends the selection or hover highlight.
type SelectionData struct {
	Targets []TargetData `json:"targets"`
	// Mode is "select" or "hover".
	Mode string `json:"mode"`
	// Modifier is "set" or "add".
	Modifier string `json:"modifier"`
}

// FocusData moves the camera onto targets.
type FocusData struct {
	Targets []TargetData `json:"targets"`
	// Analyse requests non-covalent interaction analysis within 5 angstrom.
	Analyse bool `json:"analyse"`
}

// MeasurementData adds a measurement over the ordered targets.
type MeasurementData struct {
	Targets []TargetData `json:"targets"`
	Type    string       `json:"type"`
	// Modifier is "set" or "add".
	Modifier string `json:"modifier"`
}
