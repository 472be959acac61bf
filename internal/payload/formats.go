// Package payload builds the values assigned to the viewer's data, selection,
// focus and measurement properties.
package payload

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for a file format the viewer cannot load.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoFormat is returned when the format can be neither given nor inferred.
	ErrNoFormat = errors.New("format must be specified")
)

// structureFormats maps accepted structure extensions to viewer format names.
var structureFormats = map[string]string{
	"cif":     "mmcif",
	"cifcore": "cifCore",
	"pdb":     "pdb",
	"pdbqt":   "pdbqt",
	"gro":     "gro",
	"xyz":     "xyz",
	"mol":     "mol",
	"sdf":     "sdf",
	"mol2":    "mol2",
}

// snapshotFormats are saved viewer states and sessions.
var snapshotFormats = map[string]bool{
	"json": true,
	"molj": true,
	"molx": true,
	"zip":  true,
}

// coordinateFormats are trajectory frame formats; the value reports whether
// the format is binary.
var coordinateFormats = map[string]bool{
	"xtc":       true,
	"trr":       true,
	"dcd":       true,
	"nctraj":    true,
	"lammpstrj": false,
}

// normalizeFormat lowercases a format or extension and strips dots.
func normalizeFormat(f string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(f), "."))
}

// formatFromPath returns the extension of p, or format if it is set.
func formatFromPath(p, format string) (string, error) {
	if format == "" {
		format = path.Ext(p)
	}
	format = normalizeFormat(format)
	if format == "" {
		return "", fmt.Errorf("%w for %q", ErrNoFormat, p)
	}
	return format, nil
}

// StructureFormat validates a structure format and returns the name the
// viewer expects for it.
func StructureFormat(format string) (string, error) {
	f := normalizeFormat(format)
	if name, ok := structureFormats[f]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: the input file format %q is not supported by molstar", ErrUnsupportedFormat, format)
}

// SnapshotFormat validates a state or session format.
func SnapshotFormat(format string) (string, error) {
	f := normalizeFormat(format)
	if snapshotFormats[f] {
		return f, nil
	}
	return "", fmt.Errorf("%w: the snapshot format %q is not supported by molstar", ErrUnsupportedFormat, format)
}

// CoordinateFormat validates a trajectory coordinates format and reports
// whether its content is binary.
func CoordinateFormat(format string) (name string, binary bool, err error) {
	f := normalizeFormat(format)
	binary, ok := coordinateFormats[f]
	if !ok {
		return "", false, fmt.Errorf("%w: the coordinates format %q is not supported by molstar", ErrUnsupportedFormat, format)
	}
	return f, binary, nil
}
