package payload

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/molview/api"
)

// Molecule wraps inline structure file content. format is required.
func Molecule(content []byte, format string, components ...api.ComponentData) (api.MoleculeData, error) {
	if normalizeFormat(format) == "" {
		return api.MoleculeData{}, fmt.Errorf("%w if you haven't provided a file name", ErrNoFormat)
	}
	name, err := StructureFormat(format)
	if err != nil {
		return api.MoleculeData{}, err
	}
	return api.MoleculeData{
		Type:      api.PayloadMolecule,
		Data:      string(content),
		Format:    name,
		Component: components,
	}, nil
}

// MoleculeFile reads a structure file from fs. An empty format is inferred
// from the file extension.
func MoleculeFile(fs billy.Filesystem, filename, format string, components ...api.ComponentData) (api.MoleculeData, error) {
	format, err := formatFromPath(filename, format)
	if err != nil {
		return api.MoleculeData{}, err
	}
	if _, err := StructureFormat(format); err != nil {
		return api.MoleculeData{}, err
	}
	content, err := util.ReadFile(fs, filename)
	if err != nil {
		return api.MoleculeData{}, fmt.Errorf("read %s: %w", filename, err)
	}
	return Molecule(content, format, components...)
}

// URL points the viewer at a remote structure, or at a saved state or
// session when snapshot is true. An empty format is inferred from the URL
// path.
func URL(rawURL, format string, snapshot bool, components ...api.ComponentData) (api.URLData, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return api.URLData{}, fmt.Errorf("parse url: %w", err)
	}
	format, err = formatFromPath(u.Path, format)
	if err != nil {
		return api.URLData{}, fmt.Errorf("%w: static resources need an extension", err)
	}

	d := api.URLData{
		Type:      api.PayloadURL,
		Data:      rawURL,
		Component: components,
	}
	if snapshot {
		d.URLFor = "snapshot"
		d.Format, err = SnapshotFormat(format)
	} else {
		d.URLFor = "mol"
		d.Format, err = StructureFormat(format)
	}
	if err != nil {
		return api.URLData{}, err
	}
	return d, nil
}

// Trajectory pairs a topology with coordinate frames. Binary coordinate
// formats are base64 encoded.
func Trajectory(topology api.MoleculeData, coords []byte, format string) (api.TrajectoryData, error) {
	name, binary, err := CoordinateFormat(format)
	if err != nil {
		return api.TrajectoryData{}, err
	}
	c := api.CoordinatesData{Format: name}
	if binary {
		c.Data = base64.StdEncoding.EncodeToString(coords)
		c.Encoding = "base64"
	} else {
		c.Data = string(coords)
	}
	return api.TrajectoryData{
		Type:        api.PayloadTrajectory,
		Topology:    topology,
		Coordinates: c,
	}, nil
}

// TrajectoryFiles reads a topology and a coordinates file from fs, inferring
// both formats from their extensions.
func TrajectoryFiles(fs billy.Filesystem, topology, coordinates string, components ...api.ComponentData) (api.TrajectoryData, error) {
	top, err := MoleculeFile(fs, topology, "", components...)
	if err != nil {
		return api.TrajectoryData{}, err
	}
	format := path.Ext(coordinates)
	if _, _, err := CoordinateFormat(format); err != nil {
		return api.TrajectoryData{}, err
	}
	coords, err := util.ReadFile(fs, coordinates)
	if err != nil {
		return api.TrajectoryData{}, fmt.Errorf("read %s: %w", coordinates, err)
	}
	return Trajectory(top, coords, format)
}
