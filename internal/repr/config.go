package repr

import (
	"encoding/json"
	"fmt"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/molview/api"
)

// ConfigExt is appended to config file names that lack it.
const ConfigExt = ".json"

// SaveConfig writes the representation to filename on fs as 2-space indented
// JSON and returns the name actually written.
func (r *Representation) SaveConfig(fs billy.Filesystem, filename string) (string, error) {
	if !strings.HasSuffix(filename, ConfigExt) {
		filename += ConfigExt
	}
	data, err := json.MarshalIndent(r.ToData(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode representation: %w", err)
	}
	data = append(data, '\n')
	if err := util.WriteFile(fs, filename, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}

// FromConfig reads a file written by SaveConfig.
func FromConfig(fs billy.Filesystem, filename string, opts ...Option) (*Representation, error) {
	data, err := util.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return Decode(data, opts...)
}

// Decode parses a JSON config document.
func Decode(data []byte, opts ...Option) (*Representation, error) {
	var d api.RepresentationData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode representation: %w", err)
	}
	return FromData(d, opts...)
}
