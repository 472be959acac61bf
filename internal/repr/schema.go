package repr

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrSchema is returned when the parameter schema is missing or corrupt.
var ErrSchema = errors.New("representation parameter schema is broken")

//go:embed representation_params.json
var bundledSchema []byte

// Schema lists the representation types, color themes and size themes the
// viewer accepts, and for each of them the parameter keys it understands.
type Schema struct {
	Types       []string            `json:"type"`
	Colors      []string            `json:"color"`
	Sizes       []string            `json:"size"`
	TypeParams  map[string][]string `json:"typeParams"`
	ColorParams map[string][]string `json:"colorParams"`
	SizeParams  map[string][]string `json:"sizeParams"`
}

var loadBundled = sync.OnceValues(func() (*Schema, error) {
	return ParseSchema(bundledSchema)
})

// BundledSchema returns the schema embedded in the package. It is parsed once
// and shared read-only by every Representation.
func BundledSchema() (*Schema, error) {
	return loadBundled()
}

// ParseSchema decodes a schema document. A document without any type names is
// rejected.
func ParseSchema(data []byte) (*Schema, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrSchema)
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if len(s.Types) == 0 {
		return nil, fmt.Errorf("%w: no representation types", ErrSchema)
	}
	return &s, nil
}

func (s *Schema) hasType(name string) bool  { return slices.Contains(s.Types, name) }
func (s *Schema) hasColor(name string) bool { return slices.Contains(s.Colors, name) }
func (s *Schema) hasSize(name string) bool  { return slices.Contains(s.Sizes, name) }
