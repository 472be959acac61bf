// Package repr builds representation descriptors (geometry type, color theme,
// size theme and their parameters) checked against the viewer's parameter
// schema.
package repr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/agentic-research/molview/api"
)

// DefaultType is used when no type is given.
const DefaultType = "cartoon"

var (
	// ErrInvalidValue is returned for a type, color or size outside the schema.
	ErrInvalidValue = errors.New("invalid representation value")
	// ErrNoColor is returned when color params are set before a color.
	ErrNoColor = errors.New("color must be set before setting color params")
	// ErrNoSize is returned when size params are set before a size.
	ErrNoSize = errors.New("size must be set before setting size params")
)

// Representation is a validated visual style. Changing the type, color or
// size clears the matching parameters.
type Representation struct {
	schema *Schema
	log    *slog.Logger

	typ   string
	color string
	size  string

	typeParams  map[string]any
	colorParams map[string]any
	sizeParams  map[string]any
}

type options struct {
	color  string
	size   string
	schema *Schema
	log    *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithColor sets the color theme.
func WithColor(color string) Option {
	return func(o *options) { o.color = color }
}

// WithSize sets the size theme.
func WithSize(size string) Option {
	return func(o *options) { o.size = size }
}

// WithSchema validates against s instead of the bundled schema.
func WithSchema(s *Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithLogger sets the logger that receives dropped-parameter warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New returns a representation of the given type.
func New(typ string, opts ...Option) (*Representation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.schema == nil {
		s, err := BundledSchema()
		if err != nil {
			return nil, err
		}
		o.schema = s
	}
	if o.log == nil {
		o.log = slog.Default()
	}

	r := &Representation{
		schema:      o.schema,
		log:         o.log,
		typeParams:  map[string]any{},
		colorParams: map[string]any{},
		sizeParams:  map[string]any{},
	}
	if err := r.SetType(typ); err != nil {
		return nil, err
	}
	if err := r.SetColor(o.color); err != nil {
		return nil, err
	}
	if err := r.SetSize(o.size); err != nil {
		return nil, err
	}
	return r, nil
}

// FromData rebuilds a representation from its serialized form. A missing
// type falls back to DefaultType.
func FromData(d api.RepresentationData, opts ...Option) (*Representation, error) {
	typ := d.Type
	if typ == "" {
		typ = DefaultType
	}
	opts = append(slices.Clone(opts), WithColor(d.Color), WithSize(d.Size))
	r, err := New(typ, opts...)
	if err != nil {
		return nil, err
	}
	if d.TypeParams != nil {
		r.SetTypeParams(d.TypeParams)
	}
	if d.ColorParams != nil {
		if _, err := r.SetColorParams(d.ColorParams); err != nil {
			return nil, err
		}
	}
	if d.SizeParams != nil {
		if _, err := r.SetSizeParams(d.SizeParams); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Type, Color and Size return the theme names; Color and Size may be empty.
func (r *Representation) Type() string  { return r.typ }
func (r *Representation) Color() string { return r.color }
func (r *Representation) Size() string  { return r.size }

// TypeParams, ColorParams and SizeParams return copies of the params maps.
func (r *Representation) TypeParams() map[string]any  { return maps.Clone(r.typeParams) }
func (r *Representation) ColorParams() map[string]any { return maps.Clone(r.colorParams) }
func (r *Representation) SizeParams() map[string]any  { return maps.Clone(r.sizeParams) }

// SetType changes the geometry type and clears the type params.
func (r *Representation) SetType(typ string) error {
	if !r.schema.hasType(typ) {
		return fmt.Errorf("%w: type %q, must be one of %v", ErrInvalidValue, typ, r.schema.Types)
	}
	r.typ = typ
	r.typeParams = map[string]any{}
	return nil
}

// SetColor changes the color theme and clears the color params. An empty
// color unsets it.
func (r *Representation) SetColor(color string) error {
	if color != "" && !r.schema.hasColor(color) {
		return fmt.Errorf("%w: color %q, must be one of %v or empty", ErrInvalidValue, color, r.schema.Colors)
	}
	r.color = color
	r.colorParams = map[string]any{}
	return nil
}

// SetSize changes the size theme and clears the size params. An empty size
// unsets it.
func (r *Representation) SetSize(size string) error {
	if size != "" && !r.schema.hasSize(size) {
		return fmt.Errorf("%w: size %q, must be one of %v or empty", ErrInvalidValue, size, r.schema.Sizes)
	}
	r.size = size
	r.sizeParams = map[string]any{}
	return nil
}

// SetTypeParams merges the params the current type understands and returns
// the keys it dropped.
func (r *Representation) SetTypeParams(params map[string]any) []string {
	return r.merge(r.typeParams, params, r.schema.TypeParams[r.typ], "type")
}

// SetColorParams merges the params the current color theme understands and
// returns the keys it dropped.
func (r *Representation) SetColorParams(params map[string]any) ([]string, error) {
	if r.color == "" {
		return nil, ErrNoColor
	}
	return r.merge(r.colorParams, params, r.schema.ColorParams[r.color], "color"), nil
}

// SetSizeParams merges the params the current size theme understands and
// returns the keys it dropped.
func (r *Representation) SetSizeParams(params map[string]any) ([]string, error) {
	if r.size == "" {
		return nil, ErrNoSize
	}
	return r.merge(r.sizeParams, params, r.schema.SizeParams[r.size], "size"), nil
}

// merge copies whitelisted keys into dst. Unknown keys are logged, skipped
// and returned.
func (r *Representation) merge(dst, params map[string]any, allowed []string, kind string) []string {
	var dropped []string
	for _, key := range slices.Sorted(maps.Keys(params)) {
		if !slices.Contains(allowed, key) {
			dropped = append(dropped, key)
			r.log.Warn("ignoring unknown representation parameter", "kind", kind, "key", key)
			continue
		}
		dst[key] = params[key]
	}
	return dropped
}

// ToData returns the sparse serialized form: only fields that are set appear.
func (r *Representation) ToData() api.RepresentationData {
	d := api.RepresentationData{Type: r.typ}
	if len(r.typeParams) > 0 {
		d.TypeParams = maps.Clone(r.typeParams)
	}
	if r.color != "" {
		d.Color = r.color
		if len(r.colorParams) > 0 {
			d.ColorParams = maps.Clone(r.colorParams)
		}
	}
	if r.size != "" {
		d.Size = r.size
		if len(r.sizeParams) > 0 {
			d.SizeParams = maps.Clone(r.sizeParams)
		}
	}
	return d
}

// MarshalJSON implements json.Marshaler using ToData.
func (r *Representation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToData())
}

// Named builds the {name, params} pair Mol* expects for mapped parameters,
// e.g. Named("uniform", map[string]any{"value": 0xff0000}).
func Named(name string, params any) api.NamedParams {
	return api.NamedParams{Name: name, Params: params}
}
