// Package event extracts targets from the JSON the viewer emits for
// selection, hover, focus and click events.
package event

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/molview/internal/target"
)

// DefaultSelector selects the whole payload.
const DefaultSelector = "$"

// ErrNotTarget is returned when a selected node is not target shaped.
var ErrNotTarget = errors.New("node is not a target")

// Match is a single node selected from an event payload.
type Match interface {
	// Context returns the raw node.
	Context() any
}

// Walker runs JSONPath queries over decoded payloads.
type Walker struct{}

// NewWalker returns a Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Query returns the nodes of root selected by a JSONPath expression.
func (w *Walker) Query(root any, selector string) ([]Match, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}

	results := x.Get(root)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = &node{value: r}
	}
	return matches, nil
}

type node struct {
	value any
}

func (n *node) Context() any {
	return n.value
}

// Targets decodes the targets selected from an event payload. A selected
// node may be a single target, an array of targets, or an object carrying a
// "targets" array such as a selection or focus payload. An empty selector
// means DefaultSelector.
func Targets(raw []byte, selector string) ([]*target.Target, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	root, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}
	matches, err := NewWalker().Query(root, selector)
	if err != nil {
		return nil, err
	}

	var out []*target.Target
	for i, m := range matches {
		ts, err := expand(m.Context())
		if err != nil {
			return nil, fmt.Errorf("match %d of %s: %w", i, selector, err)
		}
		out = append(out, ts...)
	}
	return out, nil
}

func expand(v any) ([]*target.Target, error) {
	switch n := v.(type) {
	case []any:
		var out []*target.Target
		for _, e := range n {
			ts, err := expand(e)
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
		return out, nil
	case map[string]any:
		if inner, ok := n["targets"]; ok {
			return expand(inner)
		}
		if _, ok := n["chains"]; !ok {
			return nil, ErrNotTarget
		}
		t, err := target.FromValue(n)
		if err != nil {
			return nil, err
		}
		return []*target.Target{t}, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotTarget, v)
	}
}
