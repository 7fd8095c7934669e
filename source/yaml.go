// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package source

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/vtree"
	"github.com/creachadair/vtree/value"
	"gopkg.in/yaml.v3"
)

// YAML is a Source that reads YAML documents from an io.Reader using
// gopkg.in/yaml.v3. Each document is one value.
type YAML struct {
	dec *yaml.Decoder
}

// NewYAML constructs a new YAML source that consumes input from r.
func NewYAML(r io.Reader) *YAML { return &YAML{dec: yaml.NewDecoder(r)} }

// ParseOne parses a single document from the input and delivers its events
// to sink. If no further document is available, ParseOne returns io.EOF.
// Errors reported by the YAML decoder are returned as a *SyntaxError.
func (y *YAML) ParseOne(sink vtree.Sink) error {
	var doc yaml.Node
	if err := y.dec.Decode(&doc); errors.Is(err, io.EOF) {
		return io.EOF
	} else if err != nil {
		return &SyntaxError{Message: err.Error(), err: err}
	}
	return WalkYAML(&doc, sink)
}

// WalkYAML delivers the events for the value represented by n to sink.
// Mappings become objects and sequences become arrays. Scalars are converted
// according to their resolved tag: null, bool, int, and float have their
// usual meanings, and all other scalars become strings. Aliases are replaced
// by the values they refer to; merge keys ("<<") are treated as ordinary
// keys. Mapping keys must be scalars.
//
// An empty document is delivered as null.
func WalkYAML(n *yaml.Node, sink vtree.Sink) error {
	w := yamlWalker{sink: sink, active: make(map[*yaml.Node]bool)}
	return w.walk(n, nil)
}

type yamlWalker struct {
	sink   vtree.Sink
	active map[*yaml.Node]bool // aliases being expanded
}

func (w yamlWalker) walk(n *yaml.Node, path []string) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			w.sink.Value(value.Null)
			return nil
		}
		return w.walk(n.Content[0], path)

	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return yamlErrorf(n, path, "mapping has %d nodes", len(n.Content))
		}
		w.sink.BeginObject()
		for i := 0; i < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return yamlErrorf(k, path, "mapping key is not a scalar")
			}
			w.sink.Key(k.Value)
			if err := w.walk(v, append(path, k.Value)); err != nil {
				return err
			}
		}
		w.sink.EndObject()

	case yaml.SequenceNode:
		w.sink.BeginArray()
		for i, elt := range n.Content {
			if err := w.walk(elt, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		w.sink.EndArray()

	case yaml.AliasNode:
		if n.Alias == nil {
			return yamlErrorf(n, path, "undefined alias %q", n.Value)
		} else if w.active[n.Alias] {
			return yamlErrorf(n, path, "recursive alias %q", n.Value)
		}
		w.active[n.Alias] = true
		defer delete(w.active, n.Alias)
		return w.walk(n.Alias, path)

	case yaml.ScalarNode:
		s, err := yamlScalar(n)
		if err != nil {
			return yamlErrorf(n, path, "%v", err)
		}
		w.sink.Value(s)

	default:
		return yamlErrorf(n, path, "unknown node kind %v", n.Kind)
	}
	return nil
}

func yamlScalar(n *yaml.Node) (value.Scalar, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return value.Bool(b), nil
	case "!!int":
		var z int64
		if err := n.Decode(&z); err == nil {
			return value.Int(z), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return value.Uint(u), nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return value.Float(f), nil
	default:
		return value.String(n.Value), nil
	}
}

func yamlErrorf(n *yaml.Node, path []string, msg string, args ...any) error {
	return &SyntaxError{
		Path:    pointer(path),
		Message: fmt.Sprintf("line %d: %s", n.Line, fmt.Sprintf(msg, args...)),
	}
}
