// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package source binds third-party parsers to the vtree.Sink interface.
//
// A Source delivers the events of one value at a time to a Sink:
//
//	src := source.NewJSON(input)
//	b := vtree.NewBuilder(true)
//	if err := src.ParseOne(b); err == io.EOF {
//	   log.Print("No more input")
//	} else if err != nil {
//	   log.Fatalf("ParseOne failed: %v", err)
//	}
//	log.Printf("Value: %v", b.Result())
//
// The Parse and ParseAll functions wrap this pattern for the common case.
// WalkYAML and WalkGJSON deliver the events for values that were already
// parsed by gopkg.in/yaml.v3 and github.com/tidwall/gjson respectively.
package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/vtree"
	"github.com/creachadair/vtree/value"
)

// A Source delivers the events of values parsed from an input.
type Source interface {
	// ParseOne delivers the events of the next value to sink. If no further
	// value is available, it returns io.EOF without delivering any events.
	ParseOne(sink vtree.Sink) error
}

// Format identifies the syntax of an input.
type Format byte

// Constants defining the valid Format values.
const (
	FormatJSON Format = iota // JSON, one or more values
	FormatJWCC               // JSON With Commas and Comments, one value
	FormatYAML               // YAML, one or more documents
)

var formatStr = [...]string{
	FormatJSON: "json",
	FormatJWCC: "jwcc",
	FormatYAML: "yaml",
}

func (f Format) String() string {
	if int(f) >= len(formatStr) {
		return fmt.Sprintf("Format(%d)", byte(f))
	}
	return formatStr[f]
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	for f, s := range formatStr {
		if strings.EqualFold(name, s) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

// New returns a Source that reads values of the given format from r.
func New(r io.Reader, f Format) (Source, error) {
	switch f {
	case FormatJSON:
		return NewJSON(r), nil
	case FormatJWCC:
		s := NewJSON(r)
		s.AllowJWCC(true)
		return s, nil
	case FormatYAML:
		return NewYAML(r), nil
	default:
		return nil, fmt.Errorf("unsupported format %v", f)
	}
}

// Options control how Parse and ParseAll construct values.
// The zero value reads JSON and creates objects in key order.
type Options struct {
	// If true, objects iterate their keys in insertion order.
	PreserveOrder bool

	// The syntax of the input.
	Format Format
}

var (
	// ErrNoInput is reported by Parse if the input contains no values.
	ErrNoInput = errors.New("no input value")

	// ErrExtraInput is reported by Parse if the input contains data after
	// the first value.
	ErrExtraInput = errors.New("extra data after value")
)

// Parse parses and returns a single value from r. If r contains data after
// the first value, Parse returns the first value along with an error that
// wraps ErrExtraInput.
func Parse(r io.Reader, opts Options) (value.Value, error) {
	src, err := New(r, opts.Format)
	if err != nil {
		return nil, err
	}
	b := vtree.NewBuilder(opts.PreserveOrder)
	if err := src.ParseOne(b); err == io.EOF {
		return nil, ErrNoInput
	} else if err != nil {
		return nil, err
	}
	v := b.Result()
	if err := src.ParseOne(vtree.Discard); err == nil {
		return v, ErrExtraInput
	} else if err != io.EOF {
		return v, errors.Join(ErrExtraInput, err)
	}
	return v, nil
}

// ParseAll parses and returns all the values from r. In case of error, any
// complete values already parsed are returned along with the error.
func ParseAll(r io.Reader, opts Options) ([]value.Value, error) {
	src, err := New(r, opts.Format)
	if err != nil {
		return nil, err
	}
	b := vtree.NewBuilder(opts.PreserveOrder)
	var vs []value.Value
	for {
		if err := src.ParseOne(b); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, b.Result())
		b.Reset()
	}
}

// SyntaxError is the concrete type of errors reported by sources when the
// input cannot be parsed.
type SyntaxError struct {
	Path    string // JSON Pointer to the enclosing value; "" for the top level
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Path == "" {
		return s.Message
	}
	return fmt.Sprintf("at %s: %s", s.Path, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

func (s *JSON) syntaxError(path []string, err error) error {
	return &SyntaxError{Path: pointer(path), Message: err.Error(), err: err}
}

func (s *JSON) syntaxErrorf(path []string, msg string, args ...any) error {
	return &SyntaxError{Path: pointer(path), Message: fmt.Sprintf(msg, args...)}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer renders path as an RFC 6901 JSON Pointer.
func pointer(path []string) string {
	var sb strings.Builder
	for _, p := range path {
		sb.WriteByte('/')
		pointerEscaper.WriteString(&sb, p)
	}
	return sb.String()
}
