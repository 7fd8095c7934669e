// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package source

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/creachadair/vtree"
	"github.com/creachadair/vtree/value"
	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// JSON is a Source that reads JSON values from an io.Reader using the token
// stream of a github.com/goccy/go-json Decoder.
//
// The go-json token stream does not check the separators between tokens, so
// each value is first checked against the JSON grammar by hujson, and its
// events are delivered only if it is valid.
type JSON struct {
	r    io.Reader
	dec  *json.Decoder // splits the input into values
	toks *json.Decoder // tokens of the current value
	jwcc bool          // standardize the input with hujson before decoding
}

// NewJSON constructs a new JSON source that consumes input from r.
func NewJSON(r io.Reader) *JSON { return &JSON{r: r} }

// AllowJWCC configures s to accept (true) or reject (false) JSON With Commas
// and Comments. When enabled, the complete input is read and converted to
// standard JSON before the first value is parsed, and it must contain exactly
// one value. It must be called before the first call to ParseOne.
func (s *JSON) AllowJWCC(ok bool) { s.jwcc = ok }

func (s *JSON) init() error {
	if s.dec != nil {
		return nil
	}
	r := s.r
	if s.jwcc {
		data, err := io.ReadAll(s.r)
		if err != nil {
			return err
		}
		if len(bytes.TrimSpace(data)) == 0 {
			r = bytes.NewReader(nil)
		} else {
			std, err := hujson.Standardize(data)
			if err != nil {
				return &SyntaxError{Message: "invalid JWCC input: " + err.Error(), err: err}
			}
			r = bytes.NewReader(std)
		}
	}
	s.dec = json.NewDecoder(r)
	return nil
}

// ParseOne parses a single value from the input and delivers its events to
// sink. If no further value is available, ParseOne returns io.EOF without
// delivering any events. In case of a syntax error the returned error has
// type *SyntaxError, and sink receives no events for the invalid value.
func (s *JSON) ParseOne(sink vtree.Sink) error {
	if err := s.init(); err != nil {
		return err
	}
	var raw json.RawMessage
	if err := s.dec.Decode(&raw); err == io.EOF {
		return io.EOF
	} else if err != nil {
		return s.syntaxError(nil, err)
	}
	if err := checkJSON(raw); err != nil {
		return err
	}

	s.toks = json.NewDecoder(bytes.NewReader(raw))
	s.toks.UseNumber()
	tok, err := s.toks.Token()
	if err != nil {
		return s.syntaxError(nil, err)
	}
	return s.parseElement(sink, tok, nil)
}

// checkJSON reports a *SyntaxError if raw is not a single standard JSON
// value. Comments and trailing commas are not standard; JWCC input has
// already been standardized by the time it gets here.
func checkJSON(raw []byte) error {
	v, err := hujson.Parse(raw)
	if err != nil {
		return &SyntaxError{Message: err.Error(), err: err}
	}
	if !v.IsStandard() {
		return &SyntaxError{Message: "comments and trailing commas are not allowed in JSON"}
	}
	return nil
}

// Parse parses all the values from the input and delivers their events to
// sink. It returns nil when the input is exhausted.
func (s *JSON) Parse(sink vtree.Sink) error {
	for {
		if err := s.ParseOne(sink); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// parseElement delivers the value beginning at tok. The path records the
// location of tok for error reports.
func (s *JSON) parseElement(sink vtree.Sink, tok any, path []string) error {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			sink.BeginObject()
			if err := s.parseMembers(sink, path); err != nil {
				return err
			}
			sink.EndObject()
		case '[':
			sink.BeginArray()
			if err := s.parseElements(sink, path); err != nil {
				return err
			}
			sink.EndArray()
		default:
			return s.syntaxErrorf(path, "unexpected %q", rune(t))
		}
	case json.Number:
		num, err := value.ParseNumber(t.String())
		if err != nil {
			return s.syntaxError(path, err)
		}
		sink.Value(num)
	case string:
		sink.Value(value.String(t))
	case bool:
		sink.Value(value.Bool(t))
	case float64:
		sink.Value(value.Float(t)) // not reported when UseNumber is set
	case nil:
		sink.Value(value.Null)
	default:
		return s.syntaxErrorf(path, "unexpected token %T", tok)
	}
	return nil
}

// parseMembers delivers zero or more key: value members of an object.
// Precondition: the opening brace has been consumed.
// Postcondition: the closing brace has been consumed.
func (s *JSON) parseMembers(sink vtree.Sink, path []string) error {
	for {
		tok, err := s.next(path)
		if err != nil {
			return err
		}
		if tok == json.Delim('}') {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return s.syntaxErrorf(path, "expected object key, got %v", tok)
		}
		sink.Key(key)

		mpath := append(path, key)
		next, err := s.next(mpath)
		if err != nil {
			return err
		}
		if err := s.parseElement(sink, next, mpath); err != nil {
			return err
		}
	}
}

// parseElements delivers zero or more array elements.
// Precondition: the opening bracket has been consumed.
// Postcondition: the closing bracket has been consumed.
func (s *JSON) parseElements(sink vtree.Sink, path []string) error {
	for i := 0; ; i++ {
		tok, err := s.next(path)
		if err != nil {
			return err
		}
		if tok == json.Delim(']') {
			return nil
		}
		if err := s.parseElement(sink, tok, append(path, strconv.Itoa(i))); err != nil {
			return err
		}
	}
}

// next returns the next token inside a container, where the end of input is
// an error.
func (s *JSON) next(path []string) (any, error) {
	tok, err := s.toks.Token()
	if errors.Is(err, io.EOF) {
		return nil, s.syntaxError(path, io.ErrUnexpectedEOF)
	} else if err != nil {
		return nil, s.syntaxError(path, err)
	}
	return tok, nil
}
