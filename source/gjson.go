// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package source

import (
	"strconv"

	"github.com/creachadair/vtree"
	"github.com/creachadair/vtree/value"
	"github.com/tidwall/gjson"
)

// WalkGJSON delivers the events for the value of res to sink. Numbers are
// classified from their literal text, as value.ParseNumber does. WalkGJSON
// does not validate the input; use gjson.Valid to check the text first.
func WalkGJSON(res gjson.Result, sink vtree.Sink) error {
	return walkGJSON(res, sink, nil)
}

func walkGJSON(res gjson.Result, sink vtree.Sink, path []string) error {
	switch res.Type {
	case gjson.Null:
		if !res.Exists() {
			return &SyntaxError{Path: pointer(path), Message: "missing value"}
		}
		sink.Value(value.Null)
	case gjson.False:
		sink.Value(value.Bool(false))
	case gjson.True:
		sink.Value(value.Bool(true))
	case gjson.String:
		sink.Value(value.String(res.Str))
	case gjson.Number:
		num, err := value.ParseNumber(res.Raw)
		if err != nil {
			return &SyntaxError{Path: pointer(path), Message: err.Error(), err: err}
		}
		sink.Value(num)
	case gjson.JSON:
		var err error
		if res.IsObject() {
			sink.BeginObject()
			res.ForEach(func(k, v gjson.Result) bool {
				sink.Key(k.Str)
				err = walkGJSON(v, sink, append(path, k.Str))
				return err == nil
			})
			if err != nil {
				return err
			}
			sink.EndObject()
		} else if res.IsArray() {
			sink.BeginArray()
			i := 0
			res.ForEach(func(_, v gjson.Result) bool {
				err = walkGJSON(v, sink, append(path, strconv.Itoa(i)))
				i++
				return err == nil
			})
			if err != nil {
				return err
			}
			sink.EndArray()
		} else {
			return &SyntaxError{Path: pointer(path), Message: "invalid JSON value " + strconv.Quote(res.Raw)}
		}
	default:
		return &SyntaxError{Path: pointer(path), Message: "unknown result type " + res.Type.String()}
	}
	return nil
}
