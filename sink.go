// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vtree

import (
	"fmt"

	"github.com/creachadair/vtree/value"
)

// A Sink receives structural events from a parser, in document order.
// The parser is responsible for delivering a well-nested sequence: every
// Begin is matched by an End of the same kind, keys occur only directly
// inside objects, and each key is followed by exactly one value.
type Sink interface {
	// Begin a new object.
	BeginObject()

	// End the most-recently-opened object.
	EndObject()

	// Begin a new array.
	BeginArray()

	// End the most-recently-opened array.
	EndArray()

	// Report the key of the next member of the current object.
	Key(k string)

	// Report a scalar value.
	Value(v value.Scalar)
}

// EventKind is the type of a parser event.
type EventKind byte

// Constants defining the valid EventKind values.
const (
	BeginObject EventKind = iota + 1
	EndObject
	BeginArray
	EndArray
	Key
	Value
)

var eventStr = [...]string{
	BeginObject: "BeginObject",
	EndObject:   "EndObject",
	BeginArray:  "BeginArray",
	EndArray:    "EndArray",
	Key:         "Key",
	Value:       "Value",
}

func (k EventKind) String() string {
	if k == 0 || int(k) >= len(eventStr) {
		return fmt.Sprintf("EventKind(%d)", byte(k))
	}
	return eventStr[k]
}

// An Event is a single parser event. Key is set only for Key events, and
// Scalar only for Value events.
type Event struct {
	Kind   EventKind
	Key    string
	Scalar value.Scalar
}

func (e Event) String() string {
	switch e.Kind {
	case Key:
		return "Key " + value.String(e.Key).String()
	case Value:
		return fmt.Sprintf("Value %v <%v>", value.KindOf(e.Scalar), e.Scalar)
	default:
		return e.Kind.String()
	}
}

// Constructors for events, for use with Replay.
var (
	BeginObjectEvent = Event{Kind: BeginObject}
	EndObjectEvent   = Event{Kind: EndObject}
	BeginArrayEvent  = Event{Kind: BeginArray}
	EndArrayEvent    = Event{Kind: EndArray}
)

// KeyEvent returns a Key event for k.
func KeyEvent(k string) Event { return Event{Kind: Key, Key: k} }

// ValueEvent returns a Value event for v.
func ValueEvent(v value.Scalar) Event { return Event{Kind: Value, Scalar: v} }

// Replay delivers events to s in order. It panics if an event has an
// invalid kind.
func Replay(s Sink, events ...Event) {
	for _, e := range events {
		switch e.Kind {
		case BeginObject:
			s.BeginObject()
		case EndObject:
			s.EndObject()
		case BeginArray:
			s.BeginArray()
		case EndArray:
			s.EndArray()
		case Key:
			s.Key(e.Key)
		case Value:
			s.Value(e.Scalar)
		default:
			panic(fmt.Sprintf("replay: invalid event kind %v", e.Kind))
		}
	}
}

// A Recorder is a Sink that records the events delivered to it.
// The zero value is ready for use.
type Recorder struct {
	events []Event
}

// Events returns the events recorded by r, in order of arrival.
func (r *Recorder) Events() []Event { return r.events }

// Reset discards all the events recorded by r. Slices previously returned
// by Events are not affected by later recording.
func (r *Recorder) Reset() { r.events = nil }

func (r *Recorder) add(e Event) { r.events = append(r.events, e) }

// BeginObject implements part of the Sink interface.
func (r *Recorder) BeginObject() { r.add(BeginObjectEvent) }

// EndObject implements part of the Sink interface.
func (r *Recorder) EndObject() { r.add(EndObjectEvent) }

// BeginArray implements part of the Sink interface.
func (r *Recorder) BeginArray() { r.add(BeginArrayEvent) }

// EndArray implements part of the Sink interface.
func (r *Recorder) EndArray() { r.add(EndArrayEvent) }

// Key implements part of the Sink interface.
func (r *Recorder) Key(k string) { r.add(KeyEvent(k)) }

// Value implements part of the Sink interface.
func (r *Recorder) Value(v value.Scalar) { r.add(ValueEvent(v)) }

// Discard is a Sink that ignores all events.
var Discard Sink = discard{}

type discard struct{}

func (discard) BeginObject()       {}
func (discard) EndObject()         {}
func (discard) BeginArray()        {}
func (discard) EndArray()          {}
func (discard) Key(string)         {}
func (discard) Value(value.Scalar) {}
