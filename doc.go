// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package vtree assembles dynamic value trees from streaming parser events.
//
// # Events
//
// A parser reports the structure of a document by calling the methods of a
// Sink in document order:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | Key                       | "key": (followed by one value)
//	value      | Value                     | null, bool, number, string
//
// The parser is responsible for the grammar: every Begin must be matched by
// an End of the same kind, and keys and values must alternate inside an
// object. Events can also be represented as data with the Event type, and
// delivered to any Sink with Replay. A Recorder captures the events it
// receives.
//
// # Building
//
// A Builder is a Sink that reconstructs the document as a value.Value:
//
//	b := vtree.NewBuilder(false)
//	vtree.Replay(b,
//	   vtree.BeginArrayEvent,
//	   vtree.BeginObjectEvent,
//	   vtree.KeyEvent("a"),
//	   vtree.ValueEvent(value.Int(1)),
//	   vtree.EndObjectEvent,
//	   vtree.EndArrayEvent,
//	)
//	log.Print(b.Result()) // [{"a":1}]
//
// The argument to NewBuilder selects the order policy stamped on every object
// the builder creates: insertion order (true) or lexicographic key order
// (false). A Builder assembles one document; use Reset to start another.
//
// The source package binds several third-party parsers to the Sink
// interface, and provides Parse and ParseAll for the common case.
package vtree
