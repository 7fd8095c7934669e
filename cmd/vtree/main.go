// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program vtree reads JSON, JWCC, or YAML documents, assembles each into a
// value tree, and prints the result.
//
// Usage:
//
//	vtree [--format json|jwcc|yaml] [--preserve-order] [--path p]... [--keys] [file]
//
// Each --path flag adds one step into the structure of each value: a key of
// an object, or an integer position in an array or object.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/vtree/source"
	"github.com/creachadair/vtree/value"
	"github.com/creachadair/vtree/value/cursor"
)

var cli struct {
	File          string   `arg:"" optional:"" type:"existingfile" help:"Input file (default stdin)."`
	Format        string   `short:"f" enum:"json,jwcc,yaml" default:"json" help:"Input format (${enum})."`
	PreserveOrder bool     `short:"o" help:"Iterate object keys in insertion order instead of key order."`
	Path          []string `short:"p" sep:"none" help:"Select a value by key or position (repeatable)."`
	Keys          bool     `short:"k" help:"Print the keys of the selected object, one per line."`
}

// config carries the options for a single run.
type config struct {
	Format        source.Format
	PreserveOrder bool
	Path          []any
	Keys          bool
}

func main() {
	kong.Parse(&cli,
		kong.Name("vtree"),
		kong.Description("Assemble documents into value trees and print them."),
		kong.UsageOnError(),
	)
	log.SetFlags(0)
	log.SetPrefix("vtree: ")

	f, err := source.ParseFormat(cli.Format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}
	cfg := config{
		Format:        f,
		PreserveOrder: cli.PreserveOrder,
		Path:          parsePath(cli.Path),
		Keys:          cli.Keys,
	}

	in := io.Reader(os.Stdin)
	if cli.File != "" {
		fp, err := os.Open(cli.File)
		if err != nil {
			log.Fatalf("Open input: %v", err)
		}
		defer fp.Close()
		in = fp
	}

	out := bufio.NewWriter(os.Stdout)
	rerr := run(cfg, in, out)
	if err := out.Flush(); err != nil && rerr == nil {
		rerr = err
	}
	if rerr != nil {
		log.Fatal(rerr)
	}
}

// parsePath converts command-line path elements into cursor path elements.
// An element that parses as an integer is a position; anything else is a key.
func parsePath(args []string) []any {
	path := make([]any, len(args))
	for i, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			path[i] = n
		} else {
			path[i] = arg
		}
	}
	return path
}

// run parses all the values from in and writes the selected part of each to
// out, one per line.
func run(cfg config, in io.Reader, out io.Writer) error {
	vs, err := source.ParseAll(in, source.Options{
		PreserveOrder: cfg.PreserveOrder,
		Format:        cfg.Format,
	})
	if err != nil {
		return fmt.Errorf("parse (after %d values): %w", len(vs), err)
	}
	for i, v := range vs {
		sel := v
		if len(cfg.Path) != 0 {
			c := cursor.New(v).Down(cfg.Path...)
			if err := c.Err(); err != nil {
				return fmt.Errorf("value %d: %w", i+1, err)
			}
			sel = c.Value()
		}

		if !cfg.Keys {
			fmt.Fprintln(out, sel)
			continue
		}
		obj, ok := sel.(*value.Object)
		if !ok {
			return fmt.Errorf("value %d: cannot list keys of %v", i+1, value.KindOf(sel))
		}
		for _, key := range obj.Keys() {
			fmt.Fprintln(out, key)
		}
	}
	return nil
}
