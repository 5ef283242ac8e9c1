// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/indoorjson/builder"
	"github.com/katalvlaran/indoorjson/jsonio"
)

// errUsage reports missing or invalid flags.
var errUsage = errors.New("invalid usage")

// ioFlags are the flags shared by the file subcommands.
type ioFlags struct {
	in, out, indent string
}

func parseIO(name string, args []string, needOut bool) (ioFlags, error) {
	var f ioFlags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.in, "in", "", "input document")
	fs.StringVar(&f.out, "out", "", "output file (stdout when empty)")
	fs.StringVar(&f.indent, "indent", "  ", "JSON indent; empty for compact output")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w: %v", errUsage, err)
	}
	if f.in == "" {
		return f, fmt.Errorf("%w: -in is required", errUsage)
	}
	if needOut && f.out == "" {
		return f, fmt.Errorf("%w: -out is required", errUsage)
	}

	return f, nil
}

// emit writes v to path, or to stdout when path is empty.
func emit(stdout io.Writer, path string, v any, indent string) error {
	if path != "" {
		return jsonio.WriteJSON(path, v, indent)
	}

	return jsonio.Encode(stdout, v, indent)
}

func runHypergraph(_ context.Context, args []string, stdout io.Writer) error {
	f, err := parseIO("hypergraph", args, false)
	if err != nil {
		return err
	}
	g, err := jsonio.ReadGraph(f.in)
	if err != nil {
		return err
	}
	h, err := g.Hypergraph()
	if err != nil {
		return err
	}

	return emit(stdout, f.out, h, f.indent)
}

func runRoundtrip(_ context.Context, args []string, stdout io.Writer) error {
	f, err := parseIO("roundtrip", args, false)
	if err != nil {
		return err
	}
	g, err := jsonio.ReadGraph(f.in)
	if err != nil {
		return err
	}

	return emit(stdout, f.out, g.Document(), f.indent)
}

func runSeed(_ context.Context, args []string, stdout io.Writer) error {
	f, err := parseIO("seed", args, true)
	if err != nil {
		return err
	}
	g, err := jsonio.ReadGraph(f.in)
	if err != nil {
		return err
	}
	seeded, err := g.SeedRLines()
	if err != nil {
		return err
	}
	if err = jsonio.WriteGraph(f.out, g, f.indent); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "seeded %d relational lines\n", len(seeded))

	return nil
}

func runStats(_ context.Context, args []string, stdout io.Writer) error {
	f, err := parseIO("stats", args, false)
	if err != nil {
		return err
	}
	g, err := jsonio.ReadGraph(f.in)
	if err != nil {
		return err
	}
	st := g.Stats()
	fmt.Fprintf(stdout, "cells=%d connections=%d layers=%d rlines=%d closurePairs=%d selfLoops=%d properties=%d\n",
		st.Cells, st.Connections, st.Layers, st.RLines, st.ClosurePairs, st.SelfLoops, st.Properties)
	if ext := g.Extent(); !ext.IsEmpty() {
		fmt.Fprintf(stdout, "extent=[%g %g, %g %g]\n", ext.X.Lo, ext.Y.Lo, ext.X.Hi, ext.Y.Hi)
	}

	return nil
}

func runGenerate(_ context.Context, args []string, stdout io.Writer) error {
	var (
		rows, cols int
		w, h, p    float64
		seed       int64
		oneWay     bool
		layer, out string
		indent     string
	)
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&rows, "rows", 1, "room rows")
	fs.IntVar(&cols, "cols", 3, "room columns")
	fs.Float64Var(&w, "width", builder.DefaultRoomWidth, "room width")
	fs.Float64Var(&h, "height", builder.DefaultRoomHeight, "room height")
	fs.Float64Var(&p, "doors", 1, "probability that two neighbouring rooms share a door")
	fs.Int64Var(&seed, "seed", 1, "random seed for door sampling")
	fs.BoolVar(&oneWay, "one-way", false, "emit only forward connections")
	fs.StringVar(&layer, "layer", "floor", "layer id holding the generated cells")
	fs.StringVar(&out, "out", "", "output file (stdout when empty)")
	fs.StringVar(&indent, "indent", "  ", "JSON indent; empty for compact output")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: -width and -height must be positive", errUsage)
	}

	opts := []builder.BuilderOption{
		builder.WithRoomSize(w, h),
		builder.WithDoorProbability(p),
		builder.WithSeed(seed),
	}
	if oneWay {
		opts = append(opts, builder.WithOneWay())
	}
	g, err := builder.BuildGraph(opts, builder.Floor(layer, builder.Grid(rows, cols)))
	if err != nil {
		return err
	}

	return emit(stdout, out, g.Document(), indent)
}
