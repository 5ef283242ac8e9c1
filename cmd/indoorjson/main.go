// SPDX-License-Identifier: MIT

// Command indoorjson converts, inspects and serves indoor cellular topology documents.
//
// Usage:
//
//	indoorjson hypergraph -in FILE [-out FILE]   derive the dual hypergraph
//	indoorjson roundtrip  -in FILE [-out FILE]   re-export a document in canonical form
//	indoorjson seed       -in FILE -out FILE     add relational lines for every through-cell
//	indoorjson stats      -in FILE               print counts and extent
//	indoorjson generate   -rows N -cols M [-out FILE]  write a synthetic floor plan
//	indoorjson watch      -in FILE -out FILE     re-derive the hypergraph on every change
//	indoorjson serve      [-config FILE] [-env FILE]   run the HTTP API
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// command is one subcommand entry point.
type command func(ctx context.Context, args []string, stdout io.Writer) error

var commands = map[string]command{
	"hypergraph": runHypergraph,
	"roundtrip":  runRoundtrip,
	"seed":       runSeed,
	"stats":      runStats,
	"generate":   runGenerate,
	"watch":      runWatch,
	"serve":      runServe,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "indoorjson: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
	if err := cmd(ctx, args[1:], stdout); err != nil {
		fmt.Fprintf(stderr, "indoorjson %s: %v\n", args[0], err)
		return 1
	}

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: indoorjson <hypergraph|roundtrip|seed|stats|generate|watch|serve> [flags]")
}
