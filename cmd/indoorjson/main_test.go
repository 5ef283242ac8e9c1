// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/builder"
	"github.com/katalvlaran/indoorjson/indoor"
	"github.com/katalvlaran/indoorjson/jsonio"
)

const exampleFile = "../../jsonio/testdata/example.json"

// runCLI executes the command line and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// TestRun_Usage verifies dispatch failures and flag errors map to exit codes.
func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no_args", nil, 2, "usage:"},
		{"unknown", []string{"route"}, 2, `unknown command "route"`},
		{"missing_in", []string{"hypergraph"}, 1, "-in is required"},
		{"seed_missing_out", []string{"seed", "-in", exampleFile}, 1, "-out is required"},
		{"bad_flag", []string{"stats", "-nope"}, 1, "invalid usage"},
		{"missing_file", []string{"stats", "-in", "does-not-exist.json"}, 1, "ReadGraph"},
		{"bad_size", []string{"generate", "-width", "0"}, 1, "must be positive"},
		{"bad_probability", []string{"generate", "-doors", "1.5"}, 1, "probability"},
		{"nan_probability", []string{"generate", "-doors", "NaN"}, 1, "probability"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, _, stderr := runCLI(t, tc.args...)
			require.Equal(t, tc.code, code)
			require.Contains(t, stderr, tc.msg)
		})
	}
}

// TestRun_Roundtrip verifies the canonical example re-exports byte-identically.
func TestRun_Roundtrip(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile(exampleFile)
	require.NoError(t, err)

	code, stdout, stderr := runCLI(t, "roundtrip", "-in", exampleFile)
	require.Zero(t, code, stderr)
	require.Equal(t, string(want), stdout)
}

// TestRun_Hypergraph verifies stdout and file output agree with the library derivation.
func TestRun_Hypergraph(t *testing.T) {
	t.Parallel()
	g, err := jsonio.ReadGraph(exampleFile)
	require.NoError(t, err)
	h, err := g.Hypergraph()
	require.NoError(t, err)
	want, err := jsonio.Marshal(h, "")
	require.NoError(t, err)

	code, stdout, stderr := runCLI(t, "hypergraph", "-in", exampleFile, "-indent", "")
	require.Zero(t, code, stderr)
	require.Equal(t, string(want), stdout)

	out := filepath.Join(t.TempDir(), "hyper.json")
	code, stdout, _ = runCLI(t, "hypergraph", "-in", exampleFile, "-out", out, "-indent", "")
	require.Zero(t, code)
	require.Empty(t, stdout)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}

// TestRun_SeedAndStats verifies seeding persists a new line and stats reports it.
func TestRun_SeedAndStats(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "seeded.json")

	code, stdout, stderr := runCLI(t, "seed", "-in", exampleFile, "-out", out)
	require.Zero(t, code, stderr)
	require.Equal(t, "seeded 1 relational lines\n", stdout)

	g, err := jsonio.ReadGraph(out)
	require.NoError(t, err)
	rl := g.RLines()
	require.Len(t, rl, 2)
	require.Equal(t, "rlines2", rl[1].ID)
	require.Equal(t, "c1", rl[1].Cell)

	code, stdout, _ = runCLI(t, "stats", "-in", out)
	require.Zero(t, code)
	require.Equal(t,
		"cells=3 connections=2 layers=1 rlines=2 closurePairs=0 selfLoops=0 properties=1\n"+
			"extent=[0 0, 2 2]\n",
		stdout)
}

// TestRun_Generate verifies the synthetic floor plan decodes into the expected topology.
func TestRun_Generate(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "generate", "-rows", "2", "-cols", "2", "-indent", "", "-layer", "L1")
	require.Zero(t, code, stderr)

	g, err := jsonio.DecodeGraph(strings.NewReader(stdout))
	require.NoError(t, err)
	// 2x2 grid: four adjacencies, two directions each
	require.Equal(t, indoor.Stats{Cells: 4, Connections: 8, Layers: 1}, g.Stats())
	require.Equal(t, "L1", g.Layers()[0].ID)

	code, stdout, _ = runCLI(t, "generate", "-rows", "1", "-cols", "3", "-one-way", "-indent", "")
	require.Zero(t, code)
	g, err = jsonio.DecodeGraph(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Equal(t, 2, g.ConnectionCount())
}

// TestRun_ServeBadConfig verifies serve fails fast on configuration errors.
func TestRun_ServeBadConfig(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "serve", "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "indoorjson serve:")
}

// TestWatchFile verifies the hypergraph is written at start and rewritten after a change.
func TestWatchFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "plan.json")
	out := filepath.Join(dir, "hyper.json")

	src, err := os.ReadFile(exampleFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, src, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, ioFlags{in: in, out: out, indent: ""}, zap.NewNop())
	}()

	edges := func() int {
		b, err := os.ReadFile(out)
		if err != nil {
			return -1
		}
		var h struct {
			HyperEdges []json.RawMessage `json:"hyperEdges"`
		}
		if json.Unmarshal(b, &h) != nil {
			return -1
		}
		return len(h.HyperEdges)
	}
	require.Eventually(t, func() bool { return edges() == 3 }, 5*time.Second, 20*time.Millisecond)

	g, err := builder.BuildGraph(nil, builder.Corridor(5))
	require.NoError(t, err)
	require.NoError(t, jsonio.WriteGraph(in, g, ""))
	require.Eventually(t, func() bool { return edges() == 5 }, 5*time.Second, 20*time.Millisecond)

	// a broken document keeps the previous output
	require.NoError(t, os.WriteFile(in, []byte("{"), 0o644))
	time.Sleep(3 * debounceDelay)
	require.Equal(t, 5, edges())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
