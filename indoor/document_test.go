// SPDX-License-Identifier: MIT

package indoor_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoorjson/geometry"
	"github.com/katalvlaran/indoorjson/indoor"
)

// reimport decodes b into a Document and rebuilds a Graph from it.
func reimport(t *testing.T, b []byte) (*indoor.Graph, error) {
	t.Helper()
	var d indoor.Document
	require.NoError(t, json.Unmarshal(b, &d))

	return indoor.FromDocument(&d)
}

// TestDocument_RoundTripByteIdentical verifies export(import(export(g))) == export(g).
func TestDocument_RoundTripByteIdentical(t *testing.T) {
	t.Parallel()
	g := newThreeRooms(t)
	g.AddRLine(indoor.RLine{
		ID: "rlines1", Cell: CellC1,
		Ins: []string{Conn31}, Outs: []string{Conn12},
		Closure: []indoor.Pair{{In: Conn31, Out: Conn12}},
	})

	first, err := json.Marshal(g)
	require.NoError(t, err)

	back, err := reimport(t, first)
	require.NoError(t, err)
	second, err := json.Marshal(back)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))

	require.Equal(t, g.Stats(), back.Stats())
}

// TestDocument_RoundTripUncheckedShapes verifies shapes that fail geometric validity
// (bowtie footprint, zero-length door) still export and re-import byte-identically.
func TestDocument_RoundTripUncheckedShapes(t *testing.T) {
	t.Parallel()
	g := indoor.NewGraph()

	bowtie := geometry.NewPolygon([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}})
	c1, err := indoor.NewCell(CellC1, nil, bowtie, geometry.NewPoint(0.5, 0.5))
	require.NoError(t, err)
	require.NoError(t, g.AddCell(c1))
	require.NoError(t, g.AddCell(mustCell(t, CellC2, SpaceC2, NodeC2, nil)))

	flat := geometry.NewLineString(r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 1})
	conn, err := indoor.NewConnection(Conn12, nil, CellC1, CellC2, flat, flat)
	require.NoError(t, err)
	require.NoError(t, g.AddConnection(conn))

	first, err := json.Marshal(g)
	require.NoError(t, err)
	require.Contains(t, string(first), `"space":"POLYGON ((0 0, 1 1, 1 0, 0 1, 0 0))"`)

	back, err := reimport(t, first)
	require.NoError(t, err)
	second, err := json.Marshal(back)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

// verbatim encodes v with HTML escaping disabled, the way exports are written.
func verbatim(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(v))

	return strings.TrimSuffix(buf.String(), "\n")
}

// TestDocument_NoHTMLEscape verifies ids and metadata nested inside the Graph and Pair
// encoders are not escaped on their own.
func TestDocument_NoHTMLEscape(t *testing.T) {
	t.Parallel()
	g := indoor.NewGraph()
	g.AddProperties(indoor.Properties{"note": "a<b & c>d"})
	g.AddRLine(indoor.RLine{ID: "r<1>", Cell: "x", Closure: []indoor.Pair{{In: "<in>", Out: "a&b"}}})

	out := verbatim(t, g)
	require.Contains(t, out, `"note":"a<b & c>d"`)
	require.Contains(t, out, `"closure":[["<in>","a&b"]]`)
	require.NotContains(t, out, `\u003c`)
	require.NotContains(t, out, `\u0026`)

	require.Equal(t, `["<","&"]`, verbatim(t, indoor.Pair{In: "<", Out: "&"}))
}

// TestDocument_Shape pins the persisted keys and empty-collection encoding.
func TestDocument_Shape(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(indoor.NewGraph())
	require.NoError(t, err)
	require.JSONEq(t, `{"properties":[],"cells":[],"connections":[],"layers":[],"rlineses":[]}`, string(b))

	g := newThreeRooms(t)
	g.AddRLine(indoor.RLine{ID: "r", Cell: CellC2})
	d := g.Document()
	b, err = json.Marshal(d.Connections[0])
	require.NoError(t, err)
	require.JSONEq(t, `{
		"$id": "conn1-2",
		"properties": {"type": "door", "开放时间": "全天"},
		"source": "c1",
		"target": "c2",
		"bound": "LINESTRING (1 0, 1 1)",
		"edge": "LINESTRING (0.5 0.5, 1.5 0.5)"
	}`, string(b))

	b, err = json.Marshal(d.RLines[0])
	require.NoError(t, err)
	require.JSONEq(t, `{"$id":"r","cell":"c2","ins":[],"outs":[],"closure":[]}`, string(b))
}

// TestDocument_NumberLiteralsPreserved verifies property numbers keep their text.
func TestDocument_NumberLiteralsPreserved(t *testing.T) {
	t.Parallel()
	in := []byte(`{
		"properties": [{"floor": 1.50, "big": 12345678901234567890, "nested": {"h": 2.0}}],
		"cells": [], "connections": [], "layers": [], "rlineses": []
	}`)

	g, err := reimport(t, in)
	require.NoError(t, err)
	out, err := json.Marshal(g)
	require.NoError(t, err)
	require.Contains(t, string(out), `"floor":1.50`)
	require.Contains(t, string(out), `"big":12345678901234567890`)
	require.Contains(t, string(out), `"h":2.0`)
}

// TestDocument_LegacyEndpointKeys verifies "fr"/"to" are accepted on import.
func TestDocument_LegacyEndpointKeys(t *testing.T) {
	t.Parallel()

	var cd indoor.ConnectionDoc
	require.NoError(t, json.Unmarshal([]byte(`{"$id":"x","fr":"c1","to":"c2","bound":"","edge":""}`), &cd))
	require.Equal(t, CellC1, cd.Source)
	require.Equal(t, CellC2, cd.Target)

	// modern keys win when both are present
	require.NoError(t, json.Unmarshal([]byte(`{"$id":"x","source":"a","fr":"b","target":"c","to":"d"}`), &cd))
	require.Equal(t, "a", cd.Source)
	require.Equal(t, "c", cd.Target)
}

// TestFromDocument_Errors verifies import aborts with the insertion sentinels.
func TestFromDocument_Errors(t *testing.T) {
	t.Parallel()

	cell := func(id string) indoor.CellDoc {
		return indoor.CellDoc{ID: id, Space: SpaceC1, Node: NodeC1}
	}
	conn := func(id, from, to string) indoor.ConnectionDoc {
		return indoor.ConnectionDoc{ID: id, Source: from, Target: to, Bound: BoundDoor, Edge: EdgeDoor}
	}

	tests := []struct {
		name string
		doc  *indoor.Document
		want error
	}{
		{"nil", nil, indoor.ErrDocument},
		{"duplicate_cell", &indoor.Document{Cells: []indoor.CellDoc{cell(CellC1), cell(CellC1)}}, indoor.ErrDuplicateID},
		{"duplicate_connection", &indoor.Document{
			Cells:       []indoor.CellDoc{cell(CellC1)},
			Connections: []indoor.ConnectionDoc{conn("a", CellC1, CellC1), conn("a", CellC1, CellC1)},
		}, indoor.ErrDuplicateID},
		{"missing_target", &indoor.Document{
			Cells:       []indoor.CellDoc{cell(CellC1)},
			Connections: []indoor.ConnectionDoc{conn("a", CellC1, CellC9)},
		}, indoor.ErrMissingTarget},
		{"missing_both", &indoor.Document{
			Connections: []indoor.ConnectionDoc{conn("a", CellC1, CellC9)},
		}, indoor.ErrMissingEndpoints},
		{"bad_space", &indoor.Document{
			Cells: []indoor.CellDoc{{ID: CellC1, Space: "POLYGON ((0 0, 1", Node: NodeC1}},
		}, geometry.ErrParse},
		{"wrong_node_kind", &indoor.Document{
			Cells: []indoor.CellDoc{{ID: CellC1, Space: SpaceC1, Node: SpaceC1}},
		}, geometry.ErrKind},
		{"bad_edge", &indoor.Document{
			Cells:       []indoor.CellDoc{cell(CellC1)},
			Connections: []indoor.ConnectionDoc{{ID: "a", Source: CellC1, Target: CellC1, Bound: BoundDoor, Edge: "nonsense"}},
		}, geometry.ErrParse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := indoor.FromDocument(tc.doc)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

// TestFromDocument_MetadataUnchecked verifies layers and rlines import verbatim.
func TestFromDocument_MetadataUnchecked(t *testing.T) {
	t.Parallel()
	in := []byte(`{
		"properties": [],
		"cells": [],
		"connections": [],
		"layers": [{"$id": "L", "cells": ["ghost", "ghost"]}],
		"rlineses": [{"$id": "r", "cell": "ghost", "ins": ["x"], "outs": ["y"], "closure": [["x", "y"]]}]
	}`)

	g, err := reimport(t, in)
	require.NoError(t, err)
	require.Equal(t, []string{"ghost", "ghost"}, g.Layers()[0].Cells)
	require.Equal(t, []indoor.Pair{{In: "x", Out: "y"}}, g.RLines()[0].Closure)
}

// TestPair_Malformed verifies closure pairs must have exactly two ids.
func TestPair_Malformed(t *testing.T) {
	t.Parallel()

	var p indoor.Pair
	require.ErrorIs(t, json.Unmarshal([]byte(`["a"]`), &p), indoor.ErrDocument)
	require.ErrorIs(t, json.Unmarshal([]byte(`["a","b","c"]`), &p), indoor.ErrDocument)
	require.Error(t, json.Unmarshal([]byte(`{"in":"a"}`), &p))
}
