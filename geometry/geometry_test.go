// SPDX-License-Identifier: MIT

package geometry_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoorjson/geometry"
)

// TestParse_CanonicalRoundTrip verifies Parse→Text is byte-stable for canonical input.
func TestParse_CanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		kind geometry.Kind
	}{
		{"point", "POINT (0.5 0.5)", geometry.KindPoint},
		{"point_negative", "POINT (-12.25 3)", geometry.KindPoint},
		{"linestring", "LINESTRING (1 0, 1 1)", geometry.KindLineString},
		{"polygon", "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))", geometry.KindPolygon},
		{"polygon_hole", "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 2, 1 1))", geometry.KindPolygon},
		{"point_empty", "POINT EMPTY", geometry.KindPoint},
		{"linestring_empty", "LINESTRING EMPTY", geometry.KindLineString},
		{"polygon_empty", "POLYGON EMPTY", geometry.KindPolygon},
		{"precision", "POINT (0.1 123456.789)", geometry.KindPoint},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := geometry.Parse(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.kind, g.Kind())
			require.Equal(t, tc.text, g.Text())

			again, err := geometry.Parse(g.Text())
			require.NoError(t, err)
			require.True(t, g.Equal(again))
		})
	}
}

// TestParse_Normalizes verifies that non-canonical spacing is rewritten to the canonical form.
func TestParse_Normalizes(t *testing.T) {
	t.Parallel()

	g, err := geometry.Parse("POLYGON((0 0,1 0,1 1,0 1,0 0))")
	require.NoError(t, err)
	require.Equal(t, "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))", g.Text())

	g, err = geometry.Parse("POINT(1.50 2.0)")
	require.NoError(t, err)
	require.Equal(t, "POINT (1.5 2)", g.Text())
}

// TestParse_AcceptsInvalidShapes verifies that only syntax is checked: shapes that fail
// geometric validity still parse and re-emit unchanged.
func TestParse_AcceptsInvalidShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"bowtie", "POLYGON ((0 0, 1 1, 1 0, 0 1, 0 0))"},
		{"single_xy_line", "LINESTRING (1 1, 1 1)"},
		{"hole_touches_shell", "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (0 0, 2 1, 1 2, 0 0))"},
		{"hole_outside_shell", "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0), (5 5, 6 5, 6 6, 5 5))"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := geometry.Parse(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.text, g.Text())
		})
	}
}

// TestConstructors_ParseBack verifies unchecked constructors always produce parseable text.
func TestConstructors_ParseBack(t *testing.T) {
	t.Parallel()

	for _, g := range []geometry.Geometry{
		geometry.NewPolygon([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}),
		geometry.NewLineString(r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 1}),
	} {
		back, err := geometry.Parse(g.Text())
		require.NoError(t, err, g.Text())
		require.True(t, g.Equal(back), g.Text())
	}
}

// TestParse_Errors verifies sentinel mapping for rejected input.
func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"",
		"POINT (1)",
		"POLYGON ((0 0, 1 0",
		"CIRCLE (0 0, 1)",
		"POINT Z (1 2 3)",
		"MULTIPOINT ((1 2), (3 4))",
	} {
		_, err := geometry.Parse(text)
		require.ErrorIsf(t, err, geometry.ErrParse, "Parse(%q)", text)
	}
}

// TestParseKind verifies the kind gate.
func TestParseKind(t *testing.T) {
	t.Parallel()

	_, err := geometry.ParseKind("POINT (1 1)", geometry.KindPolygon)
	require.ErrorIs(t, err, geometry.ErrKind)

	g, err := geometry.ParseKind("LINESTRING (0 0, 2 0)", geometry.KindLineString)
	require.NoError(t, err)
	require.Equal(t, 2.0, g.Length())
}

// TestConstructors_MatchParse verifies programmatic construction renders like parsed text.
func TestConstructors_MatchParse(t *testing.T) {
	t.Parallel()

	require.Equal(t, "POINT (0.5 1.5)", geometry.NewPoint(0.5, 1.5).Text())
	require.Equal(t, "LINESTRING (0.5 0.5, 1.5 0.5)",
		geometry.NewLineString(r2.Point{X: 0.5, Y: 0.5}, r2.Point{X: 1.5, Y: 0.5}).Text())
	require.Equal(t, "POLYGON ((1 0, 2 0, 2 1, 1 1, 1 0))",
		geometry.NewPolygon([]r2.Point{{X: 1}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1}}).Text())
	require.Equal(t, "LINESTRING EMPTY", geometry.NewLineString().Text())
	require.Equal(t, "", geometry.Geometry{}.Text())
	require.True(t, geometry.Geometry{}.IsZero())
}

// TestMeasures verifies envelope and centroid policies.
func TestMeasures(t *testing.T) {
	t.Parallel()

	square := geometry.MustParse("POLYGON ((0 0, 2 0, 2 2, 0 2, 0 0))")
	env := square.Envelope()
	require.Equal(t, r2.Point{X: 0, Y: 0}, env.Lo())
	require.Equal(t, r2.Point{X: 2, Y: 2}, env.Hi())

	c, ok := square.Centroid()
	require.True(t, ok)
	require.InDelta(t, 1.0, c.X, 1e-12)
	require.InDelta(t, 1.0, c.Y, 1e-12)

	door := geometry.MustParse("LINESTRING (1 0, 1 1)")
	c, ok = door.Centroid()
	require.True(t, ok)
	require.Equal(t, r2.Point{X: 1, Y: 0.5}, c)

	withHole := geometry.NewPolygon(
		[]r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
		[]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
	)
	c, ok = withHole.Centroid()
	require.True(t, ok)
	// 16-area square centred at (2,2) minus 4-area square centred at (1,1)
	require.InDelta(t, (16*2.0-4*1.0)/12, c.X, 1e-12)

	_, ok = geometry.MustParse("POINT EMPTY").Centroid()
	require.False(t, ok)
	require.True(t, geometry.MustParse("LINESTRING EMPTY").Envelope().IsEmpty())
}
