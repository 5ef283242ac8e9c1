// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoorjson/builder"
)

// TestIDFns verifies each IDFn on valid inputs and its panic on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "c1", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 41, "c42", false},
		{"DefaultIDFn_negative", builder.DefaultIDFn, -1, "", true},

		{"SymbolNumber_zero", builder.SymbolNumberIDFn("room"), 0, "room0", false},
		{"SymbolNumber_negative", builder.SymbolNumberIDFn("room"), -3, "", true},

		{"ExcelColumn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumn_AZ", builder.ExcelColumnIDFn, 51, "AZ", false},
		{"ExcelColumn_negative", builder.ExcelColumnIDFn, -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				require.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestConnIDFns verifies connection id schemes.
func TestConnIDFns(t *testing.T) {
	t.Parallel()

	require.Equal(t, "c1-c2", builder.DefaultConnIDFn("c1", "c2"))
	require.Equal(t, "connc1-c2", builder.ConnPrefixIDFn("conn")("c1", "c2"))
}

// TestOptions_Panics verifies option constructors reject meaningless values.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithConnIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithRoomSize(0, 1) })
	require.Panics(t, func() { builder.WithRoomSize(1, -1) })
	require.NotPanics(t, func() { builder.WithRoomSize(0.5, 0.5) })
}
