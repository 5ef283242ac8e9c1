// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// impl_floor.go: implementation of Floor(id, inner).

package builder

import (
	"fmt"

	"github.com/katalvlaran/indoorjson/indoor"
)

// Floor returns a Constructor that runs inner and then appends a Layer with the given
// id listing, in insertion order, every cell inner added.
//
// Errors:
//   - ErrConstructFailed for a nil inner constructor.
//   - inner's error, wrapped; no layer is added in that case.
func Floor(id string, inner Constructor) Constructor {
	return func(g *indoor.Graph, cfg builderConfig) error {
		if inner == nil {
			return fmt.Errorf("%s(%s): nil inner constructor: %w", MethodFloor, id, ErrConstructFailed)
		}
		before := g.CellCount()
		if err := inner(g, cfg); err != nil {
			return fmt.Errorf("%s(%s): %w", MethodFloor, id, err)
		}

		cells := g.Cells()[before:]
		ids := make([]string, len(cells))
		for i, c := range cells {
			ids[i] = c.ID()
		}
		g.AddLayer(indoor.Layer{ID: id, Cells: ids})

		return nil
	}
}
