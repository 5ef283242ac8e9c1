// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/indoorjson/geometry"
	"github.com/katalvlaran/indoorjson/indoor"
)

// room holds the placement of one generated cell.
type room struct {
	id     string
	lo, hi r2.Point          // footprint corners
	space  geometry.Geometry // rectangular footprint
	node   r2.Point          // footprint centre
}

// placeRoom computes the footprint of the room at (row, col) from the config.
func placeRoom(cfg builderConfig, id string, row, col int) room {
	lo := cfg.origin.Add(r2.Point{X: float64(col) * cfg.roomW, Y: float64(row) * cfg.roomH})
	hi := lo.Add(r2.Point{X: cfg.roomW, Y: cfg.roomH})
	space := geometry.NewPolygon([]r2.Point{
		lo,
		{X: hi.X, Y: lo.Y},
		hi,
		{X: lo.X, Y: hi.Y},
		lo,
	})

	return room{id: id, lo: lo, hi: hi, space: space, node: space.Envelope().Center()}
}

// cell converts a placed room into an indoor.Cell.
func (r room) cell(props indoor.Properties) (*indoor.Cell, error) {
	return indoor.NewCell(r.id, props, r.space, geometry.NewPoint(r.node.X, r.node.Y))
}

// addDoor connects u and v through the shared wall segment a–b. The edge runs from
// node to node through the middle of the door. Unless oneWay is set the reverse
// connection is emitted right after the forward one.
func addDoor(g *indoor.Graph, cfg builderConfig, method string, u, v room, a, b r2.Point) error {
	bound := geometry.NewLineString(a, b)
	mid, _ := bound.Centroid()
	pairs := [][2]room{{u, v}}
	if !cfg.oneWay {
		pairs = append(pairs, [2]room{v, u})
	}
	for _, p := range pairs {
		from, to := p[0], p[1]
		id := cfg.connIDFn(from.id, to.id)
		conn, err := indoor.NewConnection(id, indoor.Properties{PropType: DoorType}, from.id, to.id,
			bound, geometry.NewLineString(from.node, mid, to.node))
		if err != nil {
			return fmt.Errorf("%s: NewConnection(%s): %w", method, id, err)
		}
		if err = g.AddConnection(conn); err != nil {
			return fmt.Errorf("%s: AddConnection(%s→%s): %w", method, from.id, to.id, err)
		}
	}

	return nil
}
