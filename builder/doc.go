// Package builder generates synthetic indoor floor plans as indoor.Graph values,
// using "functional options" building blocks shared by every constructor.
//
// The package offers the following key components:
//
//   - Orchestration:
//     BuildGraph(opts, cons...) creates a graph and applies constructors in order.
//   - Constructors:
//     Grid(rows, cols), a block of rectangular rooms with doors between neighbours.
//     Corridor(n), a single row of rooms.
//     Floor(id, inner), which records the cells inner adds as a Layer.
//   - Cell id schemes (IDFn):
//     DefaultIDFn ("c1","c2",…), SymbolNumberIDFn(prefix), ExcelColumnIDFn ("A",…,"AA").
//   - Connection id schemes (ConnIDFn):
//     DefaultConnIDFn ("c1-c2"), ConnPrefixIDFn(prefix).
//   - Options:
//     WithRoomSize, WithOrigin, WithOneWay, WithDoorProbability, WithSeed, WithRand,
//     WithIDScheme, WithConnIDScheme.
//
// Guarantees:
//
//   - Deterministic output for equal options, seed and constructor order.
//   - Option constructors panic on meaningless values; constructors return sentinel
//     errors (ErrTooFewRooms, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed)
//     and pass graph sentinels (indoor.ErrDuplicateID, ...) through with %w.
//   - Generated geometry is valid input for geometry.Parse after Text(): rooms are
//     closed axis-aligned rectangles, nodes are room centres, door bounds are shared walls
//     and door edges join the two centres.
//
// Generated graphs are used as CLI fixtures (indoorjson generate) and benchmark inputs.
package builder
