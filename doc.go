// Package indoorjson models indoor space as a cellular topology and converts it to and
// from a JSON exchange format.
//
// A building is described by cells (rooms, corridors, stairwells) and directed
// connections between them (doors, openings). From that primal graph the library derives
// the dual hypergraph used for navigation reasoning: every connection becomes a
// hypernode and every cell a hyperedge grouping the connections that enter and leave it.
//
//	    c1 ──conn1-2──▶ c2
//	    ▲
//	    └──conn3-1── c3
//
// Packages:
//
//	geometry/ : POINT, LINESTRING and POLYGON values with canonical WKT
//	matrix/   : dense and signed incidence matrices
//	indoor/   : Cell, Connection, Layer, RLine, the Graph aggregate and its hypergraph
//	jsonio/   : document decoding, encoding and atomic file writes
//	builder/  : synthetic floor plans (grids, corridors, floors)
//	store/    : sqlite persistence of named graphs with revisions
//	server/   : HTTP API over the store, with metrics
//	config/   : YAML, .env and environment configuration
//	logging/  : zap logger construction
//
// The indoorjson command (cmd/indoorjson) wraps all of the above:
//
//	go install github.com/katalvlaran/indoorjson/cmd/indoorjson@latest
//	indoorjson hypergraph -in building.json
package indoorjson
