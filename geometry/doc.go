// Package geometry provides the opaque 2D shape value carried by indoor cells and
// connections: a POINT, LINESTRING or POLYGON with a canonical well-known-text form.
//
// Parsing is delegated to simplefeatures' WKT reader; the package then keeps its own
// compact ring layout (github.com/golang/geo/r2 points) and re-emits text in a fixed
// canonical style:
//
//	POINT (0.5 0.5)
//	LINESTRING (1 0, 1 1)
//	POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))
//
// For every Geometry g, Parse(g.Text()) reproduces g exactly, so a document that was
// written once by this package round-trips byte-for-byte.
//
// No validity checks (ring closure, simplicity, orientation) are performed beyond what
// the WKT grammar itself requires.
//
// Errors:
//
//	ErrParse - malformed text, Z/M coordinates, or an unsupported geometry type.
//	ErrKind  - a well-formed geometry of the wrong kind for the caller.
package geometry
