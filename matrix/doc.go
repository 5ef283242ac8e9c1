// Package matrix provides the dense signed incidence matrix used to derive the
// hypergraph of an indoor graph.
//
// Rows are spatial cells, columns are directed connections. A column carries +1
// (SourceMark) on its source row and −1 (TargetMark) on its target row; self-loops
// keep a single +1 and are flagged separately (see Incidence.IsLoop).
//
//	        conn1-2  conn3-1
//	  c1  [    1,      -1  ]
//	  c2  [   -1,       0  ]
//	  c3  [    0,       1  ]
//
// Dense is a row-major int8 buffer with bounds-checked At/Set; nothing in the package
// panics on caller input except the light RowCount/ArcCount getters on a nil receiver.
package matrix
