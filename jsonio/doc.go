// Package jsonio reads and writes indoor documents as JSON files or streams.
//
// ReadGraph and WriteGraph are the file-level counterparts of indoor.FromDocument and
// Graph.Document; WriteHypergraph stores a derived hypergraph. Decode, Encode and
// Marshal expose the same encoding rules for callers working on streams, such as the
// HTTP server.
package jsonio
