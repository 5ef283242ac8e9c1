// Package store keeps named indoor graphs in a sqlite database (modernc.org/sqlite,
// no cgo). Each row holds the graph's export document, its current revision and a
// few counts for listing without decoding.
//
// Schema:
//
//	graphs(name TEXT PRIMARY KEY, revision TEXT, document BLOB,
//	       cells INTEGER, connections INTEGER, updated_at TEXT)
//
// Revisions are random UUIDs; the HTTP server exposes them as ETags and uses
// SaveIfMatch for conditional updates.
package store
