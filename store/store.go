// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Named, revisioned persistence of indoor graphs in sqlite.
// Policy:
//   - Graphs are stored as their export document; loading replays FromDocument, so a
//     stored row can never yield a graph that violates the insertion invariants.
//   - Every successful save assigns a fresh revision (UUID v4). Revisions are opaque.
//   - SaveIfMatch is a compare-and-swap on the revision; Save is an unconditional upsert.

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/indoorjson/indoor"
	"github.com/katalvlaran/indoorjson/jsonio"
)

var (
	// ErrNotFound indicates no graph is stored under the requested name.
	ErrNotFound = errors.New("store: graph not found")

	// ErrConflict indicates the stored revision differs from the expected one.
	ErrConflict = errors.New("store: revision mismatch")

	// ErrClosed indicates use of a closed Store.
	ErrClosed = errors.New("store: closed")
)

const schema = `
CREATE TABLE IF NOT EXISTS graphs (
	name        TEXT PRIMARY KEY,
	revision    TEXT NOT NULL,
	document    BLOB NOT NULL,
	cells       INTEGER NOT NULL,
	connections INTEGER NOT NULL,
	updated_at  TEXT NOT NULL
)`

// Revision identifies one saved version of a graph.
type Revision string

// AnyRevision makes SaveIfMatch succeed for whatever revision is stored.
const AnyRevision Revision = "*"

// Entry summarizes one stored graph.
type Entry struct {
	Name        string    `json:"name"`
	Revision    Revision  `json:"revision"`
	Cells       int       `json:"cells"`
	Connections int       `json:"connections"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Store persists graphs in a sqlite database. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
	newRev func() Revision
	closed atomic.Bool
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open %s: %w", path, err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		schema,
	} {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("Open %s: %w", path, err)
		}
	}
	logger.Info("graph store opened", zap.String("path", path))

	return &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
		newRev: func() Revision { return Revision(uuid.NewString()) },
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.db.Close()
}

// ready reports ErrClosed once Close has been called.
func (s *Store) ready(op string) error {
	if s.closed.Load() {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}

	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ready("Ping"); err != nil {
		return err
	}
	if err := s.db.PingContext(ctx); err != nil {
		return s.wrap("Ping", err)
	}

	return nil
}

// Save stores g under name, replacing any previous version, and returns the new revision.
func (s *Store) Save(ctx context.Context, name string, g *indoor.Graph) (Revision, error) {
	if err := s.ready("Save"); err != nil {
		return "", err
	}
	row, err := s.encode(name, g)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO graphs (name, revision, document, cells, connections, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			revision = excluded.revision,
			document = excluded.document,
			cells = excluded.cells,
			connections = excluded.connections,
			updated_at = excluded.updated_at`,
		row.name, string(row.rev), row.doc, row.cells, row.conns, row.updated)
	if err != nil {
		return "", s.wrap("Save", err)
	}
	s.logger.Debug("graph saved",
		zap.String("graph", name),
		zap.String("revision", string(row.rev)),
		zap.Int("cells", row.cells),
		zap.Int("connections", row.conns),
	)

	return row.rev, nil
}

// SaveIfMatch replaces the graph stored under name only if its current revision is
// expected, and returns the new revision.
//
// Errors:
//   - ErrNotFound if nothing is stored under name.
//   - ErrConflict if the stored revision differs from expected.
//
// AnyRevision as expected only requires that name already exists.
func (s *Store) SaveIfMatch(ctx context.Context, name string, g *indoor.Graph, expected Revision) (Revision, error) {
	if err := s.ready("SaveIfMatch"); err != nil {
		return "", err
	}
	row, err := s.encode(name, g)
	if err != nil {
		return "", err
	}
	query := `
		UPDATE graphs SET revision = ?, document = ?, cells = ?, connections = ?, updated_at = ?
		WHERE name = ? AND revision = ?`
	args := []any{string(row.rev), row.doc, row.cells, row.conns, row.updated, name, string(expected)}
	if expected == AnyRevision {
		query = `
		UPDATE graphs SET revision = ?, document = ?, cells = ?, connections = ?, updated_at = ?
		WHERE name = ?`
		args = args[:len(args)-1]
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return "", s.wrap("SaveIfMatch", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", s.wrap("SaveIfMatch", err)
	}
	if n == 0 {
		if _, err = s.head(ctx, name); err != nil {
			return "", fmt.Errorf("SaveIfMatch %q: %w", name, err)
		}
		return "", fmt.Errorf("SaveIfMatch %q: expected %s: %w", name, expected, ErrConflict)
	}
	s.logger.Debug("graph saved",
		zap.String("graph", name),
		zap.String("revision", string(row.rev)),
		zap.String("previous", string(expected)),
	)

	return row.rev, nil
}

// Load returns the graph stored under name and its revision.
func (s *Store) Load(ctx context.Context, name string) (*indoor.Graph, Revision, error) {
	if err := s.ready("Load"); err != nil {
		return nil, "", err
	}
	var (
		rev string
		doc []byte
	)
	err := s.db.QueryRowContext(ctx, `SELECT revision, document FROM graphs WHERE name = ?`, name).Scan(&rev, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("Load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, "", s.wrap("Load", err)
	}
	g, err := jsonio.DecodeGraph(bytes.NewReader(doc))
	if err != nil {
		s.logger.Error("stored document rejected", zap.String("graph", name), zap.Error(err))
		return nil, "", fmt.Errorf("Load %q: %w", name, err)
	}

	return g, Revision(rev), nil
}

// Document returns the raw stored export document of name and its revision.
func (s *Store) Document(ctx context.Context, name string) ([]byte, Revision, error) {
	if err := s.ready("Document"); err != nil {
		return nil, "", err
	}
	var (
		rev string
		doc []byte
	)
	err := s.db.QueryRowContext(ctx, `SELECT revision, document FROM graphs WHERE name = ?`, name).Scan(&rev, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("Document %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, "", s.wrap("Document", err)
	}

	return doc, Revision(rev), nil
}

// List returns every stored graph ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if err := s.ready("List"); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, revision, cells, connections, updated_at FROM graphs ORDER BY name`)
	if err != nil {
		return nil, s.wrap("List", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e       Entry
			rev     string
			updated string
		)
		if err = rows.Scan(&e.Name, &rev, &e.Cells, &e.Connections, &updated); err != nil {
			return nil, s.wrap("List", err)
		}
		e.Revision = Revision(rev)
		if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("List: %q updated_at: %w", e.Name, err)
		}
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, s.wrap("List", err)
	}

	return out, nil
}

// Delete removes the graph stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.ready("Delete"); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name)
	if err != nil {
		return s.wrap("Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.wrap("Delete", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete %q: %w", name, ErrNotFound)
	}
	s.logger.Debug("graph deleted", zap.String("graph", name))

	return nil
}

// head returns the current revision of name.
func (s *Store) head(ctx context.Context, name string) (Revision, error) {
	var rev string
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM graphs WHERE name = ?`, name).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", s.wrap("head", err)
	}

	return Revision(rev), nil
}

type encodedRow struct {
	name         string
	rev          Revision
	doc          []byte
	cells, conns int
	updated      string
}

func (s *Store) encode(name string, g *indoor.Graph) (encodedRow, error) {
	if g == nil {
		return encodedRow{}, fmt.Errorf("Save %q: %w", name, indoor.ErrNilEntity)
	}
	doc, err := jsonio.Marshal(g.Document(), "")
	if err != nil {
		return encodedRow{}, fmt.Errorf("Save %q: %w", name, err)
	}
	st := g.Stats()

	return encodedRow{
		name:    name,
		rev:     s.newRev(),
		doc:     doc,
		cells:   st.Cells,
		conns:   st.Connections,
		updated: s.now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// wrap maps errors caused by a concurrent Close to ErrClosed and adds the operation name.
func (s *Store) wrap(op string, err error) error {
	if s.closed.Load() || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}

	return fmt.Errorf("%s: %w", op, err)
}
