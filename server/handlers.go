// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/indoor"
	"github.com/katalvlaran/indoorjson/jsonio"
	"github.com/katalvlaran/indoorjson/store"
)

// graphResponse acknowledges a write.
type graphResponse struct {
	Name     string         `json:"name"`
	Revision store.Revision `json:"revision"`
	Stats    indoor.Stats   `json:"stats"`
}

// statsResponse reports counts and the bounding box of all cell footprints.
type statsResponse struct {
	indoor.Stats
	Extent *extent `json:"extent"`
}

type extent struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// seedResponse reports the relational lines added by a seed request.
type seedResponse struct {
	Revision store.Revision `json:"revision"`
	Seeded   []indoor.RLine `json:"seeded"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		s.respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) deriveHypergraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.readGraph(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeHypergraph(w, r, g)
}

func (s *Server) listGraphs(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.StoredGraphs.Set(float64(len(entries)))
	s.respond(w, http.StatusOK, map[string][]store.Entry{"graphs": entries})
}

func (s *Server) putGraph(w http.ResponseWriter, r *http.Request) {
	name, err := s.graphName(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := s.readGraph(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var rev store.Revision
	if match := r.Header.Get("If-Match"); match != "" {
		expected := parseETag(match)
		rev, err = s.store.SaveIfMatch(r.Context(), name, g, expected)
		if expected == store.AnyRevision && errors.Is(err, store.ErrNotFound) {
			// "*" only matches an existing representation
			err = fmt.Errorf("If-Match *: %q does not exist: %w", name, store.ErrConflict)
		}
	} else {
		rev, err = s.store.Save(r.Context(), name, g)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("graph stored", zap.String("graph", name), zap.String("revision", string(rev)))

	w.Header().Set("ETag", etag(rev))
	s.respond(w, http.StatusOK, graphResponse{Name: name, Revision: rev, Stats: g.Stats()})
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	name, err := s.graphName(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc, rev, err := s.store.Document(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("ETag", etag(rev))
	if match := r.Header.Get("If-None-Match"); match != "" && matchesAny(parseETag(match), rev) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) deleteGraph(w http.ResponseWriter, r *http.Request) {
	name, err := s.graphName(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err = s.store.Delete(r.Context(), name); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getHypergraph(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.loadGraph(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeHypergraph(w, r, g)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	g, rev, err := s.loadGraph(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := statsResponse{Stats: g.Stats()}
	if ext := g.Extent(); !ext.IsEmpty() {
		resp.Extent = &extent{MinX: ext.X.Lo, MinY: ext.Y.Lo, MaxX: ext.X.Hi, MaxY: ext.Y.Hi}
	}
	w.Header().Set("ETag", etag(rev))
	s.respond(w, http.StatusOK, resp)
}

func (s *Server) seedRLines(w http.ResponseWriter, r *http.Request) {
	g, rev, err := s.loadGraph(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	seeded, err := g.SeedRLines()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	newRev, err := s.store.SaveIfMatch(r.Context(), name, g, rev)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if seeded == nil {
		seeded = []indoor.RLine{}
	}
	s.logger.Info("rlines seeded", zap.String("graph", name), zap.Int("count", len(seeded)))

	w.Header().Set("ETag", etag(newRev))
	s.respond(w, http.StatusOK, seedResponse{Revision: newRev, Seeded: seeded})
}

func (s *Server) checkRLine(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.loadGraph(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var line indoor.RLine
	if err = jsonio.Decode(s.body(w, r), &line); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	if err = g.CheckRLine(line); err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"valid": true})
}

// graphName validates the {name} path parameter.
func (s *Server) graphName(r *http.Request) (string, error) {
	ref := graphRef{Name: chi.URLParam(r, "name")}
	if err := s.validate.Struct(ref); err != nil {
		return "", fmt.Errorf("%w: %s", errBadRequest, describe(err))
	}

	return ref.Name, nil
}

// loadGraph validates the path parameter and loads the stored graph.
func (s *Server) loadGraph(r *http.Request) (*indoor.Graph, store.Revision, error) {
	name, err := s.graphName(r)
	if err != nil {
		return nil, "", err
	}

	return s.store.Load(r.Context(), name)
}

// readGraph decodes the request body as an export document and rebuilds the graph.
// Syntax errors are bad requests; invariant violations keep their domain sentinel.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*indoor.Graph, error) {
	var d indoor.Document
	if err := jsonio.Decode(s.body(w, r), &d); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return indoor.FromDocument(&d)
}

func (s *Server) writeHypergraph(w http.ResponseWriter, r *http.Request, g *indoor.Graph) {
	h, err := g.Hypergraph()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.Derivations.Inc()
	s.respond(w, http.StatusOK, h)
}

// body applies the configured size cap to the request body.
func (s *Server) body(w http.ResponseWriter, r *http.Request) io.Reader {
	if s.opts.MaxBodyBytes <= 0 {
		return r.Body
	}

	return http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
}

// matchesAny reports whether tag is the wildcard or equals rev.
func matchesAny(tag, rev store.Revision) bool {
	return tag == store.AnyRevision || tag == rev
}

func etag(rev store.Revision) string { return `"` + string(rev) + `"` }

// parseETag strips the weak prefix and quotes of an entity tag.
func parseETag(v string) store.Revision {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "W/")

	return store.Revision(strings.Trim(v, `"`))
}
