// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Mapping of domain and store sentinels to HTTP responses.
// Policy:
//   - Insertion invariant violations: duplicate id → 409, unresolved endpoints,
//     geometry and document errors → 422.
//   - Store: not found → 404, revision mismatch → 412.
//   - Malformed JSON and invalid path parameters → 400, oversized bodies → 413.
//   - Everything else (including incidence-matrix corruption) → 500 without details.

package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/geometry"
	"github.com/katalvlaran/indoorjson/indoor"
	"github.com/katalvlaran/indoorjson/store"
)

var (
	// errBadRequest marks malformed request bodies and parameters.
	errBadRequest = errors.New("server: bad request")
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// classify returns the status code and a stable kind label for err.
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, indoor.ErrDuplicateID):
		return http.StatusConflict, "duplicate_id"
	case errors.Is(err, indoor.ErrMissingSource),
		errors.Is(err, indoor.ErrMissingTarget),
		errors.Is(err, indoor.ErrMissingEndpoints):
		return http.StatusUnprocessableEntity, "missing_endpoint"
	case errors.Is(err, geometry.ErrParse), errors.Is(err, geometry.ErrKind):
		return http.StatusUnprocessableEntity, "geometry"
	case errors.Is(err, indoor.ErrRLineCell), errors.Is(err, indoor.ErrRLineClosure):
		return http.StatusUnprocessableEntity, "rline"
	case errors.Is(err, indoor.ErrDocument), errors.Is(err, indoor.ErrNilEntity):
		return http.StatusUnprocessableEntity, "document"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, store.ErrConflict):
		return http.StatusPreconditionFailed, "revision_mismatch"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail writes the error response for err and records it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		msg = http.StatusText(status)
	} else {
		s.metrics.DomainErrors.WithLabelValues(kind).Inc()
	}
	s.respond(w, status, errorBody{Error: msg, Kind: kind})
}
