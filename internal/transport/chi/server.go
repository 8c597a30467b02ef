// Package chi provides the hand-written JSON API over the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harborcms/sitesearch/internal/domain"
	domcontent "github.com/harborcms/sitesearch/internal/domain/content"
	"github.com/harborcms/sitesearch/internal/domain/search/request"
	"github.com/harborcms/sitesearch/internal/domain/search/result"
	"github.com/harborcms/sitesearch/internal/domain/search/surface"
	contentuc "github.com/harborcms/sitesearch/internal/usecase/content"
	healthuc "github.com/harborcms/sitesearch/internal/usecase/health"
	searchuc "github.com/harborcms/sitesearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search and content services over HTTP.
type Server struct {
	search        *searchuc.Service
	content       *contentuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	content *contentuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		content: content,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, CodeItemNotFound),
		sentinelHandler(domain.ErrInvalidItem, http.StatusBadRequest, CodeValidationFailed),
	}
	return s
}

// Routes mounts every endpoint on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.getHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.postSearch)
		r.Put("/items/{id}", s.putItem)
		r.Delete("/items/{id}", s.deleteItem)
	})
}

// postSearch handles POST /v1/search.
func (s *Server) postSearch(w http.ResponseWriter, r *http.Request) {
	var body SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}

	root := uuid.Nil
	if body.RootID != "" {
		var err error
		if root, err = uuid.Parse(body.RootID); err != nil {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, "invalid root_id")
			return
		}
	}

	req, err := request.New(body.Query, root, body.Language, body.Limit, surface.Surface(body.Surface))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	results := make([]SearchResultItem, 0, req.Limit())
	s.search.Process(r.Context(), &req, body.ShowHidden, searchuc.SinkFunc(func(res result.Result) {
		results = append(results, SearchResultItem{
			Title: res.Title(),
			Icon:  res.Icon(),
			URL:   res.URL(),
		})
	}))

	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// putItem handles PUT /v1/items/{id}.
func (s *Server) putItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "invalid item id")
		return
	}

	var body UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, versions, err := itemFromPayload(id, &body)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	if err := s.content.Upsert(r.Context(), item, versions); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteItem handles DELETE /v1/items/{id}.
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "invalid item id")
		return
	}

	if err := s.content.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getHealth handles GET /health.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	writeJSON(w, status, HealthResponse{Status: string(report.Status), Checks: checks})
}

func itemFromPayload(id uuid.UUID, body *UpsertItemRequest) (domcontent.Item, []domcontent.Version, error) {
	parentID := uuid.Nil
	if body.ParentID != "" {
		var err error
		if parentID, err = uuid.Parse(body.ParentID); err != nil {
			return domcontent.Item{}, nil, fmt.Errorf("invalid parent_id")
		}
	}

	var path []uuid.UUID
	for _, raw := range body.Path {
		pid, err := uuid.Parse(raw)
		if err != nil {
			return domcontent.Item{}, nil, fmt.Errorf("invalid path element %q", raw)
		}
		path = append(path, pid)
	}

	item, err := domcontent.NewItem(id, parentID, body.Name, body.Hidden, body.Icon, path)
	if err != nil {
		return domcontent.Item{}, nil, err
	}

	versions := make([]domcontent.Version, 0, len(body.Versions))
	for _, v := range body.Versions {
		ver, err := domcontent.NewVersion(id, v.Language, v.Version, v.DisplayName, v.Body, v.URI)
		if err != nil {
			return domcontent.Item{}, nil, err
		}
		versions = append(versions, ver)
	}
	return item, versions, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrItemNotFound,
		domain.ErrIndexNotFound,
		domain.ErrInvalidItem,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
