package request

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/search/surface"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Request is a validated quick-search query. Immutable per invocation.
type Request struct {
	query     string
	rootScope uuid.UUID
	language  string
	limit     int
	sf        surface.Surface
}

// New validates and normalizes search parameters.
// Defaults: surface=other, limit=20. Limit is clamped to MaxLimit.
func New(query string, rootScope uuid.UUID, language string, limit int, sf surface.Surface) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if sf == "" {
		sf = surface.Other
	}
	if !sf.IsValid() {
		return Request{}, fmt.Errorf("invalid surface: %q", sf)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		query:     query,
		rootScope: rootScope,
		language:  language,
		limit:     limit,
		sf:        sf,
	}, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// RootScope returns the scope root item id, or uuid.Nil when unscoped.
func (r *Request) RootScope() uuid.UUID { return r.rootScope }

// Language returns the content-language filter, or "" when not set.
func (r *Request) Language() string { return r.language }

// HasLanguage reports whether a content-language filter is set.
func (r *Request) HasLanguage() bool { return r.language != "" }

// Limit returns the maximum number of results to accept.
func (r *Request) Limit() int { return r.limit }

// Surface returns the requesting UI surface.
func (r *Request) Surface() surface.Surface { return r.sf }
