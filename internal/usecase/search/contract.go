package search

import (
	"context"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
	"github.com/harborcms/sitesearch/internal/domain/search/hit"
	"github.com/harborcms/sitesearch/internal/domain/search/result"
)

// Index opens raw-hit cursors against the index serving a scope.
type Index interface {
	// Query resolves the index for the given scope root (uuid.Nil selects
	// the default index) and opens a lazy cursor over its matches.
	// Returns domain.ErrIndexNotFound when no index serves the scope.
	Query(ctx context.Context, root uuid.UUID, text string) (hit.Iterator, error)
}

// ItemResolver fetches the content items backing raw hits.
type ItemResolver interface {
	// Resolve returns an item head with one specific language version.
	Resolve(ctx context.Context, id uuid.UUID, language string, version int) (content.Item, content.Version, error)
	// Head returns only the shared head fields, used for ancestor walks.
	Head(ctx context.Context, id uuid.UUID) (content.Item, error)
}

// Sink receives display records in their final order. The pipeline pushes
// into the caller-owned sink instead of returning a slice, matching the
// host's step-chaining model.
type Sink interface {
	Push(result.Result)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(result.Result)

// Push calls f(r).
func (f SinkFunc) Push(r result.Result) { f(r) }
