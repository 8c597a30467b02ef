// Package hit models raw index matches before enrichment and the lazy
// cursor they arrive through.
package hit

import (
	"context"

	"github.com/google/uuid"
)

// Hit is a single raw match returned by an index query.
type Hit struct {
	itemID      uuid.UUID
	language    string
	version     int
	uri         string
	name        string
	displayName string
	path        []uuid.UUID
	icon        string
}

// New creates a hit.
func New(
	itemID uuid.UUID, language string, version int,
	uri, name, displayName string, path []uuid.UUID, icon string,
) Hit {
	return Hit{
		itemID: itemID, language: language, version: version,
		uri: uri, name: name, displayName: displayName, path: path, icon: icon,
	}
}

// ItemID returns the matched item's identity.
func (h *Hit) ItemID() uuid.UUID { return h.itemID }

// Language returns the language of the matched version.
func (h *Hit) Language() string { return h.language }

// Version returns the revision number of the matched version.
func (h *Hit) Version() int { return h.version }

// URI returns the locator stored with the match, or "".
func (h *Hit) URI() string { return h.uri }

// Name returns the technical item name stored with the match.
func (h *Hit) Name() string { return h.name }

// DisplayName returns the stored display name, or "".
func (h *Hit) DisplayName() string { return h.displayName }

// Path returns the content path ids stored with the match.
func (h *Hit) Path() []uuid.UUID { return h.path }

// Icon returns the icon field stored with the match, or "".
func (h *Hit) Icon() string { return h.icon }

// InScope reports whether the hit's content path contains the given root.
func (h *Hit) InScope(root uuid.UUID) bool {
	for _, id := range h.path {
		if id == root {
			return true
		}
	}
	return false
}

// Iterator is a lazy cursor over raw matches. The producer fetches pages
// on demand, so callers terminate early by simply not calling Next again.
// After Next returns false, Err reports whether the stream failed.
type Iterator interface {
	Next(ctx context.Context) bool
	Hit() Hit
	Err() error
	Close() error
}
