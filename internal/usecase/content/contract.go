package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
)

// ItemStore persists item heads and their language versions.
type ItemStore interface {
	Save(ctx context.Context, item content.Item, versions []content.Version) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IndexWriter keeps the search indexes in step with the store.
type IndexWriter interface {
	IndexVersions(ctx context.Context, item content.Item, versions []content.Version) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
