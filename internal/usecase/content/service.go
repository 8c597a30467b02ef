// Package content implements the write path: items arrive from the host
// CMS and fan out to the item store and the search indexes.
package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harborcms/sitesearch/internal/domain/content"
	"github.com/harborcms/sitesearch/internal/logger"
)

// Service keeps the item store and the search indexes consistent.
type Service struct {
	store ItemStore
	index IndexWriter
}

// New creates a content service.
func New(store ItemStore, index IndexWriter) *Service {
	return &Service{store: store, index: index}
}

// Upsert persists the item with its versions and re-indexes them. The
// store write happens first so a failed index write never leaves hits
// pointing at missing items.
func (s *Service) Upsert(ctx context.Context, item content.Item, versions []content.Version) error {
	if err := s.store.Save(ctx, item, versions); err != nil {
		return fmt.Errorf("save item %s: %w", item.ID(), err)
	}
	if err := s.index.IndexVersions(ctx, item, versions); err != nil {
		return fmt.Errorf("index item %s: %w", item.ID(), err)
	}

	logger.FromContext(ctx).Debug("item upserted",
		zap.String("item_id", item.ID().String()),
		zap.Int("versions", len(versions)),
	)
	return nil
}

// Delete removes the item from the indexes first, then from the store,
// the reverse of Upsert for the same reason.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.index.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("deindex item %s: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}

	logger.FromContext(ctx).Debug("item deleted", zap.String("item_id", id.String()))
	return nil
}
