package sitesearch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
	contentuc "github.com/harborcms/sitesearch/internal/usecase/content"
)

// ItemService writes content items into the store and the indexes.
type ItemService struct {
	svc *contentuc.Service
}

// Item is a content item to index, with its language versions.
type Item struct {
	ID       uuid.UUID
	ParentID uuid.UUID
	Name     string
	Hidden   bool
	Icon     string
	// Path lists ancestor ids from the root down to the item itself.
	// Empty defaults to just the item's own id.
	Path     []uuid.UUID
	Versions []ItemVersion
}

// ItemVersion is one language version of an item.
type ItemVersion struct {
	Language    string
	Version     int
	DisplayName string
	Body        string
	URI         string
}

// Upsert creates or replaces the item and its versions.
func (s *ItemService) Upsert(ctx context.Context, item Item) error {
	dom, err := content.NewItem(item.ID, item.ParentID, item.Name, item.Hidden, item.Icon, item.Path)
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	versions := make([]content.Version, 0, len(item.Versions))
	for _, v := range item.Versions {
		ver, err := content.NewVersion(item.ID, v.Language, v.Version, v.DisplayName, v.Body, v.URI)
		if err != nil {
			return fmt.Errorf("upsert: %w", err)
		}
		versions = append(versions, ver)
	}

	return s.svc.Upsert(ctx, dom, versions)
}

// Delete removes the item and all its versions.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.svc.Delete(ctx, id)
}
