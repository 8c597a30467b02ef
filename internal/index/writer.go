package index

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
)

// IndexVersions writes every given version of the item into the indexes
// serving it: the default whole-tree index plus any scoped index whose
// root lies on the item's content path.
func (c *Catalog) IndexVersions(ctx context.Context, item content.Item, versions []content.Version) error {
	for _, name := range c.namesServing(&item) {
		idx, err := c.forWrite(name)
		if err != nil {
			return err
		}

		batch := idx.NewBatch()
		for i := range versions {
			ver := &versions[i]
			doc := newVersionDoc(&item, ver)
			if err := batch.Index(docID(item.ID(), ver.Language(), ver.Number()), doc); err != nil {
				return fmt.Errorf("batch document for index %q: %w", name, err)
			}
		}
		if err := idx.Batch(batch); err != nil {
			return fmt.Errorf("write batch to index %q: %w", name, err)
		}
	}
	return nil
}

// DeleteItem removes every version document of the item from every index
// in the catalog.
func (c *Catalog) DeleteItem(ctx context.Context, id uuid.UUID) error {
	for _, name := range c.allNames() {
		idx, err := c.forWrite(name)
		if err != nil {
			return err
		}
		if err := c.deleteFrom(ctx, idx, name, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) deleteFrom(ctx context.Context, idx bleve.Index, name string, id uuid.UUID) error {
	q := bleve.NewTermQuery(id.String())
	q.SetField(fieldItemID)

	for {
		req := bleve.NewSearchRequestOptions(q, c.cfg.PageSize, 0, false)
		res, err := idx.SearchInContext(ctx, req)
		if err != nil {
			return fmt.Errorf("find documents in index %q: %w", name, err)
		}
		if len(res.Hits) == 0 {
			return nil
		}

		batch := idx.NewBatch()
		for _, match := range res.Hits {
			batch.Delete(match.ID)
		}
		if err := idx.Batch(batch); err != nil {
			return fmt.Errorf("delete batch from index %q: %w", name, err)
		}
	}
}

// namesServing lists the default index plus every scoped index whose root
// is an ancestor of the item.
func (c *Catalog) namesServing(item *content.Item) []string {
	names := []string{DefaultName}
	for _, id := range item.Path() {
		if name, ok := c.cfg.Scopes[id]; ok && name != DefaultName {
			names = append(names, name)
		}
	}
	return names
}

func (c *Catalog) allNames() []string {
	names := []string{DefaultName}
	seen := map[string]bool{DefaultName: true}
	for _, name := range c.cfg.Scopes {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
