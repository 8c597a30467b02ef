package index

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/search/hit"
)

// Query resolves the index serving the scope root and opens a lazy cursor
// over matches for the text, best first. Returns domain.ErrIndexNotFound
// when no index serves the scope.
func (c *Catalog) Query(ctx context.Context, root uuid.UUID, text string) (hit.Iterator, error) {
	idx, err := c.forQuery(c.nameFor(root))
	if err != nil {
		return nil, err
	}
	return &cursor{
		idx:      idx,
		query:    buildQuery(text),
		pageSize: c.cfg.PageSize,
	}, nil
}

// cursor fetches match pages on demand, so a caller that stops calling
// Next never pays for the rest of the result set.
type cursor struct {
	idx      bleve.Index
	query    query.Query
	pageSize int

	page []hit.Hit
	pos  int  // next position in page
	from int  // offset of the next fetch
	done bool // the index returned a short page
	err  error
	cur  hit.Hit
}

func (c *cursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}
	for c.pos >= len(c.page) {
		if c.done {
			return false
		}
		if err := c.fetch(ctx); err != nil {
			c.err = err
			return false
		}
	}
	c.cur = c.page[c.pos]
	c.pos++
	return true
}

func (c *cursor) Hit() hit.Hit { return c.cur }

func (c *cursor) Err() error { return c.err }

func (c *cursor) Close() error { return nil }

func (c *cursor) fetch(ctx context.Context) error {
	req := bleve.NewSearchRequestOptions(c.query, c.pageSize, c.from, false)
	req.Fields = []string{"*"}

	res, err := c.idx.SearchInContext(ctx, req)
	if err != nil {
		return fmt.Errorf("search page at %d: %w", c.from, err)
	}

	c.page = c.page[:0]
	c.pos = 0
	for _, match := range res.Hits {
		h, err := hitFromFields(match.Fields)
		if err != nil {
			return fmt.Errorf("document %s: %w", match.ID, err)
		}
		c.page = append(c.page, h)
	}

	c.from += len(res.Hits)
	if len(res.Hits) < c.pageSize {
		c.done = true
	}
	return nil
}
