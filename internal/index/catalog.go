// Package index provides the embedded full-text indexes behind quick
// search, built on bleve. A catalog owns one named index per configured
// search scope plus the default whole-tree index.
package index

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain"
)

// DefaultName is the index covering the whole content tree.
const DefaultName = "content"

const defaultPageSize = 50

// Config holds catalog settings.
type Config struct {
	// Dir is the directory holding the on-disk indexes.
	Dir string
	// PageSize is the cursor fetch size.
	PageSize int
	// Scopes maps a scope root item id to the name of the index serving
	// that subtree. Roots without an entry fall back to the default index.
	Scopes map[uuid.UUID]string
}

// Catalog resolves scope roots to bleve indexes and opens hit cursors
// against them.
type Catalog struct {
	cfg Config

	mu       sync.Mutex
	indexes  map[string]bleve.Index
	inMemory bool
}

// NewCatalog creates a catalog over on-disk indexes under cfg.Dir.
// Indexes are opened lazily: queries require the index to exist, writes
// create it on first use.
func NewCatalog(cfg Config) *Catalog {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Catalog{cfg: cfg, indexes: make(map[string]bleve.Index)}
}

// NewMemCatalog creates a catalog backed by in-memory indexes, one per
// name. Used by tests and ephemeral embedded setups.
func NewMemCatalog(cfg Config, names ...string) (*Catalog, error) {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	c := &Catalog{cfg: cfg, indexes: make(map[string]bleve.Index), inMemory: true}

	if len(names) == 0 {
		names = []string{DefaultName}
	}
	for _, name := range names {
		idx, err := bleve.NewMemOnly(buildMapping())
		if err != nil {
			return nil, fmt.Errorf("create in-memory index %q: %w", name, err)
		}
		c.indexes[name] = idx
	}
	return c, nil
}

// Close closes every open index.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for name, idx := range c.indexes {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close index %q: %w", name, err)
		}
		delete(c.indexes, name)
	}
	return firstErr
}

// HealthCheck verifies the default index is present and readable.
func (c *Catalog) HealthCheck(ctx context.Context) error {
	idx, err := c.forQuery(DefaultName)
	if err != nil {
		return err
	}
	if _, err := idx.DocCount(); err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	return nil
}

// nameFor resolves the index name serving a scope root. uuid.Nil and
// unconfigured roots select the default whole-tree index.
func (c *Catalog) nameFor(root uuid.UUID) string {
	if root == uuid.Nil {
		return DefaultName
	}
	if name, ok := c.cfg.Scopes[root]; ok {
		return name
	}
	return DefaultName
}

// forQuery returns the named index, without creating it.
func (c *Catalog) forQuery(name string) (bleve.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.indexes[name]; ok {
		return idx, nil
	}
	if c.inMemory {
		return nil, domain.ErrIndexNotFound
	}

	idx, err := bleve.Open(c.path(name))
	if err == bleve.ErrorIndexPathDoesNotExist {
		return nil, domain.ErrIndexNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open index %q: %w", name, err)
	}
	c.indexes[name] = idx
	return idx, nil
}

// forWrite returns the named index, creating it when missing.
func (c *Catalog) forWrite(name string) (bleve.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.indexes[name]; ok {
		return idx, nil
	}
	if c.inMemory {
		return nil, domain.ErrIndexNotFound
	}

	path := c.path(name)
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open index %q: %w", name, err)
	}
	c.indexes[name] = idx
	return idx, nil
}

func (c *Catalog) path(name string) string {
	return filepath.Join(c.cfg.Dir, name+".bleve")
}

// buildMapping keeps identity fields out of the text analyzers so term
// filters hit them verbatim.
func buildMapping() mapping.IndexMapping {
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	for _, field := range []string{fieldItemID, fieldLanguage, fieldPath, fieldURI, fieldIcon} {
		doc.AddFieldMappingsAt(field, exact)
	}

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}
