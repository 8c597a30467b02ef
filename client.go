// Package sitesearch embeds the quick-search engine in a Go process:
// a Redis-backed item store, bleve full-text indexes and the search
// pipeline behind one client, without the HTTP server.
package sitesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborcms/sitesearch/internal/db"
	dbRedis "github.com/harborcms/sitesearch/internal/db/redis"
	"github.com/harborcms/sitesearch/internal/index"
	itemrepo "github.com/harborcms/sitesearch/internal/repository/item"
	contentuc "github.com/harborcms/sitesearch/internal/usecase/content"
	searchuc "github.com/harborcms/sitesearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the embedded sitesearch entry point.
type Client struct {
	store      db.Store
	catalog    *index.Catalog
	searchSvc  *searchuc.Service
	contentSvc *contentuc.Service
}

// New creates a Client, connects to the database and opens the index
// catalog.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:   "sitesearch:",
		defaultIcon: "icons/document.png",
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("sitesearch: database address required (use WithRedis)")
	}
	if cfg.indexDir == "" && !cfg.inMemoryIndex {
		return nil, errors.New("sitesearch: index directory required (use WithIndexDir or WithInMemoryIndex)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("sitesearch: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("sitesearch: database not ready: %w", err)
	}

	return wireClient(store, cfg)
}

func wireClient(store db.Store, cfg *clientConfig) (*Client, error) {
	catalogCfg := index.Config{
		Dir:      cfg.indexDir,
		PageSize: cfg.pageSize,
		Scopes:   cfg.scopes,
	}

	var catalog *index.Catalog
	if cfg.inMemoryIndex {
		names := []string{index.DefaultName}
		for _, name := range cfg.scopes {
			names = append(names, name)
		}
		var err error
		if catalog, err = index.NewMemCatalog(catalogCfg, names...); err != nil {
			store.Close()
			return nil, fmt.Errorf("sitesearch: create index catalog: %w", err)
		}
	} else {
		catalog = index.NewCatalog(catalogCfg)
	}

	items := itemrepo.New(store, cfg.keyPrefix)

	searchSvc := searchuc.New(catalog, items, searchuc.Config{
		DefaultIcon: cfg.defaultIcon,
	})
	contentSvc := contentuc.New(items, catalog)

	return &Client{
		store:      store,
		catalog:    catalog,
		searchSvc:  searchSvc,
		contentSvc: contentSvc,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.catalog != nil {
		_ = c.catalog.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Items returns the content write service.
func (c *Client) Items() *ItemService {
	return &ItemService{svc: c.contentSvc}
}
