package sitesearch

import (
	"github.com/google/uuid"
)

type clientConfig struct {
	addrs    []string
	username string
	password string

	keyPrefix   string
	defaultIcon string

	indexDir      string
	pageSize      int
	inMemoryIndex bool
	scopes        map[uuid.UUID]string
}

// Option configures the Client.
type Option func(*clientConfig)

// WithRedis sets the Redis address and password.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedisCluster sets multiple Redis addresses.
func WithRedisCluster(addrs []string, username, password string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
	}
}

// WithKeyPrefix overrides the storage key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithDefaultIcon sets the icon used for results whose item carries none.
func WithDefaultIcon(icon string) Option {
	return func(c *clientConfig) {
		c.defaultIcon = icon
	}
}

// WithIndexDir sets the directory holding the on-disk indexes.
func WithIndexDir(dir string) Option {
	return func(c *clientConfig) {
		c.indexDir = dir
	}
}

// WithInMemoryIndex keeps the indexes in memory. Intended for tests and
// short-lived embedded use; the indexes are lost on Close.
func WithInMemoryIndex() Option {
	return func(c *clientConfig) {
		c.inMemoryIndex = true
	}
}

// WithPageSize sets the cursor fetch size.
func WithPageSize(size int) Option {
	return func(c *clientConfig) {
		c.pageSize = size
	}
}

// WithScopedIndex serves searches under root from a dedicated index with
// the given name.
func WithScopedIndex(root uuid.UUID, name string) Option {
	return func(c *clientConfig) {
		if c.scopes == nil {
			c.scopes = make(map[uuid.UUID]string)
		}
		c.scopes[root] = name
	}
}
