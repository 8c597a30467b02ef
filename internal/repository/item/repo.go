// Package item persists content items as store hashes: one head hash per
// item plus one hash per language version.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/db"
	"github.com/harborcms/sitesearch/internal/domain"
	"github.com/harborcms/sitesearch/internal/domain/content"
)

// store is the consumer interface for item hashes (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the search use case's ItemResolver and the content use
// case's ItemWriter.
type Repo struct {
	store  store
	prefix string
}

// New creates an item repository. keyPrefix namespaces every key.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Head returns the shared head fields of an item.
// Returns domain.ErrItemNotFound for missing items.
func (r *Repo) Head(ctx context.Context, id uuid.UUID) (content.Item, error) {
	key := r.headKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return content.Item{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return content.Item{}, domain.ErrItemNotFound
	}
	return parseHead(id, m), nil
}

// Resolve returns an item head together with one specific language version.
// Returns domain.ErrItemNotFound when either part is missing.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, language string, version int) (
	content.Item, content.Version, error,
) {
	head, err := r.Head(ctx, id)
	if err != nil {
		return content.Item{}, content.Version{}, err
	}

	key := r.versionKey(id, language, version)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return content.Item{}, content.Version{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return content.Item{}, content.Version{}, domain.ErrItemNotFound
	}

	return head, parseVersion(id, language, version, m), nil
}

// Save stores an item head and its versions in one pipelined round-trip.
func (r *Repo) Save(ctx context.Context, item content.Item, versions []content.Version) error {
	hashes := make([]db.HashSetItem, 0, 1+len(versions))
	hashes = append(hashes, db.HashSetItem{
		Key:    r.headKey(item.ID()),
		Fields: buildHeadFields(item),
	})
	for i := range versions {
		v := &versions[i]
		hashes = append(hashes, db.HashSetItem{
			Key:    r.versionKey(v.ItemID(), v.Language(), v.Number()),
			Fields: buildVersionFields(v),
		})
	}

	if err := r.store.HSetMulti(ctx, hashes); err != nil {
		return fmt.Errorf("save item %s: %w", item.ID(), err)
	}
	return nil
}

// Delete removes an item head and every version hash under it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	keys, err := r.store.Scan(ctx, r.headKey(id)+"*")
	if err != nil {
		return fmt.Errorf("scan item %s: %w", id, err)
	}
	for _, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("del %s: %w", key, err)
		}
	}
	return nil
}

func (r *Repo) headKey(id uuid.UUID) string {
	return r.prefix + "item:" + id.String()
}

func (r *Repo) versionKey(id uuid.UUID, language string, version int) string {
	return fmt.Sprintf("%s:%s:%d", r.headKey(id), language, version)
}
