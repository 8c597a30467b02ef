package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/db"
	"github.com/harborcms/sitesearch/internal/domain"
	"github.com/harborcms/sitesearch/internal/domain/content"
)

// fakeStore is an in-memory hash store.
type fakeStore struct {
	hashes map[string]map[string]string
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{hashes: make(map[string]map[string]string)}
}

func (f *fakeStore) HSetMulti(_ context.Context, items []db.HashSetItem) error {
	if f.err != nil {
		return f.err
	}
	for _, item := range items {
		if f.hashes[item.Key] == nil {
			f.hashes[item.Key] = make(map[string]string)
		}
		for k, v := range item.Fields {
			f.hashes[item.Key][k] = v
		}
	}
	return nil
}

func (f *fakeStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	m := make(map[string]string, len(f.hashes[key]))
	for k, v := range f.hashes[key] {
		m[k] = v
	}
	return m, nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.hashes, key)
	return nil
}

func (f *fakeStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range f.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func makeItem(t *testing.T, hidden bool) (content.Item, content.Version) {
	t.Helper()
	id := uuid.New()
	parent := uuid.New()
	item, err := content.NewItem(id, parent, "home", hidden, "icons/home.png", []uuid.UUID{parent, id})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	ver, err := content.NewVersion(id, "en", 2, "Home", "welcome", "/content/home")
	if err != nil {
		t.Fatalf("NewVersion: %v", err)
	}
	return item, ver
}

func TestSaveAndResolve(t *testing.T) {
	store := newFakeStore()
	repo := New(store, "sitesearch:")
	item, ver := makeItem(t, true)

	if err := repo.Save(context.Background(), item, []content.Version{ver}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	gotItem, gotVer, err := repo.Resolve(context.Background(), item.ID(), "en", 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gotItem.Name() != "home" {
		t.Errorf("Name() = %q", gotItem.Name())
	}
	if !gotItem.Hidden() {
		t.Error("Hidden() = false, want true")
	}
	if gotItem.ParentID() != item.ParentID() {
		t.Errorf("ParentID() = %s", gotItem.ParentID())
	}
	if len(gotItem.Path()) != 2 {
		t.Errorf("Path() has %d entries, want 2", len(gotItem.Path()))
	}
	if gotVer.DisplayName() != "Home" {
		t.Errorf("DisplayName() = %q", gotVer.DisplayName())
	}
	if gotVer.URI() != "/content/home" {
		t.Errorf("URI() = %q", gotVer.URI())
	}
}

func TestHead_NotFound(t *testing.T) {
	repo := New(newFakeStore(), "sitesearch:")

	_, err := repo.Head(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestResolve_MissingVersion(t *testing.T) {
	store := newFakeStore()
	repo := New(store, "sitesearch:")
	item, ver := makeItem(t, false)

	if err := repo.Save(context.Background(), item, []content.Version{ver}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, _, err := repo.Resolve(context.Background(), item.ID(), "en", 99)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestDelete_RemovesHeadAndVersions(t *testing.T) {
	store := newFakeStore()
	repo := New(store, "sitesearch:")
	item, ver := makeItem(t, false)

	if err := repo.Save(context.Background(), item, []content.Version{ver}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(context.Background(), item.ID()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(store.hashes) != 0 {
		t.Errorf("store still holds %d hashes", len(store.hashes))
	}
}

func TestSave_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection reset")
	repo := New(store, "sitesearch:")
	item, ver := makeItem(t, false)

	if err := repo.Save(context.Background(), item, []content.Version{ver}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseHead_MalformedFieldsDegrade(t *testing.T) {
	id := uuid.New()
	got := parseHead(id, map[string]string{
		fieldName:     "broken",
		fieldParentID: "not-a-uuid",
		fieldHidden:   "not-a-bool",
		fieldPath:     "also-not-a-uuid," + id.String(),
	})

	if got.ParentID() != uuid.Nil {
		t.Errorf("ParentID() = %s, want Nil", got.ParentID())
	}
	if got.Hidden() {
		t.Error("Hidden() = true, want false")
	}
	if len(got.Path()) != 1 {
		t.Errorf("Path() = %v, want the one parseable id", got.Path())
	}
}
