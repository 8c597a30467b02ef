// Package content models the CMS items whose searchable text feeds the
// quick-search indexes. An Item is the language-independent head (identity,
// tree position, appearance); each Version carries the per-language,
// per-revision display fields.
package content

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain"
)

// Item is a content item head: the fields shared by every version.
type Item struct {
	id       uuid.UUID
	parentID uuid.UUID
	name     string
	hidden   bool
	icon     string
	path     []uuid.UUID
}

// NewItem validates and creates an item head. path lists the ancestor chain
// from the tree root down to the item itself.
func NewItem(id, parentID uuid.UUID, name string, hidden bool, icon string, path []uuid.UUID) (Item, error) {
	if id == uuid.Nil {
		return Item{}, fmt.Errorf("%w: item id is required", domain.ErrInvalidItem)
	}
	if name == "" {
		return Item{}, fmt.Errorf("%w: item name is required", domain.ErrInvalidItem)
	}
	if len(path) == 0 {
		path = []uuid.UUID{id}
	}
	if path[len(path)-1] != id {
		return Item{}, fmt.Errorf("%w: item path must end with the item id", domain.ErrInvalidItem)
	}
	return Item{id: id, parentID: parentID, name: name, hidden: hidden, icon: icon, path: path}, nil
}

// ReconstructItem creates an item head from stored fields without validation.
func ReconstructItem(id, parentID uuid.UUID, name string, hidden bool, icon string, path []uuid.UUID) Item {
	return Item{id: id, parentID: parentID, name: name, hidden: hidden, icon: icon, path: path}
}

// ID returns the item identity.
func (i *Item) ID() uuid.UUID { return i.id }

// ParentID returns the owning item's id, or uuid.Nil at the tree root.
func (i *Item) ParentID() uuid.UUID { return i.parentID }

// Name returns the technical item name.
func (i *Item) Name() string { return i.name }

// Hidden reports whether the item itself carries the hidden flag.
// Ancestor visibility is the caller's concern.
func (i *Item) Hidden() bool { return i.hidden }

// Icon returns the item's appearance icon, or "" when unset.
func (i *Item) Icon() string { return i.icon }

// Path returns the ancestor chain from the root down to the item.
func (i *Item) Path() []uuid.UUID { return i.path }

// Version is one language revision of a content item.
type Version struct {
	itemID      uuid.UUID
	language    string
	number      int
	displayName string
	body        string
	uri         string
}

// NewVersion validates and creates an item version.
func NewVersion(itemID uuid.UUID, language string, number int, displayName, body, uri string) (Version, error) {
	if itemID == uuid.Nil {
		return Version{}, fmt.Errorf("%w: version item id is required", domain.ErrInvalidItem)
	}
	if language == "" {
		return Version{}, fmt.Errorf("%w: version language is required", domain.ErrInvalidItem)
	}
	if number < 1 {
		return Version{}, fmt.Errorf("%w: version number must be >= 1, got %d", domain.ErrInvalidItem, number)
	}
	return Version{
		itemID: itemID, language: language, number: number,
		displayName: displayName, body: body, uri: uri,
	}, nil
}

// ReconstructVersion creates a version from stored fields without validation.
func ReconstructVersion(itemID uuid.UUID, language string, number int, displayName, body, uri string) Version {
	return Version{
		itemID: itemID, language: language, number: number,
		displayName: displayName, body: body, uri: uri,
	}
}

// ItemID returns the owning item's identity.
func (v *Version) ItemID() uuid.UUID { return v.itemID }

// Language returns the version language code.
func (v *Version) Language() string { return v.language }

// Number returns the revision number. Numbers increase monotonically
// within one language.
func (v *Version) Number() int { return v.number }

// DisplayName returns the human-readable title, or "" when unset.
func (v *Version) DisplayName() string { return v.displayName }

// Body returns the searchable text of the version.
func (v *Version) Body() string { return v.body }

// URI returns the locator used to open the item in the UI, or "".
func (v *Version) URI() string { return v.uri }
