package content

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewItem_Valid(t *testing.T) {
	id := uuid.New()
	parent := uuid.New()
	path := []uuid.UUID{parent, id}

	item, err := NewItem(id, parent, "home", false, "icons/home.png", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID() != id {
		t.Errorf("ID() = %s", item.ID())
	}
	if item.ParentID() != parent {
		t.Errorf("ParentID() = %s", item.ParentID())
	}
	if item.Hidden() {
		t.Error("Hidden() = true")
	}
	if len(item.Path()) != 2 {
		t.Errorf("Path() has %d entries, want 2", len(item.Path()))
	}
}

func TestNewItem_EmptyPathDefaultsToSelf(t *testing.T) {
	id := uuid.New()
	item, err := NewItem(id, uuid.Nil, "root", false, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.Path()) != 1 || item.Path()[0] != id {
		t.Errorf("Path() = %v, want [%s]", item.Path(), id)
	}
}

func TestNewItem_Invalid(t *testing.T) {
	id := uuid.New()

	if _, err := NewItem(uuid.Nil, uuid.Nil, "x", false, "", nil); err == nil {
		t.Error("expected error for nil id")
	}
	if _, err := NewItem(id, uuid.Nil, "", false, "", nil); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewItem(id, uuid.Nil, "x", false, "", []uuid.UUID{uuid.New()}); err == nil {
		t.Error("expected error for path not ending with the item id")
	}
}

func TestNewVersion_Valid(t *testing.T) {
	id := uuid.New()
	v, err := NewVersion(id, "en", 3, "Home", "welcome text", "/content/home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Language() != "en" {
		t.Errorf("Language() = %q", v.Language())
	}
	if v.Number() != 3 {
		t.Errorf("Number() = %d", v.Number())
	}
	if v.DisplayName() != "Home" {
		t.Errorf("DisplayName() = %q", v.DisplayName())
	}
}

func TestNewVersion_Invalid(t *testing.T) {
	id := uuid.New()

	if _, err := NewVersion(uuid.Nil, "en", 1, "", "", ""); err == nil {
		t.Error("expected error for nil item id")
	}
	if _, err := NewVersion(id, "", 1, "", "", ""); err == nil {
		t.Error("expected error for empty language")
	}
	if _, err := NewVersion(id, "en", 0, "", "", ""); err == nil {
		t.Error("expected error for version number 0")
	}
}
