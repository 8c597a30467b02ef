package index

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
	"github.com/harborcms/sitesearch/internal/domain/search/hit"
)

// Stored field names. The exact-match fields listed in buildMapping must
// stay in sync with these.
const (
	fieldItemID      = "item_id"
	fieldLanguage    = "language"
	fieldVersion     = "version"
	fieldName        = "name"
	fieldDisplayName = "display_name"
	fieldBody        = "body"
	fieldURI         = "uri"
	fieldIcon        = "icon"
	fieldPath        = "path"
)

// versionDoc is the indexed form of one language version of an item.
type versionDoc struct {
	ItemID      string   `json:"item_id"`
	Language    string   `json:"language"`
	Version     int      `json:"version"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Body        string   `json:"body"`
	URI         string   `json:"uri"`
	Icon        string   `json:"icon"`
	Path        []string `json:"path"`
}

func newVersionDoc(item *content.Item, ver *content.Version) versionDoc {
	path := make([]string, 0, len(item.Path()))
	for _, id := range item.Path() {
		path = append(path, id.String())
	}
	return versionDoc{
		ItemID:      item.ID().String(),
		Language:    ver.Language(),
		Version:     ver.Number(),
		Name:        item.Name(),
		DisplayName: ver.DisplayName(),
		Body:        ver.Body(),
		URI:         ver.URI(),
		Icon:        item.Icon(),
		Path:        path,
	}
}

// docID keys a document by item, language and version so re-indexing an
// item replaces its versions in place.
func docID(itemID uuid.UUID, language string, version int) string {
	return fmt.Sprintf("%s:%s:%d", itemID, language, version)
}

// hitFromFields rebuilds a domain hit from the stored fields of a search
// match. bleve returns numbers as float64 and collapses single-element
// arrays to a bare string.
func hitFromFields(fields map[string]interface{}) (hit.Hit, error) {
	itemID, err := uuid.Parse(stringField(fields, fieldItemID))
	if err != nil {
		return hit.Hit{}, fmt.Errorf("parse %s: %w", fieldItemID, err)
	}

	version := 0
	if f, ok := fields[fieldVersion].(float64); ok {
		version = int(f)
	}

	var path []uuid.UUID
	for _, raw := range sliceField(fields, fieldPath) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return hit.Hit{}, fmt.Errorf("parse %s element: %w", fieldPath, err)
		}
		path = append(path, id)
	}

	return hit.New(
		itemID,
		stringField(fields, fieldLanguage),
		version,
		stringField(fields, fieldURI),
		stringField(fields, fieldName),
		stringField(fields, fieldDisplayName),
		path,
		stringField(fields, fieldIcon),
	), nil
}

func stringField(fields map[string]interface{}, name string) string {
	s, _ := fields[name].(string)
	return s
}

func sliceField(fields map[string]interface{}, name string) []string {
	switch v := fields[name].(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return strings.Split(v, " ")
	default:
		return nil
	}
}
