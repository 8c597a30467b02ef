package item

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/content"
)

// Hash field names for item heads and versions.
const (
	fieldName        = "name"
	fieldParentID    = "parent_id"
	fieldHidden      = "hidden"
	fieldIcon        = "icon"
	fieldPath        = "path"
	fieldDisplayName = "display_name"
	fieldBody        = "body"
	fieldURI         = "uri"
)

// buildHeadFields converts an item head into a flat map for HSET.
func buildHeadFields(item content.Item) map[string]string {
	return map[string]string{
		fieldName:     item.Name(),
		fieldParentID: item.ParentID().String(),
		fieldHidden:   strconv.FormatBool(item.Hidden()),
		fieldIcon:     item.Icon(),
		fieldPath:     joinPath(item.Path()),
	}
}

// parseHead converts stored hash fields back into an item head.
// Malformed fields degrade to zero values rather than failing the read.
func parseHead(id uuid.UUID, m map[string]string) content.Item {
	parentID, _ := uuid.Parse(m[fieldParentID])
	hidden, _ := strconv.ParseBool(m[fieldHidden])
	return content.ReconstructItem(
		id, parentID, m[fieldName], hidden, m[fieldIcon], splitPath(m[fieldPath]),
	)
}

// buildVersionFields converts a version into a flat map for HSET.
func buildVersionFields(v *content.Version) map[string]string {
	return map[string]string{
		fieldDisplayName: v.DisplayName(),
		fieldBody:        v.Body(),
		fieldURI:         v.URI(),
	}
}

// parseVersion converts stored hash fields back into a version.
func parseVersion(id uuid.UUID, language string, version int, m map[string]string) content.Version {
	return content.ReconstructVersion(
		id, language, version, m[fieldDisplayName], m[fieldBody], m[fieldURI],
	)
}

func joinPath(path []uuid.UUID) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func splitPath(s string) []uuid.UUID {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
