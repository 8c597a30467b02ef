package surface

// Surface identifies the UI context issuing a search. The surface changes
// how duplicate hits for the same item are resolved and whether the scope
// root restricts results.
type Surface string

// Surface constants.
const (
	// ContentEditor is the content tree editing UI. It searches across
	// the whole tree, so the scope root does not restrict its results.
	ContentEditor Surface = "content_editor"
	// Classic is the legacy dialog UI. Without a language filter it keeps
	// duplicate entries for the same item, matching historic behavior.
	Classic Surface = "classic"
	// Other covers every remaining caller.
	Other Surface = "other"
)

// IsValid checks if the surface is one of the supported values.
func (s Surface) IsValid() bool {
	return s == ContentEditor || s == Classic || s == Other
}
