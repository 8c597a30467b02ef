package chi

// Wire types for the hand-written JSON API.

// ErrorCode classifies API errors for clients.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeItemNotFound     ErrorCode = "item_not_found"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchRequest is the POST /v1/search body.
type SearchRequest struct {
	Query      string `json:"query"`
	RootID     string `json:"root_id,omitempty"`
	Language   string `json:"language,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Surface    string `json:"surface,omitempty"`
	ShowHidden bool   `json:"show_hidden,omitempty"`
}

// SearchResultItem is one display record in a search response.
type SearchResultItem struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	URL   string `json:"url"`
}

// SearchResponse is the POST /v1/search response body.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
}

// VersionPayload is one language version in an item upsert.
type VersionPayload struct {
	Language    string `json:"language"`
	Version     int    `json:"version"`
	DisplayName string `json:"display_name,omitempty"`
	Body        string `json:"body,omitempty"`
	URI         string `json:"uri,omitempty"`
}

// UpsertItemRequest is the PUT /v1/items/{id} body.
type UpsertItemRequest struct {
	ParentID string           `json:"parent_id,omitempty"`
	Name     string           `json:"name"`
	Hidden   bool             `json:"hidden,omitempty"`
	Icon     string           `json:"icon,omitempty"`
	Path     []string         `json:"path,omitempty"`
	Versions []VersionPayload `json:"versions"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
