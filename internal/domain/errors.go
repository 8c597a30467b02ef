package domain

import "errors"

var (
	// ErrItemNotFound signals a content item that is missing or not
	// accessible to the calling context.
	ErrItemNotFound = errors.New("item not found")
	// ErrIndexNotFound signals that no index serves the requested scope.
	ErrIndexNotFound = errors.New("index not found")
	// ErrInvalidItem signals invalid item data in a write request.
	ErrInvalidItem = errors.New("invalid item")
)
