package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest = "Invalid request body"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Loot box error messages
	ErrMsgPreviewFailed = "Failed to summon a loot box"

	// Collection error messages
	ErrMsgClearCollectionFailed = "Failed to clear collection"
	ErrMsgItemNotOwned          = "Item not found in your collection"
)
