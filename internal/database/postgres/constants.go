package postgres

// Error message formats for repository operations
const (
	ErrMsgGetGenerationEntryFailed  = "failed to get generation entry: %w"
	ErrMsgIncrementGenerationFailed = "failed to increment generation counter: %w"
	ErrMsgSaveCollectibleFailed     = "failed to save collectible: %w"
	ErrMsgGetCollectibleFailed      = "failed to get collectible: %w"
	ErrMsgListCollectiblesFailed    = "failed to list collectibles: %w"
)
