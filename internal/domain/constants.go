package domain

// DefaultGenerationLimit is the free-tier ceiling applied to addresses that
// have no explicit limit stored.
const DefaultGenerationLimit = 3

// Marketplace price bounds for simulated listings (inclusive).
const (
	MinListingPrice = 10
	MaxListingPrice = 500
)

// Event type names shared between publishers and subscribers
const (
	EventTypeCollectibleCreated   = "collectible.created"
	EventTypeCollectibleListed    = "collectible.listed"
	EventTypeCollectiblePurchased = "collectible.purchased"
	EventTypeCollectionCleared    = "collection.cleared"
)
