package domain

import "time"

// LootItem represents a generated collectible a user can own, list, or trade.
// ImageRef is either an inline data URI or a URL to a stored image.
type LootItem struct {
	ID             string     `json:"id" db:"nft_id"`
	Name           string     `json:"name" db:"name"`
	FlavorText     string     `json:"flavor_text" db:"flavor_text"`
	ImageRef       string     `json:"image_ref" db:"image_ref"`
	Theme          string     `json:"theme,omitempty" db:"theme"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	Price          *int       `json:"price,omitempty" db:"price"`                     // set iff currently listed for sale
	OwnerAddress   string     `json:"owner_address,omitempty" db:"owner_address"`     // empty = unclaimed/legacy
	CreatorAddress string     `json:"creator_address,omitempty" db:"creator_address"` // immutable after creation
	CreatorName    string     `json:"creator_name,omitempty" db:"creator_name"`
}

// IsListed reports whether the item currently carries a sale price.
func (i LootItem) IsListed() bool {
	return i.Price != nil
}

// Artifact is the raw creative output for a theme before it is minted
// into a LootItem.
type Artifact struct {
	ImageRef   string `json:"image_ref"`
	FlavorText string `json:"flavor_text"`
}

// GenerationStatus is the per-address free-tier generation state.
// An address with no ledger row reports the implicit zero state.
type GenerationStatus struct {
	WalletAddress      string `json:"wallet_address"`
	GenerationsUsed    int    `json:"generations_used"`
	NFTGenerationLimit int    `json:"nft_generation_limit"`
	CanGenerateForFree bool   `json:"can_generate_for_free"`
}

// GenerationsLeft returns the remaining free generations, never negative.
func (s GenerationStatus) GenerationsLeft() int {
	left := s.NFTGenerationLimit - s.GenerationsUsed
	if left < 0 {
		return 0
	}
	return left
}

// GenerationEntry is the durable per-address counter row.
// GenerationsUsed is monotonically non-decreasing; rows materialize on first
// write, never on read.
type GenerationEntry struct {
	WalletAddress      string    `json:"wallet_address" db:"wallet_address"`
	GenerationsUsed    int       `json:"generations_used" db:"generations_used"`
	NFTGenerationLimit int       `json:"nft_generation_limit" db:"nft_generation_limit"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
