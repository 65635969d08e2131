package domain

// Typed event payloads, versioned by struct name suffix.

// CollectibleCreatedPayloadV1 is published after a generation workflow
// completes. Confirmed is false when the durable write failed and the item
// was returned to the caller anyway.
type CollectibleCreatedPayloadV1 struct {
	NFTID          string `json:"nft_id"`
	Name           string `json:"name"`
	Theme          string `json:"theme"`
	CreatorAddress string `json:"creator_address"`
	FreeGeneration bool   `json:"free_generation"`
	Confirmed      bool   `json:"confirmed"`
	Timestamp      int64  `json:"timestamp"`
}

// CollectibleListedPayloadV1 is published when an item moves from an owned
// set into the listed pool.
type CollectibleListedPayloadV1 struct {
	NFTID        string `json:"nft_id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	OwnerAddress string `json:"owner_address,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// CollectiblePurchasedPayloadV1 is published when a listed item is bought.
type CollectiblePurchasedPayloadV1 struct {
	NFTID        string `json:"nft_id"`
	Name         string `json:"name"`
	BuyerAddress string `json:"buyer_address"`
	Timestamp    int64  `json:"timestamp"`
}

// CollectionClearedPayloadV1 is published when a user wipes their local
// collection mirror.
type CollectionClearedPayloadV1 struct {
	WalletAddress string `json:"wallet_address,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}
