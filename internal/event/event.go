package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/voidlabz/lootvault/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	CollectibleCreated   Type = Type(domain.EventTypeCollectibleCreated)
	CollectibleListed    Type = Type(domain.EventTypeCollectibleListed)
	CollectiblePurchased Type = Type(domain.EventTypeCollectiblePurchased)
	CollectionCleared    Type = Type(domain.EventTypeCollectionCleared)
)

// Type-safe event constructors

// NewCollectibleCreatedEvent creates an event for a completed generation.
// confirmed is false when the durable write failed and the item was handed
// back to the caller anyway.
func NewCollectibleCreatedEvent(item *domain.LootItem, freeGeneration, confirmed bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectibleCreated,
		Payload: domain.CollectibleCreatedPayloadV1{
			NFTID:          item.ID,
			Name:           item.Name,
			Theme:          item.Theme,
			CreatorAddress: item.CreatorAddress,
			FreeGeneration: freeGeneration,
			Confirmed:      confirmed,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCollectibleListedEvent creates an event for an item entering the
// marketplace pool
func NewCollectibleListedEvent(item *domain.LootItem, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectibleListed,
		Payload: domain.CollectibleListedPayloadV1{
			NFTID:        item.ID,
			Name:         item.Name,
			Price:        price,
			OwnerAddress: item.OwnerAddress,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCollectiblePurchasedEvent creates an event for a completed purchase
func NewCollectiblePurchasedEvent(item *domain.LootItem, buyerAddress string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectiblePurchased,
		Payload: domain.CollectiblePurchasedPayloadV1{
			NFTID:        item.ID,
			Name:         item.Name,
			BuyerAddress: buyerAddress,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCollectionClearedEvent creates an event for a wiped collection mirror
func NewCollectionClearedEvent(walletAddress string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectionCleared,
		Payload: domain.CollectionClearedPayloadV1{
			WalletAddress: walletAddress,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even when earlier ones fail.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
