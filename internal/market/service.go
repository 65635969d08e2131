package market

import (
	"context"
	"fmt"

	"github.com/voidlabz/lootvault/internal/collection"
	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/event"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/utils"
)

// Service is the simulated marketplace: listing moves an item from the
// owned set into the listed pool at a random price, buying moves it back to
// the buyer. There is no reserved state; a buy is a single check-and-move.
type Service interface {
	// Listings returns everything currently for sale, newest first
	Listings(ctx context.Context) []domain.LootItem

	// List offers an owned item for sale and returns the assigned price.
	// A nil askingPrice draws a simulated price; an explicit one must fall
	// within the market bounds.
	List(ctx context.Context, item domain.LootItem, askingPrice *int) (int, error)

	// Buy transfers a listed item to the buyer. Returns
	// domain.ErrPurchaseUnavailable when the item is no longer listed.
	Buy(ctx context.Context, itemID, buyerAddress string) (*domain.LootItem, error)
}

type service struct {
	store     *collection.Store
	publisher event.Bus
}

// NewService creates a new marketplace service
func NewService(store *collection.Store, publisher event.Bus) Service {
	return &service{store: store, publisher: publisher}
}

func (s *service) Listings(ctx context.Context) []domain.LootItem {
	return s.store.Listed(ctx)
}

func (s *service) List(ctx context.Context, item domain.LootItem, askingPrice *int) (int, error) {
	price := RandomPrice()
	if askingPrice != nil {
		if *askingPrice < domain.MinListingPrice || *askingPrice > domain.MaxListingPrice {
			return 0, fmt.Errorf("%w: price %d outside [%d, %d]",
				domain.ErrInvalidInput, *askingPrice, domain.MinListingPrice, domain.MaxListingPrice)
		}
		price = *askingPrice
	}
	if err := s.store.ListForSale(ctx, item, price); err != nil {
		return 0, err
	}

	if err := s.publisher.Publish(ctx, event.NewCollectibleListedEvent(&item, price)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish collectible listed event", "error", err)
	}

	logger.FromContext(ctx).Info("collectible listed",
		"itemID", item.ID,
		"price", price)
	return price, nil
}

func (s *service) Buy(ctx context.Context, itemID, buyerAddress string) (*domain.LootItem, error) {
	bought, err := s.store.Buy(ctx, itemID, buyerAddress)
	if err != nil {
		return nil, err
	}
	if bought == nil {
		return nil, domain.ErrPurchaseUnavailable
	}

	if err := s.publisher.Publish(ctx, event.NewCollectiblePurchasedEvent(bought, buyerAddress)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish collectible purchased event", "error", err)
	}

	logger.FromContext(ctx).Info("collectible purchased",
		"itemID", itemID,
		"buyerAddress", buyerAddress)
	return bought, nil
}

// RandomPrice draws a simulated listing price within the market bounds
func RandomPrice() int {
	return utils.RandomInt(domain.MinListingPrice, domain.MaxListingPrice)
}
