package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/logger"
)

// Store is the client-facing mirror of a user's owned and listed
// collectibles. It is a cache over the durable document store, not the
// system of record: ownership moves here do not propagate back to the
// audit documents. Single-process only; the mutex serializes sessions
// sharing one store, nothing coordinates separate processes.
type Store struct {
	mu   sync.Mutex
	blob Blob
}

// NewStore creates a collection store over the given blob
func NewStore(blob Blob) *Store {
	return &Store{blob: blob}
}

// Owned returns the owned collectibles, newest first. When filterAddress is
// non-empty, only items held by that address or with no recorded holder are
// returned.
func (s *Store) Owned(ctx context.Context, filterAddress string) []domain.LootItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, KeyOwned)
	if filterAddress != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.OwnerAddress == filterAddress || item.OwnerAddress == "" {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// Listed returns the collectibles currently offered for sale, newest first
func (s *Store) Listed(ctx context.Context) []domain.LootItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, KeyListed)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// Add inserts the item at the front of the owned set. Idempotent by id: a
// duplicate leaves the set unchanged.
func (s *Store) Add(ctx context.Context, item domain.LootItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.load(ctx, KeyOwned)
	for _, existing := range owned {
		if existing.ID == item.ID {
			return nil
		}
	}
	owned = append([]domain.LootItem{item}, owned...)
	return s.save(KeyOwned, owned)
}

// ListForSale moves the item from the owned set to the listed set with the
// given price. The two steps never leave the item in both sets.
func (s *Store) ListForSale(ctx context.Context, item domain.LootItem, price int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.load(ctx, KeyOwned)
	remaining, removed := removeByID(owned, item.ID)
	if !removed {
		logger.FromContext(ctx).Warn("listing an item not in the owned set",
			"itemID", item.ID)
	}
	if err := s.save(KeyOwned, remaining); err != nil {
		return err
	}

	item.Price = &price
	listed := s.load(ctx, KeyListed)
	listed, _ = removeByID(listed, item.ID)
	listed = append([]domain.LootItem{item}, listed...)
	return s.save(KeyListed, listed)
}

// Buy moves a listed item to the buyer's owned set, clearing its price.
// Returns nil when the item is no longer listed; both sets are then left
// unchanged.
func (s *Store) Buy(ctx context.Context, itemID, buyerAddress string) (*domain.LootItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listed := s.load(ctx, KeyListed)
	var bought *domain.LootItem
	remaining := make([]domain.LootItem, 0, len(listed))
	for _, item := range listed {
		if item.ID == itemID && bought == nil {
			purchased := item
			bought = &purchased
			continue
		}
		remaining = append(remaining, item)
	}
	if bought == nil {
		return nil, nil
	}

	bought.OwnerAddress = buyerAddress
	bought.Price = nil

	if err := s.save(KeyListed, remaining); err != nil {
		return nil, err
	}

	owned := s.load(ctx, KeyOwned)
	deduped, hadStale := removeByID(owned, itemID)
	if hadStale {
		logger.FromContext(ctx).Warn("bought item already present in owned set, overwriting",
			"itemID", itemID)
	}
	owned = append([]domain.LootItem{*bought}, deduped...)
	if err := s.save(KeyOwned, owned); err != nil {
		return nil, err
	}
	return bought, nil
}

// ClearAll empties both sets unconditionally. The durable documents are
// untouched.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blob.Delete(KeyOwned); err != nil {
		return err
	}
	return s.blob.Delete(KeyListed)
}

// load reads and decodes one sequence. A corrupted blob is discarded and
// treated as empty so one bad write cannot wedge the whole collection.
func (s *Store) load(ctx context.Context, key string) []domain.LootItem {
	data, err := s.blob.Get(key)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to read collection blob, treating as empty",
			"key", key, "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var items []domain.LootItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.FromContext(ctx).Warn("corrupted collection blob discarded",
			"key", key, "error", err)
		if delErr := s.blob.Delete(key); delErr != nil {
			logger.FromContext(ctx).Warn("failed to discard corrupted blob",
				"key", key, "error", delErr)
		}
		return nil
	}
	return items
}

func (s *Store) save(key string, items []domain.LootItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeBlobFailed, key, err)
	}
	return s.blob.Put(key, data)
}

func removeByID(items []domain.LootItem, id string) ([]domain.LootItem, bool) {
	remaining := make([]domain.LootItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, item)
	}
	return remaining, removed
}
