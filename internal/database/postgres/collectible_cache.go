package postgres

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/voidlabz/lootvault/internal/domain"
)

// CacheSchemaVersion is the current version of the cached entry shape.
// Increment when the cached structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

type cachedCollectibleEntry struct {
	Version  string
	Item     *domain.LootItem
	CachedAt time.Time
}

// CachedCollectibleRepository fronts audit reads with an in-memory LRU.
// Documents are immutable after creation, so entries only expire by TTL or
// eviction; writes pass through and prime the cache.
type CachedCollectibleRepository struct {
	inner *CollectibleRepository
	lru   *expirable.LRU[string, *cachedCollectibleEntry]
}

// NewCachedCollectibleRepository wraps repo with an LRU of the given size and TTL
func NewCachedCollectibleRepository(inner *CollectibleRepository, size int, ttl time.Duration) *CachedCollectibleRepository {
	return &CachedCollectibleRepository{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedCollectibleEntry](size, nil, ttl),
	}
}

// Save persists the document and primes the cache
func (r *CachedCollectibleRepository) Save(ctx context.Context, item *domain.LootItem) error {
	if err := r.inner.Save(ctx, item); err != nil {
		return err
	}
	r.put(item)
	return nil
}

// GetByID returns a document, preferring the cache
func (r *CachedCollectibleRepository) GetByID(ctx context.Context, nftID string) (*domain.LootItem, error) {
	if entry, ok := r.lru.Get(nftID); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Item, nil
		}
		r.lru.Remove(nftID)
	}

	item, err := r.inner.GetByID(ctx, nftID)
	if err != nil {
		return nil, err
	}
	r.put(item)
	return item, nil
}

// ListByCreator always reads through; listings are cheap and rarely hot
func (r *CachedCollectibleRepository) ListByCreator(ctx context.Context, creatorAddress string) ([]domain.LootItem, error) {
	return r.inner.ListByCreator(ctx, creatorAddress)
}

func (r *CachedCollectibleRepository) put(item *domain.LootItem) {
	r.lru.Add(item.ID, &cachedCollectibleEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}
