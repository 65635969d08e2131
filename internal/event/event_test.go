package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabz/lootvault/internal/domain"
)

func testItem() *domain.LootItem {
	return &domain.LootItem{
		ID:             "nft-1",
		Name:           "Phoenix Feather",
		Theme:          "Phoenix Feather",
		CreatorAddress: "0x1234567890abcdef1234567890abcdef12345678",
	}
}

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(CollectibleCreated, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	err := bus.Publish(ctx, NewCollectibleCreatedEvent(testItem(), true, true))
	require.NoError(t, err)
	require.Len(t, received, 1)

	payload, err := DecodePayload[domain.CollectibleCreatedPayloadV1](received[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "nft-1", payload.NFTID)
	assert.True(t, payload.FreeGeneration)
	assert.True(t, payload.Confirmed)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewCollectionClearedEvent("0xabc"))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorsAggregate(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(CollectibleListed, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(CollectibleListed, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(ctx, NewCollectibleListedEvent(testItem(), 50))
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "all handlers run even when one fails")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"nft_id":        "nft-2",
		"name":          "Crystal Egg",
		"buyer_address": "0xbeef",
	}
	payload, err := DecodePayload[domain.CollectiblePurchasedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "nft-2", payload.NFTID)
	assert.Equal(t, "0xbeef", payload.BuyerAddress)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
}
