package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voidlabz/lootvault/internal/collection"
	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/event"
)

func ownedItem(owner string) domain.LootItem {
	return domain.LootItem{
		ID:           uuid.New().String(),
		Name:         "Ancient Relic",
		ImageRef:     "data:image/png;base64,dGVzdA==",
		CreatedAt:    time.Now().UTC(),
		OwnerAddress: owner,
	}
}

func TestHandleGetCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("returns owned items", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		item := ownedItem(testAddr)
		require.NoError(t, store.Add(ctx, item))

		req := httptest.NewRequest(http.MethodGet, "/collection", nil)
		rec := httptest.NewRecorder()
		HandleGetCollection(store)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CollectionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, item.ID, resp.Items[0].ID)
	})

	t.Run("filters by holder", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		require.NoError(t, store.Add(ctx, ownedItem(testAddr)))
		require.NoError(t, store.Add(ctx, ownedItem("0xffff567890abcdef1234567890abcdef12345678")))

		req := httptest.NewRequest(http.MethodGet, "/collection?wallet_address="+testAddr, nil)
		rec := httptest.NewRecorder()
		HandleGetCollection(store)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CollectionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		req := httptest.NewRequest(http.MethodGet, "/collection", nil)
		rec := httptest.NewRecorder()
		HandleGetCollection(store)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
	})

	t.Run("malformed filter address is rejected", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		req := httptest.NewRequest(http.MethodGet, "/collection?wallet_address=bogus", nil)
		rec := httptest.NewRecorder()
		HandleGetCollection(store)(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListItem(t *testing.T) {
	ctx := context.Background()

	t.Run("lists an owned item", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		item := ownedItem(testAddr)
		require.NoError(t, store.Add(ctx, item))

		marketSvc := new(MockMarketService)
		marketSvc.On("List", mock.Anything, mock.MatchedBy(func(i domain.LootItem) bool {
			return i.ID == item.ID
		}), (*int)(nil)).Return(125, nil)

		body, _ := json.Marshal(ListItemRequest{ItemID: item.ID})
		req := httptest.NewRequest(http.MethodPost, "/collection/list", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		HandleListItem(store, marketSvc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ListItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 125, resp.Price)
	})

	t.Run("forwards the asking price", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		item := ownedItem(testAddr)
		require.NoError(t, store.Add(ctx, item))

		asking := 300
		marketSvc := new(MockMarketService)
		marketSvc.On("List", mock.Anything, mock.Anything, &asking).Return(asking, nil)

		body, _ := json.Marshal(ListItemRequest{ItemID: item.ID, Price: &asking})
		req := httptest.NewRequest(http.MethodPost, "/collection/list", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		HandleListItem(store, marketSvc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		marketSvc.AssertExpectations(t)
	})

	t.Run("asking price outside bounds is rejected", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		item := ownedItem(testAddr)
		require.NoError(t, store.Add(ctx, item))

		asking := 9999
		body, _ := json.Marshal(ListItemRequest{ItemID: item.ID, Price: &asking})
		req := httptest.NewRequest(http.MethodPost, "/collection/list", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		HandleListItem(store, new(MockMarketService))(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unowned item is not found", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		body, _ := json.Marshal(ListItemRequest{ItemID: uuid.New().String()})
		req := httptest.NewRequest(http.MethodPost, "/collection/list", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		HandleListItem(store, new(MockMarketService))(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryBlob())
		body, _ := json.Marshal(ListItemRequest{ItemID: "not-a-uuid"})
		req := httptest.NewRequest(http.MethodPost, "/collection/list", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		HandleListItem(store, new(MockMarketService))(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleClearCollection(t *testing.T) {
	ctx := context.Background()
	store := collection.NewStore(collection.NewMemoryBlob())
	require.NoError(t, store.Add(ctx, ownedItem(testAddr)))

	bus := event.NewMemoryBus()
	var cleared []event.Event
	bus.Subscribe(event.CollectionCleared, func(ctx context.Context, e event.Event) error {
		cleared = append(cleared, e)
		return nil
	})

	req := httptest.NewRequest(http.MethodDelete, "/collection?wallet_address="+testAddr, nil)
	rec := httptest.NewRecorder()
	HandleClearCollection(store, bus)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Owned(ctx, ""))
	require.Len(t, cleared, 1)
}
