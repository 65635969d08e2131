package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voidlabz/lootvault/internal/domain"
)

func TestHandleGetListings(t *testing.T) {
	t.Run("returns listings", func(t *testing.T) {
		price := 99
		svc := new(MockMarketService)
		svc.On("Listings", mock.Anything).Return([]domain.LootItem{
			{ID: uuid.New().String(), Name: "Data Stream Orb", Price: &price},
		})

		req := httptest.NewRequest(http.MethodGet, "/marketplace", nil)
		rec := httptest.NewRecorder()
		HandleGetListings(svc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ListingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.NotNil(t, resp.Items[0].Price)
		assert.Equal(t, 99, *resp.Items[0].Price)
	})

	t.Run("empty pool is an empty array", func(t *testing.T) {
		svc := new(MockMarketService)
		svc.On("Listings", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/marketplace", nil)
		rec := httptest.NewRecorder()
		HandleGetListings(svc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
	})
}

func TestHandleBuyItem(t *testing.T) {
	itemID := uuid.New().String()

	buyBody := func(t *testing.T, id, buyer string) *bytes.Reader {
		t.Helper()
		body, err := json.Marshal(BuyItemRequest{ItemID: id, BuyerAddress: buyer})
		require.NoError(t, err)
		return bytes.NewReader(body)
	}

	t.Run("transfers the item", func(t *testing.T) {
		svc := new(MockMarketService)
		svc.On("Buy", mock.Anything, itemID, testAddr).Return(&domain.LootItem{
			ID:           itemID,
			OwnerAddress: testAddr,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/marketplace/buy", buyBody(t, itemID, testAddr))
		rec := httptest.NewRecorder()
		HandleBuyItem(svc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var item domain.LootItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, testAddr, item.OwnerAddress)
		assert.Nil(t, item.Price)
	})

	t.Run("already sold maps to conflict", func(t *testing.T) {
		svc := new(MockMarketService)
		svc.On("Buy", mock.Anything, itemID, testAddr).
			Return(nil, domain.ErrPurchaseUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/marketplace/buy", buyBody(t, itemID, testAddr))
		rec := httptest.NewRecorder()
		HandleBuyItem(svc)(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed buyer address is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/marketplace/buy", buyBody(t, itemID, "bogus"))
		rec := httptest.NewRecorder()
		HandleBuyItem(new(MockMarketService))(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetCollectible(t *testing.T) {
	t.Run("returns the document", func(t *testing.T) {
		id := uuid.New().String()
		repo := new(MockCollectibleReader)
		repo.On("GetByID", mock.Anything, id).Return(&domain.LootItem{ID: id, Name: "Pixelated Hero"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/collectibles/"+id, nil)
		rec := httptest.NewRecorder()
		routeWithID(t, HandleGetCollectible(repo), "/collectibles/{id}").ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var item domain.LootItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, id, item.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		id := uuid.New().String()
		repo := new(MockCollectibleReader)
		repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCollectibleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/collectibles/"+id, nil)
		rec := httptest.NewRecorder()
		routeWithID(t, HandleGetCollectible(repo), "/collectibles/{id}").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListCollectibles(t *testing.T) {
	t.Run("returns the creator's documents", func(t *testing.T) {
		repo := new(MockCollectibleReader)
		repo.On("ListByCreator", mock.Anything, testAddr).
			Return([]domain.LootItem{{ID: uuid.New().String(), CreatorAddress: testAddr}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/collectibles?creator="+testAddr, nil)
		rec := httptest.NewRecorder()
		HandleListCollectibles(repo)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CollectiblesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("no documents is an empty array", func(t *testing.T) {
		repo := new(MockCollectibleReader)
		repo.On("ListByCreator", mock.Anything, testAddr).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/collectibles?creator="+testAddr, nil)
		rec := httptest.NewRecorder()
		HandleListCollectibles(repo)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
	})

	t.Run("missing creator param is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/collectibles", nil)
		rec := httptest.NewRecorder()
		HandleListCollectibles(new(MockCollectibleReader))(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
