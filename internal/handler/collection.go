package handler

import (
	"encoding/json"
	"net/http"

	"github.com/voidlabz/lootvault/internal/collection"
	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/event"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/market"
	"github.com/voidlabz/lootvault/internal/wallet"
)

// CollectionResponse is the owned set for one address
type CollectionResponse struct {
	Items []domain.LootItem `json:"items"`
	Count int               `json:"count"`
}

// HandleGetCollection returns the owned collectibles, newest first
// @Summary Get collection
// @Description Returns the local collection mirror, optionally filtered to one holder
// @Tags collection
// @Produce json
// @Param wallet_address query string false "Restrict to this holder (plus unclaimed legacy items)"
// @Success 200 {object} CollectionResponse
// @Failure 400 {object} ErrorResponse
// @Router /collection [get]
func HandleGetCollection(store *collection.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := r.URL.Query().Get("wallet_address")
		if address != "" {
			if err := wallet.ValidateAddress(address); err != nil {
				code, msg := mapServiceErrorToUserMessage(err)
				respondError(w, code, msg)
				return
			}
			address = wallet.NormalizeAddress(address)
		}

		items := store.Owned(r.Context(), address)
		if items == nil {
			items = []domain.LootItem{}
		}
		respondJSON(w, http.StatusOK, CollectionResponse{Items: items, Count: len(items)})
	}
}

// ListItemRequest is the body for putting an owned item up for sale
type ListItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid4"`
	Price  *int   `json:"price,omitempty" validate:"omitempty,min=10,max=500"`
}

// ListItemResponse confirms a listing and its assigned price
type ListItemResponse struct {
	ItemID string `json:"item_id"`
	Price  int    `json:"price"`
}

// HandleListItem moves an owned item into the marketplace pool
// @Summary List item for sale
// @Description Moves an item from the collection to the marketplace at the asking price, or a simulated one when none is given
// @Tags collection
// @Accept json
// @Produce json
// @Param request body ListItemRequest true "Item to list"
// @Success 200 {object} ListItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection/list [post]
func HandleListItem(store *collection.Store, marketSvc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ListItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode list item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid list item request", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		var item *domain.LootItem
		for _, owned := range store.Owned(r.Context(), "") {
			if owned.ID == req.ItemID {
				found := owned
				item = &found
				break
			}
		}
		if item == nil {
			respondError(w, http.StatusNotFound, ErrMsgItemNotOwned)
			return
		}

		price, err := marketSvc.List(r.Context(), *item, req.Price)
		if err != nil {
			log.Error("Failed to list item", "error", err, "itemID", req.ItemID)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		respondJSON(w, http.StatusOK, ListItemResponse{ItemID: req.ItemID, Price: price})
	}
}

// HandleClearCollection wipes both local sets unconditionally
// @Summary Clear collection
// @Description Empties the owned and listed sets. Durable collectible documents are untouched.
// @Tags collection
// @Produce json
// @Param wallet_address query string false "Address performing the wipe, recorded in the event"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /collection [delete]
func HandleClearCollection(store *collection.Store, bus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		address := wallet.NormalizeAddress(r.URL.Query().Get("wallet_address"))

		if err := store.ClearAll(r.Context()); err != nil {
			log.Error("Failed to clear collection", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgClearCollectionFailed)
			return
		}

		if err := bus.Publish(r.Context(), event.NewCollectionClearedEvent(address)); err != nil {
			log.Warn("Failed to publish collection cleared event", "error", err)
		}

		log.Info("collection cleared", "walletAddress", address)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Collection cleared"})
	}
}
