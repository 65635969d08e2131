package handler

import (
	"encoding/json"
	"net/http"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/market"
	"github.com/voidlabz/lootvault/internal/wallet"
)

// ListingsResponse is everything currently for sale
type ListingsResponse struct {
	Items []domain.LootItem `json:"items"`
	Count int               `json:"count"`
}

// HandleGetListings returns the marketplace pool, newest first
// @Summary Get marketplace listings
// @Description Returns every collectible currently offered for sale
// @Tags marketplace
// @Produce json
// @Success 200 {object} ListingsResponse
// @Router /marketplace [get]
func HandleGetListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Listings(r.Context())
		if items == nil {
			items = []domain.LootItem{}
		}
		respondJSON(w, http.StatusOK, ListingsResponse{Items: items, Count: len(items)})
	}
}

// BuyItemRequest is the body for buying a listed item
type BuyItemRequest struct {
	ItemID       string `json:"item_id" validate:"required,uuid4"`
	BuyerAddress string `json:"buyer_address" validate:"required,wallet_address"`
}

// HandleBuyItem transfers a listed item to the buyer
// @Summary Buy a listed item
// @Description Moves the item from the marketplace to the buyer's collection and clears its price
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body BuyItemRequest true "Purchase details"
// @Success 200 {object} domain.LootItem
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /marketplace/buy [post]
func HandleBuyItem(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode buy item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid buy item request", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		bought, err := svc.Buy(r.Context(), req.ItemID, wallet.NormalizeAddress(req.BuyerAddress))
		if err != nil {
			log.Warn("Failed to buy item", "error", err, "itemID", req.ItemID)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		respondJSON(w, http.StatusOK, bought)
	}
}
