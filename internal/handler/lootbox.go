package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/voidlabz/lootvault/internal/collection"
	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/ledger"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/lootbox"
	"github.com/voidlabz/lootvault/internal/wallet"
)

// OpenBoxRequest is the body for opening a loot box
type OpenBoxRequest struct {
	WalletAddress    string `json:"wallet_address" validate:"required,wallet_address"`
	DisplayName      string `json:"display_name" validate:"max=100,excludesall=\x00\n\r\t"`
	Theme            string `json:"theme,omitempty" validate:"max=100,excludesall=\x00\n\r\t"`
	PaymentConfirmed bool   `json:"payment_confirmed"`
	PaymentTx        string `json:"payment_tx,omitempty" validate:"max=120"`
}

// OpenBoxResponse carries the minted item and its persistence state
type OpenBoxResponse struct {
	Item           domain.LootItem `json:"item"`
	Confirmed      bool            `json:"confirmed"`
	FreeGeneration bool            `json:"free_generation"`
}

// HandleOpenBox runs the full box opening workflow
// @Summary Open a loot box
// @Description Generates a collectible for the address. Free while the quota lasts; afterwards a confirmed payment is required.
// @Tags lootbox
// @Accept json
// @Produce json
// @Param request body OpenBoxRequest true "Opening details"
// @Success 200 {object} OpenBoxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /lootbox/open [post]
func HandleOpenBox(boxSvc lootbox.Service, ledgerSvc ledger.Service, store *collection.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenBoxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode open box request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid open box request", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		address := wallet.NormalizeAddress(req.WalletAddress)

		// Decide the tier before generating. A ledger outage never grants
		// a free generation; it forces the paid path instead.
		isFree := false
		status, err := ledgerSvc.GetStatus(r.Context(), address)
		switch {
		case err == nil:
			isFree = status.CanGenerateForFree
		case errors.Is(err, domain.ErrStatusUnavailable):
			log.Warn("generation status unavailable, forcing paid path",
				"walletAddress", address, "error", err)
		default:
			log.Error("Failed to check generation status", "error", err)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		// A payment reference counts as confirmation; no on-chain
		// validation happens here.
		if !isFree && !req.PaymentConfirmed && req.PaymentTx == "" {
			code, msg := mapServiceErrorToUserMessage(domain.ErrFreeQuotaExhausted)
			respondError(w, code, msg)
			return
		}
		if req.PaymentTx != "" {
			log.Info("payment reference attached", "walletAddress", address, "paymentTx", req.PaymentTx)
		}

		result, err := boxSvc.OpenBox(r.Context(), lootbox.OpenRequest{
			WalletAddress:  address,
			DisplayName:    req.DisplayName,
			Theme:          req.Theme,
			FreeGeneration: isFree,
		})
		if err != nil {
			log.Error("Failed to open loot box", "error", err, "walletAddress", address)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		// Mirror the item into the local collection so it shows up
		// immediately; the durable documents stay authoritative for audit.
		if err := store.Add(r.Context(), result.Item); err != nil {
			log.Warn("Failed to mirror new item into collection", "error", err, "itemID", result.Item.ID)
		}

		respondJSON(w, http.StatusOK, OpenBoxResponse{
			Item:           result.Item,
			Confirmed:      result.Confirmed,
			FreeGeneration: isFree,
		})
	}
}

// HandleBoxPreview returns decorative art for an unopened box
// @Summary Preview a loot box
// @Description Returns box art for the next unopened box. Falls back to a placeholder when generation fails.
// @Tags lootbox
// @Produce json
// @Success 200 {object} lootbox.BoxPreview
// @Router /lootbox/preview [get]
func HandleBoxPreview(boxSvc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preview, err := boxSvc.PreviewBox(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to generate box preview", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgPreviewFailed)
			return
		}
		respondJSON(w, http.StatusOK, preview)
	}
}
