package handler

import (
	"fmt"
	"net/http"

	"github.com/voidlabz/lootvault/internal/ledger"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/wallet"
)

// GenerationStatusResponse is the free-tier standing for one address
type GenerationStatusResponse struct {
	WalletAddress      string `json:"wallet_address"`
	GenerationsUsed    int    `json:"generations_used"`
	NFTGenerationLimit int    `json:"nft_generation_limit"`
	CanGenerateForFree bool   `json:"can_generate_for_free"`
	GenerationsLeft    int    `json:"generations_left"`
}

// HandleGenerationStatus returns the free-tier generation standing for an address
// @Summary Get generation status
// @Description Returns how many free generations an address has used and whether another free one is available
// @Tags generation
// @Produce json
// @Param wallet_address query string true "Wallet address"
// @Success 200 {object} GenerationStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /generation/status [get]
func HandleGenerationStatus(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		address := r.URL.Query().Get("wallet_address")
		if address == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "wallet_address"))
			return
		}
		if err := wallet.ValidateAddress(address); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		address = wallet.NormalizeAddress(address)

		status, err := svc.GetStatus(r.Context(), address)
		if err != nil {
			log.Error("Failed to get generation status", "error", err, "walletAddress", address)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		respondJSON(w, http.StatusOK, GenerationStatusResponse{
			WalletAddress:      status.WalletAddress,
			GenerationsUsed:    status.GenerationsUsed,
			NFTGenerationLimit: status.NFTGenerationLimit,
			CanGenerateForFree: status.CanGenerateForFree,
			GenerationsLeft:    status.GenerationsLeft(),
		})
	}
}
