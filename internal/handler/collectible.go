package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/wallet"
)

// CollectibleReader reads durable collectible documents
type CollectibleReader interface {
	GetByID(ctx context.Context, nftID string) (*domain.LootItem, error)
	ListByCreator(ctx context.Context, creatorAddress string) ([]domain.LootItem, error)
}

// HandleGetCollectible returns one durable collectible document
// @Summary Get collectible
// @Description Returns the durable document for a collectible by its id
// @Tags collectibles
// @Produce json
// @Param id path string true "Collectible id"
// @Success 200 {object} domain.LootItem
// @Failure 404 {object} ErrorResponse
// @Router /collectibles/{id} [get]
func HandleGetCollectible(repo CollectibleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "id")
		item, err := repo.GetByID(r.Context(), id)
		if err != nil {
			log.Warn("Failed to get collectible", "error", err, "id", id)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// CollectiblesResponse is a creator's durable documents, newest first
type CollectiblesResponse struct {
	Items []domain.LootItem `json:"items"`
	Count int               `json:"count"`
}

// HandleListCollectibles returns every durable document minted by a creator
// @Summary List collectibles by creator
// @Description Returns the audit trail of documents a creator address has minted, newest first
// @Tags collectibles
// @Produce json
// @Param creator query string true "Creator wallet address"
// @Success 200 {object} CollectiblesResponse
// @Failure 400 {object} ErrorResponse
// @Router /collectibles [get]
func HandleListCollectibles(repo CollectibleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		creator := r.URL.Query().Get("creator")
		if creator == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "creator"))
			return
		}
		if err := wallet.ValidateAddress(creator); err != nil {
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}
		creator = wallet.NormalizeAddress(creator)

		items, err := repo.ListByCreator(r.Context(), creator)
		if err != nil {
			log.Error("Failed to list collectibles", "error", err, "creator", creator)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}
		if items == nil {
			items = []domain.LootItem{}
		}

		respondJSON(w, http.StatusOK, CollectiblesResponse{Items: items, Count: len(items)})
	}
}
