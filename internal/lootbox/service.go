package lootbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/event"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/naming"
)

// Generator produces artwork and flavor text for a theme
type Generator interface {
	Generate(ctx context.Context, theme string) (*domain.Artifact, error)
}

// CollectibleRepository persists collectible documents
type CollectibleRepository interface {
	Save(ctx context.Context, item *domain.LootItem) error
}

// LedgerService counts free-tier generations
type LedgerService interface {
	RecordGeneration(ctx context.Context, walletAddress string, wasFree bool) error
}

// OpenRequest describes one box opening. Theme is optional; when empty a
// random theme is drawn.
type OpenRequest struct {
	WalletAddress  string
	DisplayName    string
	Theme          string
	FreeGeneration bool
}

// OpenResult carries the minted item. Confirmed is false when the durable
// write failed; the item is still usable for immediate display and the
// caller decides whether to treat it as a success.
type OpenResult struct {
	Item      domain.LootItem `json:"item"`
	Confirmed bool            `json:"confirmed"`
}

// BoxPreview is the decorative art for an unopened box
type BoxPreview struct {
	ImageRef           string `json:"image_ref"`
	Theme              string `json:"theme"`
	ContentDescription string `json:"content_description"`
}

// Service defines the loot box opening interface
type Service interface {
	OpenBox(ctx context.Context, req OpenRequest) (*OpenResult, error)
	PreviewBox(ctx context.Context) (*BoxPreview, error)
}

type service struct {
	generator Generator
	repo      CollectibleRepository
	ledger    LedgerService
	publisher event.Bus
}

// NewService creates a new loot box service
func NewService(generator Generator, repo CollectibleRepository, ledger LedgerService, publisher event.Bus) Service {
	return &service{
		generator: generator,
		repo:      repo,
		ledger:    ledger,
		publisher: publisher,
	}
}

// OpenBox runs the full generation workflow: draw a theme, generate the
// artifact, mint the item, persist the document, then count the generation.
// Steps run strictly in that order. Artifact failure aborts everything;
// persistence failure returns the item unconfirmed; ledger failure is
// best-effort and never invalidates the item.
func (s *service) OpenBox(ctx context.Context, req OpenRequest) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	theme := req.Theme
	if theme == "" {
		theme = RandomTheme()
	}
	art, err := s.generator.Generate(ctx, theme)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenBoxFailed, err)
	}

	item := domain.LootItem{
		ID:             uuid.New().String(),
		Name:           naming.DisplayName(theme),
		FlavorText:     art.FlavorText,
		ImageRef:       art.ImageRef,
		Theme:          theme,
		CreatedAt:      time.Now().UTC(),
		OwnerAddress:   req.WalletAddress,
		CreatorAddress: req.WalletAddress,
		CreatorName:    req.DisplayName,
	}

	confirmed := true
	if err := s.repo.Save(ctx, &item); err != nil {
		// The item is already minted; hand it back for display and
		// let the caller see it is unconfirmed.
		confirmed = false
		log.Error("collectible document write failed, returning unconfirmed item",
			"itemID", item.ID,
			"walletAddress", req.WalletAddress,
			"error", err)
	}

	if err := s.ledger.RecordGeneration(ctx, req.WalletAddress, req.FreeGeneration); err != nil {
		log.Error("failed to record generation, item stands",
			"itemID", item.ID,
			"walletAddress", req.WalletAddress,
			"error", err)
	}

	if err := s.publisher.Publish(ctx, event.NewCollectibleCreatedEvent(&item, req.FreeGeneration, confirmed)); err != nil {
		log.Warn("failed to publish collectible created event", "error", err)
	}

	log.Info("loot box opened",
		"itemID", item.ID,
		"theme", theme,
		"walletAddress", req.WalletAddress,
		"free", req.FreeGeneration,
		"confirmed", confirmed)

	return &OpenResult{Item: item, Confirmed: confirmed}, nil
}

// PreviewBox generates decorative art for an unopened box. Failure falls
// back to a placeholder instead of erroring; the preview is cosmetic.
func (s *service) PreviewBox(ctx context.Context) (*BoxPreview, error) {
	theme := RandomBoxTheme()
	content := RandomBoxContent()

	prompt := fmt.Sprintf("%s loot box overflowing with %s", theme, content)
	art, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Warn("box preview generation failed, using placeholder",
			"theme", theme, "error", err)
		return &BoxPreview{
			ImageRef:           PlaceholderBoxImage,
			Theme:              theme,
			ContentDescription: content,
		}, nil
	}

	return &BoxPreview{
		ImageRef:           art.ImageRef,
		Theme:              theme,
		ContentDescription: content,
	}, nil
}
