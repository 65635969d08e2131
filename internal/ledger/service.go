package ledger

import (
	"context"
	"fmt"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/logger"
)

// Service defines the interface for generation ledger operations
type Service interface {
	// GetStatus returns the free-tier standing for a wallet address.
	// Addresses with no recorded generations get a synthesized zero
	// state without materializing a row.
	GetStatus(ctx context.Context, walletAddress string) (*domain.GenerationStatus, error)

	// RecordGeneration counts one completed generation. Paid
	// generations are not counted; the counter only tracks free-tier
	// consumption.
	RecordGeneration(ctx context.Context, walletAddress string, wasFree bool) error
}

// Repository defines the persistence the ledger service needs
type Repository interface {
	GetEntry(ctx context.Context, walletAddress string) (*domain.GenerationEntry, error)
	IncrementGenerations(ctx context.Context, walletAddress string) (*domain.GenerationEntry, bool, error)
	DefaultLimit() int
}

type service struct {
	repo Repository
}

// NewService creates a new ledger service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetStatus(ctx context.Context, walletAddress string) (*domain.GenerationStatus, error) {
	entry, err := s.repo.GetEntry(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStatusUnavailable, err)
	}

	if entry == nil {
		return &domain.GenerationStatus{
			WalletAddress:      walletAddress,
			GenerationsUsed:    0,
			NFTGenerationLimit: s.repo.DefaultLimit(),
			CanGenerateForFree: true,
		}, nil
	}

	return &domain.GenerationStatus{
		WalletAddress:      entry.WalletAddress,
		GenerationsUsed:    entry.GenerationsUsed,
		NFTGenerationLimit: entry.NFTGenerationLimit,
		CanGenerateForFree: entry.GenerationsUsed < entry.NFTGenerationLimit,
	}, nil
}

func (s *service) RecordGeneration(ctx context.Context, walletAddress string, wasFree bool) error {
	if !wasFree {
		return nil
	}

	log := logger.FromContext(ctx)

	entry, counted, err := s.repo.IncrementGenerations(ctx, walletAddress)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	if !counted {
		// A concurrent caller consumed the last free slot between our
		// quota check and this increment. The counter stays capped.
		used := 0
		if entry != nil {
			used = entry.GenerationsUsed
		}
		log.Warn("free generation raced past the quota, not counted",
			"walletAddress", walletAddress,
			"generationsUsed", used)
		return nil
	}

	log.Info("free generation recorded",
		"walletAddress", walletAddress,
		"generationsUsed", entry.GenerationsUsed,
		"limit", entry.NFTGenerationLimit)
	return nil
}
