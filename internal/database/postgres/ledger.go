package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidlabz/lootvault/internal/domain"
)

// LedgerRepository implements the generation ledger repository for PostgreSQL
type LedgerRepository struct {
	db           *pgxpool.Pool
	defaultLimit int
}

// NewLedgerRepository creates a new LedgerRepository. defaultLimit is the
// free-tier ceiling applied when a row is first materialized.
func NewLedgerRepository(db *pgxpool.Pool, defaultLimit int) *LedgerRepository {
	if defaultLimit < 0 {
		defaultLimit = domain.DefaultGenerationLimit
	}
	return &LedgerRepository{db: db, defaultLimit: defaultLimit}
}

// GetEntry returns the ledger row for the address, or nil when the address
// has never recorded a generation. Reads never materialize a row.
func (r *LedgerRepository) GetEntry(ctx context.Context, walletAddress string) (*domain.GenerationEntry, error) {
	query := `
		SELECT wallet_address, generations_used, nft_generation_limit, created_at, updated_at
		FROM user_generations
		WHERE wallet_address = $1
	`
	var entry domain.GenerationEntry
	err := r.db.QueryRow(ctx, query, walletAddress).Scan(
		&entry.WalletAddress,
		&entry.GenerationsUsed,
		&entry.NFTGenerationLimit,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetGenerationEntryFailed, err)
	}
	return &entry, nil
}

// IncrementGenerations atomically counts one free generation for the address.
// The check and the increment are a single conditional upsert, so concurrent
// callers can never lose an update or push the counter past the limit.
// Returns the resulting entry and whether the increment was applied; counted
// is false when the address had already consumed its full free tier.
func (r *LedgerRepository) IncrementGenerations(ctx context.Context, walletAddress string) (*domain.GenerationEntry, bool, error) {
	query := `
		INSERT INTO user_generations (wallet_address, generations_used, nft_generation_limit, created_at, updated_at)
		VALUES ($1, 1, $2, NOW(), NOW())
		ON CONFLICT (wallet_address) DO UPDATE
		SET generations_used = user_generations.generations_used + 1,
		    updated_at = NOW()
		WHERE user_generations.generations_used < user_generations.nft_generation_limit
		RETURNING wallet_address, generations_used, nft_generation_limit, created_at, updated_at
	`
	var entry domain.GenerationEntry
	err := r.db.QueryRow(ctx, query, walletAddress, r.defaultLimit).Scan(
		&entry.WalletAddress,
		&entry.GenerationsUsed,
		&entry.NFTGenerationLimit,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conditional update did not fire: the row exists and the
			// counter already reached the limit.
			existing, getErr := r.GetEntry(ctx, walletAddress)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf(ErrMsgIncrementGenerationFailed, err)
	}
	return &entry, true, nil
}

// DefaultLimit returns the configured free-tier ceiling for new addresses.
func (r *LedgerRepository) DefaultLimit() int {
	return r.defaultLimit
}
