package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidlabz/lootvault/internal/domain"
)

// CollectibleRepository implements the durable collectible document store
// for PostgreSQL. Documents are written once per successful generation and
// serve audit/history reads; client-side ownership transfers do not update
// them.
type CollectibleRepository struct {
	db *pgxpool.Pool
}

// NewCollectibleRepository creates a new CollectibleRepository
func NewCollectibleRepository(db *pgxpool.Pool) *CollectibleRepository {
	return &CollectibleRepository{db: db}
}

// Save persists a collectible document keyed by its NFT id
func (r *CollectibleRepository) Save(ctx context.Context, item *domain.LootItem) error {
	query := `
		INSERT INTO collectibles (nft_id, name, flavor_text, image_ref, theme, owner_address, creator_address, creator_name, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.FlavorText,
		item.ImageRef,
		item.Theme,
		nullable(item.OwnerAddress),
		nullable(item.CreatorAddress),
		nullable(item.CreatorName),
		item.Price,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf(ErrMsgSaveCollectibleFailed, err)
	}
	return nil
}

// GetByID returns a collectible document by NFT id
func (r *CollectibleRepository) GetByID(ctx context.Context, nftID string) (*domain.LootItem, error) {
	query := `
		SELECT nft_id, name, flavor_text, image_ref, theme, owner_address, creator_address, creator_name, price, created_at
		FROM collectibles
		WHERE nft_id = $1
	`
	item, err := scanCollectible(r.db.QueryRow(ctx, query, nftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollectibleNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetCollectibleFailed, err)
	}
	return item, nil
}

// ListByCreator returns all documents generated by the address, newest first
func (r *CollectibleRepository) ListByCreator(ctx context.Context, creatorAddress string) ([]domain.LootItem, error) {
	query := `
		SELECT nft_id, name, flavor_text, image_ref, theme, owner_address, creator_address, creator_name, price, created_at
		FROM collectibles
		WHERE creator_address = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, creatorAddress)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCollectiblesFailed, err)
	}
	defer rows.Close()

	var items []domain.LootItem
	for rows.Next() {
		item, err := scanCollectible(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListCollectiblesFailed, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListCollectiblesFailed, err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollectible(row rowScanner) (*domain.LootItem, error) {
	var item domain.LootItem
	var owner, creator, creatorName *string
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.FlavorText,
		&item.ImageRef,
		&item.Theme,
		&owner,
		&creator,
		&creatorName,
		&item.Price,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.OwnerAddress = deref(owner)
	item.CreatorAddress = deref(creator)
	item.CreatorName = deref(creatorName)
	return &item, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
