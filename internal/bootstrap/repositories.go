package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidlabz/lootvault/internal/config"
	"github.com/voidlabz/lootvault/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Ledger      *postgres.LedgerRepository
	Collectible *postgres.CachedCollectibleRepository
}

// InitializeRepositories creates all repository implementations.
// The collectible repository is wrapped in an expiring LRU read cache.
func InitializeRepositories(dbPool *pgxpool.Pool, cfg *config.Config) *Repositories {
	return &Repositories{
		Ledger: postgres.NewLedgerRepository(dbPool, cfg.GenerationLimit),
		Collectible: postgres.NewCachedCollectibleRepository(
			postgres.NewCollectibleRepository(dbPool),
			CollectibleCacheSize,
			CollectibleCacheTTL,
		),
	}
}
