package schema

// SchemaSQL contains the full database schema initialization script.
// The same statements live under migrations/ for goose-managed deployments;
// this constant backs test containers and first-run bootstrap.
const SchemaSQL = `
-- Generation Ledger
-- One row per wallet address, materialized on first recorded generation.
-- generations_used is monotonically non-decreasing and never exceeds
-- nft_generation_limit through the conditional-increment path.
CREATE TABLE IF NOT EXISTS user_generations (
    wallet_address VARCHAR(64) PRIMARY KEY,
    generations_used INTEGER NOT NULL DEFAULT 0 CHECK (generations_used >= 0),
    nft_generation_limit INTEGER NOT NULL DEFAULT 3 CHECK (nft_generation_limit >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Collectible Documents (system of record for audit/history)
-- Written once per successful generation; client-side transfers do not
-- propagate back here.
CREATE TABLE IF NOT EXISTS collectibles (
    nft_id UUID PRIMARY KEY,
    name VARCHAR(200) NOT NULL,
    flavor_text TEXT NOT NULL DEFAULT '',
    image_ref TEXT NOT NULL,
    theme VARCHAR(100) NOT NULL DEFAULT '',
    owner_address VARCHAR(64),
    creator_address VARCHAR(64),
    creator_name VARCHAR(200),
    price INTEGER,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_collectibles_creator ON collectibles (creator_address, created_at DESC);
`
