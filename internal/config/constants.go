package config

// Default values applied when the corresponding env var is unset
const (
	DefaultServiceName = "lootvault"
	DefaultPort        = 8080

	// Free generations per wallet address before payment is required
	DefaultGenerationLimit = 3

	// Upper bound on a single artifact-generation round trip
	DefaultArtifactTimeoutSeconds = 60

	// Connection pool ceiling for the postgres pool
	DefaultDBMaxConns = 10
)
