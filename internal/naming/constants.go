package naming

const (
	// FallbackName is used when a theme is empty or whitespace only
	FallbackName = "Mystery Artifact"
	FallbackSlug = "mystery-artifact"
)
