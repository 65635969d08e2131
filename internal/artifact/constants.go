package artifact

import "time"

const (
	defaultBaseURL        = "https://api.openai.com"
	defaultImageModel     = "dall-e-3"
	defaultTextModel      = "gpt-4o-mini"
	defaultResponseFormat = "b64_json"
	defaultTimeout        = 60 * time.Second
	defaultImageSize      = "1024x1024"

	imageGenerationPath = "/v1/images/generations"
	chatCompletionsPath = "/v1/chat/completions"

	// FallbackFlavorText is used when the copywriter call fails; the
	// image alone is enough to mint a collectible.
	FallbackFlavorText = "A mysterious artifact from the vault. Its story is still being written."
)
