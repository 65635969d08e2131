package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/logger"
	"github.com/voidlabz/lootvault/internal/naming"
)

// ErrInvalidResponse is returned when the upstream answers 2xx but the
// payload has no usable content.
var ErrInvalidResponse = errors.New("invalid artifact response")

// Config holds the upstream AI settings
type Config struct {
	BaseURL        string
	APIKey         string
	ImageModel     string
	TextModel      string
	ResponseFormat string // "b64_json" or "url"
	Timeout        time.Duration
}

// Client generates collectible artwork and flavor text from a theme.
// Implements Generator.
type Client struct {
	baseURL        string
	apiKey         string
	imageModel     string
	textModel      string
	responseFormat string
	httpClient     *http.Client
}

// Generator is the surface consumers depend on
type Generator interface {
	Generate(ctx context.Context, theme string) (*domain.Artifact, error)
}

// NewClient creates a new artifact client, applying defaults for every
// unset field except the API key.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("artifact api key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	imageModel := strings.TrimSpace(cfg.ImageModel)
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	textModel := strings.TrimSpace(cfg.TextModel)
	if textModel == "" {
		textModel = defaultTextModel
	}
	responseFormat := strings.ToLower(strings.TrimSpace(cfg.ResponseFormat))
	if responseFormat != "url" && responseFormat != "b64_json" {
		responseFormat = defaultResponseFormat
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		imageModel:     imageModel,
		textModel:      textModel,
		responseFormat: responseFormat,
		httpClient:     &http.Client{Timeout: timeout},
	}, nil
}

// Generate produces the artwork and flavor text for a theme. Artwork
// failure aborts the generation; flavor text failure falls back to a
// canned line so one flaky call does not waste the artwork.
func (c *Client) Generate(ctx context.Context, theme string) (*domain.Artifact, error) {
	imageRef, err := c.generateImage(ctx, theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArtifactGeneration, err)
	}

	flavorText, err := c.generateFlavorText(ctx, theme)
	if err != nil {
		logger.FromContext(ctx).Warn("flavor text generation failed, using fallback",
			"theme", theme, "error", err)
		flavorText = FallbackFlavorText
	}

	return &domain.Artifact{
		ImageRef:   imageRef,
		FlavorText: flavorText,
	}, nil
}

func (c *Client) generateImage(ctx context.Context, theme string) (string, error) {
	body := map[string]any{
		"model":           c.imageModel,
		"prompt":          imagePrompt(theme),
		"n":               1,
		"size":            defaultImageSize,
		"response_format": c.responseFormat,
	}
	raw, err := c.doJSON(ctx, imageGenerationPath, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
			URL     string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", ErrInvalidResponse
	}
	if b64 := strings.TrimSpace(resp.Data[0].B64JSON); b64 != "" {
		return "data:image/png;base64," + b64, nil
	}
	if url := strings.TrimSpace(resp.Data[0].URL); url != "" {
		return url, nil
	}
	return "", ErrInvalidResponse
}

func (c *Client) generateFlavorText(ctx context.Context, theme string) (string, error) {
	body := map[string]any{
		"model": c.textModel,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You write collectible card flavor text. One or two sentences, evocative, no markdown, no quotes.",
			},
			{
				"role":    "user",
				"content": fmt.Sprintf("Write flavor text for a fantasy collectible called %q.", naming.DisplayName(theme)),
			},
		},
		"temperature": 0.9,
		"max_tokens":  120,
	}
	raw, err := c.doJSON(ctx, chatCompletionsPath, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrInvalidResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrInvalidResponse
	}
	return strings.Trim(content, `"`), nil
}

func (c *Client) doJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("artifact request failed, status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

// imagePrompt keeps the house art direction consistent across drops.
func imagePrompt(theme string) string {
	return fmt.Sprintf(
		"A %s, vibrant purples and electric blues. High fantasy digital art, a single %s centered on a dark background.",
		strings.ToLower(strings.TrimSpace(theme)),
		naming.StyleHint(theme),
	)
}
