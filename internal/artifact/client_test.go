package artifact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabz/lootvault/internal/domain"
)

func newTestServer(t *testing.T, imageStatus int, imageBody any, chatStatus int, chatBody any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case imageGenerationPath:
			w.WriteHeader(imageStatus)
			_ = json.NewEncoder(w).Encode(imageBody)
		case chatCompletionsPath:
			w.WriteHeader(chatStatus)
			_ = json.NewEncoder(w).Encode(chatBody)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func imageResponse(b64, url string) map[string]any {
	return map[string]any{
		"data": []map[string]string{{"b64_json": b64, "url": url}},
	}
}

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewClient(Config{})
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewClient(Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.Equal(t, defaultBaseURL, c.baseURL)
		assert.Equal(t, defaultImageModel, c.imageModel)
		assert.Equal(t, defaultResponseFormat, c.responseFormat)
	})

	t.Run("rejects unknown response format", func(t *testing.T) {
		c, err := NewClient(Config{APIKey: "test-key", ResponseFormat: "jpeg"})
		require.NoError(t, err)
		assert.Equal(t, defaultResponseFormat, c.responseFormat)
	})
}

func TestClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns data uri and flavor text", func(t *testing.T) {
		srv := newTestServer(t,
			http.StatusOK, imageResponse("aGVsbG8=", ""),
			http.StatusOK, chatResponse("It glows with forgotten starlight."))
		defer srv.Close()

		c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		art, err := c.Generate(ctx, "Crystal Dragon Egg")
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,aGVsbG8=", art.ImageRef)
		assert.Equal(t, "It glows with forgotten starlight.", art.FlavorText)
	})

	t.Run("passes through hosted url", func(t *testing.T) {
		srv := newTestServer(t,
			http.StatusOK, imageResponse("", "https://img.example/loot.png"),
			http.StatusOK, chatResponse("Shiny."))
		defer srv.Close()

		c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, ResponseFormat: "url"})
		require.NoError(t, err)

		art, err := c.Generate(ctx, "Phoenix Feather")
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/loot.png", art.ImageRef)
	})

	t.Run("image failure aborts generation", func(t *testing.T) {
		srv := newTestServer(t,
			http.StatusInternalServerError, map[string]string{"error": "overloaded"},
			http.StatusOK, chatResponse("unused"))
		defer srv.Close()

		c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Generate(ctx, "Phoenix Feather")
		assert.ErrorIs(t, err, domain.ErrArtifactGeneration)
	})

	t.Run("empty image payload aborts generation", func(t *testing.T) {
		srv := newTestServer(t,
			http.StatusOK, map[string]any{"data": []any{}},
			http.StatusOK, chatResponse("unused"))
		defer srv.Close()

		c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Generate(ctx, "Phoenix Feather")
		assert.ErrorIs(t, err, domain.ErrArtifactGeneration)
	})

	t.Run("flavor text failure falls back", func(t *testing.T) {
		srv := newTestServer(t,
			http.StatusOK, imageResponse("aGVsbG8=", ""),
			http.StatusBadGateway, map[string]string{"error": "down"})
		defer srv.Close()

		c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		art, err := c.Generate(ctx, "Phoenix Feather")
		require.NoError(t, err)
		assert.Equal(t, FallbackFlavorText, art.FlavorText)
	})
}
