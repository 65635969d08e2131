//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

const smokeWallet = "0x1234567890abcdef1234567890abcdef12345678"

type GenerationStatusResponse struct {
	WalletAddress      string `json:"wallet_address"`
	GenerationsUsed    int    `json:"generations_used"`
	NFTGenerationLimit int    `json:"nft_generation_limit"`
	CanGenerateForFree bool   `json:"can_generate_for_free"`
	GenerationsLeft    int    `json:"generations_left"`
}

func TestGenerationStatus(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/generation/status?wallet_address="+smokeWallet, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var status GenerationStatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if status.WalletAddress != smokeWallet {
		t.Errorf("Expected wallet %s, got %s", smokeWallet, status.WalletAddress)
	}

	if status.NFTGenerationLimit <= 0 {
		t.Errorf("Expected positive generation limit, got %d", status.NFTGenerationLimit)
	}

	if status.GenerationsUsed+status.GenerationsLeft != status.NFTGenerationLimit {
		t.Errorf("Used (%d) + left (%d) should equal limit (%d)",
			status.GenerationsUsed, status.GenerationsLeft, status.NFTGenerationLimit)
	}
}

func TestGenerationStatus_MissingWallet(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/generation/status", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestMarketplaceListings(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/marketplace", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var listings struct {
		Items []json.RawMessage `json:"items"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal(body, &listings); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if listings.Count != len(listings.Items) {
		t.Errorf("Count %d does not match items length %d", listings.Count, len(listings.Items))
	}
}

func TestBoxPreview(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/lootbox/preview", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var preview struct {
		ImageRef string `json:"image_ref"`
		Theme    string `json:"theme"`
	}
	if err := json.Unmarshal(body, &preview); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if preview.ImageRef == "" {
		t.Error("Expected a preview image ref")
	}

	if preview.Theme == "" {
		t.Error("Expected a preview theme")
	}
}

func TestUnauthorizedWithoutAPIKey(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/marketplace", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
