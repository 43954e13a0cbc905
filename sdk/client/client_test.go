package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	c := NewClient(nil)
	if c.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", c.config.BaseURL)
	}
	if c.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	c = NewClient(customConfig)
	if c.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", c.config.BaseURL)
	}
	if c.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req["email"] != "pub@example.com" {
			t.Errorf("Unexpected email %q", req["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":    true,
			"user":  map[string]string{"id": "u1", "email": "pub@example.com", "role": "publisher"},
			"token": "session-token",
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	user, err := c.Login(context.Background(), "pub@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != "pub@example.com" {
		t.Errorf("Unexpected user email %q", user.Email)
	}
	if c.token != "session-token" {
		t.Errorf("Expected session token to be installed, got %q", c.token)
	}
}

func TestLogoutDropsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/logout" {
			t.Errorf("Expected /api/auth/logout path, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer session-token" {
			t.Errorf("Unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	c.SetToken("session-token")
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if c.token != "" {
		t.Errorf("Expected token to be cleared, got %q", c.token)
	}
}

func TestAllocateAssetsSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Expected bearer token, got %q", got)
		}
		if r.URL.Path != "/api/datasets/ds1/assets" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req struct {
			Files []AssetSpec `json:"files"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Files) != 1 || req.Files[0].ByteSize != 12 {
			t.Errorf("Unexpected file specs: %+v", req.Files)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok": true,
			"assets": []AssetSlot{
				{AssetID: "a1", UploadURL: "http://upload", StorageKey: "org/ds/x_f.png"},
			},
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	c.SetToken("tok")

	slots, err := c.AllocateAssets(context.Background(), "ds1", []AssetSpec{
		{Filename: "f.png", Kind: "image", ContentType: "image/png", ByteSize: 12},
	})
	if err != nil {
		t.Fatalf("AllocateAssets failed: %v", err)
	}
	if len(slots) != 1 || slots[0].AssetID != "a1" {
		t.Errorf("Unexpected slots: %+v", slots)
	}
}

func TestAllocateAssetsRequiresFiles(t *testing.T) {
	c := NewClient(nil)
	if _, err := c.AllocateAssets(context.Background(), "ds1", nil); err == nil {
		t.Error("Expected error for empty file list")
	}
}

func TestPublishSurfacesValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":    false,
			"error": "validation failed",
			"errors": []map[string]string{
				{"path": "items[0].payload", "error_type": "missing_required", "message": "missing key"},
			},
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	c.SetToken("tok")

	err := c.Publish(context.Background(), "ds1", []ManifestItem{
		{Type: "image_pair_compare", Payload: map[string]interface{}{}},
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Errors == nil {
		t.Error("Expected structured errors to be carried")
	}
}

func TestUploadAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Expected PUT request, got %s", r.Method)
		}
		buf := make([]byte, 16)
		n, _ := r.Body.Read(buf)
		if string(buf[:n]) != "hello world!" {
			t.Errorf("Unexpected body %q", buf[:n])
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	c := NewClient(nil)
	if err := c.UploadAsset(context.Background(), server.URL+"/api/assets/a1/upload?token=x", []byte("hello world!")); err != nil {
		t.Fatalf("UploadAsset failed: %v", err)
	}
}

func TestListItemsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		if cursor == "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"ok":          true,
				"items":       []map[string]string{{"id": "i1"}},
				"next_cursor": "c2",
			})
			return
		}
		if cursor != "c2" {
			t.Errorf("Unexpected cursor %q", cursor)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":    true,
			"items": []map[string]string{{"id": "i2"}},
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	c.SetToken("tok")

	page, err := c.ListItems(context.Background(), "ds1", "")
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if page.NextCursor != "c2" {
		t.Errorf("Expected next cursor, got %q", page.NextCursor)
	}

	page, err = c.ListItems(context.Background(), "ds1", page.NextCursor)
	if err != nil {
		t.Fatalf("ListItems page 2 failed: %v", err)
	}
	if page.NextCursor != "" || len(page.Items) != 1 {
		t.Errorf("Unexpected final page: %+v", page)
	}
}
