// Package client is a small Go client for the dataset publishing API. It
// covers the publisher workflow end to end: authenticate, create a draft,
// allocate slots, upload bytes, publish, and read results back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the API client
type Config struct {
	// BaseURL is the base URL of the API server
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    30 * time.Second,
	}
}

// Client talks to the publishing API. Login or SetToken must be called
// before any authenticated method.
type Client struct {
	config *Config
	client *http.Client
	token  string
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int         `json:"-"`
	Message    string      `json:"error"`
	Errors     interface{} `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// User is the API's user representation.
type User struct {
	ID    string `json:"id"`
	OrgID string `json:"org_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Signup registers a new account and installs its session token.
func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.post(ctx, c.config.BaseURL+"/api/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp.User, nil
}

// Login authenticates and installs the session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.post(ctx, c.config.BaseURL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp.User, nil
}

// Logout tells the server the session is done and drops the local token.
func (c *Client) Logout(ctx context.Context) error {
	var resp struct {
		Ok bool `json:"ok"`
	}
	if err := c.post(ctx, c.config.BaseURL+"/api/auth/logout", nil, &resp); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Dataset is the API's dataset representation.
type Dataset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// CreateDataset creates a draft dataset.
func (c *Client) CreateDataset(ctx context.Context, name, description string, tags []string) (*Dataset, error) {
	var resp struct {
		Dataset *Dataset `json:"dataset"`
	}
	err := c.post(ctx, c.config.BaseURL+"/api/datasets", map[string]interface{}{
		"name":        name,
		"description": description,
		"tags":        tags,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Dataset, nil
}

// ListDatasets returns the datasets visible to the caller.
func (c *Client) ListDatasets(ctx context.Context) ([]*Dataset, error) {
	var resp struct {
		Datasets []*Dataset `json:"datasets"`
	}
	if err := c.get(ctx, c.config.BaseURL+"/api/datasets", &resp); err != nil {
		return nil, err
	}
	return resp.Datasets, nil
}

// AssetSpec describes one file to allocate an upload slot for.
type AssetSpec struct {
	Filename    string `json:"filename"`
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	ByteSize    int64  `json:"byte_size"`
}

// AssetSlot is one allocated slot, in request order.
type AssetSlot struct {
	AssetID    string `json:"asset_id"`
	UploadURL  string `json:"upload_url"`
	StorageKey string `json:"storage_key"`
}

// AllocateAssets requests upload slots for a batch of files.
func (c *Client) AllocateAssets(ctx context.Context, datasetID string, files []AssetSpec) ([]AssetSlot, error) {
	if len(files) == 0 {
		return nil, errors.New("at least one file spec is required")
	}
	var resp struct {
		Assets []AssetSlot `json:"assets"`
	}
	endpoint := fmt.Sprintf("%s/api/datasets/%s/assets", c.config.BaseURL, datasetID)
	if err := c.post(ctx, endpoint, map[string]interface{}{"files": files}, &resp); err != nil {
		return nil, err
	}
	return resp.Assets, nil
}

// UploadAsset PUTs the raw bytes to a slot's upload URL. The capability
// token embedded in the URL authorizes the write, so no session is needed.
func (c *Client) UploadAsset(ctx context.Context, uploadURL string, data []byte) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/octet-stream")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	return c.checkStatus(httpResp)
}

// ManifestItem is one entry in a publish or append manifest.
type ManifestItem struct {
	Type        string                 `json:"type"`
	Title       string                 `json:"title,omitempty"`
	Summary     string                 `json:"summary,omitempty"`
	Payload     map[string]interface{} `json:"payload"`
	Annotations []ManifestAnnotation   `json:"annotations,omitempty"`
}

type ManifestAnnotation struct {
	Schema string                 `json:"schema"`
	Data   map[string]interface{} `json:"data"`
}

// Publish validates the manifest and promotes the draft to published.
func (c *Client) Publish(ctx context.Context, datasetID string, items []ManifestItem) error {
	endpoint := fmt.Sprintf("%s/api/datasets/%s/publish", c.config.BaseURL, datasetID)
	return c.post(ctx, endpoint, map[string]interface{}{"items": items}, &struct{}{})
}

// Append adds items to an already published dataset.
func (c *Client) Append(ctx context.Context, datasetID string, items []ManifestItem) error {
	endpoint := fmt.Sprintf("%s/api/datasets/%s/append", c.config.BaseURL, datasetID)
	return c.post(ctx, endpoint, map[string]interface{}{"items": items}, &struct{}{})
}

// Item is the API's item representation.
type Item struct {
	ID        string                 `json:"id"`
	DatasetID string                 `json:"dataset_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Summary   string                 `json:"summary"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// ItemPage is one page of items plus the cursor for the next page.
type ItemPage struct {
	Items      []*Item `json:"items"`
	NextCursor string  `json:"next_cursor"`
}

// ListItems pages a dataset's items. Pass the previous page's NextCursor to
// continue; an empty cursor starts from the newest item.
func (c *Client) ListItems(ctx context.Context, datasetID, cursor string) (*ItemPage, error) {
	endpoint := fmt.Sprintf("%s/api/datasets/%s/items", c.config.BaseURL, datasetID)
	if cursor != "" {
		endpoint += "?cursor=" + cursor
	}
	var page ItemPage
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SignedURL is a short-lived download link for one asset.
type SignedURL struct {
	AssetID   string `json:"asset_id"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// SignAssetURL mints a download URL for an asset the caller may see.
func (c *Client) SignAssetURL(ctx context.Context, assetID string) (*SignedURL, error) {
	var resp struct {
		SignedURL *SignedURL `json:"signed_url"`
	}
	endpoint := fmt.Sprintf("%s/api/assets/%s/url", c.config.BaseURL, assetID)
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.SignedURL, nil
}

// post performs a POST request and unmarshals the response
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := c.checkStatus(httpResp); err != nil {
		return err
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// get performs a GET request and unmarshals the response
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := c.checkStatus(httpResp); err != nil {
		return err
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("request failed with status code %d", resp.StatusCode),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}
