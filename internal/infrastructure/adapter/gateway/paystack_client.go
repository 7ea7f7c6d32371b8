package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
)

const defaultBaseURL = "https://api.paystack.co"

// ErrMissingSecretKey is returned when no gateway secret key is configured
var ErrMissingSecretKey = errors.New("payment gateway secret key is not configured")

// Client talks to a Paystack-compatible hosted checkout API
type Client struct {
	baseURL     string
	callbackURL string
	httpClient  *http.Client
}

// NewClient creates a gateway client
func NewClient(cfg config.GatewayConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		callbackURL: cfg.CallbackURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Initialize opens a hosted checkout and returns its authorization URL
func (c *Client) Initialize(ctx context.Context, secretKey, email string, amount int64, currency, reference string) (string, error) {
	if secretKey == "" {
		return "", ErrMissingSecretKey
	}

	body, err := json.Marshal(initializeRequest{
		Email:       email,
		Amount:      amount,
		Currency:    currency,
		Reference:   reference,
		CallbackURL: c.callbackURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp envelope[initializeData]
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", secretKey, body, &resp); err != nil {
		return "", err
	}
	if !resp.Status || resp.Data == nil || resp.Data.AuthorizationURL == "" {
		return "", fmt.Errorf("gateway rejected initialize: %s", resp.Message)
	}
	return resp.Data.AuthorizationURL, nil
}

// Verify fetches the current state of a reference
func (c *Client) Verify(ctx context.Context, secretKey, reference string) (*external.Verification, error) {
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	var resp envelope[verifyData]
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, secretKey, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Status || resp.Data == nil {
		return nil, fmt.Errorf("gateway rejected verify: %s", resp.Message)
	}

	return &external.Verification{
		Reference: resp.Data.Reference,
		Status:    resp.Data.Status,
		Amount:    resp.Data.Amount,
		Currency:  resp.Data.Currency,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path, secretKey string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gateway request failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
