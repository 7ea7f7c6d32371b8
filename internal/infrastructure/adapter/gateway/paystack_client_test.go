package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.GatewayConfig{
		BaseURL:     server.URL,
		CallbackURL: "https://app.example.com/payment/callback",
		Timeout:     time.Second,
	})
}

func TestClient_Initialize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req initializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.Email)
		assert.Equal(t, int64(1500000), req.Amount)
		assert.Equal(t, "NGN", req.Currency)
		assert.Equal(t, "janeexamplecom_1725192000000", req.Reference)
		assert.Equal(t, "https://app.example.com/payment/callback", req.CallbackURL)

		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://checkout.example.com/abc","reference":"janeexamplecom_1725192000000"}}`))
	})

	url, err := client.Initialize(context.Background(), "sk_test", "jane@example.com", 1500000, "NGN", "janeexamplecom_1725192000000")

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/abc", url)
}

func TestClient_Initialize_Errors(t *testing.T) {
	t.Run("missing secret key", func(t *testing.T) {
		client := NewClient(config.GatewayConfig{})
		_, err := client.Initialize(context.Background(), "", "a@b.c", 100, "NGN", "ref")
		assert.ErrorIs(t, err, ErrMissingSecretKey)
	})

	t.Run("non-2xx", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
		})
		_, err := client.Initialize(context.Background(), "sk_bad", "a@b.c", 100, "NGN", "ref")
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("status false", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":false,"message":"Duplicate Transaction Reference"}`))
		})
		_, err := client.Initialize(context.Background(), "sk_test", "a@b.c", 100, "NGN", "ref")
		assert.ErrorContains(t, err, "Duplicate Transaction Reference")
	})
}

func TestClient_Verify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/ref_123", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"reference":"ref_123","status":"success","amount":1500000,"currency":"NGN"}}`))
	})

	v, err := client.Verify(context.Background(), "sk_test", "ref_123")

	require.NoError(t, err)
	assert.Equal(t, "ref_123", v.Reference)
	assert.Equal(t, "success", v.Status)
	assert.Equal(t, int64(1500000), v.Amount)
	assert.Equal(t, "NGN", v.Currency)
}

func TestClient_Verify_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Verify(ctx, "sk_test", "ref_123")
	assert.Error(t, err)
}
