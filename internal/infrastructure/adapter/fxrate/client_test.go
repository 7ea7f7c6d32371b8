package fxrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.FXRateConfig{BaseURL: server.URL, Timeout: time.Second})
}

func TestClient_Latest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"ngn":1550.25,"EUR":0.92}}`))
	})

	rates, err := client.Latest(context.Background(), "usd")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(rates["USD"]))
	assert.True(t, decimal.RequireFromString("1550.25").Equal(rates["NGN"]))
	assert.True(t, decimal.RequireFromString("0.92").Equal(rates["EUR"]))
}

func TestClient_Latest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"missing rates", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"USD"}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			rates, err := client.Latest(context.Background(), "USD")
			assert.Error(t, err)
			assert.Nil(t, rates)
		})
	}
}
