package sms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *httpClient {
	t.Helper()

	cfg := &config.Config{}
	cfg.SMS = &config.SMSConfig{
		BaseURL:  baseURL,
		APIKey:   "sms_key",
		SenderID: "STORFT",
	}

	client, ok := NewClient(cfg).(*httpClient)
	require.True(t, ok)

	return client
}

func TestSendOTP(t *testing.T) {
	t.Parallel()

	t.Run("posts the message with the sender id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "Bearer sms_key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "9876543210", body["to"])
			assert.Equal(t, "STORFT", body["senderId"])

			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.NoError(t, client.SendOTP(t.Context(), "9876543210", "Your OTP is 123456"))
	})

	t.Run("surfaces a provider error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "out of credits", http.StatusPaymentRequired)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		err := client.SendOTP(t.Context(), "9876543210", "Your OTP is 123456")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "402")
	})
}

func TestBalance(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balance", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"credits": 450})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	credits, err := client.Balance(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(450), credits)
}
