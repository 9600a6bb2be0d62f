package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL string) *httpGateway {
	t.Helper()

	cfg := &config.Config{}
	cfg.Payment = &config.PaymentConfig{
		BaseURL:   baseURL,
		KeyID:     "key_test",
		KeySecret: "secret_test",
	}

	gateway, ok := NewGateway(cfg).(*httpGateway)
	require.True(t, ok)

	return gateway
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, "http://unused")

	valid := signPayload("secret_test", "order_123", "pay_456")

	t.Run("accepts a correctly signed payload", func(t *testing.T) {
		t.Parallel()

		assert.True(t, gateway.VerifySignature("order_123", "pay_456", valid))
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		t.Parallel()

		tampered := signPayload("secret_test", "order_123", "pay_other")
		assert.False(t, gateway.VerifySignature("order_123", "pay_456", tampered))
	})

	t.Run("rejects a signature from the wrong secret", func(t *testing.T) {
		t.Parallel()

		forged := signPayload("wrong_secret", "order_123", "pay_456")
		assert.False(t, gateway.VerifySignature("order_123", "pay_456", forged))
	})

	t.Run("rejects malformed hex", func(t *testing.T) {
		t.Parallel()

		assert.False(t, gateway.VerifySignature("order_123", "pay_456", "not-hex!"))
	})
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	t.Run("posts the order and decodes the response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key_test", user)
			assert.Equal(t, "secret_test", pass)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, 50000, body["amount"])
			assert.Equal(t, "INR", body["currency"])

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_abc",
				"amount":   50000,
				"currency": "INR",
				"status":   "created",
			})
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL)

		order, err := gateway.CreateOrder(t.Context(), 50000, "INR", "rcpt_1")
		require.NoError(t, err)
		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, int64(50000), order.AmountMinor)
		assert.Equal(t, "created", order.Status)
	})

	t.Run("surfaces a gateway error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL)

		_, err := gateway.CreateOrder(t.Context(), 100, "INR", "rcpt_2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
