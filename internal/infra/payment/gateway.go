// Package payment implements the PaymentGateway boundary against an
// HTTP payment processor with HMAC-signed payment confirmations.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// httpGateway talks to the payment processor's REST API.
type httpGateway struct {
	client    *http.Client
	baseURL   string
	keyID     string
	keySecret string
}

// NewGateway is the constructor for httpGateway.
func NewGateway(cfg *config.Config) service.PaymentGateway {
	timeout := defaultTimeout
	if cfg.Payment != nil && cfg.Payment.Timeout > 0 {
		timeout = cfg.Payment.Timeout
	}

	gateway := &httpGateway{
		client: &http.Client{Timeout: timeout},
	}
	if cfg.Payment != nil {
		gateway.baseURL = cfg.Payment.BaseURL
		gateway.keyID = cfg.Payment.KeyID
		gateway.keySecret = cfg.Payment.KeySecret
	}

	return gateway
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder registers a payment order with the gateway.
func (g *httpGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*service.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal gateway order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build gateway order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call payment gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("payment gateway returned %d: %s", resp.StatusCode, payload)
	}

	var parsed createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode gateway order response")
	}

	return &service.GatewayOrder{
		ID:          parsed.ID,
		AmountMinor: parsed.Amount,
		Currency:    parsed.Currency,
		Status:      parsed.Status,
	}, nil
}

// VerifySignature recomputes the HMAC-SHA256 signature over
// "orderID|paymentID" and compares it to the supplied one in constant
// time. Comparison happens on the raw MACs so a malformed hex signature
// simply fails to match.
func (g *httpGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := mac.Sum(nil)

	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, supplied)
}
