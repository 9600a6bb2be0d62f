// Package sms implements the SMSSender boundary against an HTTP SMS
// provider.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// httpClient talks to the SMS provider's REST API.
type httpClient struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	senderID string
}

// NewClient is the constructor for httpClient.
func NewClient(cfg *config.Config) service.SMSSender {
	timeout := defaultTimeout
	if cfg.SMS != nil && cfg.SMS.Timeout > 0 {
		timeout = cfg.SMS.Timeout
	}

	client := &httpClient{
		client: &http.Client{Timeout: timeout},
	}
	if cfg.SMS != nil {
		client.baseURL = cfg.SMS.BaseURL
		client.apiKey = cfg.SMS.APIKey
		client.senderID = cfg.SMS.SenderID
	}

	return client
}

type sendRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"senderId"`
}

// SendOTP delivers a one-time password message to a phone number.
func (c *httpClient) SendOTP(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(sendRequest{
		To:       phone,
		Message:  message,
		SenderID: c.senderID,
	})
	if err != nil {
		return errors.Wrap(err, "marshal SMS request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build SMS request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call SMS provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("SMS provider returned %d: %s", resp.StatusCode, payload)
	}

	return nil
}

type balanceResponse struct {
	Credits int64 `json:"credits"`
}

// Balance returns the remaining message credits on the provider account.
func (c *httpClient) Balance(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/balance", nil)
	if err != nil {
		return 0, errors.Wrap(err, "build balance request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "call SMS provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return 0, errors.Errorf("SMS provider returned %d: %s", resp.StatusCode, payload)
	}

	var parsed balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, errors.Wrap(err, "decode balance response")
	}

	return parsed.Credits, nil
}
