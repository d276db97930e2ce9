package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	OrderID    int64  `json:"orderId"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type checkoutResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// checkoutKey returns the idempotency key for an order, minting one on first
// use. Retrying checkout for the same order within a process reuses the key,
// so a double submission cannot mint two payment sessions.
func (c *Client) checkoutKey(orderID int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if k, ok := c.checkoutKeys[orderID]; ok {
		return k
	}
	k := uuid.NewString()
	c.checkoutKeys[orderID] = k
	return k
}

// CreateCheckoutSession asks the payment service for a hosted checkout URL.
// The amount travels as a string with trailing zeros trimmed (250.00 -> "250"),
// matching what the provider integration expects.
//
// Failures are kept distinct: transport errors, a non-JSON body (proxy or
// backend misconfiguration, raw body surfaced as-is), a non-success status,
// and a JSON body with no url field.
func (c *Client) CreateCheckoutSession(ctx context.Context, orderID int64, amount decimal.Decimal, currency, successURL, cancelURL string) (string, error) {
	if amount.IsNegative() {
		return "", &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	body, err := json.Marshal(checkoutRequest{
		OrderID:    orderID,
		Amount:     amount.String(),
		Currency:   currency,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/payments/payments/create-checkout-session", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", c.checkoutKey(orderID))
	credential, ok := c.session.Get()
	if !ok {
		return "", ErrUnauthorized
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	res, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer res.Body.Close()

	// A rejected credential is a rejected credential no matter how the
	// body is shaped; it is classified before anything is parsed.
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return "", ErrUnauthorized
	}

	// Content type is checked before any parse attempt: an HTML error page
	// from a proxy must never be fed to the JSON decoder.
	ct := res.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", &NotJSONError{ContentType: ct, Body: string(bytes.TrimSpace(raw))}
	}

	var data checkoutResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("checkout response is not valid JSON: %w", err)
	}
	if res.StatusCode >= 300 {
		if data.Error != "" {
			return "", fmt.Errorf("checkout session rejected: %s", data.Error)
		}
		return "", fmt.Errorf("checkout session rejected: %s", res.Status)
	}
	if data.URL == "" {
		return "", fmt.Errorf("checkout response missing redirect url")
	}
	return data.URL, nil
}
