package api

import (
	"context"
	"fmt"
	"net/http"

	"foodctl/internal/lifecycle"
)

// Payment is one-to-one with an order once created. The wire status PENDING
// is normalized to INITIATED on decode (see lifecycle.PaymentStatus).
type Payment struct {
	ID            int64                   `json:"id"`
	OrderID       int64                   `json:"orderId"`
	Amount        float64                 `json:"amount"`
	Currency      string                  `json:"currency,omitempty"`
	PaymentMethod string                  `json:"paymentMethod"`
	Status        lifecycle.PaymentStatus `json:"status"`
	PaymentDate   string                  `json:"paymentDate,omitempty"`
}

type PaymentPatch struct {
	OrderID       *int64                   `json:"orderId,omitempty"`
	Amount        *float64                 `json:"amount,omitempty"`
	PaymentMethod *string                  `json:"paymentMethod,omitempty"`
	Status        *lifecycle.PaymentStatus `json:"status,omitempty"`
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := c.do(ctx, http.MethodGet, "/payments/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FindPaymentByOrder(ctx context.Context, orderID int64) (*Payment, error) {
	payments, err := c.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].OrderID == orderID {
			return &payments[i], nil
		}
	}
	return nil, ErrNotFound
}

func (c *Client) UpdatePayment(ctx context.Context, id int64, patch PaymentPatch) (*Payment, error) {
	var out Payment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/payments/payments/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/payments/payments/%d", id), nil, nil)
}
