package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"foodctl/internal/lifecycle"
)

type OrderItem struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

type Order struct {
	ID            int64                 `json:"id"`
	CustomerID    int64                 `json:"customerId"`
	RestaurantID  int64                 `json:"restaurantId"`
	TotalAmount   float64               `json:"totalAmount"`
	PaymentMethod string                `json:"paymentMethod"`
	Status        lifecycle.OrderStatus `json:"status"`
	OrderTime     string                `json:"orderTime,omitempty"`
	Items         []OrderItem           `json:"items,omitempty"`
}

type CreateOrderRequest struct {
	RestaurantID  int64       `json:"restaurantId"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
}

// OrderPatch carries only the fields the caller wants changed.
type OrderPatch struct {
	CustomerID    *int64                 `json:"customerId,omitempty"`
	RestaurantID  *int64                 `json:"restaurantId,omitempty"`
	TotalAmount   *float64               `json:"totalAmount,omitempty"`
	PaymentMethod *string                `json:"paymentMethod,omitempty"`
	Status        *lifecycle.OrderStatus `json:"status,omitempty"`
}

var paymentMethods = map[string]bool{
	"CASH":        true,
	"CREDIT_CARD": true,
	"DEBIT_CARD":  true,
	"UPI":         true,
}

// ItemDraft and OrderDraft hold raw user input. Build coerces the numeric
// fields; anything malformed is a validation failure here, never a silent
// default on the wire.
type ItemDraft struct {
	ItemID   string
	Quantity string
}

type OrderDraft struct {
	RestaurantID  string
	TotalAmount   string
	PaymentMethod string
	Items         []ItemDraft
}

func (d OrderDraft) Build() (*CreateOrderRequest, error) {
	restaurantID, err := strconv.ParseInt(d.RestaurantID, 10, 64)
	if err != nil {
		return nil, &ValidationError{Field: "restaurantId", Reason: "must be a number"}
	}
	total, err := decimal.NewFromString(d.TotalAmount)
	if err != nil {
		return nil, &ValidationError{Field: "totalAmount", Reason: "must be a number"}
	}
	if total.IsNegative() {
		return nil, &ValidationError{Field: "totalAmount", Reason: "must not be negative"}
	}
	if !paymentMethods[d.PaymentMethod] {
		return nil, &ValidationError{Field: "paymentMethod", Reason: fmt.Sprintf("unknown method %q", d.PaymentMethod)}
	}
	if len(d.Items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	items := make([]OrderItem, 0, len(d.Items))
	for i, it := range d.Items {
		id, err := strconv.ParseInt(it.ItemID, 10, 64)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].itemId", i), Reason: "must be a number"}
		}
		qty, err := strconv.Atoi(it.Quantity)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be a number"}
		}
		if qty < 1 {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be at least 1"}
		}
		items = append(items, OrderItem{ItemID: id, Quantity: qty})
	}
	total64, _ := total.Float64()
	return &CreateOrderRequest{
		RestaurantID:  restaurantID,
		TotalAmount:   total64,
		PaymentMethod: d.PaymentMethod,
		Items:         items,
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/orders/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders returns the caller's orders; the gateway scopes the result to
// the caller's identity (admins see everything).
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/orders/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOrder scans the order list for an id. The gateway exposes no
// fetch-by-id to clients.
func (c *Client) FindOrder(ctx context.Context, id int64) (*Order, error) {
	orders, err := c.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, patch OrderPatch) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/orders/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/orders/%d", id), nil, nil)
}
