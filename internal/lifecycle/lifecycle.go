// Package lifecycle defines the legal status values for orders and payments
// and the only permitted transitions between them. Every mutation path (user
// edits, admin overrides, checkout completion) validates against the same
// table, so an illegal jump is rejected no matter where it came from.
package lifecycle

import (
	"encoding/json"
	"fmt"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
)

// orderNext lists the reachable statuses per current status. DELIVERED and
// CANCELLED are terminal.
var orderNext = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

var paymentNext = map[PaymentStatus][]PaymentStatus{
	PaymentInitiated: {PaymentSuccess, PaymentFailed},
	PaymentSuccess:   {},
	PaymentFailed:    {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// ParsePaymentStatus accepts the statuses the payment service emits. The
// service reports a not-yet-settled payment as PENDING; that is normalized to
// INITIATED here so the rest of the client deals with one name.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if s == "PENDING" {
		return PaymentInitiated, nil
	}
	switch PaymentStatus(s) {
	case PaymentInitiated, PaymentSuccess, PaymentFailed:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// UnmarshalJSON keeps wire-level PENDING values normalized on decode.
func (p *PaymentStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	// Unknown values pass through untouched; consumers that care call
	// ParsePaymentStatus and get the error there.
	if raw == "PENDING" {
		raw = string(PaymentInitiated)
	}
	*p = PaymentStatus(raw)
	return nil
}

func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range orderNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateOrderTransition rejects illegal jumps before they are submitted.
// Cancelling a confirmed order is reserved for admins; a customer may still
// cancel while the order is pending.
func ValidateOrderTransition(from, to OrderStatus, admin bool) error {
	if from == to {
		return nil
	}
	if !CanTransitionOrder(from, to) {
		return fmt.Errorf("order cannot move from %s to %s", from, to)
	}
	if to == OrderCancelled && from != OrderPending && !admin {
		return fmt.Errorf("only an admin can cancel a %s order", from)
	}
	return nil
}

func ValidatePaymentTransition(from, to PaymentStatus) error {
	if from == to {
		return nil
	}
	if !CanTransitionPayment(from, to) {
		return fmt.Errorf("payment cannot move from %s to %s", from, to)
	}
	return nil
}

// CheckConsistent verifies the cross-entity invariant between a payment and
// its order: a settled payment implies a confirmed or delivered order, and a
// failed payment never coexists with one.
func CheckConsistent(payment PaymentStatus, order OrderStatus) error {
	settled := order == OrderConfirmed || order == OrderDelivered
	switch payment {
	case PaymentSuccess:
		if !settled {
			return fmt.Errorf("payment SUCCESS but order is %s", order)
		}
	case PaymentFailed:
		if settled {
			return fmt.Errorf("payment FAILED but order is %s", order)
		}
	}
	return nil
}

// CheckoutEligible reports whether the checkout action should be offered for
// a payment: only before settlement.
func CheckoutEligible(p PaymentStatus) bool {
	return p == PaymentInitiated
}
