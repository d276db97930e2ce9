package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"foodctl/internal/api"
	"foodctl/internal/lifecycle"
)

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and manage orders",
	}
	cmd.AddCommand(newOrderPlaceCmd(a), newOrderListCmd(a), newOrderUpdateCmd(a), newOrderDeleteCmd(a))
	return cmd
}

// parseItems turns repeated id:qty flags into item drafts. Coercion to
// numbers happens in OrderDraft.Build, where malformed input is reported
// per field.
func parseItems(raw []string) ([]api.ItemDraft, error) {
	items := make([]api.ItemDraft, 0, len(raw))
	for _, r := range raw {
		id, qty, ok := strings.Cut(r, ":")
		if !ok {
			return nil, fmt.Errorf("item %q: want id:qty", r)
		}
		items = append(items, api.ItemDraft{ItemID: id, Quantity: qty})
	}
	return items, nil
}

func newOrderPlaceCmd(a *app) *cobra.Command {
	var draft api.OrderDraft
	var rawItems []string
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a new order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			items, err := parseItems(rawItems)
			if err != nil {
				return err
			}
			draft.Items = items
			req, err := draft.Build()
			if err != nil {
				return err
			}
			order, err := a.client.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Order %d placed (status %s, total %.2f, %s)\n",
				order.ID, order.Status, order.TotalAmount, order.PaymentMethod)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.RestaurantID, "restaurant", "", "restaurant id")
	cmd.Flags().StringVar(&draft.TotalAmount, "total", "", "total amount")
	cmd.Flags().StringVar(&draft.PaymentMethod, "method", "CASH", "payment method (CASH, CREDIT_CARD, DEBIT_CARD, UPI)")
	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "order item as id:qty (repeatable)")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func newOrderListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders (admins see all orders)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			orders, err := a.client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			for _, o := range orders {
				fmt.Printf("#%d restaurant=%d total=%.2f method=%s status=%s\n",
					o.ID, o.RestaurantID, o.TotalAmount, o.PaymentMethod, o.Status)
			}
			return nil
		},
	}
}

func newOrderUpdateCmd(a *app) *cobra.Command {
	var status, total, restaurant string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("order id must be a number")
			}
			var patch api.OrderPatch
			if status != "" {
				next, err := lifecycle.ParseOrderStatus(status)
				if err != nil {
					return err
				}
				// The same transition table guards every mutation path, so an
				// illegal jump (say DELIVERED back to PENDING) is refused here
				// before it reaches the wire.
				current, err := a.client.FindOrder(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := lifecycle.ValidateOrderTransition(current.Status, next, a.isAdmin()); err != nil {
					return err
				}
				patch.Status = &next
			}
			if total != "" {
				v, err := strconv.ParseFloat(total, 64)
				if err != nil || v < 0 {
					return fmt.Errorf("total must be a non-negative number")
				}
				patch.TotalAmount = &v
			}
			if restaurant != "" {
				v, err := strconv.ParseInt(restaurant, 10, 64)
				if err != nil {
					return fmt.Errorf("restaurant id must be a number")
				}
				patch.RestaurantID = &v
			}
			order, err := a.client.UpdateOrder(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Order %d updated (status %s)\n", order.ID, order.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&total, "total", "", "new total amount")
	cmd.Flags().StringVar(&restaurant, "restaurant", "", "new restaurant id")
	return cmd
}

func newOrderDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order (terminal, admin action)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("order id must be a number")
			}
			if err := a.client.DeleteOrder(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Order %d deleted.\n", id)
			return nil
		},
	}
}
