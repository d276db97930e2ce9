package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"foodctl/internal/api"
	"foodctl/internal/lifecycle"
)

func newPaymentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Inspect and manage payments",
	}
	cmd.AddCommand(newPaymentListCmd(a), newPaymentUpdateCmd(a), newPaymentDeleteCmd(a))
	return cmd
}

func newPaymentListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payment history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			payments, err := a.client.ListPayments(cmd.Context())
			if err != nil {
				return err
			}
			if len(payments) == 0 {
				fmt.Println("No payment records found.")
				return nil
			}
			for _, p := range payments {
				line := fmt.Sprintf("#%d order=%d amount=%.2f method=%s status=%s",
					p.ID, p.OrderID, p.Amount, p.PaymentMethod, p.Status)
				if lifecycle.CheckoutEligible(p.Status) {
					line += "  (run `foodctl checkout " + strconv.FormatInt(p.OrderID, 10) + "` to pay)"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newPaymentUpdateCmd(a *app) *cobra.Command {
	var status string
	var amount float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a payment (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("payment id must be a number")
			}
			var patch api.PaymentPatch
			if status != "" {
				next, err := lifecycle.ParsePaymentStatus(status)
				if err != nil {
					return err
				}
				// Validation fails closed: if the current state cannot be
				// fetched, nothing is submitted.
				cur, err := findPayment(a, cmd, id)
				if err != nil {
					return err
				}
				if err := lifecycle.ValidatePaymentTransition(cur.Status, next); err != nil {
					return err
				}
				// Settling a payment must agree with its order's state.
				if order, err := a.client.FindOrder(cmd.Context(), cur.OrderID); err == nil {
					if err := lifecycle.CheckConsistent(next, order.Status); err != nil {
						return err
					}
				}
				patch.Status = &next
			}
			if cmd.Flags().Changed("amount") {
				if amount < 0 {
					return fmt.Errorf("amount must not be negative")
				}
				patch.Amount = &amount
			}
			p, err := a.client.UpdatePayment(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Payment %d updated (status %s)\n", p.ID, p.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status (INITIATED, SUCCESS, FAILED)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	return cmd
}

func findPayment(a *app, cmd *cobra.Command, id int64) (*api.Payment, error) {
	payments, err := a.client.ListPayments(cmd.Context())
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, fmt.Errorf("payment %d not found", id)
}

func newPaymentDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a payment record (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("payment id must be a number")
			}
			if err := a.client.DeletePayment(cmd.Context(), id); err != nil {
				if errors.Is(err, api.ErrNotFound) {
					return fmt.Errorf("payment %d not found", id)
				}
				return err
			}
			fmt.Printf("Payment %d deleted.\n", id)
			return nil
		},
	}
}
