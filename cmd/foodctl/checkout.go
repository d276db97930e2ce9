package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"foodctl/internal/checkout"
	"foodctl/internal/lifecycle"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var amountFlag string
	var wait time.Duration
	cmd := &cobra.Command{
		Use:   "checkout <orderId>",
		Short: "Pay for an order via the hosted checkout page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("order id must be a number")
			}

			amountStr := amountFlag
			if amountStr == "" {
				payment, err := a.client.FindPaymentByOrder(cmd.Context(), orderID)
				if err != nil {
					return fmt.Errorf("no payment found for order %d; pass --amount", orderID)
				}
				if !lifecycle.CheckoutEligible(payment.Status) {
					return fmt.Errorf("payment for order %d is already %s", orderID, payment.Status)
				}
				amountStr = strconv.FormatFloat(payment.Amount, 'f', -1, 64)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("amount must be a number")
			}

			listener := checkout.NewListener(a.cfg.ReturnAddr)
			if err := listener.Start(); err != nil {
				return err
			}
			defer listener.Shutdown()

			redirector := &checkout.Redirector{
				API:           a.client,
				Currency:      a.cfg.Currency,
				ReturnBaseURL: a.cfg.ReturnBaseURL,
			}
			url, err := redirector.Start(cmd.Context(), orderID, amount)
			if err != nil {
				return err
			}
			fmt.Printf("Checkout page: %s\n", url)
			fmt.Println("Waiting for the payment provider to redirect back...")

			ctx, cancel := context.WithTimeout(cmd.Context(), wait)
			defer cancel()
			result, err := listener.Wait(ctx)
			if err != nil {
				return fmt.Errorf("no redirect received: %w", err)
			}
			fmt.Println(result.Banner())

			// The banner is only the provider's transient signal; the payment
			// list is the ground truth.
			payment, err := a.client.FindPaymentByOrder(cmd.Context(), orderID)
			if err != nil {
				fmt.Printf("Could not re-fetch payment status: %v\n", err)
				return nil
			}
			fmt.Printf("Payment #%d for order %d is now %s\n", payment.ID, payment.OrderID, payment.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount to charge (defaults to the pending payment's amount)")
	cmd.Flags().DurationVar(&wait, "wait", 5*time.Minute, "how long to wait for the provider redirect")
	return cmd
}
