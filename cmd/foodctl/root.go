package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodctl/internal/session"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "foodctl",
		Short:         "Terminal client for the food-ordering platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newOrderCmd(a),
		newPaymentCmd(a),
		newRestaurantCmd(a),
		newCheckoutCmd(a),
	)
	return root
}

// requireAuth gates protected commands on a present, decodable credential.
// This is presentation-level routing only; the gateway re-checks every call.
func (a *app) requireAuth() (*session.Claims, error) {
	route, claims := a.gate.Route()
	if route == session.RouteLogin {
		return nil, fmt.Errorf("not logged in; run `foodctl login` first")
	}
	return claims, nil
}

// requireAdmin additionally checks the decoded role. The decoded role is a
// hint for the UI branch, not a security boundary: a non-admin credential
// would be rejected server-side anyway.
func (a *app) requireAdmin() (*session.Claims, error) {
	route, claims := a.gate.Route()
	switch route {
	case session.RouteAdmin:
		return claims, nil
	case session.RouteLogin:
		return nil, fmt.Errorf("not logged in; run `foodctl login` first")
	default:
		return nil, fmt.Errorf("admin role required")
	}
}

func (a *app) isAdmin() bool {
	route, _ := a.gate.Route()
	return route == session.RouteAdmin
}
