package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodctl/internal/api"
	"foodctl/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			claims, err := session.Decode(token)
			if err != nil {
				// A token we cannot project into claims is useless for
				// routing; do not keep it around.
				_ = a.sess.Clear()
				return fmt.Errorf("invalid token structure")
			}
			if err := a.sess.Set(token); err != nil {
				return err
			}
			route, _ := a.gate.Route()
			fmt.Printf("Logged in as %s (%s), routing to %s\n", claims.Subject, claims.Role, route)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req api.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Println("Registered successfully. Run `foodctl login` to sign in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Role, "role", session.RoleUser, "account role (USER or ADMIN)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sess.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := a.requireAuth()
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s, userId=%d)\n", claims.Subject, claims.Role, claims.UserID)
			return nil
		},
	}
}
