package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"foodctl/internal/api"
)

func newRestaurantCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurant",
		Short: "Browse and manage restaurants",
	}
	cmd.AddCommand(newRestaurantListCmd(a), newRestaurantAddCmd(a), newRestaurantUpdateCmd(a), newRestaurantDeleteCmd(a))
	return cmd
}

func newRestaurantListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(); err != nil {
				return err
			}
			restaurants, err := a.client.ListRestaurants(cmd.Context())
			if err != nil {
				return err
			}
			if len(restaurants) == 0 {
				fmt.Println("No restaurants found.")
				return nil
			}
			for _, r := range restaurants {
				fmt.Printf("#%d %s (%s, %s) status=%s\n", r.ID, r.Name, r.Cuisine, r.Location, r.Status)
			}
			return nil
		},
	}
}

func newRestaurantAddCmd(a *app) *cobra.Command {
	var r api.Restaurant
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a restaurant (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			created, err := a.client.CreateRestaurant(cmd.Context(), r)
			if err != nil {
				return err
			}
			fmt.Printf("Restaurant %d (%s) created.\n", created.ID, created.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&r.Name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&r.Location, "location", "", "location")
	cmd.Flags().StringVar(&r.Cuisine, "cuisine", "", "cuisine")
	cmd.Flags().StringVar(&r.Status, "status", api.RestaurantActive, "ACTIVE or CLOSED")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRestaurantUpdateCmd(a *app) *cobra.Command {
	var name, location, cuisine, status string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a restaurant (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("restaurant id must be a number")
			}
			var patch api.RestaurantPatch
			if name != "" {
				patch.Name = &name
			}
			if location != "" {
				patch.Location = &location
			}
			if cuisine != "" {
				patch.Cuisine = &cuisine
			}
			if status != "" {
				patch.Status = &status
			}
			updated, err := a.client.UpdateRestaurant(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Restaurant %d updated (status %s).\n", updated.ID, updated.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "new cuisine")
	cmd.Flags().StringVar(&status, "status", "", "new status (ACTIVE or CLOSED)")
	return cmd
}

func newRestaurantDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a restaurant (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("restaurant id must be a number")
			}
			if err := a.client.DeleteRestaurant(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Restaurant %d deleted.\n", id)
			return nil
		},
	}
}
