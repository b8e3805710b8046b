package main

import (
	"fmt"

	"github.com/Veraticus/homeserve/internal/cli"
	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/spf13/cobra"
)

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Show the demo account's bookings or jobs",
		Long: `Print the dashboard for a role: a customer's bookings with total spent and
the average rating of the providers booked, or a provider's jobs with earnings
and rating.`,
		RunE: runBookings,
	}

	// Flags
	cmd.Flags().String("role", "customer", "Dashboard to show: customer or provider")

	return cmd
}

func runBookings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	roleName, _ := cmd.Flags().GetString("role")
	role, ok := model.ParseRole(roleName)
	if !ok || role == model.RoleNone {
		return common.InvalidInput("role", roleName, []string{"customer", "provider"})
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := openCatalog(ctx, settings)
	if err != nil {
		return err
	}
	defer closeCatalog(c)

	kind, title := model.KindCustomer, "My Bookings"
	if role == model.RoleProvider {
		kind, title = model.KindProvider, "Provider Dashboard"
	}

	bookings, err := c.ListBookings(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	providers, err := c.ListProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list providers: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, cli.FormatTitle(title)); err != nil {
		return err
	}
	return cli.WriteBookings(out, kind, bookings, providers)
}
