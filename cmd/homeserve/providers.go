package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/homeserve/internal/cli"
	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/search"
	"github.com/spf13/cobra"
)

func providersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List service providers",
		Long: `Filter and sort the provider directory the same way the browse screen does.

Service and query match case-insensitively; the query also matches the
provider name and location. Defaults come from the browse.* settings.`,
		Example: `  homeserve providers --service plumbing
  homeserve providers --max-rate 80 --sort price
  homeserve providers --query downtown --min-rating 4.5`,
		RunE: runProviders,
	}

	// Flags
	cmd.Flags().String("service", "", "Service category to show")
	cmd.Flags().String("query", "", "Free text matched against name, service and location")
	cmd.Flags().Float64("max-rate", 0, "Maximum hourly rate (default: browse.max_rate)")
	cmd.Flags().Float64("min-rating", -1, "Minimum rating, 0-5 (default: browse.min_rating)")
	cmd.Flags().String("sort", "", "Sort by rating, price or distance (default: browse.sort)")

	return cmd
}

func runProviders(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	criteria, err := defaultCriteria(settings)
	if err != nil {
		return err
	}

	criteria.Service, _ = cmd.Flags().GetString("service")
	criteria.Query, _ = cmd.Flags().GetString("query")
	if maxRate, _ := cmd.Flags().GetFloat64("max-rate"); maxRate > 0 {
		criteria.MaxHourlyRate = maxRate
	}
	if minRating, _ := cmd.Flags().GetFloat64("min-rating"); minRating >= 0 {
		if minRating > 5 {
			return common.InvalidInput("min rating", fmt.Sprintf("%g", minRating), []string{"0-5"})
		}
		criteria.MinRating = minRating
	}
	if sortBy, _ := cmd.Flags().GetString("sort"); sortBy != "" {
		if criteria.SortBy, err = search.ParseSortKey(sortBy); err != nil {
			return err
		}
	}

	c, err := openCatalog(ctx, settings)
	if err != nil {
		return err
	}
	defer closeCatalog(c)

	providers, err := c.ListProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list providers: %w", err)
	}

	results := search.Filter(providers, criteria)
	slog.Debug("Filtered providers", "criteria", criteria, "results", len(results))

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d of %d providers · %s", len(results), len(providers), criteria.SortBy.Label()))); err != nil {
		return err
	}
	return cli.WriteProviders(out, results)
}
