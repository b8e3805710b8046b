package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/homeserve/internal/catalog"
	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/config"
	"github.com/Veraticus/homeserve/internal/search"
	"github.com/spf13/viper"
)

// loadSettings reads the typed settings from the global viper instance.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Invalid configuration. Check ~/.config/homeserve/config.yaml", err)
	}
	return settings, nil
}

// openCatalog opens the reference catalog named by the settings.
func openCatalog(ctx context.Context, settings *config.Settings) (*catalog.SQLiteCatalog, error) {
	c, err := catalog.Open(ctx, settings.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return c, nil
}

func closeCatalog(c *catalog.SQLiteCatalog) {
	if err := c.Close(); err != nil {
		common.LogError(err, "failed to close catalog", nil)
	}
}

// defaultCriteria builds the starting browse criteria from the settings.
func defaultCriteria(settings *config.Settings) (search.Criteria, error) {
	sortKey, err := search.ParseSortKey(settings.Sort)
	if err != nil {
		return search.Criteria{}, err
	}
	c := search.DefaultCriteria()
	c.MaxHourlyRate = settings.MaxRate
	c.MinRating = settings.MinRating
	c.SortBy = sortKey
	return c, nil
}
