package main

import (
	"fmt"

	"github.com/Veraticus/homeserve/internal/cli"
	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/spf13/cobra"
)

func packagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List service packages and deals",
		RunE:  runPackages,
	}

	// Flags
	cmd.Flags().String("type", "all", "Package type: all, bundle, subscription, group or emergency")

	return cmd
}

func runPackages(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	typeName, _ := cmd.Flags().GetString("type")
	packageType, err := parsePackageType(typeName)
	if err != nil {
		return err
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

	packages, err := c.ListPackages(ctx, packageType)
	if err != nil {
		return fmt.Errorf("failed to list packages: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, cli.FormatTitle("Service Packages & Deals")); err != nil {
		return err
	}
	return cli.WritePackages(out, packages)
}

// parsePackageType converts the --type flag. "all" and empty mean no filter.
func parsePackageType(s string) (model.PackageType, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	allowed := []string{"all"}
	for _, t := range model.PackageTypes() {
		if string(t) == s {
			return t, nil
		}
		allowed = append(allowed, string(t))
	}
	return "", common.InvalidInput("package type", s, allowed)
}
