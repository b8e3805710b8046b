// Package main provides a demo program for the TUI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/homeserve/internal/catalog"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui"
)

func main() {
	ctx := context.Background()

	// Embedded seed, signed in as a customer, at a size that fits recordings.
	c, err := catalog.Open(ctx, "")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	err = tui.Run(ctx,
		tui.WithCatalog(c),
		tui.WithRole(model.RoleCustomer),
		tui.WithSize(120, 40),
	)
	_ = c.Close()

	if err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
