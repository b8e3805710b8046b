package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui"
	"github.com/Veraticus/homeserve/internal/tui/components"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive marketplace",
		Long: `Launch the full-screen terminal UI: browse providers, view profiles, book a
visit, compare packages, get a quote, apply as a provider and track a visit.

While the UI is open, logs are written to logging.file instead of the terminal.`,
		Example: `  homeserve ui
  homeserve ui --role provider --screen jobs
  homeserve ui --screen quote`,
		RunE: runUI,
	}

	// Flags
	cmd.Flags().String("role", "", "Start signed in as customer or provider")
	cmd.Flags().String("screen", "home", "Screen to open first ("+strings.Join(screenNames(), ", ")+")")

	return cmd
}

func screenNames() []string {
	screens := components.Screens()
	names := make([]string, 0, len(screens))
	for _, s := range screens {
		names = append(names, s.String())
	}
	return names
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	roleName, _ := cmd.Flags().GetString("role")
	role, ok := model.ParseRole(roleName)
	if !ok {
		return common.InvalidInput("role", roleName, []string{"customer", "provider"})
	}
	screenName, _ := cmd.Flags().GetString("screen")
	screen, ok := components.ParseScreen(screenName)
	if !ok {
		return common.InvalidInput("screen", screenName, screenNames())
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	criteria, err := defaultCriteria(settings)
	if err != nil {
		return err
	}

	logFile, err := redirectLogs(settings.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	c, err := openCatalog(ctx, settings)
	if err != nil {
		return err
	}
	defer closeCatalog(c)

	opts := []tui.Option{
		tui.WithCatalog(c),
		tui.WithTheme(themes.GetTheme(settings.Theme)),
		tui.WithTrackingInterval(settings.TrackingInterval),
		tui.WithCriteria(criteria),
		tui.WithRole(role),
		tui.WithScreen(screen),
	}
	if settings.Width > 0 && settings.Height > 0 {
		opts = append(opts, tui.WithSize(settings.Width, settings.Height))
	}

	return tui.Run(ctx, opts...)
}

// redirectLogs sends slog output to path so it stays off the alternate screen.
func redirectLogs(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, format, err := loggingOptions()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	common.SetupLogger(f, level, format)
	return f, nil
}
