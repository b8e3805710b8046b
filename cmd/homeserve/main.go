package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "homeserve",
		Short: "🏠 Find, compare and book local home service providers",
		Long: `homeserve: a terminal marketplace for local home services.

Browse and filter providers, get an instant quote, compare service packages,
book a visit and follow your provider on the way, all from the terminal.
Run 'homeserve ui' for the full interactive experience.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/homeserve/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	config.SetDefaults(viper.GetViper())

	// Add commands
	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(providersCmd())
	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(trackCmd())
	rootCmd.AddCommand(packagesCmd())
	rootCmd.AddCommand(bookingsCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, userErr.UserMessage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// A .env file next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("HOMESERVE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// setupLogging configures slog on stderr from the logging.* keys.
func setupLogging() error {
	level, format, err := loggingOptions()
	if err != nil {
		return err
	}
	common.SetupLogger(os.Stderr, level, format)
	return nil
}

func loggingOptions() (slog.Level, string, error) {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return level, "", err
	}

	format := viper.GetString("logging.format")
	switch format {
	case "", "console":
		format = "console"
	case "json":
	default:
		return level, "", fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}
	return level, format, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("homeserve version", "version", version)
		},
	}
}
