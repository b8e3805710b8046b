package main

import (
	"github.com/Veraticus/homeserve/internal/cli"
	"github.com/spf13/cobra"
)

func trackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Follow your provider on the way",
		Long: `Play the live tracking simulation with a progress bar. The ETA drops one
minute per interval until the provider arrives. Press Ctrl+C to stop.`,
		RunE: runTrack,
	}

	// Flags
	cmd.Flags().Duration("interval", 0, "Time between updates (default: tracking.interval)")

	return cmd
}

func runTrack(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	interval := settings.TrackingInterval
	if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
		interval = d
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Tracking stopped. Run 'homeserve track' to start again.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	_, err = cli.RunTrip(ctx, cmd.OutOrStdout(), interval)
	// Stopping early is a normal way to leave.
	if err != nil && (handler.WasInterrupted() || cmd.Context().Err() != nil) {
		return nil
	}
	return err
}

