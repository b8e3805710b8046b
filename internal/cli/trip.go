package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/homeserve/internal/tracking"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/schollz/progressbar/v3"
)

// RunTrip plays the tracking simulation on w, advancing one step per
// interval until the provider arrives or ctx is canceled. It returns the
// last state reached.
func RunTrip(ctx context.Context, w io.Writer, interval time.Duration) (tracking.State, error) {
	if interval <= 0 {
		interval = tracking.DefaultInterval
	}

	state := tracking.Initial()
	if _, err := fmt.Fprintln(w, FormatTitle(fmt.Sprintf("Tracking %s · %s", state.ProviderName, state.Service))); err != nil {
		return state, err
	}

	bar := newTripBar(w, state)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !state.Done() {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-ticker.C:
			state = tracking.Advance(state)
			bar.Describe(describeTrip(state))
			if err := bar.Set(int(state.Progress() * 100)); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
			slog.Debug("Trip advanced", "status", state.Status, "eta", state.ETAMinutes, "distance", state.DistanceMiles)
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	_, err := fmt.Fprintln(w, FormatSuccess(fmt.Sprintf("%s has arrived. Call %s if you need anything.", state.ProviderName, state.Phone)))
	return state, err
}

func newTripBar(w io.Writer, state tracking.State) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetDescription(describeTrip(state)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// describeTrip is the progress bar label for s.
func describeTrip(s tracking.State) string {
	eta := fmt.Sprintf("ETA %d min", s.ETAMinutes)
	if s.Done() {
		eta = "ETA Now"
	}
	return fmt.Sprintf("[cyan][bold]%s[reset] %s · %s · %s",
		s.Status.Label(), VanIcon, eta, viewmodel.FormatMiles(s.DistanceMiles))
}
