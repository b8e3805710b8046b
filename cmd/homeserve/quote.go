package main

import (
	"log/slog"

	"github.com/Veraticus/homeserve/internal/cli"
	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the price of a job",
		Long: `Compute an instant quote from the service, the property size, how soon the
work is needed and any add-ons. The estimate is the hourly base for the
service over four hours, scaled by size and urgency, plus add-on costs.`,
		Example: `  homeserve quote --service plumbing --size medium
  homeserve quote --service cleaning --size large --urgency emergency --addon eco`,
		RunE: runQuote,
	}

	// Flags
	cmd.Flags().String("service", "", "Service type (plumbing, electrical, cleaning, landscaping, painting, handyman)")
	cmd.Flags().String("size", "", "Property size (small, medium, large, xlarge)")
	cmd.Flags().String("urgency", "standard", "How soon: standard, urgent or emergency")
	cmd.Flags().StringSlice("addon", nil, "Add-on to include (deep, eco, emergency, weekend); repeatable")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	in, err := quoteInputs(cmd)
	if err != nil {
		return err
	}

	r, ok := quote.NewEstimator().Estimate(in)
	if !ok {
		return common.NewUserError("Both --service and --size are required", common.ErrInvalidInput)
	}
	slog.Debug("Quote computed", "service", in.ServiceType, "size", in.PropertySize, "urgency", in.Urgency, "estimate", r.EstimatedPrice)

	return cli.WriteQuote(cmd.OutOrStdout(), in, r)
}

// quoteInputs validates the flags into estimator inputs.
func quoteInputs(cmd *cobra.Command) (quote.Inputs, error) {
	service, _ := cmd.Flags().GetString("service")
	size, _ := cmd.Flags().GetString("size")
	urgency, _ := cmd.Flags().GetString("urgency")
	addOns, _ := cmd.Flags().GetStringSlice("addon")

	if _, ok := quote.LookupService(service); !ok {
		return quote.Inputs{}, common.InvalidInput("service", service, quote.ServiceIDs())
	}
	if _, ok := quote.LookupSize(size); !ok {
		return quote.Inputs{}, common.InvalidInput("size", size, quote.SizeIDs())
	}
	u, err := quote.ParseUrgency(urgency)
	if err != nil {
		return quote.Inputs{}, err
	}

	in := quote.Inputs{ServiceType: service, PropertySize: size, Urgency: u}
	for _, id := range addOns {
		if _, ok := quote.LookupAddOn(id); !ok {
			return quote.Inputs{}, common.InvalidInput("add-on", id, quote.AddOnIDs())
		}
		if !in.HasAddOn(id) {
			in = in.ToggleAddOn(id)
		}
	}
	return in, nil
}

