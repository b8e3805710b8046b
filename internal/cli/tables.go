package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
)

// newTable returns a tab writer with the column padding every table uses.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func flush(tw *tabwriter.Writer) {
	if err := tw.Flush(); err != nil {
		common.LogError(err, "failed to flush table writer", nil)
	}
}

// writeHeader writes a styled header row followed by a rule under each column.
func writeHeader(tw *tabwriter.Writer, columns ...string) error {
	styled := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		styled[i] = TableHeaderStyle.Render(c)
		rules[i] = strings.Repeat("─", len(c))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(styled, "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rules, "\t")); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}
	return nil
}

// WriteProviders prints the provider list as a table.
func WriteProviders(w io.Writer, providers []model.ServiceProvider) error {
	if len(providers) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No providers match. Try a higher --max-rate or a lower --min-rating."))
		return err
	}

	tw := newTable(w)
	defer flush(tw)

	if err := writeHeader(tw, "ID", "Name", "Service", "Rating", "Reviews", "Rate", "Distance", "Availability"); err != nil {
		return err
	}
	for _, p := range providers {
		name := p.Name
		if p.Verified {
			name += " " + SuccessIcon
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f %s\t%d\t%s\t%s\t%s\n",
			p.ID,
			name,
			p.Service,
			p.Rating, StarIcon,
			p.ReviewCount,
			viewmodel.FormatRate(p.HourlyRate),
			viewmodel.FormatMiles(p.Distance),
			p.Availability); err != nil {
			return fmt.Errorf("failed to write provider row: %w", err)
		}
	}
	return nil
}

// WriteQuote prints an estimate and the answers it was computed from.
func WriteQuote(w io.Writer, in quote.Inputs, r quote.Result) error {
	service := in.ServiceType
	if o, ok := quote.LookupService(in.ServiceType); ok {
		service = o.Name
	}
	size := in.PropertySize
	if o, ok := quote.LookupSize(in.PropertySize); ok {
		size = o.Name
	}
	addOns := "none"
	if len(in.AddOns) > 0 {
		names := make([]string, 0, len(in.AddOns))
		for _, id := range in.AddOns {
			if o, ok := quote.LookupAddOn(id); ok {
				names = append(names, o.Name)
			}
		}
		addOns = strings.Join(names, ", ")
	}

	content := strings.Join([]string{
		fmt.Sprintf("Service:    %s", service),
		fmt.Sprintf("Property:   %s", size),
		fmt.Sprintf("Urgency:    %s", in.Urgency),
		fmt.Sprintf("Add-ons:    %s", addOns),
		"",
		BoldStyle.Render(fmt.Sprintf("Estimate:   %s", viewmodel.FormatMoney(float64(r.EstimatedPrice)))),
		fmt.Sprintf("Range:      %s - %s",
			viewmodel.FormatMoney(float64(r.MinPrice)),
			viewmodel.FormatMoney(float64(r.MaxPrice))),
		fmt.Sprintf("Duration:   %s", r.Duration),
		SubtleStyle.Render(fmt.Sprintf("%d providers nearby", r.NearbyProviders)),
	}, "\n")

	_, err := fmt.Fprintln(w, RenderBox("Your Estimated Quote", content))
	return err
}

// WritePackages prints the service packages as a table.
func WritePackages(w io.Writer, packages []model.ServicePackage) error {
	if len(packages) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No packages of that type."))
		return err
	}

	tw := newTable(w)
	defer flush(tw)

	if err := writeHeader(tw, "ID", "Package", "Type", "Price", "Regular", "Savings", "Services"); err != nil {
		return err
	}
	for _, p := range packages {
		name := p.Name
		if p.Popular {
			name += " " + StarIcon
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s (%d%%)\t%s\n",
			p.ID,
			name,
			p.Badge(),
			viewmodel.FormatMoney(p.DiscountedPrice),
			viewmodel.FormatMoney(p.RegularPrice),
			viewmodel.FormatMoney(p.Savings), p.DiscountPercent(),
			strings.Join(p.Services, ", ")); err != nil {
			return fmt.Errorf("failed to write package row: %w", err)
		}
	}
	return nil
}

// WriteBookings prints a customer's bookings or a provider's jobs with the
// dashboard figures above them. Ratings are looked up in providers.
func WriteBookings(w io.Writer, kind model.BookingKind, bookings []model.Booking, providers []model.ServiceProvider) error {
	var summary string
	if kind == model.KindProvider {
		s := viewmodel.NewProviderStats(bookings, viewmodel.JobsRating(bookings, providers))
		summary = fmt.Sprintf("%d completed · %s earned · %.1f %s · %d upcoming",
			s.CompletedJobs, viewmodel.FormatMoney(s.Earnings), s.Rating, StarIcon, s.Upcoming)
	} else {
		s := viewmodel.NewCustomerStats(bookings, providers)
		summary = fmt.Sprintf("%d upcoming · %d completed · %s spent · %.1f %s avg",
			s.Upcoming, s.Completed, viewmodel.FormatMoney(s.TotalSpent), s.AvgRating, StarIcon)
	}
	if _, err := fmt.Fprintln(w, SubtleStyle.Render(summary)); err != nil {
		return err
	}

	if len(bookings) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No bookings yet."))
		return err
	}

	tw := newTable(w)
	defer flush(tw)

	who := "Provider"
	if kind == model.KindProvider {
		who = "Customer"
	}
	if err := writeHeader(tw, "ID", "Date", "Time", "Service", who, "Status", "Price"); err != nil {
		return err
	}
	for _, b := range bookings {
		name := b.ProviderName
		if kind == model.KindProvider {
			name = b.CustomerName
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			viewmodel.FormatDate(b.Date),
			b.Time,
			b.Service,
			name,
			b.Status.Label(),
			viewmodel.FormatMoney(b.Price)); err != nil {
			return fmt.Errorf("failed to write booking row: %w", err)
		}
	}
	return nil
}
