package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/homeserve/internal/model"
)

func insertBooking(ctx context.Context, q queryable, position int, b *model.Booking) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO bookings (id, position, kind, provider_id, provider_name, customer_name,
			service, date, time, status, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, position, string(b.Kind), b.ProviderID, b.ProviderName, b.CustomerName,
		b.Service, b.Date.Format(dateLayout), b.Time, string(b.Status), b.Price)
	if err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
	}
	return nil
}

// ListBookings returns the customer's bookings or the provider's jobs in seed order.
func (c *SQLiteCatalog) ListBookings(ctx context.Context, kind model.BookingKind) ([]model.Booking, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, kind, provider_id, provider_name, customer_name, service, date, time, status, price
		FROM bookings
		WHERE kind = ?
		ORDER BY position
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	bookings := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		var kindStr, statusStr, date string
		if err := rows.Scan(&b.ID, &kindStr, &b.ProviderID, &b.ProviderName, &b.CustomerName,
			&b.Service, &date, &b.Time, &statusStr, &b.Price); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		if b.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("failed to parse booking date: %w", err)
		}
		b.Kind = model.BookingKind(kindStr)
		b.Status = model.BookingStatus(statusStr)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	return bookings, nil
}
