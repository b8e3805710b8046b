package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/homeserve/internal/model"
)

func insertReview(ctx context.Context, q queryable, position int, r *model.Review) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO reviews (id, position, provider_id, user_name, rating, comment, date, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, position, r.ProviderID, r.UserName, r.Rating, r.Comment, r.Date.Format(dateLayout), r.Verified)
	if err != nil {
		return fmt.Errorf("failed to insert review %s: %w", r.ID, err)
	}
	return nil
}

// ListReviews returns the reviews for one provider in seed order. A provider
// with no reviews yields an empty slice.
func (c *SQLiteCatalog) ListReviews(ctx context.Context, providerID string) ([]model.Review, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(providerID, "providerID"); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, provider_id, user_name, rating, comment, date, verified
		FROM reviews
		WHERE provider_id = ?
		ORDER BY position
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []model.Review{}
	for rows.Next() {
		var r model.Review
		var date string
		if err := rows.Scan(&r.ID, &r.ProviderID, &r.UserName, &r.Rating, &r.Comment, &date, &r.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		if r.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("failed to parse review date: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}
	return reviews, nil
}
