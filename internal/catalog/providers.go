package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
)

const providerColumns = `id, name, service, rating, review_count, hourly_rate, location, distance,
	image, availability, verified, description, experience, specializations,
	completed_jobs, lat, lng, portfolio, certifications`

func insertProvider(ctx context.Context, q queryable, position int, p *model.ServiceProvider) error {
	specializations, err := json.Marshal(nonNil(p.Specializations))
	if err != nil {
		return fmt.Errorf("failed to marshal specializations: %w", err)
	}
	portfolio, err := json.Marshal(p.Portfolio)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}
	certifications, err := json.Marshal(p.Certifications)
	if err != nil {
		return fmt.Errorf("failed to marshal certifications: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO providers (position, `+providerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		position, p.ID, p.Name, p.Service, p.Rating, p.ReviewCount, p.HourlyRate,
		p.Location, p.Distance, p.Image, p.Availability, p.Verified, p.Description,
		p.Experience, string(specializations), p.CompletedJobs,
		p.Coordinates.Lat, p.Coordinates.Lng, string(portfolio), string(certifications),
	)
	if err != nil {
		return fmt.Errorf("failed to insert provider %s: %w", p.ID, err)
	}
	return nil
}

// ListProviders returns every provider in seed order.
func (c *SQLiteCatalog) ListProviders(ctx context.Context) ([]model.ServiceProvider, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var providers []model.ServiceProvider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating providers: %w", err)
	}
	return providers, nil
}

// GetProvider retrieves a provider by ID.
func (c *SQLiteCatalog) GetProvider(ctx context.Context, id string) (*model.ServiceProvider, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := c.db.QueryRowContext(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = ?`, id)
	p, err := scanProvider(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("provider %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProvider(s scanner) (model.ServiceProvider, error) {
	var p model.ServiceProvider
	var specializations, portfolio, certifications string
	err := s.Scan(
		&p.ID, &p.Name, &p.Service, &p.Rating, &p.ReviewCount, &p.HourlyRate,
		&p.Location, &p.Distance, &p.Image, &p.Availability, &p.Verified,
		&p.Description, &p.Experience, &specializations, &p.CompletedJobs,
		&p.Coordinates.Lat, &p.Coordinates.Lng, &portfolio, &certifications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, err
	}
	if err != nil {
		return p, fmt.Errorf("failed to scan provider: %w", err)
	}

	if err := json.Unmarshal([]byte(specializations), &p.Specializations); err != nil {
		return p, fmt.Errorf("failed to unmarshal specializations: %w", err)
	}
	if err := json.Unmarshal([]byte(portfolio), &p.Portfolio); err != nil {
		return p, fmt.Errorf("failed to unmarshal portfolio: %w", err)
	}
	if err := json.Unmarshal([]byte(certifications), &p.Certifications); err != nil {
		return p, fmt.Errorf("failed to unmarshal certifications: %w", err)
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
