package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/homeserve/internal/model"
)

func insertPackage(ctx context.Context, q queryable, position int, p *model.ServicePackage) error {
	services, err := json.Marshal(nonNil(p.Services))
	if err != nil {
		return fmt.Errorf("failed to marshal services: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO packages (id, position, name, description, services, regular_price,
			discounted_price, savings, type, frequency, popular)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, position, p.Name, p.Description, string(services), p.RegularPrice,
		p.DiscountedPrice, p.Savings, string(p.Type), p.Frequency, p.Popular)
	if err != nil {
		return fmt.Errorf("failed to insert package %s: %w", p.ID, err)
	}
	return nil
}

// ListPackages returns packages of one type, or all of them when packageType
// is empty, in seed order.
func (c *SQLiteCatalog) ListPackages(ctx context.Context, packageType model.PackageType) ([]model.ServicePackage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, description, services, regular_price, discounted_price,
			savings, type, frequency, popular
		FROM packages
		WHERE ? = '' OR type = ?
		ORDER BY position
	`, string(packageType), string(packageType))
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	packages := []model.ServicePackage{}
	for rows.Next() {
		var p model.ServicePackage
		var services, typeStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &services, &p.RegularPrice,
			&p.DiscountedPrice, &p.Savings, &typeStr, &p.Frequency, &p.Popular); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		if err := json.Unmarshal([]byte(services), &p.Services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal services: %w", err)
		}
		p.Type = model.PackageType(typeStr)
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating packages: %w", err)
	}
	return packages, nil
}
