package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
)

// ErrPropertyNotFound is returned when no property matches the given id.
var ErrPropertyNotFound = errors.New("property not found")

type PropertyRepository struct {
	DB *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

// EnsureSchema creates the properties table if it does not exist yet.
func (r *PropertyRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS properties (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL DEFAULT 0,
			image_url TEXT NOT NULL DEFAULT '',
			rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			type TEXT NOT NULL DEFAULT '',
			bedrooms INT NOT NULL DEFAULT 0,
			bathrooms INT NOT NULL DEFAULT 0,
			area INT NOT NULL DEFAULT 0,
			amenities TEXT[] NOT NULL DEFAULT '{}',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
		)`
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("PropertyRepository.EnsureSchema: %w", err)
	}
	return nil
}

// GetAll returns every property, featured ones first, then newest.
func (r *PropertyRepository) GetAll(ctx context.Context) ([]model.Property, error) {
	const q = `
		SELECT id, title, description, location, price, image_url,
		       rating, review_count, type, bedrooms, bathrooms, area, amenities, featured
		FROM properties
		ORDER BY featured DESC, created_at DESC
	`
	var properties []model.Property
	if err := r.DB.SelectContext(ctx, &properties, q); err != nil {
		return nil, fmt.Errorf("PropertyRepository.GetAll: %w", err)
	}
	return properties, nil
}

// GetByID returns one property by id.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*model.Property, error) {
	const q = `
		SELECT id, title, description, location, price, image_url,
		       rating, review_count, type, bedrooms, bathrooms, area, amenities, featured
		FROM properties
		WHERE id = $1
	`
	var p model.Property
	if err := r.DB.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("PropertyRepository.GetByID: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	const q = `SELECT COUNT(1) FROM properties WHERE id = $1`
	if err := r.DB.GetContext(ctx, &count, q, id); err != nil {
		return false, fmt.Errorf("PropertyRepository.Exists: %w", err)
	}
	return count > 0, nil
}
