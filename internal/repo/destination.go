package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/safariswap/backend/internal/domain"
)

// DestinationRepo defines the persistence operations for Destinations.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record
	// (with DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by its UUID primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// List returns all destinations ordered by created_at descending.
	// Destinations have no active flag — every row is eligible.
	List(ctx context.Context) ([]domain.Destination, error)

	// Update overwrites the mutable fields of an existing destination and
	// returns the updated record. Returns domain.ErrNotFound if missing.
	Update(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// Delete removes a destination by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, country, image_url, description, activities, is_featured, created_at, updated_at`

func (r *pgDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, country, image_url, description, activities, is_featured)
		VALUES (@name, @country, @image_url, @description, @activities, @is_featured)
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":        d.Name,
		"country":     d.Country,
		"image_url":   d.ImageURL,
		"description": d.Description,
		"activities":  d.Activities,
		"is_featured": d.IsFeatured,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM destinations WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all destinations, newest first, matching the admin screen order.
func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM destinations ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgDestinationRepo) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET name        = @name,
		    country     = @country,
		    image_url   = @image_url,
		    description = @description,
		    activities  = @activities,
		    is_featured = @is_featured,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"id":          d.ID,
		"name":        d.Name,
		"country":     d.Country,
		"image_url":   d.ImageURL,
		"description": d.Description,
		"activities":  d.Activities,
		"is_featured": d.IsFeatured,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM destinations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d  domain.Destination
		id pgtype.UUID
	)
	err := s.Scan(&id, &d.Name, &d.Country, &d.ImageURL, &d.Description,
		&d.Activities, &d.IsFeatured, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	d.ID = uuid.UUID(id.Bytes)
	if d.Activities == nil {
		d.Activities = []string{}
	}
	return d, nil
}
