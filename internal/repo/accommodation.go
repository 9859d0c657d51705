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

// AccommodationTypeRepo defines the persistence operations for accommodation types.
type AccommodationTypeRepo interface {
	// Create inserts a new accommodation type and returns the persisted record.
	// Slug uniqueness is enforced by the database.
	Create(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error)

	// GetByID retrieves a single accommodation type by its UUID primary key.
	GetByID(ctx context.Context, id uuid.UUID) (domain.AccommodationType, error)

	// List returns all accommodation types, priciest first, matching the
	// admin screen order. Includes inactive rows.
	List(ctx context.Context) ([]domain.AccommodationType, error)

	// ListActive returns active accommodation types only, priciest first.
	ListActive(ctx context.Context) ([]domain.AccommodationType, error)

	// Update overwrites the mutable fields of an existing accommodation type.
	Update(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error)

	// Delete removes an accommodation type by ID. Hotels under it are
	// removed by the database's ON DELETE CASCADE.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgAccommodationTypeRepo is the Postgres implementation of AccommodationTypeRepo.
type pgAccommodationTypeRepo struct {
	db db
}

// NewAccommodationTypeRepo constructs an AccommodationTypeRepo backed by the
// provided db connection.
func NewAccommodationTypeRepo(db db) AccommodationTypeRepo {
	return &pgAccommodationTypeRepo{db: db}
}

const accommodationColumns = `id, name, slug, description, price_per_night, amenities, is_active, created_at, updated_at`

func (r *pgAccommodationTypeRepo) Create(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error) {
	const q = `
		INSERT INTO accommodation_types (name, slug, description, price_per_night, amenities, is_active)
		VALUES (@name, @slug, @description, @price_per_night, @amenities, @is_active)
		RETURNING ` + accommodationColumns

	row := r.db.QueryRow(ctx, q, accommodationArgs(a))
	result, err := scanAccommodationType(row)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("repo.AccommodationTypeRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.AccommodationType, error) {
	const q = `SELECT ` + accommodationColumns + ` FROM accommodation_types WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanAccommodationType(row)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("repo.AccommodationTypeRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationTypeRepo) List(ctx context.Context) ([]domain.AccommodationType, error) {
	const q = `SELECT ` + accommodationColumns + ` FROM accommodation_types ORDER BY price_per_night DESC`
	return r.queryTypes(ctx, q, "List")
}

func (r *pgAccommodationTypeRepo) ListActive(ctx context.Context) ([]domain.AccommodationType, error) {
	const q = `SELECT ` + accommodationColumns + ` FROM accommodation_types WHERE is_active ORDER BY price_per_night DESC`
	return r.queryTypes(ctx, q, "ListActive")
}

func (r *pgAccommodationTypeRepo) queryTypes(ctx context.Context, q, op string) ([]domain.AccommodationType, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.AccommodationTypeRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.AccommodationType
	for rows.Next() {
		a, err := scanAccommodationType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AccommodationTypeRepo.%s: scan: %w", op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AccommodationTypeRepo.%s: rows: %w", op, err)
	}
	return out, nil
}

func (r *pgAccommodationTypeRepo) Update(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error) {
	const q = `
		UPDATE accommodation_types
		SET name            = @name,
		    slug            = @slug,
		    description     = @description,
		    price_per_night = @price_per_night,
		    amenities       = @amenities,
		    is_active       = @is_active,
		    updated_at      = now()
		WHERE id = @id
		RETURNING ` + accommodationColumns

	args := accommodationArgs(a)
	args["id"] = a.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAccommodationType(row)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("repo.AccommodationTypeRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM accommodation_types WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.AccommodationTypeRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AccommodationTypeRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func accommodationArgs(a domain.AccommodationType) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":            a.Name,
		"slug":            a.Slug,
		"description":     a.Description,
		"price_per_night": a.PricePerNight,
		"amenities":       a.Amenities,
		"is_active":       a.IsActive,
	}
}

// scanAccommodationType maps a single database row into a domain.AccommodationType.
func scanAccommodationType(s scanner) (domain.AccommodationType, error) {
	var (
		a  domain.AccommodationType
		id pgtype.UUID
	)
	err := s.Scan(&id, &a.Name, &a.Slug, &a.Description, &a.PricePerNight,
		&a.Amenities, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AccommodationType{}, domain.ErrNotFound
		}
		return domain.AccommodationType{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	return a, nil
}
