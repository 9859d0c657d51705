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

// TransportOptionRepo defines the persistence operations for transport options.
type TransportOptionRepo interface {
	// Create inserts a new transport option and returns the persisted record.
	Create(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error)

	// GetByID retrieves a single transport option by its UUID primary key.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TransportOption, error)

	// List returns all transport options ordered by name, inactive included.
	List(ctx context.Context) ([]domain.TransportOption, error)

	// ListActive returns active transport options only, ordered by name.
	ListActive(ctx context.Context) ([]domain.TransportOption, error)

	// Update overwrites the mutable fields of an existing transport option.
	Update(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error)

	// Delete removes a transport option by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTransportOptionRepo is the Postgres implementation of TransportOptionRepo.
type pgTransportOptionRepo struct {
	db db
}

// NewTransportOptionRepo constructs a TransportOptionRepo backed by the
// provided db connection.
func NewTransportOptionRepo(db db) TransportOptionRepo {
	return &pgTransportOptionRepo{db: db}
}

const transportColumns = `id, name, slug, description, price_per_person, vehicle_type, is_active, created_at, updated_at`

func (r *pgTransportOptionRepo) Create(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error) {
	const q = `
		INSERT INTO transport_options (name, slug, description, price_per_person, vehicle_type, is_active)
		VALUES (@name, @slug, @description, @price_per_person, @vehicle_type, @is_active)
		RETURNING ` + transportColumns

	row := r.db.QueryRow(ctx, q, transportArgs(t))
	result, err := scanTransportOption(row)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("repo.TransportOptionRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTransportOptionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TransportOption, error) {
	const q = `SELECT ` + transportColumns + ` FROM transport_options WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTransportOption(row)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("repo.TransportOptionRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTransportOptionRepo) List(ctx context.Context) ([]domain.TransportOption, error) {
	const q = `SELECT ` + transportColumns + ` FROM transport_options ORDER BY name`
	return r.queryOptions(ctx, q, "List")
}

func (r *pgTransportOptionRepo) ListActive(ctx context.Context) ([]domain.TransportOption, error) {
	const q = `SELECT ` + transportColumns + ` FROM transport_options WHERE is_active ORDER BY name`
	return r.queryOptions(ctx, q, "ListActive")
}

func (r *pgTransportOptionRepo) queryOptions(ctx context.Context, q, op string) ([]domain.TransportOption, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TransportOptionRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.TransportOption
	for rows.Next() {
		t, err := scanTransportOption(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TransportOptionRepo.%s: scan: %w", op, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TransportOptionRepo.%s: rows: %w", op, err)
	}
	return out, nil
}

func (r *pgTransportOptionRepo) Update(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error) {
	const q = `
		UPDATE transport_options
		SET name             = @name,
		    slug             = @slug,
		    description      = @description,
		    price_per_person = @price_per_person,
		    vehicle_type     = @vehicle_type,
		    is_active        = @is_active,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + transportColumns

	args := transportArgs(t)
	args["id"] = t.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTransportOption(row)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("repo.TransportOptionRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTransportOptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM transport_options WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TransportOptionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TransportOptionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func transportArgs(t domain.TransportOption) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":             t.Name,
		"slug":             t.Slug,
		"description":      t.Description,
		"price_per_person": t.PricePerPerson,
		"vehicle_type":     t.VehicleType,
		"is_active":        t.IsActive,
	}
}

// scanTransportOption maps a single database row into a domain.TransportOption.
func scanTransportOption(s scanner) (domain.TransportOption, error) {
	var (
		t  domain.TransportOption
		id pgtype.UUID
	)
	err := s.Scan(&id, &t.Name, &t.Slug, &t.Description, &t.PricePerPerson,
		&t.VehicleType, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TransportOption{}, domain.ErrNotFound
		}
		return domain.TransportOption{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
