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

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID primary key.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// List returns all activities, active and inactive, ordered by name.
	// Admin screens need the historical (inactive) rows.
	List(ctx context.Context) ([]domain.Activity, error)

	// ListActive returns active activities only, ordered by name. This is
	// the view the wizard's catalog snapshot is built from.
	ListActive(ctx context.Context) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an existing activity.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID. Returns domain.ErrNotFound if missing.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, name, description, price_per_person, category, is_active, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (name, description, price_per_person, category, is_active)
		VALUES (@name, @description, @price_per_person, @category, @is_active)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"name":             a.Name,
		"description":      a.Description,
		"price_per_person": a.PricePerPerson,
		"category":         a.Category,
		"is_active":        a.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities ORDER BY name`
	return r.queryActivities(ctx, q, "List")
}

func (r *pgActivityRepo) ListActive(ctx context.Context) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE is_active ORDER BY name`
	return r.queryActivities(ctx, q, "ListActive")
}

func (r *pgActivityRepo) queryActivities(ctx context.Context, q, op string) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.%s: scan: %w", op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: rows: %w", op, err)
	}
	return out, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name             = @name,
		    description      = @description,
		    price_per_person = @price_per_person,
		    category         = @category,
		    is_active        = @is_active,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"id":               a.ID,
		"name":             a.Name,
		"description":      a.Description,
		"price_per_person": a.PricePerPerson,
		"category":         a.Category,
		"is_active":        a.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a  domain.Activity
		id pgtype.UUID
	)
	err := s.Scan(&id, &a.Name, &a.Description, &a.PricePerPerson,
		&a.Category, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	return a, nil
}
