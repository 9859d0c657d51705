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

// HotelRepo defines the persistence operations for Hotels.
type HotelRepo interface {
	// Create inserts a new hotel and returns the persisted record.
	// accommodation_type_id must reference an existing type (FK-enforced).
	Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error)

	// GetByID retrieves a single hotel by its UUID primary key.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)

	// ListPaged returns one page of hotels (inactive included, newest first)
	// and the total row count, for the admin screen.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error)

	// ListActiveByType returns active hotels belonging to the given
	// accommodation type, ordered by rating descending with unrated hotels
	// last. Returns an empty slice, not an error, when none match.
	ListActiveByType(ctx context.Context, accommodationTypeID uuid.UUID) ([]domain.Hotel, error)

	// Update overwrites the mutable fields of an existing hotel.
	Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error)

	// Delete removes a hotel by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgHotelRepo is the Postgres implementation of HotelRepo.
type pgHotelRepo struct {
	db db
}

// NewHotelRepo constructs a HotelRepo backed by the provided db connection.
func NewHotelRepo(db db) HotelRepo {
	return &pgHotelRepo{db: db}
}

const hotelColumns = `id, name, accommodation_type_id, destination_id, description, image_url,
	rating, amenities, price_per_night, location, contact_email, contact_phone,
	is_active, created_at, updated_at`

func (r *pgHotelRepo) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	const q = `
		INSERT INTO hotels (name, accommodation_type_id, destination_id, description, image_url,
		                    rating, amenities, price_per_night, location, contact_email,
		                    contact_phone, is_active)
		VALUES (@name, @accommodation_type_id, @destination_id, @description, @image_url,
		        @rating, @amenities, @price_per_night, @location, @contact_email,
		        @contact_phone, @is_active)
		RETURNING ` + hotelColumns

	row := r.db.QueryRow(ctx, q, hotelArgs(h))
	result, err := scanHotel(row)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	const q = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanHotel(row)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
	const countQ = `SELECT count(*) FROM hotels`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + hotelColumns + `
		FROM hotels
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	hotels := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: scan: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: rows: %w", err)
	}
	return hotels, total, nil
}

func (r *pgHotelRepo) ListActiveByType(ctx context.Context, accommodationTypeID uuid.UUID) ([]domain.Hotel, error) {
	const q = `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE accommodation_type_id = @type_id
		  AND is_active
		ORDER BY rating DESC NULLS LAST, name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"type_id": accommodationTypeID})
	if err != nil {
		return nil, fmt.Errorf("repo.HotelRepo.ListActiveByType: %w", err)
	}
	defer rows.Close()

	hotels := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HotelRepo.ListActiveByType: scan: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HotelRepo.ListActiveByType: rows: %w", err)
	}
	return hotels, nil
}

func (r *pgHotelRepo) Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	const q = `
		UPDATE hotels
		SET name                  = @name,
		    accommodation_type_id = @accommodation_type_id,
		    destination_id        = @destination_id,
		    description           = @description,
		    image_url             = @image_url,
		    rating                = @rating,
		    amenities             = @amenities,
		    price_per_night       = @price_per_night,
		    location              = @location,
		    contact_email         = @contact_email,
		    contact_phone         = @contact_phone,
		    is_active             = @is_active,
		    updated_at            = now()
		WHERE id = @id
		RETURNING ` + hotelColumns

	args := hotelArgs(h)
	args["id"] = h.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanHotel(row)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM hotels WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.HotelRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HotelRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func hotelArgs(h domain.Hotel) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                  h.Name,
		"accommodation_type_id": h.AccommodationTypeID,
		"destination_id":        h.DestinationID, // nil becomes NULL
		"description":           h.Description,
		"image_url":             h.ImageURL,
		"rating":                h.Rating, // nil becomes NULL
		"amenities":             h.Amenities,
		"price_per_night":       h.PricePerNight,
		"location":              h.Location,
		"contact_email":         h.ContactEmail,
		"contact_phone":         h.ContactPhone,
		"is_active":             h.IsActive,
	}
}

// scanHotel maps a single database row into a domain.Hotel.
// It handles the UUID conversions and the nullable destination_id and rating.
func scanHotel(s scanner) (domain.Hotel, error) {
	var (
		h      domain.Hotel
		id     pgtype.UUID
		typeID pgtype.UUID
		destID pgtype.UUID
		rating pgtype.Float8
	)
	err := s.Scan(&id, &h.Name, &typeID, &destID, &h.Description, &h.ImageURL,
		&rating, &h.Amenities, &h.PricePerNight, &h.Location, &h.ContactEmail,
		&h.ContactPhone, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	h.ID = uuid.UUID(id.Bytes)
	h.AccommodationTypeID = uuid.UUID(typeID.Bytes)
	if destID.Valid {
		d := uuid.UUID(destID.Bytes)
		h.DestinationID = &d
	}
	if rating.Valid {
		v := rating.Float64
		h.Rating = &v
	}
	return h, nil
}
