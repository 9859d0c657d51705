// Package domain contains the core data types and pure logic for the
// SafariSwap trip-builder backend: the option catalogs, the trip draft
// aggregate, the activity resolver, and the pricing engine.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a place travellers can build a trip around.
// Activities holds canonical activity names, not foreign keys — the relation
// is denormalized on purpose and the resolver tolerates drift between this
// list and the activities catalog.
type Destination struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Activities  []string  `json:"activities"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Activity is a bookable experience priced per person.
// Name is unique within the catalog and is the key the wizard selects by.
type Activity struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PricePerPerson float64   `json:"price_per_person"`
	Category       string    `json:"category,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccommodationType is a lodging style (luxury lodge, tented camp, ...).
// Slug is unique and URL-safe; the wizard selects by slug.
// PricePerNight is per person per night.
type AccommodationType struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	PricePerNight float64   `json:"price_per_night"`
	Amenities     []string  `json:"amenities,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransportOption is a mode of transport priced per person.
// Slug is unique; the wizard selects by slug.
type TransportOption struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	PricePerPerson float64   `json:"price_per_person"`
	VehicleType    string    `json:"vehicle_type,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Hotel is a concrete property belonging to an accommodation type.
// Rating is nil when the property has not been rated; hotel lists order by
// rating descending with unrated properties last.
type Hotel struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	AccommodationTypeID uuid.UUID  `json:"accommodation_type_id"`
	DestinationID       *uuid.UUID `json:"destination_id,omitempty"`
	Description         string     `json:"description,omitempty"`
	ImageURL            string     `json:"image_url,omitempty"`
	Rating              *float64   `json:"rating,omitempty"`
	Amenities           []string   `json:"amenities,omitempty"`
	PricePerNight       float64    `json:"price_per_night"`
	Location            string     `json:"location,omitempty"`
	ContactEmail        string     `json:"contact_email,omitempty"`
	ContactPhone        string     `json:"contact_phone,omitempty"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Catalog is the immutable snapshot of the four option catalogs a wizard
// session reads. Activities, AccommodationTypes, and TransportOptions hold
// active rows only; Destinations are unfiltered (they carry no active flag).
type Catalog struct {
	Destinations       []Destination       `json:"destinations"`
	Activities         []Activity          `json:"activities"`
	AccommodationTypes []AccommodationType `json:"accommodation_types"`
	TransportOptions   []TransportOption   `json:"transport_options"`
}

// DestinationByName returns the destination with an exact name match.
// The wizard matches destinations by display name, not by id — this mirrors
// the denormalized destination→activity relation.
func (c Catalog) DestinationByName(name string) (Destination, bool) {
	for _, d := range c.Destinations {
		if d.Name == name {
			return d, true
		}
	}
	return Destination{}, false
}

// ActivityByName returns the active activity with the given name.
func (c Catalog) ActivityByName(name string) (Activity, bool) {
	for _, a := range c.Activities {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// AccommodationTypeBySlug returns the active accommodation type with the given slug.
func (c Catalog) AccommodationTypeBySlug(slug string) (AccommodationType, bool) {
	for _, a := range c.AccommodationTypes {
		if a.Slug == slug {
			return a, true
		}
	}
	return AccommodationType{}, false
}

// TransportOptionBySlug returns the active transport option with the given slug.
func (c Catalog) TransportOptionBySlug(slug string) (TransportOption, bool) {
	for _, t := range c.TransportOptions {
		if t.Slug == slug {
			return t, true
		}
	}
	return TransportOption{}, false
}
