// Package handler implements the HTTP surface of the SafariSwap API.
// All handlers are methods on Server, split into domain-specific files
// (catalog.go, wizard.go, destination.go, ...) but sharing the one struct
// so they can access its dependencies. Routing lives in Routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/service"
)

// The servicer interfaces define the business operations the handlers
// depend on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject mocks without touching the database or service layer.

// DestinationServicer covers destination reads and admin writes.
type DestinationServicer interface {
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	Update(ctx context.Context, d domain.Destination) (domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer covers activity reads and admin writes.
type ActivityServicer interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	ListActive(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccommodationServicer covers accommodation-type reads and admin writes.
type AccommodationServicer interface {
	Create(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.AccommodationType, error)
	List(ctx context.Context) ([]domain.AccommodationType, error)
	ListActive(ctx context.Context) ([]domain.AccommodationType, error)
	Update(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransportServicer covers transport-option reads and admin writes.
type TransportServicer interface {
	Create(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TransportOption, error)
	List(ctx context.Context) ([]domain.TransportOption, error)
	ListActive(ctx context.Context) ([]domain.TransportOption, error)
	Update(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// HotelServicer covers hotel reads and admin writes.
type HotelServicer interface {
	Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error)
	ListActiveByType(ctx context.Context, typeID uuid.UUID) ([]domain.Hotel, error)
	Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the dependencies for every endpoint. The wizard manager is
// concrete: it is in-memory and cheap, so tests construct a real one with a
// mocked catalog source.
type Server struct {
	wizard         *service.WizardManager
	destinations   DestinationServicer
	activities     ActivityServicer
	accommodations AccommodationServicer
	transports     TransportServicer
	hotels         HotelServicer
	log            *slog.Logger
}

// NewServer constructs the Server with all its dependencies. A nil logger
// falls back to slog.Default.
func NewServer(
	wizard *service.WizardManager,
	destinations DestinationServicer,
	activities ActivityServicer,
	accommodations AccommodationServicer,
	transports TransportServicer,
	hotels HotelServicer,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		wizard:         wizard,
		destinations:   destinations,
		activities:     activities,
		accommodations: accommodations,
		transports:     transports,
		hotels:         hotels,
		log:            log,
	}
}

// Routes mounts every endpoint on a fresh router. guard wraps the
// authenticated surface (admin CRUD and /api/auth/me); pass
// auth.Verifier.RequireUser in production, nil to leave it open in tests.
func (s *Server) Routes(guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/api", func(r chi.Router) {
		// Public catalog reads.
		r.Get("/destinations", s.listDestinations)
		r.Get("/activities", s.listActiveActivities)
		r.Get("/accommodation-types", s.listActiveAccommodationTypes)
		r.Get("/accommodation-types/{id}/hotels", s.listHotelsByType)
		r.Get("/transport-options", s.listActiveTransportOptions)

		// Wizard sessions.
		r.Route("/wizard", func(r chi.Router) {
			r.Post("/", s.createWizardSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getWizardSession)
				r.Post("/destination", s.wizardSelectDestination)
				r.Post("/dates", s.wizardSetDates)
				r.Post("/travelers", s.wizardSetTravelers)
				r.Post("/accommodation", s.wizardSelectAccommodation)
				r.Post("/hotel", s.wizardSelectHotel)
				r.Post("/activities/toggle", s.wizardToggleActivity)
				r.Post("/transport", s.wizardSelectTransport)
				r.Post("/advance", s.wizardAdvance)
				r.Post("/retreat", s.wizardRetreat)
				r.Get("/estimate", s.wizardEstimate)
				r.Post("/quote", s.wizardRequestQuote)
			})
		})

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			if guard != nil {
				r.Use(guard)
			}
			r.Get("/auth/me", s.getMe)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/suggestions", s.getSuggestions)

				r.Get("/destinations", s.listDestinations)
				r.Post("/destinations", s.createDestination)
				r.Get("/destinations/{id}", s.getDestination)
				r.Put("/destinations/{id}", s.updateDestination)
				r.Delete("/destinations/{id}", s.deleteDestination)

				r.Get("/activities", s.listActivities)
				r.Post("/activities", s.createActivity)
				r.Get("/activities/{id}", s.getActivity)
				r.Put("/activities/{id}", s.updateActivity)
				r.Delete("/activities/{id}", s.deleteActivity)

				r.Get("/accommodation-types", s.listAccommodationTypes)
				r.Post("/accommodation-types", s.createAccommodationType)
				r.Get("/accommodation-types/{id}", s.getAccommodationType)
				r.Put("/accommodation-types/{id}", s.updateAccommodationType)
				r.Delete("/accommodation-types/{id}", s.deleteAccommodationType)

				r.Get("/transport-options", s.listTransportOptions)
				r.Post("/transport-options", s.createTransportOption)
				r.Get("/transport-options/{id}", s.getTransportOption)
				r.Put("/transport-options/{id}", s.updateTransportOption)
				r.Delete("/transport-options/{id}", s.deleteTransportOption)

				r.Get("/hotels", s.listHotels)
				r.Post("/hotels", s.createHotel)
				r.Get("/hotels/{id}", s.getHotel)
				r.Put("/hotels/{id}", s.updateHotel)
				r.Delete("/hotels/{id}", s.deleteHotel)
			})
		})
	})

	return r
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
