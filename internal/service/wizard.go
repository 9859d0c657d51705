package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
)

// CatalogSource defines the catalog operations the wizard depends on.
// Defining the interface here (in the consumer) follows the Go convention:
// "accept interfaces, return concrete types". CatalogService satisfies it;
// tests inject a mock.
type CatalogSource interface {
	LoadCatalogs(ctx context.Context) (domain.Catalog, error)
	HotelsForType(ctx context.Context, accommodationTypeID uuid.UUID) ([]domain.Hotel, error)
}

// sessionIdleTTL is how long a session may sit untouched before the manager
// drops it. Drafts are throwaway (a page reload starts over), so an
// abandoned session is only occupied memory.
const sessionIdleTTL = 2 * time.Hour

// WizardManager owns the in-memory wizard sessions. Sessions are never
// persisted — a page reload starts a fresh trip draft, which is the
// reference behavior. Sessions untouched past idleTTL are evicted so the
// map does not grow without bound.
type WizardManager struct {
	source  CatalogSource
	sender  QuoteSender
	log     *slog.Logger
	idleTTL time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewWizardManager constructs a WizardManager.
func NewWizardManager(source CatalogSource, sender QuoteSender, log *slog.Logger) *WizardManager {
	if log == nil {
		log = slog.Default()
	}
	return &WizardManager{
		source:   source,
		sender:   sender,
		log:      log,
		idleTTL:  sessionIdleTTL,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new wizard session. The catalog snapshot is loaded up
// front and all-or-nothing, so the session can never observe a partial
// catalog; on failure the error wraps domain.ErrCatalogLoad and no session
// is created — retrying means calling Create again.
//
// seedDestination, when non-empty, pre-selects a destination passed in from
// a referring page (e.g. a destination card's "build a trip" button).
func (m *WizardManager) Create(ctx context.Context, seedDestination string) (*Session, error) {
	cat, err := m.source.LoadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WizardManager.Create: %w", err)
	}

	now := time.Now()
	s := &Session{
		ID:          uuid.New(),
		source:      m.source,
		log:         m.log,
		catalog:     cat,
		draft:       domain.NewTripDraft(),
		hotels:      []domain.Hotel{},
		lastTouched: now,
	}
	if seedDestination != "" {
		resolved := domain.ResolveActivities(seedDestination, cat.Destinations, cat.Activities)
		s.draft.SelectDestination(seedDestination, resolved)
	}

	m.mu.Lock()
	m.evictIdleLocked(now)
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the session with the given id, or domain.ErrNotFound.
// A hit refreshes the session's idle clock.
func (m *WizardManager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service.WizardManager.Get: %w", domain.ErrNotFound)
	}
	s.touch(time.Now())
	return s, nil
}

// evictIdleLocked drops sessions untouched for longer than idleTTL. The map
// only grows in Create, so sweeping there bounds it. Callers must hold m.mu
// for writing.
func (m *WizardManager) evictIdleLocked(now time.Time) {
	for id, s := range m.sessions {
		if now.Sub(s.touchedAt()) > m.idleTTL {
			delete(m.sessions, id)
		}
	}
}

// RequestQuote freezes the session into a QuoteSnapshot and hands it to the
// quote sender. Available only from the final step.
func (m *WizardManager) RequestQuote(ctx context.Context, id uuid.UUID) (domain.QuoteSnapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return domain.QuoteSnapshot{}, err
	}
	q, err := s.Quote(time.Now().UTC())
	if err != nil {
		return domain.QuoteSnapshot{}, err
	}
	if err := m.sender.Send(ctx, q); err != nil {
		return domain.QuoteSnapshot{}, fmt.Errorf("service.WizardManager.RequestQuote: %w", err)
	}
	return q, nil
}

// Session is one traveller's trip-builder session: the mutable trip draft,
// the catalog snapshot it selects from, and the hotel list for the current
// accommodation selection. All access goes through the mutex — the draft has
// a single owner, but HTTP requests and hotel-fetch completions race.
type Session struct {
	ID uuid.UUID

	source CatalogSource
	log    *slog.Logger

	mu          sync.Mutex
	catalog     domain.Catalog
	draft       domain.TripDraft
	hotels      []domain.Hotel
	lastTouched time.Time

	// hotelToken is a monotonic generation counter for hotel fetches.
	// A completion only lands if its captured token is still current, which
	// makes last-request-wins explicit rather than a timing accident.
	hotelToken   uint64
	hotelLoading bool
}

// SessionView is the read model the rendering layer consumes: the draft, the
// derived activity list, the hotel list for the current accommodation (plus
// whether a refresh is in flight), and the price breakdown. Recomputed on
// every read.
type SessionView struct {
	ID                 uuid.UUID        `json:"id"`
	Draft              domain.TripDraft `json:"draft"`
	ResolvedActivities []string         `json:"resolved_activities"`
	Hotels             []domain.Hotel   `json:"hotels"`
	HotelsLoading      bool             `json:"hotels_loading"`
	Estimate           domain.Estimate  `json:"estimate"`
}

// View returns a consistent snapshot of the session.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		ID:                 s.ID,
		Draft:              s.draft,
		ResolvedActivities: s.resolvedLocked(),
		Hotels:             s.hotels,
		HotelsLoading:      s.hotelLoading,
		Estimate:           s.estimateLocked(),
	}
}

// touch refreshes the session's idle clock.
func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastTouched = now
	s.mu.Unlock()
}

// touchedAt reports when the session was last used.
func (s *Session) touchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

// Catalog returns the session's immutable catalog snapshot.
func (s *Session) Catalog() domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// SelectDestination sets the destination and reseeds the activity selection
// from the resolver's default suggestion.
func (s *Session) SelectDestination(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resolved := domain.ResolveActivities(name, s.catalog.Destinations, s.catalog.Activities)
	s.draft.SelectDestination(name, resolved)
}

// SetDates replaces the draft's date range.
func (s *Session) SetDates(r domain.DateRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.SetDates(r)
}

// SetTravelers replaces the draft's traveler count.
func (s *Session) SetTravelers(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.SetTravelers(n)
}

// SelectAccommodation sets the accommodation selection and kicks off an
// asynchronous hotel refresh for a concrete selection. A selection the
// catalog does not offer is rejected with domain.ErrInvalidInput.
//
// Rapid successive selections may resolve out of order; the generation token
// discards every completion except the latest request's.
func (s *Session) SelectAccommodation(ctx context.Context, slugOrNone string) error {
	s.mu.Lock()

	var typeID uuid.UUID
	concrete := slugOrNone != "" && slugOrNone != domain.SelectionNone
	if concrete {
		at, ok := s.catalog.AccommodationTypeBySlug(slugOrNone)
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("%w: unknown accommodation style %q", domain.ErrInvalidInput, slugOrNone)
		}
		typeID = at.ID
	}

	s.draft.SelectAccommodation(slugOrNone)
	s.hotelToken++
	token := s.hotelToken

	if !concrete {
		s.hotels = []domain.Hotel{}
		s.hotelLoading = false
		s.mu.Unlock()
		return nil
	}

	// The previous style's hotel list is invalid the instant the selection
	// changes; empty it now so no hotel can be chosen against the stale list
	// while the refresh is in flight.
	s.hotels = []domain.Hotel{}
	s.hotelLoading = true
	s.mu.Unlock()

	// The fetch outlives the triggering request; detach from its cancelation
	// but keep its values (request id, trace context).
	go s.fetchHotels(context.WithoutCancel(ctx), token, typeID)
	return nil
}

// fetchHotels loads the hotel list for typeID and installs it only if token
// is still the current generation. Superseded results are discarded on
// arrival — fetches are idempotent reads, so nothing is canceled in flight.
func (s *Session) fetchHotels(ctx context.Context, token uint64, typeID uuid.UUID) {
	hotels, err := s.source.HotelsForType(ctx, typeID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.hotelToken {
		return // a newer selection superseded this fetch
	}
	s.hotelLoading = false
	if err != nil {
		s.log.Warn("hotel refresh failed", "session_id", s.ID, "error", err)
		s.hotels = []domain.Hotel{}
		return
	}
	s.hotels = hotels
}

// SelectHotel records a hotel choice from the current hotel list.
func (s *Session) SelectHotel(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.SelectHotel(id, s.hotels)
}

// ToggleActivity flips one activity in the draft's selection. Names outside
// the resolver's current list are ignored.
func (s *Session) ToggleActivity(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.ToggleActivity(name, s.resolvedLocked())
}

// SelectTransport sets the transport selection. A selection the catalog does
// not offer is rejected with domain.ErrInvalidInput.
func (s *Session) SelectTransport(slugOrNone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slugOrNone != "" && slugOrNone != domain.SelectionNone {
		if _, ok := s.catalog.TransportOptionBySlug(slugOrNone); !ok {
			return fmt.Errorf("%w: unknown transport option %q", domain.ErrInvalidInput, slugOrNone)
		}
	}
	s.draft.SelectTransport(slugOrNone)
	return nil
}

// Advance moves the wizard to the next step, gated by the current step's
// completeness predicate.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Advance()
}

// Retreat moves the wizard to the previous step; a no-op at step 1.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Retreat()
}

// Estimate prices the current draft. Pure recomputation — safe to call after
// every mutation. Activity drift is logged, never an error.
func (s *Session) Estimate() domain.Estimate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimateLocked()
}

// Quote freezes the session into a QuoteSnapshot. Only offered from the
// final step; earlier steps get domain.ErrStepIncomplete.
func (s *Session) Quote(now time.Time) (domain.QuoteSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Step != domain.StepTransport {
		return domain.QuoteSnapshot{}, fmt.Errorf("%w: a quote is available from the final step", domain.ErrStepIncomplete)
	}
	return domain.BuildQuote(s.draft, s.catalog, s.hotels, now), nil
}

// resolvedLocked derives the activity list for the current destination.
// Callers must hold s.mu.
func (s *Session) resolvedLocked() []string {
	return domain.ResolveActivities(s.draft.DestinationName, s.catalog.Destinations, s.catalog.Activities)
}

// estimateLocked prices the draft and logs any drift. Callers must hold s.mu.
func (s *Session) estimateLocked() domain.Estimate {
	est := domain.ComputeEstimate(s.draft, s.catalog)
	if len(est.Drift) > 0 {
		s.log.Warn("selection no longer prices against the catalog",
			"session_id", s.ID, "names", est.Drift)
	}
	return est
}
