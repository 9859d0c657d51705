package handler_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/handler"
	"github.com/safariswap/backend/internal/service"
)

// ---- shared wiring -----------------------------------------------------------

// testDeps collects the Server dependencies a test cares about; zero fields
// are fine for routes the test never touches.
type testDeps struct {
	wizard         *service.WizardManager
	destinations   handler.DestinationServicer
	activities     handler.ActivityServicer
	accommodations handler.AccommodationServicer
	transports     handler.TransportServicer
	hotels         handler.HotelServicer
	guard          func(http.Handler) http.Handler
}

// newTestRouter wires a Server the way main.go does, minus the middleware
// stack. A nil guard leaves the admin surface open.
func newTestRouter(deps testDeps) http.Handler {
	srv := handler.NewServer(
		deps.wizard,
		deps.destinations,
		deps.activities,
		deps.accommodations,
		deps.transports,
		deps.hotels,
		nil,
	)
	return srv.Routes(deps.guard)
}

// ---- mock servicers ----------------------------------------------------------

// mockDestinationServicer is a test double for handler.DestinationServicer.
// Set only the method fields your test needs.
type mockDestinationServicer struct {
	create  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	list    func(ctx context.Context) ([]domain.Destination, error)
	update  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDestinationServicer) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationServicer) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationServicer) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.update(ctx, d)
}
func (m *mockDestinationServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

// mockHotelServicer is a test double for handler.HotelServicer.
type mockHotelServicer struct {
	create           func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	listPaged        func(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error)
	listActiveByType func(ctx context.Context, typeID uuid.UUID) ([]domain.Hotel, error)
	update           func(ctx context.Context, h domain.Hotel) (domain.Hotel, error)
	delete           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockHotelServicer) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.create(ctx, h)
}
func (m *mockHotelServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	return m.getByID(ctx, id)
}
func (m *mockHotelServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockHotelServicer) ListActiveByType(ctx context.Context, typeID uuid.UUID) ([]domain.Hotel, error) {
	return m.listActiveByType(ctx, typeID)
}
func (m *mockHotelServicer) Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return m.update(ctx, h)
}
func (m *mockHotelServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.HotelServicer = (*mockHotelServicer)(nil)
