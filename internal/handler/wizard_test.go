package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/service"
)

// catalogSourceStub feeds a real WizardManager a fixed catalog without a
// database.
type catalogSourceStub struct {
	catalog domain.Catalog
	loadErr error
	hotels  map[uuid.UUID][]domain.Hotel
}

func (c *catalogSourceStub) LoadCatalogs(_ context.Context) (domain.Catalog, error) {
	if c.loadErr != nil {
		return domain.Catalog{}, c.loadErr
	}
	return c.catalog, nil
}

func (c *catalogSourceStub) HotelsForType(_ context.Context, typeID uuid.UUID) ([]domain.Hotel, error) {
	return c.hotels[typeID], nil
}

var _ service.CatalogSource = (*catalogSourceStub)(nil)

var wizardLodgeTypeID = uuid.New()

func wizardTestCatalog() domain.Catalog {
	return domain.Catalog{
		Destinations: []domain.Destination{
			{ID: uuid.New(), Name: "Serengeti", Country: "Tanzania",
				Activities: []string{"Game Drives", "Hot Air Balloon"}},
		},
		Activities: []domain.Activity{
			{ID: uuid.New(), Name: "Game Drives", PricePerPerson: 150, IsActive: true},
			{ID: uuid.New(), Name: "Hot Air Balloon", PricePerPerson: 450, IsActive: true},
		},
		AccommodationTypes: []domain.AccommodationType{
			{ID: wizardLodgeTypeID, Name: "Luxury Lodge", Slug: "luxury-lodge", PricePerNight: 300, IsActive: true},
		},
		TransportOptions: []domain.TransportOption{
			{ID: uuid.New(), Name: "Safari Van", Slug: "safari-van", PricePerPerson: 120, IsActive: true},
		},
	}
}

func newWizardRouter(source service.CatalogSource) http.Handler {
	manager := service.NewWizardManager(source, service.NewLogQuoteSender(nil), nil)
	return newTestRouter(testDeps{wizard: manager})
}

// postJSON drives one wizard mutation and decodes the refreshed view.
func postJSON(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, service.SessionView) {
	t.Helper()
	var rdr *bytes.Buffer
	if body == "" {
		rdr = &bytes.Buffer{}
	} else {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, rdr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var view service.SessionView
	if rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	}
	return rec, view
}

func createSession(t *testing.T, h http.Handler, seed string) service.SessionView {
	t.Helper()
	body := ""
	if seed != "" {
		body = fmt.Sprintf(`{"destination":%q}`, seed)
	}
	rec, view := postJSON(t, h, "/api/wizard", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	return view
}

func TestCreateWizardSession_EmptyBody(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})

	view := createSession(t, h, "")

	assert.Equal(t, domain.StepDestination, view.Draft.Step)
	assert.Equal(t, domain.DefaultTravelers, view.Draft.Travelers)
	assert.NotEqual(t, uuid.Nil, view.ID)
}

func TestCreateWizardSession_SeedDestination(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})

	view := createSession(t, h, "Serengeti")

	assert.Equal(t, "Serengeti", view.Draft.DestinationName)
	assert.Equal(t, []string{"Game Drives", "Hot Air Balloon"}, view.ResolvedActivities)
}

func TestCreateWizardSession_CatalogDown_Returns503(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{
		loadErr: fmt.Errorf("%w: connection refused", domain.ErrCatalogLoad),
	})

	rec, _ := postJSON(t, h, "/api/wizard", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetWizardSession_UnknownID_Returns404(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})

	req := httptest.NewRequest(http.MethodGet, "/api/wizard/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWizardFlow_StepOneThroughQuote(t *testing.T) {
	source := &catalogSourceStub{
		catalog: wizardTestCatalog(),
		hotels: map[uuid.UUID][]domain.Hotel{
			wizardLodgeTypeID: {{ID: uuid.New(), Name: "Mara River Lodge",
				AccommodationTypeID: wizardLodgeTypeID, IsActive: true}},
		},
	}
	h := newWizardRouter(source)

	view := createSession(t, h, "Serengeti")
	base := "/api/wizard/" + view.ID.String()

	// Advancing before dates are set is gated with 409.
	rec, _ := postJSON(t, h, base+"/advance", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = postJSON(t, h, base+"/dates", `{"from":"2026-07-10","to":"2026-07-13"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, view = postJSON(t, h, base+"/travelers", `{"travelers":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, view.Draft.Travelers)

	rec, view = postJSON(t, h, base+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepAccommodation, view.Draft.Step)

	rec, _ = postJSON(t, h, base+"/accommodation", `{"slug":"luxury-lodge"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The hotel refresh is asynchronous; poll the view until it lands.
	require.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, base, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		var v service.SessionView
		if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
			return false
		}
		return !v.HotelsLoading && len(v.Hotels) == 1
	}, time.Second, 5*time.Millisecond)

	rec, _ = postJSON(t, h, base+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = postJSON(t, h, base+"/transport", `{"slug":"safari-van"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Quote is still gated until the final step.
	rec, _ = postJSON(t, h, base+"/quote", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, view = postJSON(t, h, base+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.StepTransport, view.Draft.Step)

	// 3 nights x 2 x 300 lodge + (150+450) x 2 activities + 120 x 2 van.
	assert.InDelta(t, 1800+1200+240, view.Estimate.Total, 0.001)

	rec = func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, base+"/quote", &bytes.Buffer{})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}()
	require.Equal(t, http.StatusOK, rec.Code)

	var quote domain.QuoteSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&quote))
	assert.Equal(t, "Serengeti", quote.Destination)
	assert.Equal(t, "Luxury Lodge", quote.Accommodation)
	assert.InDelta(t, 3240, quote.Total, 0.001)
}

func TestWizardSelectAccommodation_UnknownSlug_Returns422(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})
	view := createSession(t, h, "")

	rec, _ := postJSON(t, h, "/api/wizard/"+view.ID.String()+"/accommodation", `{"slug":"treehouse"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWizardSetTravelers_OutOfRange_Returns422(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})
	view := createSession(t, h, "")

	rec, _ := postJSON(t, h, "/api/wizard/"+view.ID.String()+"/travelers", `{"travelers":25}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWizardSetDates_Reversed_Returns422(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})
	view := createSession(t, h, "")

	rec, _ := postJSON(t, h, "/api/wizard/"+view.ID.String()+"/dates", `{"from":"2026-07-13","to":"2026-07-10"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWizardEstimate_EmptyDraft(t *testing.T) {
	h := newWizardRouter(&catalogSourceStub{catalog: wizardTestCatalog()})
	view := createSession(t, h, "")

	req := httptest.NewRequest(http.MethodGet, "/api/wizard/"+view.ID.String()+"/estimate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var est domain.Estimate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&est))
	assert.Zero(t, est.Total)
	// Accommodation and transport line items are present at zero.
	require.Len(t, est.LineItems, 2)
}
