package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/domain"
)

func TestNewTripDraft_Defaults(t *testing.T) {
	d := domain.NewTripDraft()

	assert.Equal(t, domain.StepDestination, d.Step)
	assert.Equal(t, domain.DefaultTravelers, d.Travelers)
	assert.Empty(t, d.Activities)
	assert.Nil(t, d.Dates)
}

func TestDateRange_Nights(t *testing.T) {
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, domain.DateRange{From: from, To: from.AddDate(0, 0, 3)}.Nights())
	assert.Equal(t, 0, domain.DateRange{From: from, To: from}.Nights())
	// Never negative, even for a range built without validation.
	assert.Equal(t, 0, domain.DateRange{From: from, To: from.AddDate(0, 0, -2)}.Nights())
}

func TestSetDates_RejectsReversedRange(t *testing.T) {
	d := domain.NewTripDraft()
	from := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	err := d.SetDates(domain.DateRange{From: from, To: from.AddDate(0, 0, -1)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, d.Dates, "draft must be left unchanged")
}

func TestSetTravelers_Bounds(t *testing.T) {
	d := domain.NewTripDraft()

	require.NoError(t, d.SetTravelers(20))
	assert.Equal(t, 20, d.Travelers)

	err := d.SetTravelers(25)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 20, d.Travelers, "rejected value must not stick")

	assert.ErrorIs(t, d.SetTravelers(0), domain.ErrInvalidInput)
}

func TestSelectDestination_SeedsDefaultSelection(t *testing.T) {
	d := domain.NewTripDraft()

	d.SelectDestination("Serengeti National Park, Tanzania", []string{"Game Drives", "Bird Watching"})

	// Both, since only two resolve.
	assert.Equal(t, []string{"Game Drives", "Bird Watching"}, d.Activities)

	// Changing destination resets the selection to the new default.
	d.ToggleActivity("Game Drives", []string{"Game Drives", "Bird Watching"})
	d.SelectDestination("Maasai Mara, Kenya", []string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b"}, d.Activities)
}

func TestToggleActivity_DoubleToggleRestoresState(t *testing.T) {
	resolved := []string{"Game Drives", "Bird Watching"}
	d := domain.NewTripDraft()
	d.SelectDestination("Serengeti National Park, Tanzania", resolved)

	before := append([]string(nil), d.Activities...)
	d.ToggleActivity("Bird Watching", resolved)
	d.ToggleActivity("Bird Watching", resolved)

	assert.Equal(t, before, d.Activities)
}

func TestToggleActivity_IgnoresUnresolvedNames(t *testing.T) {
	resolved := []string{"Game Drives"}
	d := domain.NewTripDraft()
	d.SelectDestination("Serengeti National Park, Tanzania", resolved)

	d.ToggleActivity("Scuba Diving", resolved)

	assert.NotContains(t, d.Activities, "Scuba Diving")
}

func TestAdvance_StepOnePredicate(t *testing.T) {
	d := domain.NewTripDraft()

	// Nothing set: destination and dates both missing.
	err := d.Advance()
	require.ErrorIs(t, err, domain.ErrStepIncomplete)
	assert.Contains(t, err.Error(), "destination")
	assert.Equal(t, domain.StepDestination, d.Step)

	// Destination only: the error must name the dates.
	d.DestinationName = "Serengeti National Park, Tanzania"
	err = d.Advance()
	require.ErrorIs(t, err, domain.ErrStepIncomplete)
	assert.Contains(t, err.Error(), "dates")
	assert.Equal(t, domain.StepDestination, d.Step)

	// Complete step 1 advances.
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.SetDates(domain.DateRange{From: from, To: from.AddDate(0, 0, 3)}))
	require.NoError(t, d.Advance())
	assert.Equal(t, domain.StepAccommodation, d.Step)
}

func TestAdvance_LaterStepsAreOptional(t *testing.T) {
	d := completeStepOneDraft(t)

	require.NoError(t, d.Advance()) // → 2, nothing chosen
	require.NoError(t, d.Advance()) // → 3
	require.NoError(t, d.Advance()) // → 4
	assert.Equal(t, domain.StepTransport, d.Step)

	// There is no step 5 — from here the only action is requesting a quote.
	assert.ErrorIs(t, d.Advance(), domain.ErrInvalidInput)
	assert.Equal(t, domain.StepTransport, d.Step)
}

func TestRetreat_NoOpAtStepOne(t *testing.T) {
	d := domain.NewTripDraft()

	d.Retreat()

	assert.Equal(t, domain.StepDestination, d.Step)
}

func TestSelectAccommodation_ClearsInconsistentHotel(t *testing.T) {
	d := completeStepOneDraft(t)
	d.SelectAccommodation("luxury-lodge")

	hotel := domain.Hotel{ID: uuid.New(), Name: "Mara Lodge", IsActive: true}
	require.NoError(t, d.SelectHotel(hotel.ID, []domain.Hotel{hotel}))
	require.NotNil(t, d.HotelID)

	// Switching away from the owning type clears the hotel.
	d.SelectAccommodation("tented-camp")
	assert.Nil(t, d.HotelID)

	// Re-selecting the same value keeps it.
	require.NoError(t, d.SelectHotel(hotel.ID, []domain.Hotel{hotel}))
	d.SelectAccommodation("tented-camp")
	assert.NotNil(t, d.HotelID)

	// Choosing "none" clears it too.
	d.SelectAccommodation(domain.SelectionNone)
	assert.Nil(t, d.HotelID)
}

func TestSelectHotel_RequiresAccommodationAndAvailability(t *testing.T) {
	d := completeStepOneDraft(t)
	hotel := domain.Hotel{ID: uuid.New()}

	err := d.SelectHotel(hotel.ID, []domain.Hotel{hotel})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no accommodation selected yet")

	d.SelectAccommodation("luxury-lodge")
	err = d.SelectHotel(uuid.New(), []domain.Hotel{hotel})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "hotel not in the available list")
	assert.Nil(t, d.HotelID)

	require.NoError(t, d.SelectHotel(hotel.ID, []domain.Hotel{hotel}))
	assert.Equal(t, hotel.ID, *d.HotelID)
}

// completeStepOneDraft returns a draft whose step-1 predicate holds.
func completeStepOneDraft(t *testing.T) domain.TripDraft {
	t.Helper()
	d := domain.NewTripDraft()
	d.DestinationName = "Serengeti National Park, Tanzania"
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.SetDates(domain.DateRange{From: from, To: from.AddDate(0, 0, 3)}))
	return d
}
