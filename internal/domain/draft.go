package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wizard steps, in order. The draft starts at StepDestination and the quote
// action is only offered from StepTransport.
const (
	StepDestination   = 1
	StepAccommodation = 2
	StepActivities    = 3
	StepTransport     = 4
)

// Traveler count bounds. Values outside the range are rejected, not clamped,
// so the caller can re-prompt.
const (
	MinTravelers     = 1
	MaxTravelers     = 20
	DefaultTravelers = 2
)

// SelectionNone is the explicit "no thanks" value for the optional
// accommodation and transport selections. Distinct from the empty string,
// which means the user has not chosen yet; both price to zero.
const SelectionNone = "none"

// DateRange is a closed travel window. From and To are date-valued;
// From == To is a day trip (zero nights).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Nights returns the number of nights the range spans, never negative.
func (r DateRange) Nights() int {
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, time.UTC)
	n := int(to.Sub(from) / (24 * time.Hour))
	if n < 0 {
		return 0
	}
	return n
}

// TripDraft is the wizard's central mutable aggregate: every selection the
// user makes lands here, and the pricing engine reads it back out. A draft
// lives only in memory for the duration of one wizard session — it is never
// persisted.
//
// All mutations go through the methods below so the cross-field invariants
// hold at every point: Activities stays a subset of the resolver's output
// for DestinationName, and HotelID never outlives the accommodation
// selection that scoped it.
type TripDraft struct {
	DestinationName string     `json:"destination_name"`
	Dates           *DateRange `json:"dates,omitempty"`
	Travelers       int        `json:"travelers"`
	Accommodation   string     `json:"accommodation"` // slug, SelectionNone, or empty
	HotelID         *uuid.UUID `json:"hotel_id,omitempty"`
	Activities      []string   `json:"activities"`
	Transport       string     `json:"transport"` // slug, SelectionNone, or empty
	Step            int        `json:"step"`
}

// NewTripDraft returns a fresh draft at step 1 with the default traveler count.
func NewTripDraft() TripDraft {
	return TripDraft{
		Travelers:  DefaultTravelers,
		Activities: []string{},
		Step:       StepDestination,
	}
}

// Nights returns the nights spanned by the draft's date range, or 0 when the
// range is unset. A selected accommodation contributes nothing to the price
// until dates exist.
func (d *TripDraft) Nights() int {
	if d.Dates == nil {
		return 0
	}
	return d.Dates.Nights()
}

// SelectDestination sets the destination and resets the activity selection to
// the resolver's default suggestion: the first two resolved names, or none.
// resolved must be the resolver's output for name.
func (d *TripDraft) SelectDestination(name string, resolved []string) {
	d.DestinationName = name
	d.Activities = DefaultSelection(resolved)
}

// SetDates replaces the date range. A range whose end precedes its start is
// rejected with ErrInvalidInput and the draft is left unchanged.
func (d *TripDraft) SetDates(r DateRange) error {
	if r.To.Before(r.From) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	d.Dates = &r
	return nil
}

// SetTravelers replaces the traveler count. Values outside
// [MinTravelers, MaxTravelers] are rejected with ErrInvalidInput.
func (d *TripDraft) SetTravelers(n int) error {
	if n < MinTravelers || n > MaxTravelers {
		return fmt.Errorf("%w: traveler count must be between %d and %d", ErrInvalidInput, MinTravelers, MaxTravelers)
	}
	d.Travelers = n
	return nil
}

// SelectAccommodation sets the accommodation selection. Any change of value
// clears the selected hotel, because a hotel is only meaningful under the
// accommodation type that owned it when it was chosen. Re-selecting the
// current value keeps the hotel.
func (d *TripDraft) SelectAccommodation(slugOrNone string) {
	if slugOrNone != d.Accommodation {
		d.HotelID = nil
	}
	d.Accommodation = slugOrNone
}

// SelectHotel records a hotel choice. The draft must have a concrete
// accommodation selection, and the hotel must be one of the hotels fetched
// for that selection; anything else is rejected with ErrInvalidInput.
func (d *TripDraft) SelectHotel(id uuid.UUID, available []Hotel) error {
	if d.Accommodation == "" || d.Accommodation == SelectionNone {
		return fmt.Errorf("%w: select an accommodation style before choosing a hotel", ErrInvalidInput)
	}
	for _, h := range available {
		if h.ID == id {
			hid := id
			d.HotelID = &hid
			return nil
		}
	}
	return fmt.Errorf("%w: hotel is not available for the selected accommodation style", ErrInvalidInput)
}

// ToggleActivity adds name to the activity selection if absent, removes it if
// present. Names outside the resolver's current list are ignored — the UI
// should never offer them, but the draft must not accept drift either.
func (d *TripDraft) ToggleActivity(name string, resolved []string) {
	offered := false
	for _, r := range resolved {
		if r == name {
			offered = true
			break
		}
	}
	if !offered {
		return
	}
	for i, a := range d.Activities {
		if a == name {
			d.Activities = append(d.Activities[:i], d.Activities[i+1:]...)
			return
		}
	}
	d.Activities = append(d.Activities, name)
}

// SelectTransport sets the transport selection.
func (d *TripDraft) SelectTransport(slugOrNone string) {
	d.Transport = slugOrNone
}

// Advance moves to the next step. Leaving step 1 requires a destination, a
// complete date range, and a valid traveler count; steps 2–4 are optional
// and always pass. At the last step Advance is rejected — the only action
// left is requesting a quote.
func (d *TripDraft) Advance() error {
	if d.Step >= StepTransport {
		return fmt.Errorf("%w: already at the last step", ErrInvalidInput)
	}
	if d.Step == StepDestination {
		if missing := d.missingForStepOne(); len(missing) > 0 {
			return fmt.Errorf("%w: step 1 requires %s", ErrStepIncomplete, strings.Join(missing, ", "))
		}
	}
	d.Step++
	return nil
}

// Retreat moves to the previous step. A no-op, not an error, at step 1.
func (d *TripDraft) Retreat() {
	if d.Step > StepDestination {
		d.Step--
	}
}

// missingForStepOne names the step-1 inputs that are still missing or invalid.
func (d *TripDraft) missingForStepOne() []string {
	var missing []string
	if strings.TrimSpace(d.DestinationName) == "" {
		missing = append(missing, "destination")
	}
	if d.Dates == nil {
		missing = append(missing, "dates")
	}
	if d.Travelers < MinTravelers {
		missing = append(missing, "traveler count")
	}
	return missing
}
