package domain

import "time"

// QuoteActivity is one selected activity with its per-person price, as it
// should appear in the quote a traveller receives.
type QuoteActivity struct {
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"price_per_person"`
}

// QuoteSnapshot is the finalized view of a trip draft handed to the
// quote-dispatch collaborator. It is self-contained: everything needed to
// render a human-readable quote is denormalized in, so the dispatcher never
// re-queries the catalogs.
type QuoteSnapshot struct {
	Destination   string          `json:"destination"`
	Dates         *DateRange      `json:"dates,omitempty"`
	Travelers     int             `json:"travelers"`
	Accommodation string          `json:"accommodation"` // display label, "None" when skipped
	Hotel         string          `json:"hotel,omitempty"`
	Activities    []QuoteActivity `json:"activities"`
	Transport     string          `json:"transport"` // display label, "None" when skipped
	LineItems     []LineItem      `json:"line_items"`
	Total         float64         `json:"total"`
	RequestedAt   time.Time       `json:"requested_at"`
}

// BuildQuote freezes a draft into a QuoteSnapshot using the same pricing the
// wizard displayed. hotels is the session's current hotel list, used only to
// resolve the selected hotel's display name.
func BuildQuote(draft TripDraft, catalog Catalog, hotels []Hotel, now time.Time) QuoteSnapshot {
	est := ComputeEstimate(draft, catalog)

	q := QuoteSnapshot{
		Destination:   draft.DestinationName,
		Dates:         draft.Dates,
		Travelers:     draft.Travelers,
		Accommodation: "None",
		Activities:    []QuoteActivity{},
		Transport:     "None",
		LineItems:     est.LineItems,
		Total:         est.Total,
		RequestedAt:   now,
	}

	if draft.Accommodation != "" && draft.Accommodation != SelectionNone {
		if at, ok := catalog.AccommodationTypeBySlug(draft.Accommodation); ok {
			q.Accommodation = at.Name
		} else {
			q.Accommodation = draft.Accommodation
		}
	}
	if draft.HotelID != nil {
		for _, h := range hotels {
			if h.ID == *draft.HotelID {
				q.Hotel = h.Name
				break
			}
		}
	}
	for _, name := range draft.Activities {
		qa := QuoteActivity{Name: name}
		if a, ok := catalog.ActivityByName(name); ok {
			qa.PricePerPerson = a.PricePerPerson
		}
		q.Activities = append(q.Activities, qa)
	}
	if draft.Transport != "" && draft.Transport != SelectionNone {
		if t, ok := catalog.TransportOptionBySlug(draft.Transport); ok {
			q.Transport = t.Name
		} else {
			q.Transport = draft.Transport
		}
	}

	return q
}
