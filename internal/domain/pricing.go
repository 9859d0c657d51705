package domain

// LineItemKind distinguishes the three sections of a price breakdown.
type LineItemKind string

// Line item kinds, in display order.
const (
	LineItemAccommodation LineItemKind = "accommodation"
	LineItemActivity      LineItemKind = "activity"
	LineItemTransport     LineItemKind = "transport"
)

// LineItem is one row of the price breakdown.
type LineItem struct {
	Kind   LineItemKind `json:"kind"`
	Label  string       `json:"label"`
	Amount float64      `json:"amount"`
}

// Estimate is the output of the pricing engine: a total and a breakdown in
// the fixed order [accommodation, each activity, transport]. That ordering is
// a contract — the quote display and quote email both rely on it.
//
// Drift lists selected names/slugs that no longer price against the catalog.
// Drift is expected transient state (catalogs load asynchronously, admins
// deactivate rows); it is reported for logging, never treated as an error.
type Estimate struct {
	Total     float64    `json:"total"`
	LineItems []LineItem `json:"line_items"`
	Drift     []string   `json:"-"`
}

// ComputeEstimate prices a draft against a catalog snapshot. It is pure and
// side-effect free: the same (draft, catalog) always yields the same
// Estimate, so callers may recompute after every mutation.
//
// Terms are additive, no rounding:
//
//	accommodation = price_per_night × nights × travelers (0 without dates)
//	each activity = price_per_person × travelers
//	transport     = price_per_person × travelers
//
// Selections the catalog cannot price contribute 0 and are listed in Drift.
// The accommodation and transport line items are present even when the
// selection is empty or "none", at amount 0, so the breakdown shape is stable.
func ComputeEstimate(draft TripDraft, catalog Catalog) Estimate {
	var est Estimate

	// Accommodation: no free-floating nightly charge without a duration.
	accom := LineItem{Kind: LineItemAccommodation, Label: "Accommodation"}
	if draft.Accommodation != "" && draft.Accommodation != SelectionNone {
		if at, ok := catalog.AccommodationTypeBySlug(draft.Accommodation); ok {
			accom.Label = at.Name
			accom.Amount = at.PricePerNight * float64(draft.Nights()) * float64(draft.Travelers)
		} else {
			accom.Label = draft.Accommodation
			est.Drift = append(est.Drift, draft.Accommodation)
		}
	}
	est.LineItems = append(est.LineItems, accom)
	est.Total += accom.Amount

	for _, name := range draft.Activities {
		item := LineItem{Kind: LineItemActivity, Label: name}
		if a, ok := catalog.ActivityByName(name); ok {
			item.Amount = a.PricePerPerson * float64(draft.Travelers)
		} else {
			est.Drift = append(est.Drift, name)
		}
		est.LineItems = append(est.LineItems, item)
		est.Total += item.Amount
	}

	transport := LineItem{Kind: LineItemTransport, Label: "Transport"}
	if draft.Transport != "" && draft.Transport != SelectionNone {
		if t, ok := catalog.TransportOptionBySlug(draft.Transport); ok {
			transport.Label = t.Name
			transport.Amount = t.PricePerPerson * float64(draft.Travelers)
		} else {
			transport.Label = draft.Transport
			est.Drift = append(est.Drift, draft.Transport)
		}
	}
	est.LineItems = append(est.LineItems, transport)
	est.Total += transport.Amount

	return est
}
