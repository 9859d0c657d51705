package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when admin input fails
// business rule validation (e.g. missing name, negative price).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCatalogLoad is returned when one or more catalog fetches fail.
// The load is all-or-nothing, so the wizard never sees a partial snapshot.
// Fatal to the session until retried; handlers map this to HTTP 503.
var ErrCatalogLoad = errors.New("catalog load failed")

// ErrStepIncomplete is returned by TripDraft.Advance when the current step's
// completeness predicate does not hold. The wrapped message names the missing
// inputs so the caller can surface a field-level message. Recoverable; the
// draft is left unchanged. Handlers map this to HTTP 409.
var ErrStepIncomplete = errors.New("step incomplete")

// ErrInvalidInput is returned by TripDraft mutators when a value is rejected
// at the mutation boundary (traveler count outside bounds, end date before
// start date, a selection the catalog does not offer). Recoverable; the
// draft is left unchanged. Handlers map this to HTTP 422.
var ErrInvalidInput = errors.New("invalid input")
