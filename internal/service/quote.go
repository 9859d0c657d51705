package service

import (
	"context"
	"log/slog"

	"github.com/safariswap/backend/internal/domain"
)

// QuoteSender delivers a finalized quote snapshot to the traveller. The
// snapshot is self-contained, so implementations never need the catalogs.
type QuoteSender interface {
	Send(ctx context.Context, q domain.QuoteSnapshot) error
}

// LogQuoteSender is the stubbed message-send collaborator: it writes the
// quote to the structured log instead of dispatching an email. Swap in a
// real sender when the mail integration lands.
type LogQuoteSender struct {
	log *slog.Logger
}

// NewLogQuoteSender constructs a LogQuoteSender. A nil logger falls back to
// slog.Default.
func NewLogQuoteSender(log *slog.Logger) *LogQuoteSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogQuoteSender{log: log}
}

// Send logs the quote and reports success.
func (s *LogQuoteSender) Send(ctx context.Context, q domain.QuoteSnapshot) error {
	s.log.InfoContext(ctx, "quote requested",
		"destination", q.Destination,
		"travelers", q.Travelers,
		"accommodation", q.Accommodation,
		"transport", q.Transport,
		"activities", len(q.Activities),
		"total", q.Total,
	)
	return nil
}
