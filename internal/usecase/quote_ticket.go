package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/skyfare/internal/domain"
)

type QuoteTicket struct {
	policy domain.PricingPolicy
	log    *slog.Logger
	now    func() time.Time
}

type QuoteOption func(*QuoteTicket)

func WithLogger(l *slog.Logger) QuoteOption {
	return func(uc *QuoteTicket) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithClock(now func() time.Time) QuoteOption {
	return func(uc *QuoteTicket) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewQuoteTicket(policy domain.PricingPolicy, opts ...QuoteOption) *QuoteTicket {
	uc := &QuoteTicket{
		policy: policy,
		log:    discardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute rejects tickets the policy cannot quote and prices the rest.
func (uc *QuoteTicket) Execute(ctx context.Context, t domain.Ticket) (domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, err
	}
	if err := uc.policy.CheckTicket(t); err != nil {
		uc.log.Warn("quote.rejected", "miles", t.NumberOfMiles(), "err", err)
		return domain.Quote{}, err
	}

	q := domain.NewQuote(uc.policy, t, uc.now())
	uc.log.Info("quote.ok",
		"quote_id", q.ID,
		"miles", q.Miles,
		"elite", q.Elite,
		"price_cents", q.Price.Cents(),
	)
	return q, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
