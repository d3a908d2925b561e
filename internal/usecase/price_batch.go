package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/ports"
)

type PriceBatch struct {
	batches ports.BatchLoader
	store   ports.QuoteStore
	policy  domain.PricingPolicy
	log     *slog.Logger
	now     func() time.Time
}

// NewPriceBatch wires the use case. store may be nil to skip persistence.
func NewPriceBatch(bl ports.BatchLoader, store ports.QuoteStore, policy domain.PricingPolicy, log *slog.Logger) *PriceBatch {
	if log == nil {
		log = discardLogger()
	}
	return &PriceBatch{
		batches: bl,
		store:   store,
		policy:  policy,
		log:     log,
		now:     time.Now,
	}
}

// Execute prices every ticket of the batch at path and saves the artifact.
// The returned artifact is populated as far as pricing got, even on error.
func (uc *PriceBatch) Execute(ctx context.Context, path string) (domain.QuoteArtifact, string, error) {
	out := domain.QuoteArtifact{
		BatchPath: path,
		Policy:    uc.policy,
		StartedAt: uc.now().UTC(),
	}

	if err := uc.policy.Validate(); err != nil {
		out.EndedAt = uc.now().UTC()
		return out, "", err
	}

	batch, err := uc.batches.LoadBatch(path)
	if err != nil {
		out.EndedAt = uc.now().UTC()
		return out, "", err
	}
	out.BatchName = batch.Name
	out.Quotes = make([]domain.Quote, 0, len(batch.Tickets))

	uc.log.Info("batch.start", "batch", batch.Name, "path", path, "tickets", len(batch.Tickets))

	for _, t := range batch.Tickets {
		if err := ctx.Err(); err != nil {
			out.EndedAt = uc.now().UTC()
			uc.log.Warn("batch.canceled", "batch", batch.Name, "priced", len(out.Quotes))
			return out, "", err
		}

		if err := uc.policy.CheckTicket(t); err != nil {
			out.EndedAt = uc.now().UTC()
			uc.log.Warn("batch.ticket.rejected", "batch", batch.Name, "index", len(out.Quotes), "err", err)
			return out, "", err
		}

		q := domain.NewQuote(uc.policy, t, uc.now())
		total, ok := out.Total.Add(q.Price)
		if !ok {
			out.EndedAt = uc.now().UTC()
			return out, "", &domain.OpError{
				Op:   "batch.total",
				Kind: domain.KindInvalidBatch,
				Path: path,
				Err:  fmt.Errorf("total overflows after %d ticket(s): %w", len(out.Quotes), domain.ErrInvalidBatch),
			}
		}
		out.Quotes = append(out.Quotes, q)
		out.Total = total

		uc.log.Debug("batch.quote", "quote_id", q.ID, "miles", q.Miles, "elite", q.Elite, "price_cents", q.Price.Cents())
	}
	out.EndedAt = uc.now().UTC()

	if uc.store == nil {
		uc.log.Info("batch.ok", "batch", batch.Name, "total_cents", out.Total.Cents(), "saved", false)
		return out, "", nil
	}

	id, err := uc.store.SaveQuotes(out)
	if err != nil {
		uc.log.Error("batch.save.failed", "batch", batch.Name, "err", err)
		return out, "", err
	}
	out.ID = id

	uc.log.Info("batch.ok", "batch", batch.Name, "total_cents", out.Total.Cents(), "saved_id", id)
	return out, id, nil
}
