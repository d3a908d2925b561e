package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func TestQuoteTicket_Execute(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	uc := NewQuoteTicket(domain.DefaultPricingPolicy(), WithClock(func() time.Time { return now }))

	q, err := uc.Execute(context.Background(), newTicket("Sherman T. Socketwrench", 700, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 7000 || q.Base != 7000 || q.Discount != 0 {
		t.Fatalf("unexpected amounts %+v", q)
	}
	if q.PassengerName != "Sherman T. Socketwrench" || q.Miles != 700 || q.Elite {
		t.Fatalf("unexpected ticket fields %+v", q)
	}
	if q.ID == "" {
		t.Fatalf("expected quote id")
	}
	if !q.QuotedAt.Equal(now) || q.QuotedAt.Location() != time.UTC {
		t.Fatalf("expected UTC quote time, got %v", q.QuotedAt)
	}
}

func TestQuoteTicket_EliteDiscount(t *testing.T) {
	uc := NewQuoteTicket(domain.PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.1})

	q, err := uc.Execute(context.Background(), newTicket("L", 2000, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Base != 20000 || q.Discount != 2000 || q.Price != 18000 {
		t.Fatalf("unexpected amounts %+v", q)
	}
}

func TestQuoteTicket_RejectsNegativeMiles(t *testing.T) {
	uc := NewQuoteTicket(domain.DefaultPricingPolicy())

	_, err := uc.Execute(context.Background(), newTicket("x", -1, false))
	if !domain.IsKind(err, domain.KindInvalidTicket) {
		t.Fatalf("expected KindInvalidTicket, got %v", err)
	}
}

func TestQuoteTicket_RejectsOverflowingMiles(t *testing.T) {
	uc := NewQuoteTicket(domain.DefaultPricingPolicy())

	_, err := uc.Execute(context.Background(), newTicket("x", int(math.MaxInt64/10+1), false))
	if !domain.IsKind(err, domain.KindInvalidTicket) {
		t.Fatalf("expected KindInvalidTicket, got %v", err)
	}
}

func TestQuoteTicket_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewQuoteTicket(domain.DefaultPricingPolicy()).Execute(ctx, newTicket("x", 1, false))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
