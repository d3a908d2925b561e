package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a priced ticket.
type Quote struct {
	ID            string    `json:"id"`
	PassengerName string    `json:"passenger_name"`
	Miles         int       `json:"miles"`
	Elite         bool      `json:"elite"`
	CentsPerMile  int64     `json:"cents_per_mile"`
	Base          Money     `json:"base_cents"`
	Discount      Money     `json:"discount_cents"`
	Price         Money     `json:"price_cents"`
	QuotedAt      time.Time `json:"quoted_at"`
}

// NewQuote prices t with p. The ticket itself is not modified.
func NewQuote(p PricingPolicy, t Ticket, now time.Time) Quote {
	base, discount, price := p.Breakdown(t)
	return Quote{
		ID:            uuid.NewString(),
		PassengerName: t.PassengerName(),
		Miles:         t.NumberOfMiles(),
		Elite:         t.HasEliteStatus(),
		CentsPerMile:  p.CentsPerMile,
		Base:          base,
		Discount:      discount,
		Price:         price,
		QuotedAt:      now.UTC(),
	}
}

// QuoteArtifact is a persisted batch of quotes.
type QuoteArtifact struct {
	ID        string        `json:"id,omitempty"`
	BatchName string        `json:"batch_name"`
	BatchPath string        `json:"batch_path"`
	Policy    PricingPolicy `json:"policy"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Quotes    []Quote       `json:"quotes"`
	Total     Money         `json:"total_cents"`
}

// QuoteRef points to a stored artifact.
type QuoteRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Batch     string    `json:"batch"`
	Tickets   int       `json:"tickets"`
	Total     Money     `json:"total_cents"`
	StartedAt time.Time `json:"started_at"`
}
