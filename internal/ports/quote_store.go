package ports

import "github.com/aalvaropc/skyfare/internal/domain"

// QuoteStore persists priced batches so they can be audited later.
type QuoteStore interface {
	SaveQuotes(a domain.QuoteArtifact) (id string, err error)
	ListQuotes() ([]domain.QuoteRef, error)
	LoadQuote(id string) ([]byte, error)
}
