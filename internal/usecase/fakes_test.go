package usecase

import (
	"errors"

	"github.com/aalvaropc/skyfare/internal/domain"
)

type fakeBatchLoader struct {
	batch domain.Batch
	err   error
}

func (f fakeBatchLoader) LoadBatch(_ string) (domain.Batch, error) {
	return f.batch, f.err
}

func (f fakeBatchLoader) ListBatches(_ string) ([]domain.BatchRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.QuoteArtifact
	err   error
}

func (s *fakeStore) SaveQuotes(a domain.QuoteArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = a
	return "quotes-123", nil
}

func (s *fakeStore) ListQuotes() ([]domain.QuoteRef, error) { return nil, nil }

func (s *fakeStore) LoadQuote(_ string) ([]byte, error) { return nil, errors.New("not implemented") }

func newTicket(name string, miles int, elite bool) domain.Ticket {
	var t domain.Ticket
	t.SetPassengerName(name)
	t.SetNumberOfMiles(miles)
	t.SetHasEliteStatus(elite)
	return t
}

func demoBatch() domain.Batch {
	return domain.Batch{
		Name: "Demo",
		Tickets: []domain.Ticket{
			newTicket("Sherman T. Socketwrench", 700, false),
			newTicket("Laudimore M. Hallidue", 2000, true),
			newTicket("Half Price", 100, false),
		},
	}
}
