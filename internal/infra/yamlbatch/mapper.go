package yamlbatch

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func mapAndValidate(path string, yb yamlBatch) (domain.Batch, error) {
	if strings.TrimSpace(yb.Name) == "" {
		return domain.Batch{}, invalidField(path, "name", "batch name is required")
	}

	b := domain.Batch{
		Name:    yb.Name,
		Tickets: make([]domain.Ticket, 0, len(yb.Tickets)),
	}

	for i, yt := range yb.Tickets {
		prefix := fmt.Sprintf("tickets[%d]", i)

		if strings.TrimSpace(yt.Passenger) == "" {
			return domain.Batch{}, invalidField(path, prefix+".passenger", "passenger is required")
		}
		if yt.Miles == nil {
			return domain.Batch{}, invalidField(path, prefix+".miles", "miles is required")
		}

		var t domain.Ticket
		t.SetPassengerName(strings.TrimSpace(yt.Passenger))
		t.SetNumberOfMiles(*yt.Miles)
		t.SetHasEliteStatus(yt.Elite)

		if err := t.Validate(); err != nil {
			return domain.Batch{}, &domain.OpError{
				Op:   "yamlbatch.validate",
				Kind: domain.KindInvalidTicket,
				Path: path,
				Err:  fmt.Errorf("field %s.miles: %w", prefix, err),
			}
		}

		b.Tickets = append(b.Tickets, t)
	}

	return b, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlbatch.validate",
		Kind: domain.KindInvalidBatch,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidBatch),
	}
}
