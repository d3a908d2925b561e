package usecase

import (
	"context"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/ports"
)

type ValidateBatch struct {
	batches ports.BatchLoader
	policy  domain.PricingPolicy
}

func NewValidateBatch(bl ports.BatchLoader, policy domain.PricingPolicy) *ValidateBatch {
	return &ValidateBatch{batches: bl, policy: policy}
}

// Execute checks that the pricing policy and the batch at path are usable,
// without pricing anything. It returns the number of tickets found.
func (uc *ValidateBatch) Execute(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := uc.policy.Validate(); err != nil {
		return 0, err
	}

	b, err := uc.batches.LoadBatch(path)
	if err != nil {
		return 0, err
	}
	for _, t := range b.Tickets {
		if err := uc.policy.CheckTicket(t); err != nil {
			return 0, err
		}
	}
	return len(b.Tickets), nil
}
