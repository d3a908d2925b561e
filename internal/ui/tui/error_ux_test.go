package tui

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func TestUserMessage(t *testing.T) {
	negative := domain.NewTicket()
	negative.SetNumberOfMiles(-1)
	huge := domain.NewTicket()
	huge.SetNumberOfMiles(int(math.MaxInt64/10 + 1))

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"batch not found",
			&domain.OpError{Op: "yamlbatch.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Batch not found",
		},
		{
			"quote not found",
			&domain.OpError{Op: "quotestore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Quote not found",
		},
		{
			"workspace not found",
			&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound},
			"Workspace not found",
		},
		{"negative ticket", negative.Validate(), "Miles must not be negative"},
		{
			"negative miles in batch",
			&domain.OpError{
				Op:   "yamlbatch.validate",
				Kind: domain.KindInvalidTicket,
				Path: "/ws/batches/demo.yaml",
				Err:  fmt.Errorf("field tickets[1].miles: %w", negative.Validate()),
			},
			"Miles must not be negative (tickets[1].miles)",
		},
		{"overflowing miles", domain.DefaultPricingPolicy().CheckTicket(huge), "Miles are too large to price"},
		{
			"yaml line",
			&domain.OpError{
				Op:   "yamlbatch.load",
				Kind: domain.KindInvalidBatch,
				Path: "/ws/batches/demo.yaml",
				Err:  errors.New("yaml: line 4: did not find expected key"),
			},
			"Invalid YAML at demo.yaml line 4",
		},
		{
			"missing field",
			&domain.OpError{
				Op:   "yamlbatch.validate",
				Kind: domain.KindInvalidBatch,
				Path: "/ws/batches/demo.yaml",
				Err:  fmt.Errorf("field tickets[0].passenger: passenger is required: %w", domain.ErrInvalidBatch),
			},
			"Invalid tickets[0].passenger in demo.yaml",
		},
		{
			"batch total",
			&domain.OpError{Op: "batch.total", Kind: domain.KindInvalidBatch, Err: fmt.Errorf("total overflows after 2 ticket(s): %w", domain.ErrInvalidBatch)},
			"Batch total is too large",
		},
		{"bad pricing", domain.PricingPolicy{CentsPerMile: -1}.Validate(), "Invalid pricing (check skyfare.yaml)"},
		{"execution", &domain.OpError{Op: "quotestore.write", Kind: domain.KindExecution}, "Unexpected error (see logs)"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Errorf("userMessage() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("Laudimore", 4); got != "Laud…" {
		t.Errorf("unexpected %q", got)
	}
	if got := clampString("abc", 10); got != "abc" {
		t.Errorf("unexpected %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Errorf("unexpected %q", got)
	}
}
