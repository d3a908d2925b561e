package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/skyfare/internal/domain"
)

// DemoTickets returns the two sample passengers used by `skyfare demo`.
func DemoTickets() []domain.Ticket {
	var sherman domain.Ticket
	sherman.SetPassengerName("Sherman T. Socketwrench")
	sherman.SetNumberOfMiles(700)

	var laudimore domain.Ticket
	laudimore.SetPassengerName("Laudimore M. Hallidue")
	laudimore.SetNumberOfMiles(2000)
	laudimore.SetHasEliteStatus(true)

	return []domain.Ticket{sherman, laudimore}
}

// RunDemo prices the demo tickets with policy and prints one line per ticket.
func RunDemo(w io.Writer, policy domain.PricingPolicy) error {
	for i, t := range DemoTickets() {
		label := "This ticket"
		if i > 0 {
			label = "This other ticket"
		}
		if _, err := fmt.Fprintf(w, "%s will cost %s\n", label, policy.Price(t)); err != nil {
			return err
		}
	}
	return nil
}
