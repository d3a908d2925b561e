package domain

import "fmt"

// Ticket is an airline ticket: who flies, how far, and whether the passenger
// holds elite status. The zero value is a valid ticket with an empty name,
// zero miles and no elite status.
//
// Ticket is a plain value; copies never share state.
type Ticket struct {
	passengerName  string
	numberOfMiles  int
	hasEliteStatus bool
}

// NewTicket returns a default-initialized ticket.
func NewTicket() Ticket {
	return Ticket{}
}

func (t Ticket) PassengerName() string { return t.passengerName }

func (t *Ticket) SetPassengerName(name string) { t.passengerName = name }

func (t Ticket) NumberOfMiles() int { return t.numberOfMiles }

// SetNumberOfMiles accepts any value, including negative mileage.
// Use Validate at input boundaries to reject it.
func (t *Ticket) SetNumberOfMiles(miles int) { t.numberOfMiles = miles }

func (t Ticket) HasEliteStatus() bool { return t.hasEliteStatus }

func (t *Ticket) SetHasEliteStatus(status bool) { t.hasEliteStatus = status }

// CalculatePrice prices the ticket with the default pricing policy.
// It never fails; zero miles always cost nothing.
func (t Ticket) CalculatePrice() Money {
	return DefaultPricingPolicy().Price(t)
}

// Validate reports tickets that should not be accepted from user input.
func (t Ticket) Validate() error {
	if t.numberOfMiles < 0 {
		return &OpError{
			Op:   "ticket.validate",
			Kind: KindInvalidTicket,
			Err:  fmt.Errorf("miles must not be negative (got %d): %w", t.numberOfMiles, ErrInvalidTicket),
		}
	}
	return nil
}

func (t Ticket) String() string {
	elite := ""
	if t.hasEliteStatus {
		elite = ", elite"
	}
	return fmt.Sprintf("%q (%d mi%s)", t.passengerName, t.numberOfMiles, elite)
}
