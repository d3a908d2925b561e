package domain

import (
	"math"
	"testing"
)

func ticket(miles int, elite bool) Ticket {
	var t Ticket
	t.SetNumberOfMiles(miles)
	t.SetHasEliteStatus(elite)
	return t
}

func TestPrice_NonEliteIsMilesTimesRate(t *testing.T) {
	p := DefaultPricingPolicy()
	for _, m := range []int{0, 1, 7, 700, 2000, 123456} {
		want := Money(int64(m) * p.CentsPerMile)
		if got := p.Price(ticket(m, false)); got != want {
			t.Errorf("miles=%d: got %d want %d", m, got, want)
		}
	}
}

func TestPrice_EliteNeverCostsMore(t *testing.T) {
	policies := []PricingPolicy{
		DefaultPricingPolicy(),
		{CentsPerMile: 10, EliteDiscount: 0.2},
		{CentsPerMile: 13, EliteDiscount: 0.333},
		{CentsPerMile: 10, EliteDiscount: 0},
		{CentsPerMile: 0, EliteDiscount: 0.5},
		{CentsPerMile: 1, EliteDiscount: 0.1},
		{CentsPerMile: 1, EliteDiscount: 0.001},
	}
	for _, p := range policies {
		for _, m := range []int{0, 1, 3, 700, 2000} {
			regular := p.Price(ticket(m, false))
			elite := p.Price(ticket(m, true))
			if elite > regular {
				t.Errorf("%v miles=%d: elite %s > regular %s", p, m, elite, regular)
			}
			if m > 0 && p.CentsPerMile > 0 && p.EliteDiscount > 0 && elite >= regular {
				t.Errorf("%v miles=%d: expected strict decrease, elite %s regular %s", p, m, elite, regular)
			}
		}
	}
}

func TestPrice_ZeroMilesIsFree(t *testing.T) {
	p := PricingPolicy{CentsPerMile: 25, EliteDiscount: 0.1}
	if got := p.Price(ticket(0, false)); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := p.Price(ticket(0, true)); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
}

func TestPrice_DiscountAppliedAfterBase(t *testing.T) {
	p := PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.25}
	// 2000 mi * 10c = 20000c; 25% off = 15000c.
	if got := p.Price(ticket(2000, true)); got != 15000 {
		t.Fatalf("expected 15000 cents, got %d", got)
	}
	// 3 mi * 10c = 30c; 25% of 30 = 7.5 -> 8; 22c.
	if got := p.Price(ticket(3, true)); got != 22 {
		t.Fatalf("expected 22 cents, got %d", got)
	}
}

func TestBreakdown(t *testing.T) {
	p := PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.5}

	base, discount, price := p.Breakdown(ticket(700, false))
	if base != 7000 || discount != 0 || price != 7000 {
		t.Fatalf("non-elite breakdown: %d %d %d", base, discount, price)
	}

	base, discount, price = p.Breakdown(ticket(700, true))
	if base != 7000 || discount != 3500 || price != 3500 {
		t.Fatalf("elite breakdown: %d %d %d", base, discount, price)
	}
	if price != p.Price(ticket(700, true)) {
		t.Fatalf("breakdown and Price disagree")
	}
}

func TestPricingPolicy_Validate(t *testing.T) {
	cases := []struct {
		p  PricingPolicy
		ok bool
	}{
		{DefaultPricingPolicy(), true},
		{PricingPolicy{CentsPerMile: 0, EliteDiscount: 0}, true},
		{PricingPolicy{CentsPerMile: -1, EliteDiscount: 0}, false},
		{PricingPolicy{CentsPerMile: 10, EliteDiscount: -0.1}, false},
		{PricingPolicy{CentsPerMile: 10, EliteDiscount: 1.5}, false},
	}
	for _, c := range cases {
		err := c.p.Validate()
		if c.ok && err != nil {
			t.Errorf("%+v: unexpected error %v", c.p, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%+v: expected error", c.p)
			} else if !IsKind(err, KindInvalidConfig) {
				t.Errorf("%+v: expected KindInvalidConfig, got %v", c.p, err)
			}
		}
	}
}

func TestPrice_SmallDiscountRoundsInPassengerFavor(t *testing.T) {
	p := PricingPolicy{CentsPerMile: 1, EliteDiscount: 0.1}
	// 1 mi * 1c = 1c; 10% of 1c rounds up to a full cent.
	if got := p.Price(ticket(1, true)); got != 0 {
		t.Fatalf("expected 0 cents, got %d", got)
	}
	// 15 mi = 15c; 1.5c off rounds up to 2c.
	if got := p.Price(ticket(15, true)); got != 13 {
		t.Fatalf("expected 13 cents, got %d", got)
	}
}

func TestPrice_DecimalDiscountsAreExact(t *testing.T) {
	cases := []struct {
		p     PricingPolicy
		miles int
		want  Money
	}{
		{PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.2}, 2000, 16000},
		{PricingPolicy{CentsPerMile: 1, EliteDiscount: 0.1}, 10, 9},
		{PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.3}, 100, 700},
		{PricingPolicy{CentsPerMile: 1, EliteDiscount: 0.00001}, 100000, 99999},
	}
	for _, c := range cases {
		if got := c.p.Price(ticket(c.miles, true)); got != c.want {
			t.Errorf("%v miles=%d: got %d want %d", c.p, c.miles, got, c.want)
		}
	}
}

func TestPrice_HugeMileageDoesNotWrap(t *testing.T) {
	p := DefaultPricingPolicy()
	huge := int(math.MaxInt64/10 + 1)

	if got := p.Price(ticket(huge, false)); got != Money(math.MaxInt64) {
		t.Fatalf("expected saturated fare, got %d", got)
	}
	if got := p.Price(ticket(-huge, false)); got != Money(math.MinInt64) {
		t.Fatalf("expected saturated negative fare, got %d", got)
	}
	if got := p.Price(ticket(huge, true)); got != 0 {
		t.Fatalf("elite with full discount should be free, got %d", got)
	}
}

func TestPrice_FullDiscountIsExactForLargeBases(t *testing.T) {
	p := DefaultPricingPolicy()
	m := int(math.MaxInt64 / 10)

	if got := p.Price(ticket(m, true)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	half := PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.5}
	base := Money(int64(m) * 10)
	if got := half.Price(ticket(m, true)); got != base/2 {
		t.Fatalf("expected %d, got %d", base/2, got)
	}
}

func TestCheckTicket(t *testing.T) {
	p := DefaultPricingPolicy()

	if err := p.CheckTicket(ticket(2000, true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.CheckTicket(ticket(int(math.MaxInt64/10), false)); err != nil {
		t.Fatalf("largest representable fare should be accepted: %v", err)
	}

	err := p.CheckTicket(ticket(int(math.MaxInt64/10+1), false))
	if !IsKind(err, KindInvalidTicket) {
		t.Fatalf("expected KindInvalidTicket for overflowing fare, got %v", err)
	}

	err = p.CheckTicket(ticket(-1, false))
	if !IsKind(err, KindInvalidTicket) {
		t.Fatalf("expected KindInvalidTicket for negative miles, got %v", err)
	}
}
