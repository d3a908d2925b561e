package domain

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

const (
	// DefaultCentsPerMile is the base fare: ten cents per mile.
	DefaultCentsPerMile int64 = 10
	// DefaultEliteDiscount is the share of the base fare waived for elite
	// passengers. Elite members fly free.
	DefaultEliteDiscount = 1.0
)

// PricingPolicy maps (miles, elite status) to a price.
type PricingPolicy struct {
	CentsPerMile  int64   `json:"cents_per_mile"`
	EliteDiscount float64 `json:"elite_discount"`
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		CentsPerMile:  DefaultCentsPerMile,
		EliteDiscount: DefaultEliteDiscount,
	}
}

// Price returns miles*rate, reduced by the elite discount when applicable.
// The discount is applied after the base multiplication. A base that does
// not fit in Money saturates; CheckTicket reports those tickets.
func (p PricingPolicy) Price(t Ticket) Money {
	base := p.base(t)
	if !t.HasEliteStatus() {
		return base
	}
	return base - p.discount(base)
}

// Breakdown prices a ticket and keeps the intermediate amounts.
func (p PricingPolicy) Breakdown(t Ticket) (base, discount, price Money) {
	base = p.base(t)
	if t.HasEliteStatus() {
		discount = p.discount(base)
	}
	return base, discount, base - discount
}

func (p PricingPolicy) Validate() error {
	if p.CentsPerMile < 0 {
		return &OpError{
			Op:   "pricing.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("cents_per_mile must not be negative (got %d): %w", p.CentsPerMile, ErrInvalidConfig),
		}
	}
	if math.IsNaN(p.EliteDiscount) || p.EliteDiscount < 0 || p.EliteDiscount > 1 {
		return &OpError{
			Op:   "pricing.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("elite_discount must be within [0, 1] (got %v): %w", p.EliteDiscount, ErrInvalidConfig),
		}
	}
	return nil
}

// CheckTicket reports tickets that cannot be quoted under p: the ticket's
// own validation plus a base fare that overflows Money.
func (p PricingPolicy) CheckTicket(t Ticket) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := mulInt64(int64(t.NumberOfMiles()), p.CentsPerMile); !ok {
		return &OpError{
			Op:   "pricing.check",
			Kind: KindInvalidTicket,
			Err:  fmt.Errorf("%d miles at %s/mile overflows the fare: %w", t.NumberOfMiles(), Money(p.CentsPerMile), ErrInvalidTicket),
		}
	}
	return nil
}

func (p PricingPolicy) String() string {
	return fmt.Sprintf("%s/mile, elite -%g%%", Money(p.CentsPerMile), p.EliteDiscount*100)
}

func (p PricingPolicy) base(t Ticket) Money {
	miles := int64(t.NumberOfMiles())
	b, ok := mulInt64(miles, p.CentsPerMile)
	if ok {
		return Money(b)
	}
	if (miles < 0) != (p.CentsPerMile < 0) {
		return Money(math.MinInt64)
	}
	return Money(math.MaxInt64)
}

// discount is ceil(|base| * EliteDiscount) carrying the sign of base, so
// any positive discount on a positive base takes off at least one cent.
// The product is exact over the shortest decimal form of EliteDiscount, so
// 0.2 means one fifth rather than its binary approximation.
func (p PricingPolicy) discount(base Money) Money {
	d := p.EliteDiscount
	switch {
	case base == 0 || math.IsNaN(d) || d <= 0:
		return 0
	case d >= 1:
		return base
	}

	r, ok := new(big.Rat).SetString(strconv.FormatFloat(d, 'g', -1, 64))
	if !ok {
		return 0
	}
	mag := new(big.Int).Abs(big.NewInt(int64(base)))
	q, rem := new(big.Int).QuoRem(new(big.Int).Mul(mag, r.Num()), r.Denom(), new(big.Int))
	if rem.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	if base < 0 {
		q.Neg(q)
	}
	return Money(q.Int64())
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
