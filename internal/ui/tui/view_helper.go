package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func renderQuote(q domain.Quote) string {
	var b strings.Builder

	name := q.PassengerName
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "Passenger: %s\n", clampString(name, 48))
	fmt.Fprintf(&b, "Miles:     %d\n", q.Miles)
	fmt.Fprintf(&b, "Elite:     %s\n", yesNo(q.Elite))
	fmt.Fprintf(&b, "Rate:      %s/mile\n\n", domain.Money(q.CentsPerMile))
	fmt.Fprintf(&b, "Base:      %s\n", q.Base)
	fmt.Fprintf(&b, "Discount:  -%s\n", q.Discount)

	return b.String()
}

func renderArtifact(a domain.QuoteArtifact, id string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Batch:   %s\n", a.BatchName)
	fmt.Fprintf(&b, "Pricing: %s\n", a.Policy)
	if !a.StartedAt.IsZero() {
		fmt.Fprintf(&b, "Started: %s\n", a.StartedAt.Format(time.RFC3339))
	}
	if id != "" {
		fmt.Fprintf(&b, "Saved:   %s\n", id)
	}
	b.WriteString("\n")

	if len(a.Quotes) == 0 {
		b.WriteString("(no tickets)\n")
	}
	for _, q := range a.Quotes {
		tag := ""
		if q.Elite {
			tag = " [elite]"
		}
		fmt.Fprintf(&b, "  - %s%s: %d mi -> %s\n", clampString(q.PassengerName, 32), tag, q.Miles, q.Price)
	}

	fmt.Fprintf(&b, "\nTotal:   %s (%d ticket(s))", a.Total, len(a.Quotes))
	return b.String()
}
