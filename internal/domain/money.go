package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in US cents.
type Money int64

func (m Money) Cents() int64 { return int64(m) }

// Add returns m+o and false when the sum overflows.
func (m Money) Add(o Money) (Money, bool) {
	s, ok := addInt64(int64(m), int64(o))
	return Money(s), ok
}

// String renders the amount as "$1,234.50".
func (m Money) String() string {
	sign := ""
	mag := uint64(m)
	if m < 0 {
		sign = "-"
		mag = -mag
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(mag/100), mag%100)
}

// ParseMoney parses "$1,234.50", "1234.5" or "12" into cents.
func ParseMoney(s string) (Money, error) {
	in := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(in, "-") {
		neg = true
		in = strings.TrimSpace(in[1:])
	}
	in = strings.TrimPrefix(in, "$")
	in = strings.ReplaceAll(in, ",", "")
	if in == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	whole, frac, hasFrac := strings.Cut(in, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	d, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if len(frac) == 1 {
		frac += "0"
	}
	var c int64
	if frac != "" {
		c, _ = strconv.ParseInt(frac, 10, 64)
	}

	total, ok := mulInt64(d, 100)
	if ok {
		total, ok = addInt64(total, c)
	}
	if !ok {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}
	if neg {
		total = -total
	}
	return Money(total), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func formatThousand(n uint64) string {
	str := strconv.FormatUint(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
