package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// formatAmount renders base units as a decimal token amount with thousands
// separators, e.g. 1234500000 with 6 decimals is "1,234.5".
func formatAmount(amount int64, decimals int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if decimals == 0 {
		return sign + humanize.Comma(amount)
	}

	unit := pow10(decimals)
	whole, frac := amount/unit, amount%unit

	s := sign + humanize.Comma(whole)
	if frac == 0 {
		return s
	}
	fs := strings.TrimRight(fmt.Sprintf("%0*d", decimals, frac), "0")
	return s + "." + fs
}

// parseAmount is the inverse of formatAmount. Separators are accepted and
// more fractional digits than decimals are rejected.
func parseAmount(s string, decimals int) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && len(frac) > decimals {
		return 0, fmt.Errorf("amount %q has more than %d decimals", s, decimals)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	unit := pow10(decimals)
	if w > (1<<63-1)/unit {
		return 0, fmt.Errorf("amount %q is too large", s)
	}
	total := w * unit

	if frac != "" {
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		total += f * pow10(decimals-len(frac))
	}
	return total, nil
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
