package onboarding

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Plan is a service plan offered to subscribers.
type Plan struct {
	ID    uint
	Name  string
	Price decimal.Decimal
}

// ParsePlanString splits a desired plan label of the form
// "<name> - P<price>", e.g. "Fiber 50 - P1,299.00".
func ParsePlanString(s string) (name string, price decimal.Decimal, err error) {
	idx := strings.LastIndex(s, " - ")
	if idx < 0 {
		return "", decimal.Zero, fmt.Errorf("plan %q is not of the form \"<name> - P<price>\"", s)
	}

	name = strings.TrimSpace(s[:idx])
	raw := strings.TrimSpace(s[idx+3:])
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "P"), "₱")
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	if name == "" || raw == "" {
		return "", decimal.Zero, fmt.Errorf("plan %q is not of the form \"<name> - P<price>\"", s)
	}

	price, err = decimal.NewFromString(raw)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("plan %q has an invalid price: %w", s, err)
	}
	return name, price, nil
}
