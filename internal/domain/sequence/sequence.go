// Package sequence computes subscriber account numbers from an optional
// operator-configured seed such as "ATS1000".
package sequence

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxPrefixLength bounds the stored seed value.
	MaxPrefixLength = 7

	defaultWidth = 4
)

var (
	ErrMalformedSeed = errors.New("malformed account sequence seed")

	seedPattern = regexp.MustCompile(`^([A-Za-z]*)(\d+)$`)
)

// Config is the operator-managed account sequence configuration. Prefix holds
// the seed value, e.g. "ATS1000".
type Config struct {
	Prefix    string
	UpdatedBy string
	UpdatedAt time.Time
}

// Seed is a parsed configuration: account numbers are Prefix followed by a
// zero-padded counter of at least Width digits, starting at Start.
type Seed struct {
	Prefix string
	Start  uint64
	Width  int
}

// DefaultSeed is the pure numeric sequence used when no configuration exists.
var DefaultSeed = Seed{Prefix: "", Start: 1, Width: defaultWidth}

// ParseSeed parses a configured seed value.
func ParseSeed(value string) (Seed, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Seed{}, fmt.Errorf("%w: empty value", ErrMalformedSeed)
	}
	if len(value) > MaxPrefixLength {
		return Seed{}, fmt.Errorf("%w: %q exceeds %d characters", ErrMalformedSeed, value, MaxPrefixLength)
	}

	m := seedPattern.FindStringSubmatch(value)
	if m == nil {
		return Seed{}, fmt.Errorf("%w: %q must be letters followed by digits", ErrMalformedSeed, value)
	}

	start, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
	}

	return Seed{Prefix: m[1], Start: start, Width: len(m[2])}, nil
}

// SeedFor resolves the seed to allocate with. A missing or malformed
// configuration yields DefaultSeed together with the reason, which callers
// log and otherwise ignore.
func SeedFor(cfg *Config) (Seed, error) {
	if cfg == nil || strings.TrimSpace(cfg.Prefix) == "" {
		return DefaultSeed, nil
	}
	seed, err := ParseSeed(cfg.Prefix)
	if err != nil {
		return DefaultSeed, err
	}
	return seed, nil
}

// Next returns the account number following the largest existing number that
// belongs to seed. Existing values not of the form prefix+digits are ignored.
// Candidates are compared by parsed integer, ties broken by width. With no
// candidate the seed's own start value is returned.
func Next(seed Seed, existing []string) (string, error) {
	var (
		found    bool
		maxValue uint64
		maxWidth int
	)

	for _, accountNo := range existing {
		digits, ok := strings.CutPrefix(accountNo, seed.Prefix)
		if !ok || !isDigits(digits) {
			continue
		}
		v, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			continue
		}
		if !found || v > maxValue || (v == maxValue && len(digits) > maxWidth) {
			found = true
			maxValue = v
			maxWidth = len(digits)
		}
	}

	if !found {
		return Format(seed.Prefix, seed.Start, seed.Width), nil
	}
	if maxValue == ^uint64(0) {
		return "", fmt.Errorf("account sequence %q exhausted", seed.Prefix)
	}

	return Format(seed.Prefix, maxValue+1, max(seed.Width, maxWidth)), nil
}

// Format renders prefix followed by value zero-padded to width. The value is
// never truncated.
func Format(prefix string, value uint64, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
