package credential

import (
	"fmt"
	"time"

	"github.com/fiberops/subcore/internal/shared/biztime"
)

// PatternKind selects which credential a pattern builds.
type PatternKind string

const (
	PatternKindUsername PatternKind = "username"
	PatternKindSecret   PatternKind = "secret"
)

// ParsePatternKind validates a kind received from an operator.
func ParsePatternKind(s string) (PatternKind, error) {
	switch PatternKind(s) {
	case PatternKindUsername, PatternKindSecret:
		return PatternKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPatternKind, s)
	}
}

// Pattern is the active ordered token list for one kind.
type Pattern struct {
	Kind      PatternKind
	Tokens    []Token
	UpdatedBy string
	UpdatedAt time.Time
}

// NewPattern validates tokens and builds a pattern ready to be saved.
func NewPattern(kind PatternKind, tokens []Token, updatedBy string) (*Pattern, error) {
	if _, err := ParsePatternKind(string(kind)); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyPattern
	}
	for i, t := range tokens {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
	}
	return &Pattern{
		Kind:      kind,
		Tokens:    tokens,
		UpdatedBy: updatedBy,
		UpdatedAt: biztime.NowUTC(),
	}, nil
}

// DefaultPattern is used when no pattern of the kind is stored.
// Usernames default to first initial, last name and the last four mobile
// digits; secrets to six random alphanumerics.
func DefaultPattern(kind PatternKind) Pattern {
	if kind == PatternKindSecret {
		return Pattern{
			Kind:   PatternKindSecret,
			Tokens: []Token{{Kind: TokenRandomAlphanumeric, Length: 6}},
		}
	}
	return Pattern{
		Kind: PatternKindUsername,
		Tokens: []Token{
			{Kind: TokenFirstInitial},
			{Kind: TokenLastName},
			{Kind: TokenMobileLast4},
		},
	}
}
