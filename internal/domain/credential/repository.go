package credential

import "context"

// PatternRepository stores one active pattern per kind.
type PatternRepository interface {
	// GetActive returns nil, nil when no pattern of the kind is stored.
	GetActive(ctx context.Context, kind PatternKind) (*Pattern, error)
	// Save replaces the active pattern for the pattern's kind.
	Save(ctx context.Context, pattern *Pattern) error
}
