package sequence

import "context"

// ConfigRepository stores the account sequence configuration.
type ConfigRepository interface {
	// Get returns nil, nil when no configuration exists.
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
	Delete(ctx context.Context) error
}

// LockRepository serializes allocations. Both methods must run inside a
// transaction; the locks are held until it ends.
type LockRepository interface {
	// LockSequence takes an exclusive row lock on the account_no sequence row.
	LockSequence(ctx context.Context) error
	// ListCandidates returns, locked for update, the account numbers that
	// start with prefix.
	ListCandidates(ctx context.Context, prefix string) ([]string, error)
}
