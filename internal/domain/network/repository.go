package network

import "context"

// Repository persists network identities.
type Repository interface {
	Create(ctx context.Context, identity *Identity) error
	Update(ctx context.Context, identity *Identity) error
	// GetByAccountNo returns nil, nil when the account has no identity.
	GetByAccountNo(ctx context.Context, accountNo string) (*Identity, error)
	// UsernameExists reports whether any identity holds username.
	UsernameExists(ctx context.Context, username string) (bool, error)
}
