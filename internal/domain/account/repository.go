package account

import "context"

// Repository persists subscriber accounts.
type Repository interface {
	Create(ctx context.Context, account *SubscriberAccount) error
	// GetByAccountNo returns nil, nil when the account does not exist.
	GetByAccountNo(ctx context.Context, accountNo string) (*SubscriberAccount, error)
	// GetByAccountNoForUpdate locks the row until the surrounding transaction ends.
	GetByAccountNoForUpdate(ctx context.Context, accountNo string) (*SubscriberAccount, error)
	UpdateConnectivityStatus(ctx context.Context, accountNo string, status ConnectivityStatus) error
}
