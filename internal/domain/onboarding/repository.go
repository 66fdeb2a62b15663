package onboarding

import (
	"context"

	"github.com/shopspring/decimal"
)

// ApplicationRepository reads applications and records their approval.
type ApplicationRepository interface {
	// GetByIDForUpdate returns nil, nil when the application does not exist.
	GetByIDForUpdate(ctx context.Context, id uint) (*Application, error)
	MarkApproved(ctx context.Context, id uint, customerID uint) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	// GetByID returns nil, nil when the customer does not exist.
	GetByID(ctx context.Context, id uint) (*Customer, error)
}

type PlanRepository interface {
	// FindByNameAndPrice returns nil, nil when no plan matches exactly.
	FindByNameAndPrice(ctx context.Context, name string, price decimal.Decimal) (*Plan, error)
}

type LocationRepository interface {
	// FindByCodes returns nil, nil when no location matches.
	FindByCodes(ctx context.Context, lcp, nap string) (*SiteLocation, error)
}

type JobOrderRepository interface {
	Create(ctx context.Context, order *JobOrder) error
}

type SessionStatusRepository interface {
	Create(ctx context.Context, status *SessionStatus) error
}

type LoginAccountRepository interface {
	Create(ctx context.Context, login *LoginAccount) error
}
