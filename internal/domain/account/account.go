package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiberops/subcore/internal/shared/biztime"
)

// SubscriberAccount is the billing account the provisioning core drives.
// Only the connectivity status is written after creation; balance and plan
// are owned by billing.
type SubscriberAccount struct {
	id                 uint
	accountNo          string
	customerID         uint
	planID             *uint
	planName           string
	balance            decimal.Decimal
	connectivityStatus ConnectivityStatus
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscriberAccount creates an active account for a freshly onboarded customer.
func NewSubscriberAccount(accountNo string, customerID uint, planID *uint, planName string, balance decimal.Decimal) (*SubscriberAccount, error) {
	if strings.TrimSpace(accountNo) == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	now := biztime.NowUTC()
	return &SubscriberAccount{
		accountNo:          accountNo,
		customerID:         customerID,
		planID:             planID,
		planName:           planName,
		balance:            balance,
		connectivityStatus: StatusActive,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructSubscriberAccount reconstructs an account from persistence
func ReconstructSubscriberAccount(
	id uint,
	accountNo string,
	customerID uint,
	planID *uint,
	planName string,
	balance decimal.Decimal,
	status ConnectivityStatus,
	createdAt, updatedAt time.Time,
) (*SubscriberAccount, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid connectivity status: %s", status)
	}

	return &SubscriberAccount{
		id:                 id,
		accountNo:          accountNo,
		customerID:         customerID,
		planID:             planID,
		planName:           planName,
		balance:            balance,
		connectivityStatus: status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (a *SubscriberAccount) ID() uint                               { return a.id }
func (a *SubscriberAccount) AccountNo() string                      { return a.accountNo }
func (a *SubscriberAccount) CustomerID() uint                       { return a.customerID }
func (a *SubscriberAccount) PlanID() *uint                          { return a.planID }
func (a *SubscriberAccount) PlanName() string                       { return a.planName }
func (a *SubscriberAccount) Balance() decimal.Decimal               { return a.balance }
func (a *SubscriberAccount) ConnectivityStatus() ConnectivityStatus { return a.connectivityStatus }
func (a *SubscriberAccount) CreatedAt() time.Time                   { return a.createdAt }
func (a *SubscriberAccount) UpdatedAt() time.Time                   { return a.updatedAt }

// SetID sets the account ID (only for persistence layer use)
func (a *SubscriberAccount) SetID(id uint) {
	a.id = id
}

// HasOutstandingBalance reports a positive balance, which blocks reconnection.
func (a *SubscriberAccount) HasOutstandingBalance() bool {
	return a.balance.GreaterThan(decimal.Zero)
}

// IsActive reports whether the account is connected.
func (a *SubscriberAccount) IsActive() bool {
	return a.connectivityStatus == StatusActive
}

// HasPlan reports whether a plan name is assigned.
func (a *SubscriberAccount) HasPlan() bool {
	return strings.TrimSpace(a.planName) != ""
}

// ChangeStatus moves the account to status.
func (a *SubscriberAccount) ChangeStatus(status ConnectivityStatus) error {
	if !ValidStatuses[status] {
		return fmt.Errorf("invalid connectivity status: %s", status)
	}
	a.connectivityStatus = status
	a.updatedAt = biztime.NowUTC()
	return nil
}
