package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// SubscriberAccountModel represents the database persistence model for subscriber accounts
type SubscriberAccountModel struct {
	ID                 uint            `gorm:"primarykey"`
	AccountNo          string          `gorm:"uniqueIndex;not null;size:32"`
	CustomerID         uint            `gorm:"not null;index"`
	PlanID             *uint           `gorm:"index"`
	PlanName           string          `gorm:"size:100"`
	Balance            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ConnectivityStatus string          `gorm:"not null;size:20;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SubscriberAccountModel) TableName() string {
	return constants.TableSubscriberAccounts
}
