package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// PlanModel is a service plan offered to subscribers. Plans are maintained
// by billing; onboarding only resolves them.
type PlanModel struct {
	ID        uint            `gorm:"primarykey"`
	Name      string          `gorm:"not null;size:100;index:idx_plan_name_price,priority:1"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;index:idx_plan_name_price,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
