package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// CredentialPatternModel holds the active token list for one credential kind.
type CredentialPatternModel struct {
	ID        uint           `gorm:"primarykey"`
	Kind      string         `gorm:"uniqueIndex;not null;size:20"`
	Tokens    datatypes.JSON `gorm:"not null"`
	UpdatedBy string         `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CredentialPatternModel) TableName() string {
	return constants.TableCredentialPatterns
}
