package models

import (
	"github.com/fiberops/subcore/internal/shared/constants"
)

// SequenceLockModel is a named row locked FOR UPDATE to serialize allocations.
type SequenceLockModel struct {
	Name string `gorm:"primaryKey;size:50"`
}

// TableName specifies the table name for GORM
func (SequenceLockModel) TableName() string {
	return constants.TableSequenceLocks
}
