package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// ConnectivityEventModel is an append-only transition attempt record.
type ConnectivityEventModel struct {
	ID             uint   `gorm:"primarykey"`
	EventID        string `gorm:"uniqueIndex;not null;size:36"`
	AccountNo      string `gorm:"not null;size:32;index:idx_event_account,priority:1"`
	Transition     string `gorm:"not null;size:30"`
	Result         string `gorm:"not null;size:30"`
	NetworkOutcome string `gorm:"not null;size:20"`
	Detail         string `gorm:"size:1000"`
	Remarks        string `gorm:"size:1000"`
	Actor          string `gorm:"size:100"`
	Metadata       datatypes.JSONMap
	OccurredAt     time.Time `gorm:"not null;index:idx_event_account,priority:2"`
}

// TableName specifies the table name for GORM
func (ConnectivityEventModel) TableName() string {
	return constants.TableConnectivityEvents
}
