package models

import (
	"time"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// NetworkIdentityModel represents the database persistence model for PPPoE identities
type NetworkIdentityModel struct {
	ID             uint    `gorm:"primarykey"`
	AccountNo      string  `gorm:"uniqueIndex;not null;size:32"`
	Username       *string `gorm:"uniqueIndex;size:64"`
	Secret         string  `gorm:"size:128"`
	SourceLCP      *string `gorm:"column:source_lcp;size:50"`
	SourceNAP      *string `gorm:"column:source_nap;size:50"`
	SourcePort     *string `gorm:"size:20"`
	VLAN           *string `gorm:"column:vlan;size:20"`
	IPAddress      *string `gorm:"column:ip_address;size:45"`
	HardwareSerial *string `gorm:"size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (NetworkIdentityModel) TableName() string {
	return constants.TableNetworkIdentities
}
