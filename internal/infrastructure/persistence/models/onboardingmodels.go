package models

import (
	"time"

	"github.com/fiberops/subcore/internal/shared/constants"
)

// ApplicationModel is a service application submitted through the CRM.
type ApplicationModel struct {
	ID          uint   `gorm:"primarykey"`
	FirstName   string `gorm:"size:100"`
	MiddleName  string `gorm:"size:100"`
	LastName    string `gorm:"size:100"`
	Mobile      string `gorm:"size:30"`
	Email       string `gorm:"size:255"`
	Address     string `gorm:"size:500"`
	DesiredPlan string `gorm:"size:150"`
	LCP         string `gorm:"column:lcp;size:50"`
	NAP         string `gorm:"column:nap;size:50"`
	Status      string `gorm:"not null;size:20;default:pending;index"`
	CustomerID  *uint
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return constants.TableApplications
}

type CustomerModel struct {
	ID         uint   `gorm:"primarykey"`
	FirstName  string `gorm:"not null;size:100"`
	MiddleName string `gorm:"size:100"`
	LastName   string `gorm:"not null;size:100"`
	Mobile     string `gorm:"size:30"`
	Email      string `gorm:"size:255"`
	Address    string `gorm:"size:500"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}

type LocationModel struct {
	ID        uint   `gorm:"primarykey"`
	LCPCode   string `gorm:"column:lcp_code;not null;size:50;index:idx_location_codes,priority:1"`
	NAPCode   string `gorm:"column:nap_code;not null;size:50;index:idx_location_codes,priority:2"`
	Area      string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (LocationModel) TableName() string {
	return constants.TableLocations
}

type JobOrderModel struct {
	ID             uint   `gorm:"primarykey"`
	ApplicationID  uint   `gorm:"not null;index"`
	AccountNo      string `gorm:"not null;size:32;index"`
	Username       string `gorm:"size:64"`
	Secret         string `gorm:"size:128"`
	Port           string `gorm:"size:20"`
	HardwareSerial string `gorm:"size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (JobOrderModel) TableName() string {
	return constants.TableJobOrders
}

type SessionStatusModel struct {
	ID          uint   `gorm:"primarykey"`
	AccountNo   string `gorm:"uniqueIndex;not null;size:32"`
	Username    string `gorm:"size:64"`
	Online      bool   `gorm:"not null;default:false"`
	LastSeenAt  *time.Time
	BytesIn     uint64 `gorm:"not null;default:0"`
	BytesOut    uint64 `gorm:"not null;default:0"`
	SessionTime uint64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SessionStatusModel) TableName() string {
	return constants.TableSessionStatuses
}

type LoginAccountModel struct {
	ID                uint   `gorm:"primarykey"`
	AccountNo         string `gorm:"uniqueIndex;not null;size:32"`
	PasswordHash      string `gorm:"not null;size:255"`
	MustResetPassword bool   `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (LoginAccountModel) TableName() string {
	return constants.TableLoginAccounts
}
