package onboarding

import (
	"time"
)

// ApplicationStatus tracks an application through approval.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
)

// Application is a prospective subscriber's request for service. The
// validate tags list the identity fields onboarding cannot proceed without.
type Application struct {
	ID          uint
	FirstName   string `validate:"required"`
	MiddleName  string
	LastName    string `validate:"required"`
	Mobile      string `validate:"required"`
	Email       string
	Address     string
	DesiredPlan string `validate:"required"`
	LCP         string `validate:"required"`
	NAP         string `validate:"required"`
	Status      ApplicationStatus
	CustomerID  *uint
	ApprovedAt  *time.Time
}

// IsApproved reports whether the application was already onboarded.
func (a *Application) IsApproved() bool {
	return a.Status == ApplicationStatusApproved
}

// InstallationFacts are recorded by the install crew.
type InstallationFacts struct {
	Port            string
	VLAN            string
	IPAddress       string
	HardwareSerial  string
	InstallationFee string
}

// Customer is created from an approved application.
type Customer struct {
	ID         uint
	FirstName  string
	MiddleName string
	LastName   string
	Mobile     string
	Email      string
	Address    string
}

// CustomerFromApplication copies the identity fields of app.
func CustomerFromApplication(app *Application) *Customer {
	return &Customer{
		FirstName:  app.FirstName,
		MiddleName: app.MiddleName,
		LastName:   app.LastName,
		Mobile:     app.Mobile,
		Email:      app.Email,
		Address:    app.Address,
	}
}

// SiteLocation is a fiber distribution point, matched by LCP and NAP code.
type SiteLocation struct {
	ID      uint
	LCPCode string
	NAPCode string
	Area    string
}

// JobOrder is the install crew's hand-off copy of the provisioned credentials.
type JobOrder struct {
	ID             uint
	ApplicationID  uint
	AccountNo      string
	Username       string
	Secret         string
	Port           string
	HardwareSerial string
}

// SessionStatus is the live session record for an identity; it starts zeroed.
type SessionStatus struct {
	ID          uint
	AccountNo   string
	Username    string
	Online      bool
	LastSeenAt  *time.Time
	BytesIn     uint64
	BytesOut    uint64
	SessionTime uint64
}

// LoginAccount is the subscriber portal login keyed by account number.
type LoginAccount struct {
	ID                uint
	AccountNo         string
	PasswordHash      string
	MustResetPassword bool
}
