package network

import (
	"fmt"
	"strings"
	"time"

	"github.com/fiberops/subcore/internal/shared/biztime"
)

// Location is the physical assignment of an installation.
type Location struct {
	LCP            string
	NAP            string
	Port           string
	VLAN           string
	IPAddress      string
	HardwareSerial string
}

// Identity is the PPPoE identity of one subscriber account. Username is
// unique across all identities; the secret can be regenerated on its own.
type Identity struct {
	id        uint
	accountNo string
	username  string
	secret    string
	location  Location
	createdAt time.Time
	updatedAt time.Time
}

// NewIdentity creates an identity with credentials for accountNo.
func NewIdentity(accountNo, username, secret string, location Location) (*Identity, error) {
	if strings.TrimSpace(accountNo) == "" {
		return nil, fmt.Errorf("account number is required")
	}
	now := biztime.NowUTC()
	return &Identity{
		accountNo: accountNo,
		username:  username,
		secret:    secret,
		location:  location,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructIdentity reconstructs an identity from persistence
func ReconstructIdentity(id uint, accountNo, username, secret string, location Location, createdAt, updatedAt time.Time) *Identity {
	return &Identity{
		id:        id,
		accountNo: accountNo,
		username:  username,
		secret:    secret,
		location:  location,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (i *Identity) ID() uint             { return i.id }
func (i *Identity) AccountNo() string    { return i.accountNo }
func (i *Identity) Username() string     { return i.username }
func (i *Identity) Secret() string       { return i.secret }
func (i *Identity) Location() Location   { return i.location }
func (i *Identity) CreatedAt() time.Time { return i.createdAt }
func (i *Identity) UpdatedAt() time.Time { return i.updatedAt }

// SetID sets the identity ID (only for persistence layer use)
func (i *Identity) SetID(id uint) {
	i.id = id
}

// HasUsername reports whether a username has been assigned.
func (i *Identity) HasUsername() bool {
	return strings.TrimSpace(i.username) != ""
}

// HasSecret reports whether a secret has been assigned.
func (i *Identity) HasSecret() bool {
	return i.secret != ""
}

// SetCredentials overwrites both username and secret.
func (i *Identity) SetCredentials(username, secret string) {
	i.username = username
	i.secret = secret
	i.updatedAt = biztime.NowUTC()
}

// Migrate renames the identity and records the replacement hardware. The
// secret is left untouched.
func (i *Identity) Migrate(newUsername, newHardwareSerial string) {
	i.username = newUsername
	if newHardwareSerial != "" {
		i.location.HardwareSerial = newHardwareSerial
	}
	i.updatedAt = biztime.NowUTC()
}

// ClearLocation drops the physical assignment after equipment recovery.
func (i *Identity) ClearLocation() {
	i.location = Location{}
	i.updatedAt = biztime.NowUTC()
}

// Relocate records a new distribution point. Empty arguments keep the
// current value.
func (i *Identity) Relocate(lcp, nap, port string) {
	if lcp != "" {
		i.location.LCP = lcp
	}
	if nap != "" {
		i.location.NAP = nap
	}
	if port != "" {
		i.location.Port = port
	}
	i.updatedAt = biztime.NowUTC()
}
