package setting

import (
	"fmt"
	"strings"
	"time"
)

// Keys of the aaa settings category.
const (
	AAAKeyScheme         = "scheme"
	AAAKeyHost           = "host"
	AAAKeyPort           = "port"
	AAAKeyUsername       = "username"
	AAAKeyPassword       = "password"
	AAAKeyTimeoutSeconds = "timeout_seconds"
	AAAKeyDisconnectMode = "disconnect_mode"
	AAAKeyRadiusSecret   = "radius_secret"
	AAAKeyRadiusNASAddr  = "radius_nas_addr"
)

// DisconnectMode selects how active sessions are dropped.
type DisconnectMode string

const (
	DisconnectModeREST   DisconnectMode = "rest"
	DisconnectModeRADIUS DisconnectMode = "radius"
)

const (
	defaultAAATimeout = 5 * time.Second
	aaaUserPath       = "/rest/user-manage/user"
)

// AAASettings is the AAA management endpoint configuration resolved for a
// single operation.
type AAASettings struct {
	Scheme         string
	Host           string
	Port           int
	Username       string
	Password       string
	TimeoutSeconds int
	DisconnectMode DisconnectMode
	RadiusSecret   string
	RadiusNASAddr  string
}

// IsConfigured reports whether a host has been set.
func (s AAASettings) IsConfigured() bool {
	return strings.TrimSpace(s.Host) != ""
}

// BaseURL returns the user management endpoint, e.g.
// https://10.0.0.5:8443/rest/user-manage/user.
func (s AAASettings) BaseURL() string {
	scheme := strings.ToLower(strings.TrimSpace(s.Scheme))
	if scheme == "" {
		scheme = "https"
	}
	if s.Port > 0 {
		return fmt.Sprintf("%s://%s:%d%s", scheme, strings.TrimSpace(s.Host), s.Port, aaaUserPath)
	}
	return fmt.Sprintf("%s://%s%s", scheme, strings.TrimSpace(s.Host), aaaUserPath)
}

// Timeout returns the bounded per-call timeout.
func (s AAASettings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return defaultAAATimeout
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// UsesRADIUSDisconnect reports whether sessions are dropped with a RADIUS
// Disconnect-Request instead of the REST kill call.
func (s AAASettings) UsesRADIUSDisconnect() bool {
	return s.DisconnectMode == DisconnectModeRADIUS && s.RadiusNASAddr != "" && s.RadiusSecret != ""
}

// Validate checks operator-supplied values before they are stored.
func (s AAASettings) Validate() error {
	switch strings.ToLower(s.Scheme) {
	case "", "http", "https":
	default:
		return fmt.Errorf("unsupported scheme %q", s.Scheme)
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port out of range: %d", s.Port)
	}
	if s.TimeoutSeconds < 0 || s.TimeoutSeconds > 60 {
		return fmt.Errorf("timeout_seconds must be between 0 and 60")
	}
	switch s.DisconnectMode {
	case "", DisconnectModeREST, DisconnectModeRADIUS:
	default:
		return fmt.Errorf("unsupported disconnect mode %q", s.DisconnectMode)
	}
	if s.DisconnectMode == DisconnectModeRADIUS && (s.RadiusSecret == "" || s.RadiusNASAddr == "") {
		return fmt.Errorf("radius disconnect mode needs radius_secret and radius_nas_addr")
	}
	return nil
}
