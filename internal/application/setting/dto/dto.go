package dto

import (
	"github.com/fiberops/subcore/internal/domain/setting"
)

// AAASettingsResponse is the merged AAA configuration. Secrets are reported
// only as set or unset.
type AAASettingsResponse struct {
	Configured      bool   `json:"configured"`
	Scheme          string `json:"scheme"`
	Host            string `json:"host"`
	Port            int    `json:"port"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordSet     bool   `json:"password_set"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	DisconnectMode  string `json:"disconnect_mode"`
	RadiusSecret    string `json:"radius_secret"`
	RadiusSecretSet bool   `json:"radius_secret_set"`
	RadiusNASAddr   string `json:"radius_nas_addr"`
	Endpoint        string `json:"endpoint,omitempty"`
}

// UpdateAAASettingsRequest updates the fields that are present.
type UpdateAAASettingsRequest struct {
	Scheme         *string `json:"scheme" binding:"omitempty,oneof=http https"`
	Host           *string `json:"host"`
	Port           *int    `json:"port" binding:"omitempty,min=1,max=65535"`
	Username       *string `json:"username"`
	Password       *string `json:"password"`
	TimeoutSeconds *int    `json:"timeout_seconds" binding:"omitempty,min=1,max=60"`
	DisconnectMode *string `json:"disconnect_mode" binding:"omitempty,oneof=rest radius"`
	RadiusSecret   *string `json:"radius_secret"`
	RadiusNASAddr  *string `json:"radius_nas_addr" binding:"omitempty,hostname_port"`
}

// ToAAASettingsResponse masks the secrets of s.
func ToAAASettingsResponse(s setting.AAASettings) *AAASettingsResponse {
	resp := &AAASettingsResponse{
		Configured:      s.IsConfigured(),
		Scheme:          s.Scheme,
		Host:            s.Host,
		Port:            s.Port,
		Username:        s.Username,
		Password:        setting.MaskValue(s.Password),
		PasswordSet:     s.Password != "",
		TimeoutSeconds:  s.TimeoutSeconds,
		DisconnectMode:  string(s.DisconnectMode),
		RadiusSecret:    setting.MaskValue(s.RadiusSecret),
		RadiusSecretSet: s.RadiusSecret != "",
		RadiusNASAddr:   s.RadiusNASAddr,
	}
	if resp.Configured {
		resp.Endpoint = s.BaseURL()
	}
	return resp
}
