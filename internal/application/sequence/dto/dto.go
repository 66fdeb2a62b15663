package dto

import "time"

// AllocationDTO is the result of a standalone allocation. Reserved is always
// false: the number is a preview until an account is created with it.
type AllocationDTO struct {
	AccountNo string `json:"account_no"`
	Reserved  bool   `json:"reserved"`
}

// AccountSequenceDTO describes the stored sequence configuration and the
// sequence allocation will actually use.
type AccountSequenceDTO struct {
	Configured      bool       `json:"configured"`
	Prefix          string     `json:"prefix,omitempty"`
	UpdatedBy       string     `json:"updated_by,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	EffectivePrefix string     `json:"effective_prefix"`
	StartValue      uint64     `json:"start_value"`
	MinWidth        int        `json:"min_width"`
	Warning         string     `json:"warning,omitempty"`
}

// UpdateAccountSequenceRequest sets the seed, e.g. "ATS1000".
type UpdateAccountSequenceRequest struct {
	Prefix string `json:"prefix" binding:"required,max=7,alphanum"`
}
