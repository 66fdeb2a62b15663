package dto

import "github.com/fiberops/subcore/internal/domain/onboarding"

// ApproveApplicationRequest carries the install crew's facts.
type ApproveApplicationRequest struct {
	Port            string `json:"port" binding:"max=16"`
	VLAN            string `json:"vlan" binding:"max=16"`
	IPAddress       string `json:"ip_address" binding:"omitempty,ip"`
	HardwareSerial  string `json:"hardware_serial" binding:"max=64"`
	InstallationFee string `json:"installation_fee" binding:"omitempty,max=20"`
}

func (r ApproveApplicationRequest) ToFacts() onboarding.InstallationFacts {
	return onboarding.InstallationFacts{
		Port:            r.Port,
		VLAN:            r.VLAN,
		IPAddress:       r.IPAddress,
		HardwareSerial:  r.HardwareSerial,
		InstallationFee: r.InstallationFee,
	}
}

type ApproveApplicationResponse struct {
	AccountNo          string `json:"account_no"`
	CustomerID         uint   `json:"customer_id"`
	Username           string `json:"username"`
	Secret             string `json:"secret"`
	PlanID             *uint  `json:"plan_id"`
	PlanName           string `json:"plan_name,omitempty"`
	ProvisioningStatus string `json:"provisioning_status"`
	Detail             string `json:"detail,omitempty"`
}
