package dto

import (
	"time"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/biztime"
)

type RemarksRequest struct {
	Remarks string `json:"remarks" binding:"max=500"`
}

type MigrateRequest struct {
	NewHardwareID string `json:"new_hardware_id" binding:"required,max=64"`
	LCP           string `json:"lcp" binding:"max=32"`
	NAP           string `json:"nap" binding:"max=32"`
	Port          string `json:"port" binding:"max=16"`
}

type UpdateCredentialsRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Secret   string `json:"secret" binding:"max=64"`
}

type TransitionResultDTO struct {
	AccountNo          string `json:"account_no"`
	Code               string `json:"code"`
	ConnectivityStatus string `json:"connectivity_status,omitempty"`
	Detail             string `json:"detail,omitempty"`
}

type ConnectivityEventDTO struct {
	ID             string            `json:"id"`
	Transition     string            `json:"transition"`
	Result         string            `json:"result"`
	NetworkOutcome string            `json:"network_outcome"`
	Detail         string            `json:"detail,omitempty"`
	Remarks        string            `json:"remarks,omitempty"`
	Actor          string            `json:"actor,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

func ToConnectivityEventDTOs(events []*connectivity.Event) []*ConnectivityEventDTO {
	result := make([]*ConnectivityEventDTO, 0, len(events))
	for _, e := range events {
		result = append(result, &ConnectivityEventDTO{
			ID:             e.ID,
			Transition:     string(e.Transition),
			Result:         string(e.Result),
			NetworkOutcome: string(e.NetworkOutcome),
			Detail:         e.Detail,
			Remarks:        e.Remarks,
			Actor:          e.Actor,
			Metadata:       e.Metadata,
			OccurredAt:     biztime.ToBizTimezone(e.OccurredAt),
		})
	}
	return result
}
