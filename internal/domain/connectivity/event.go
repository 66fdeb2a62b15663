package connectivity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fiberops/subcore/internal/shared/biztime"
)

// Transition names the requested connectivity change.
type Transition string

const (
	TransitionProvision         Transition = "provision"
	TransitionReconnect         Transition = "reconnect"
	TransitionDisconnect        Transition = "disconnect"
	TransitionSuspend           Transition = "suspend"
	TransitionPullout           Transition = "pullout"
	TransitionMigrate           Transition = "migrate"
	TransitionUpdateCredentials Transition = "update_credentials"
)

// ResultCode is the definite outcome of a transition attempt.
type ResultCode string

const (
	ResultSuccess         ResultCode = "success"
	ResultFailed          ResultCode = "failed"
	ResultBalancePositive ResultCode = "balance_positive"
	ResultAlreadyActive   ResultCode = "already_active"
	ResultNoUsername      ResultCode = "no_username"
	ResultNoPlan          ResultCode = "no_plan"
	ResultSameUsername    ResultCode = "same_username"
	ResultNotFound        ResultCode = "not_found"
)

// NetworkOutcome records what happened on the AAA side.
type NetworkOutcome string

const (
	NetworkNotAttempted NetworkOutcome = "not_attempted"
	NetworkSucceeded    NetworkOutcome = "succeeded"
	NetworkFailed       NetworkOutcome = "failed"
)

// Event is an append-only record of one transition attempt.
type Event struct {
	ID             string
	AccountNo      string
	Transition     Transition
	Result         ResultCode
	NetworkOutcome NetworkOutcome
	Detail         string
	Remarks        string
	Actor          string
	Metadata       map[string]string
	OccurredAt     time.Time
}

// NewEvent stamps a new event with an id and the current time.
func NewEvent(accountNo string, transition Transition, result ResultCode, outcome NetworkOutcome, detail, actor string) *Event {
	return &Event{
		ID:             uuid.NewString(),
		AccountNo:      accountNo,
		Transition:     transition,
		Result:         result,
		NetworkOutcome: outcome,
		Detail:         detail,
		Actor:          actor,
		Metadata:       map[string]string{},
		OccurredAt:     biztime.NowUTC(),
	}
}

// Succeeded reports whether the transition took effect.
func (e *Event) Succeeded() bool {
	return e.Result == ResultSuccess
}
