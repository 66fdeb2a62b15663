package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
)

type DisconnectCommand struct {
	AccountNo string
	Remarks   string
	Actor     string
}

// DisconnectUseCase drops the subscriber's session and, only once the AAA
// server confirms, records the account as disconnected or suspended.
type DisconnectUseCase struct {
	transitionRunner
	target     account.ConnectivityStatus
	transition connectivity.Transition
	sanitizer  *bluemonday.Policy
}

// NewDisconnectUseCase creates the operator disconnect transition.
func NewDisconnectUseCase(deps Dependencies) *DisconnectUseCase {
	return newDisconnectUseCase(deps, account.StatusDisconnected, connectivity.TransitionDisconnect)
}

// NewSuspendUseCase creates the non-payment suspension transition.
func NewSuspendUseCase(deps Dependencies) *DisconnectUseCase {
	return newDisconnectUseCase(deps, account.StatusSuspended, connectivity.TransitionSuspend)
}

func newDisconnectUseCase(deps Dependencies, target account.ConnectivityStatus, transition connectivity.Transition) *DisconnectUseCase {
	return &DisconnectUseCase{
		transitionRunner: newTransitionRunner(deps),
		target:           target,
		transition:       transition,
		sanitizer:        bluemonday.StrictPolicy(),
	}
}

func (uc *DisconnectUseCase) Execute(ctx context.Context, cmd DisconnectCommand) (*TransitionResult, error) {
	remarks := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Remarks))

	return uc.run(ctx, cmd.AccountNo, uc.transition, cmd.Actor, func(s *subject) (*TransitionResult, error) {
		if !s.hasUsername() {
			return uc.shortCircuit(ctx, s, uc.transition, connectivity.ResultNoUsername, cmd.Actor), nil
		}

		settings := uc.Settings.GetAAASettings(ctx)
		if err := uc.Network.KillSession(ctx, settings, s.identity.Username()); err != nil {
			return uc.networkFailed(ctx, s, uc.transition, s.account.ConnectivityStatus(), err, cmd.Actor, remarks), nil
		}

		if err := uc.writeStatus(ctx, s.account.AccountNo(), uc.target, nil); err != nil {
			uc.Logger.Errorw("failed to store connectivity status",
				"account_no", s.account.AccountNo(),
				"status", uc.target,
				"error", err,
			)
			return nil, fmt.Errorf("failed to store connectivity status: %w", err)
		}

		result := &TransitionResult{
			AccountNo:          s.account.AccountNo(),
			Code:               connectivity.ResultSuccess,
			ConnectivityStatus: uc.target,
		}
		uc.record(ctx, uc.transition, result, connectivity.NetworkSucceeded, cmd.Actor, remarks)

		uc.Logger.Infow("account session dropped",
			"account_no", s.account.AccountNo(),
			"transition", uc.transition,
			"status", uc.target,
		)
		return result, nil
	})
}
