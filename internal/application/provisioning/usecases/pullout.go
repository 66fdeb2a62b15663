package usecases

import (
	"context"
	"fmt"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
)

type PulloutCommand struct {
	AccountNo string
	Actor     string
}

// PulloutUseCase ends service after equipment recovery. The session is killed
// first; the status and cleared location are written only after that succeeds.
type PulloutUseCase struct {
	transitionRunner
}

func NewPulloutUseCase(deps Dependencies) *PulloutUseCase {
	return &PulloutUseCase{transitionRunner: newTransitionRunner(deps)}
}

func (uc *PulloutUseCase) Execute(ctx context.Context, cmd PulloutCommand) (*TransitionResult, error) {
	return uc.run(ctx, cmd.AccountNo, connectivity.TransitionPullout, cmd.Actor, func(s *subject) (*TransitionResult, error) {
		if !s.hasUsername() {
			return uc.shortCircuit(ctx, s, connectivity.TransitionPullout, connectivity.ResultNoUsername, cmd.Actor), nil
		}

		settings := uc.Settings.GetAAASettings(ctx)
		if err := uc.Network.KillSession(ctx, settings, s.identity.Username()); err != nil {
			return uc.networkFailed(ctx, s, connectivity.TransitionPullout, s.account.ConnectivityStatus(), err, cmd.Actor, ""), nil
		}

		err := uc.writeStatus(ctx, s.account.AccountNo(), account.StatusPulledOut, func(txCtx context.Context) error {
			s.identity.ClearLocation()
			return uc.Identities.Update(txCtx, s.identity)
		})
		if err != nil {
			uc.Logger.Errorw("failed to store pullout", "account_no", s.account.AccountNo(), "error", err)
			return nil, fmt.Errorf("failed to store pullout: %w", err)
		}

		result := &TransitionResult{
			AccountNo:          s.account.AccountNo(),
			Code:               connectivity.ResultSuccess,
			ConnectivityStatus: account.StatusPulledOut,
		}
		uc.record(ctx, connectivity.TransitionPullout, result, connectivity.NetworkSucceeded, cmd.Actor, "")

		uc.Logger.Infow("account pulled out", "account_no", s.account.AccountNo())
		return result, nil
	})
}
