package usecases

import (
	"context"
	"fmt"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
)

type ReconnectCommand struct {
	AccountNo string
	Actor     string
}

// ReconnectUseCase restores service for a settled account. The local status
// is written before the AAA call and is kept when that call fails.
type ReconnectUseCase struct {
	transitionRunner
}

func NewReconnectUseCase(deps Dependencies) *ReconnectUseCase {
	return &ReconnectUseCase{transitionRunner: newTransitionRunner(deps)}
}

func (uc *ReconnectUseCase) Execute(ctx context.Context, cmd ReconnectCommand) (*TransitionResult, error) {
	return uc.run(ctx, cmd.AccountNo, connectivity.TransitionReconnect, cmd.Actor, func(s *subject) (*TransitionResult, error) {
		switch {
		case s.account.HasOutstandingBalance():
			return uc.shortCircuit(ctx, s, connectivity.TransitionReconnect, connectivity.ResultBalancePositive, cmd.Actor), nil
		case s.account.IsActive():
			return uc.shortCircuit(ctx, s, connectivity.TransitionReconnect, connectivity.ResultAlreadyActive, cmd.Actor), nil
		case !s.hasUsername():
			return uc.shortCircuit(ctx, s, connectivity.TransitionReconnect, connectivity.ResultNoUsername, cmd.Actor), nil
		case !s.account.HasPlan():
			return uc.shortCircuit(ctx, s, connectivity.TransitionReconnect, connectivity.ResultNoPlan, cmd.Actor), nil
		}

		secret, err := uc.missingSecret(ctx, s)
		if err != nil {
			return nil, err
		}
		var storeSecret func(txCtx context.Context) error
		if secret != "" {
			s.identity.SetCredentials(s.identity.Username(), secret)
			storeSecret = func(txCtx context.Context) error {
				return uc.Identities.Update(txCtx, s.identity)
			}
		}

		if err := uc.writeStatus(ctx, s.account.AccountNo(), account.StatusActive, storeSecret); err != nil {
			uc.Logger.Errorw("failed to mark account active", "account_no", s.account.AccountNo(), "error", err)
			return nil, fmt.Errorf("failed to mark account active: %w", err)
		}

		settings := uc.Settings.GetAAASettings(ctx)
		if err := uc.Network.Upsert(ctx, settings, s.identity.Username(), s.account.PlanName(), s.identity.Secret()); err != nil {
			return uc.networkFailed(ctx, s, connectivity.TransitionReconnect, account.StatusActive, err, cmd.Actor, ""), nil
		}

		result := &TransitionResult{
			AccountNo:          s.account.AccountNo(),
			Code:               connectivity.ResultSuccess,
			ConnectivityStatus: account.StatusActive,
		}
		uc.record(ctx, connectivity.TransitionReconnect, result, connectivity.NetworkSucceeded, cmd.Actor, "")

		uc.Logger.Infow("account reconnected",
			"account_no", s.account.AccountNo(),
			"username", s.identity.Username(),
			"plan", s.account.PlanName(),
			"secret_generated", secret != "",
		)
		return result, nil
	})
}
