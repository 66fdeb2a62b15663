package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/errors"
)

// UpdateCredentialsCommand renames the identity. An empty NewSecret keeps the
// current secret, or synthesizes one when the identity never had a secret.
type UpdateCredentialsCommand struct {
	AccountNo   string
	NewUsername string
	NewSecret   string
	Actor       string
}

type UpdateCredentialsUseCase struct {
	transitionRunner
}

func NewUpdateCredentialsUseCase(deps Dependencies) *UpdateCredentialsUseCase {
	return &UpdateCredentialsUseCase{transitionRunner: newTransitionRunner(deps)}
}

func (uc *UpdateCredentialsUseCase) Execute(ctx context.Context, cmd UpdateCredentialsCommand) (*TransitionResult, error) {
	newUsername := strings.TrimSpace(cmd.NewUsername)
	if newUsername == "" {
		return nil, errors.NewValidationError("new username is required")
	}

	return uc.run(ctx, cmd.AccountNo, connectivity.TransitionUpdateCredentials, cmd.Actor, func(s *subject) (*TransitionResult, error) {
		if s.identity == nil {
			return uc.shortCircuit(ctx, s, connectivity.TransitionUpdateCredentials, connectivity.ResultNoUsername, cmd.Actor), nil
		}
		if newUsername == s.identity.Username() {
			return uc.shortCircuit(ctx, s, connectivity.TransitionUpdateCredentials, connectivity.ResultSameUsername, cmd.Actor), nil
		}

		taken, err := uc.Identities.UsernameExists(ctx, newUsername)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, errors.NewConflictError("username already in use", newUsername)
		}

		secret := cmd.NewSecret
		if secret == "" {
			secret = s.identity.Secret()
		}
		if secret == "" {
			secret, err = uc.missingSecret(ctx, s)
			if err != nil {
				return nil, err
			}
		}

		settings := uc.Settings.GetAAASettings(ctx)
		if err := uc.Network.Upsert(ctx, settings, newUsername, s.account.PlanName(), secret); err != nil {
			return uc.networkFailed(ctx, s, connectivity.TransitionUpdateCredentials, s.account.ConnectivityStatus(), err, cmd.Actor, ""), nil
		}

		oldUsername := s.identity.Username()
		err = uc.TxMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if _, err := uc.Accounts.GetByAccountNoForUpdate(txCtx, s.account.AccountNo()); err != nil {
				return err
			}
			s.identity.SetCredentials(newUsername, secret)
			return uc.Identities.Update(txCtx, s.identity)
		})
		if err != nil {
			uc.Logger.Errorw("failed to store credentials", "account_no", s.account.AccountNo(), "error", err)
			return nil, fmt.Errorf("failed to store credentials: %w", err)
		}

		result := &TransitionResult{
			AccountNo:          s.account.AccountNo(),
			Code:               connectivity.ResultSuccess,
			ConnectivityStatus: s.account.ConnectivityStatus(),
		}
		uc.record(ctx, connectivity.TransitionUpdateCredentials, result, connectivity.NetworkSucceeded, cmd.Actor, "")

		uc.Logger.Infow("credentials updated",
			"account_no", s.account.AccountNo(),
			"old_username", oldUsername,
			"new_username", newUsername,
		)
		return result, nil
	})
}
