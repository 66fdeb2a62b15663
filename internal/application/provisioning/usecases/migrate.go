package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/shared/errors"
)

// MigrateCommand moves a subscriber to new hardware. LCP, NAP and Port are
// optional; empty values keep the current assignment.
type MigrateCommand struct {
	AccountNo     string
	NewHardwareID string
	LCP           string
	NAP           string
	Port          string
	Actor         string
}

// MigrateUseCase re-derives the username from the subscriber's current profile
// and renames the AAA user. The secret is never reissued.
type MigrateUseCase struct {
	transitionRunner
	usernames UsernameBuilder
}

func NewMigrateUseCase(deps Dependencies, usernames UsernameBuilder) *MigrateUseCase {
	return &MigrateUseCase{
		transitionRunner: newTransitionRunner(deps),
		usernames:        usernames,
	}
}

func (uc *MigrateUseCase) Execute(ctx context.Context, cmd MigrateCommand) (*TransitionResult, error) {
	hardwareID := strings.TrimSpace(cmd.NewHardwareID)
	if hardwareID == "" {
		return nil, errors.NewValidationError("new hardware id is required")
	}

	return uc.run(ctx, cmd.AccountNo, connectivity.TransitionMigrate, cmd.Actor, func(s *subject) (*TransitionResult, error) {
		if !s.hasUsername() {
			return uc.shortCircuit(ctx, s, connectivity.TransitionMigrate, connectivity.ResultNoUsername, cmd.Actor), nil
		}

		oldUsername := s.identity.Username()
		s.identity.Relocate(strings.TrimSpace(cmd.LCP), strings.TrimSpace(cmd.NAP), strings.TrimSpace(cmd.Port))

		p, err := uc.profile(ctx, s)
		if err != nil {
			return nil, err
		}
		newUsername, err := uc.usernames.BuildUsernameFor(ctx, p, oldUsername)
		if err != nil {
			uc.Logger.Errorw("failed to derive username", "account_no", s.account.AccountNo(), "error", err)
			return nil, err
		}

		outcome := connectivity.NetworkNotAttempted
		detail := "username unchanged"
		if newUsername != oldUsername {
			settings := uc.Settings.GetAAASettings(ctx)
			err := uc.Network.Rename(ctx, settings, oldUsername, newUsername, s.account.PlanName(), s.identity.Secret())
			if err != nil {
				return uc.networkFailed(ctx, s, connectivity.TransitionMigrate, s.account.ConnectivityStatus(), err, cmd.Actor, ""), nil
			}
			outcome = connectivity.NetworkSucceeded
			detail = fmt.Sprintf("renamed %s to %s", oldUsername, newUsername)
		}

		err = uc.TxMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if _, err := uc.Accounts.GetByAccountNoForUpdate(txCtx, s.account.AccountNo()); err != nil {
				return err
			}
			s.identity.Migrate(newUsername, hardwareID)
			return uc.Identities.Update(txCtx, s.identity)
		})
		if err != nil {
			uc.Logger.Errorw("failed to store migration",
				"account_no", s.account.AccountNo(),
				"old_username", oldUsername,
				"new_username", newUsername,
				"error", err,
			)
			return nil, fmt.Errorf("failed to store migration: %w", err)
		}

		result := &TransitionResult{
			AccountNo:          s.account.AccountNo(),
			Code:               connectivity.ResultSuccess,
			ConnectivityStatus: s.account.ConnectivityStatus(),
			Detail:             detail,
		}
		uc.record(ctx, connectivity.TransitionMigrate, result, outcome, cmd.Actor, "")

		uc.Logger.Infow("account migrated",
			"account_no", s.account.AccountNo(),
			"old_username", oldUsername,
			"new_username", newUsername,
			"hardware_serial", hardwareID,
		)
		return result, nil
	})
}

func profileOf(customer *onboarding.Customer, s *subject) credential.Profile {
	loc := s.identity.Location()
	p := credential.Profile{
		LCP:  loc.LCP,
		NAP:  loc.NAP,
		Port: loc.Port,
	}
	if customer != nil {
		p.FirstName = customer.FirstName
		p.MiddleName = customer.MiddleName
		p.LastName = customer.LastName
		p.Mobile = customer.Mobile
	}
	return p
}
