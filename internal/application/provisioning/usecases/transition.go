package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/goroutine"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const (
	lockKeyPrefix  = constants.TransitionLockKeyPrefix
	publishTimeout = 5 * time.Second
)

// TransitionResult is the definite outcome of a transition request.
type TransitionResult struct {
	AccountNo          string
	Code               connectivity.ResultCode
	ConnectivityStatus account.ConnectivityStatus
	Detail             string
}

// Failed reports whether the network step failed.
func (r *TransitionResult) Failed() bool {
	return r.Code == connectivity.ResultFailed
}

// Dependencies are shared by every transition use case.
type Dependencies struct {
	Accounts    account.Repository
	Identities  network.Repository
	Customers   onboarding.CustomerRepository
	Events      connectivity.Repository
	Publisher   connectivity.Publisher
	Network     NetworkClient
	Settings    AAASettingsSource
	Credentials CredentialFiller
	Locker      TransitionLocker
	TxMgr       *db.TransactionManager
	Logger      logger.Interface
}

// subject is the account and identity a transition operates on.
type subject struct {
	account  *account.SubscriberAccount
	identity *network.Identity
}

func (s *subject) username() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Username()
}

func (s *subject) hasUsername() bool {
	return s.identity != nil && s.identity.HasUsername()
}

// profile loads the subscriber details credential patterns render from.
func (r transitionRunner) profile(ctx context.Context, s *subject) (credential.Profile, error) {
	customer, err := r.Customers.GetByID(ctx, s.account.CustomerID())
	if err != nil {
		return credential.Profile{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return profileOf(customer, s), nil
}

// missingSecret synthesizes a secret for an identity that has a username but
// was never given a secret. It returns "" when the identity already has one.
func (r transitionRunner) missingSecret(ctx context.Context, s *subject) (string, error) {
	if s.identity.HasSecret() {
		return "", nil
	}
	p, err := r.profile(ctx, s)
	if err != nil {
		return "", err
	}
	creds, err := r.Credentials.EnsureCredentials(ctx, p, s.identity.Username(), "")
	if err != nil {
		r.Logger.Errorw("failed to synthesize secret", "account_no", s.account.AccountNo(), "error", err)
		return "", fmt.Errorf("failed to synthesize secret: %w", err)
	}
	return creds.Secret, nil
}

type transitionRunner struct {
	Dependencies
}

func newTransitionRunner(deps Dependencies) transitionRunner {
	return transitionRunner{Dependencies: deps}
}

// run holds the account's transition lock while fn executes. A missing
// account yields a not_found result without calling fn.
func (r transitionRunner) run(
	ctx context.Context,
	accountNo string,
	transition connectivity.Transition,
	actor string,
	fn func(s *subject) (*TransitionResult, error),
) (*TransitionResult, error) {
	release, acquired, err := r.Locker.TryAcquire(ctx, lockKeyPrefix+accountNo)
	if err != nil {
		r.Logger.Errorw("failed to acquire transition lock", "account_no", accountNo, "error", err)
		return nil, fmt.Errorf("failed to acquire transition lock: %w", err)
	}
	if !acquired {
		return nil, errors.NewConflictError("transition in progress", accountNo)
	}
	defer release()

	acc, err := r.Accounts.GetByAccountNo(ctx, accountNo)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		result := &TransitionResult{AccountNo: accountNo, Code: connectivity.ResultNotFound}
		r.record(ctx, transition, result, connectivity.NetworkNotAttempted, actor, "")
		return result, nil
	}

	identity, err := r.Identities.GetByAccountNo(ctx, accountNo)
	if err != nil {
		return nil, fmt.Errorf("failed to get network identity: %w", err)
	}

	return fn(&subject{account: acc, identity: identity})
}

// shortCircuit records a transition that stopped before the network step.
func (r transitionRunner) shortCircuit(
	ctx context.Context,
	s *subject,
	transition connectivity.Transition,
	code connectivity.ResultCode,
	actor string,
) *TransitionResult {
	result := &TransitionResult{
		AccountNo:          s.account.AccountNo(),
		Code:               code,
		ConnectivityStatus: s.account.ConnectivityStatus(),
	}
	r.record(ctx, transition, result, connectivity.NetworkNotAttempted, actor, "")
	return result
}

// networkFailed records a failed network step. Local state is reported as it
// stands.
func (r transitionRunner) networkFailed(
	ctx context.Context,
	s *subject,
	transition connectivity.Transition,
	status account.ConnectivityStatus,
	netErr error,
	actor, remarks string,
) *TransitionResult {
	r.Logger.Warnw("network step failed",
		"account_no", s.account.AccountNo(),
		"transition", transition,
		"username", s.username(),
		"error", netErr,
	)
	result := &TransitionResult{
		AccountNo:          s.account.AccountNo(),
		Code:               connectivity.ResultFailed,
		ConnectivityStatus: status,
		Detail:             netErr.Error(),
	}
	r.record(ctx, transition, result, connectivity.NetworkFailed, actor, remarks)
	return result
}

// writeStatus locks the account row and stores status, running extra in the
// same transaction.
func (r transitionRunner) writeStatus(
	ctx context.Context,
	accountNo string,
	status account.ConnectivityStatus,
	extra func(txCtx context.Context) error,
) error {
	return r.TxMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		acc, err := r.Accounts.GetByAccountNoForUpdate(txCtx, accountNo)
		if err != nil {
			return err
		}
		if acc == nil {
			return errors.NewNotFoundError("account not found", accountNo)
		}
		if acc.ConnectivityStatus() != status {
			if err := acc.ChangeStatus(status); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := r.Accounts.UpdateConnectivityStatus(txCtx, accountNo, acc.ConnectivityStatus()); err != nil {
				return err
			}
		}
		if extra != nil {
			return extra(txCtx)
		}
		return nil
	})
}

// record appends the event and hands it to the publisher. Neither failure
// changes the outcome already reached.
func (r transitionRunner) record(
	ctx context.Context,
	transition connectivity.Transition,
	result *TransitionResult,
	outcome connectivity.NetworkOutcome,
	actor, remarks string,
) {
	event := connectivity.NewEvent(result.AccountNo, transition, result.Code, outcome, result.Detail, actor)
	event.Remarks = remarks
	if result.ConnectivityStatus != "" {
		event.Metadata["connectivity_status"] = result.ConnectivityStatus.String()
	}

	if err := r.Events.Append(ctx, event); err != nil {
		r.Logger.Errorw("failed to append connectivity event",
			"account_no", result.AccountNo,
			"transition", transition,
			"result", result.Code,
			"error", err,
		)
	}

	if r.Publisher == nil {
		return
	}
	goroutine.Go(r.Logger, "publish connectivity event", publishTimeout, func(ctx context.Context) error {
		return r.Publisher.Publish(ctx, event)
	}, "account_no", event.AccountNo, "event_id", event.ID)
}
