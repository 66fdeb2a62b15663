package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

const (
	// ErrCodeMissingApplicationLink is the validation message for an absent or
	// incomplete application.
	ErrCodeMissingApplicationLink = "missing_application_link"

	ProvisioningStatusProvisioned = "provisioned"
	ProvisioningStatusFailed      = "failed"
)

type ApproveApplicationCommand struct {
	ApplicationID uint
	Facts         onboarding.InstallationFacts
	Actor         string
}

// ApproveApplicationResult reports a committed onboarding. ProvisioningStatus
// tells whether the AAA user was created; a failure there leaves the local
// records in place for a later reconnect.
type ApproveApplicationResult struct {
	AccountNo          string
	CustomerID         uint
	Username           string
	Secret             string
	PlanID             *uint
	PlanName           string
	ProvisioningStatus string
	Detail             string
}

// Repositories groups the stores written by onboarding.
type Repositories struct {
	Applications  onboarding.ApplicationRepository
	Customers     onboarding.CustomerRepository
	Plans         onboarding.PlanRepository
	Locations     onboarding.LocationRepository
	Accounts      account.Repository
	Identities    network.Repository
	JobOrders     onboarding.JobOrderRepository
	SessionStatus onboarding.SessionStatusRepository
	LoginAccounts onboarding.LoginAccountRepository
	Events        connectivity.Repository
}

// ApproveApplicationUseCase converts an application into a provisioned
// subscriber. Every local write happens in one transaction; the AAA call is
// made only after it commits.
type ApproveApplicationUseCase struct {
	repos       Repositories
	allocator   AccountAllocator
	synthesizer CredentialSynthesizer
	hasher      PasswordHasher
	network     NetworkProvisioner
	settings    AAASettingsSource
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewApproveApplicationUseCase(
	repos Repositories,
	allocator AccountAllocator,
	synthesizer CredentialSynthesizer,
	hasher PasswordHasher,
	network NetworkProvisioner,
	settings AAASettingsSource,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ApproveApplicationUseCase {
	return &ApproveApplicationUseCase{
		repos:       repos,
		allocator:   allocator,
		synthesizer: synthesizer,
		hasher:      hasher,
		network:     network,
		settings:    settings,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ApproveApplicationUseCase) Execute(ctx context.Context, cmd ApproveApplicationCommand) (*ApproveApplicationResult, error) {
	fee, err := parseInstallationFee(cmd.Facts.InstallationFee)
	if err != nil {
		return nil, err
	}

	result := &ApproveApplicationResult{}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		app, err := uc.loadApplication(txCtx, cmd.ApplicationID)
		if err != nil {
			return err
		}

		customer := onboarding.CustomerFromApplication(app)
		if err := uc.repos.Customers.Create(txCtx, customer); err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		accountNo, err := uc.allocator.Allocate(txCtx)
		if err != nil {
			return fmt.Errorf("failed to allocate account number: %w", err)
		}

		planID, planName := uc.resolvePlan(txCtx, app.DesiredPlan)

		acc, err := account.NewSubscriberAccount(accountNo, customer.ID, planID, planName, fee)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.repos.Accounts.Create(txCtx, acc); err != nil {
			return fmt.Errorf("failed to create subscriber account: %w", err)
		}

		location, err := uc.resolveLocation(txCtx, app, cmd.Facts)
		if err != nil {
			return err
		}

		creds, err := uc.synthesizer.EnsureCredentials(txCtx, credential.Profile{
			FirstName:  app.FirstName,
			MiddleName: app.MiddleName,
			LastName:   app.LastName,
			Mobile:     app.Mobile,
			LCP:        location.LCP,
			NAP:        location.NAP,
			Port:       location.Port,
		}, "", "")
		if err != nil {
			return err
		}

		if err := uc.writeCredentials(txCtx, app.ID, accountNo, creds, location); err != nil {
			return err
		}

		if err := uc.repos.SessionStatus.Create(txCtx, &onboarding.SessionStatus{
			AccountNo: accountNo,
			Username:  creds.Username,
		}); err != nil {
			return fmt.Errorf("failed to create session status: %w", err)
		}

		hash, err := uc.hasher.Hash(strings.TrimSpace(app.Mobile))
		if err != nil {
			return fmt.Errorf("failed to hash login password: %w", err)
		}
		if err := uc.repos.LoginAccounts.Create(txCtx, &onboarding.LoginAccount{
			AccountNo:         accountNo,
			PasswordHash:      hash,
			MustResetPassword: true,
		}); err != nil {
			return fmt.Errorf("failed to create login account: %w", err)
		}

		if err := uc.repos.Applications.MarkApproved(txCtx, app.ID, customer.ID); err != nil {
			return err
		}

		result.AccountNo = accountNo
		result.CustomerID = customer.ID
		result.Username = creds.Username
		result.Secret = creds.Secret
		result.PlanID = planID
		result.PlanName = planName
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to approve application", "application_id", cmd.ApplicationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("application approved",
		"application_id", cmd.ApplicationID,
		"account_no", result.AccountNo,
		"customer_id", result.CustomerID,
		"username", result.Username,
	)

	uc.provision(ctx, result, cmd.Actor)
	return result, nil
}

func (uc *ApproveApplicationUseCase) loadApplication(ctx context.Context, id uint) (*onboarding.Application, error) {
	app, err := uc.repos.Applications.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, errors.NewValidationError(ErrCodeMissingApplicationLink, fmt.Sprintf("application %d not found", id))
	}
	if problems := utils.FieldErrors(app); len(problems) > 0 {
		return nil, errors.NewValidationError(ErrCodeMissingApplicationLink, strings.Join(problems, "; "))
	}
	if app.IsApproved() {
		return nil, errors.NewConflictError("application already approved", fmt.Sprintf("application %d", id))
	}
	return app, nil
}

// resolvePlan matches the "<name> - P<price>" label to a plan. No match is
// not fatal: the plan id stays nil for billing to fix up.
func (uc *ApproveApplicationUseCase) resolvePlan(ctx context.Context, label string) (*uint, string) {
	label = strings.TrimSpace(label)

	name, price, err := onboarding.ParsePlanString(label)
	if err != nil {
		uc.logger.Warnw("desired plan not parseable, plan left unset", "desired_plan", label, "error", err)
		return nil, label
	}

	plan, err := uc.repos.Plans.FindByNameAndPrice(ctx, name, price)
	if err != nil {
		uc.logger.Warnw("plan lookup failed, plan left unset", "desired_plan", label, "error", err)
		return nil, name
	}
	if plan == nil {
		uc.logger.Warnw("no plan matches desired plan, plan left unset", "name", name, "price", price.String())
		return nil, name
	}

	id := plan.ID
	return &id, plan.Name
}

func (uc *ApproveApplicationUseCase) resolveLocation(ctx context.Context, app *onboarding.Application, facts onboarding.InstallationFacts) (network.Location, error) {
	lcp := strings.TrimSpace(app.LCP)
	nap := strings.TrimSpace(app.NAP)

	site, err := uc.repos.Locations.FindByCodes(ctx, lcp, nap)
	if err != nil {
		return network.Location{}, fmt.Errorf("failed to look up location: %w", err)
	}
	if site != nil {
		lcp, nap = site.LCPCode, site.NAPCode
	} else {
		uc.logger.Warnw("no site location for codes, using application values", "lcp", lcp, "nap", nap)
	}

	return network.Location{
		LCP:            lcp,
		NAP:            nap,
		Port:           strings.TrimSpace(facts.Port),
		VLAN:           strings.TrimSpace(facts.VLAN),
		IPAddress:      strings.TrimSpace(facts.IPAddress),
		HardwareSerial: strings.TrimSpace(facts.HardwareSerial),
	}, nil
}

// writeCredentials stores the credentials on the network identity and on the
// install crew's job order.
func (uc *ApproveApplicationUseCase) writeCredentials(
	ctx context.Context,
	applicationID uint,
	accountNo string,
	creds *credentialUsecases.Credentials,
	location network.Location,
) error {
	identity, err := network.NewIdentity(accountNo, creds.Username, creds.Secret, location)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.repos.Identities.Create(ctx, identity); err != nil {
		return err
	}

	if err := uc.repos.JobOrders.Create(ctx, &onboarding.JobOrder{
		ApplicationID:  applicationID,
		AccountNo:      accountNo,
		Username:       creds.Username,
		Secret:         creds.Secret,
		Port:           location.Port,
		HardwareSerial: location.HardwareSerial,
	}); err != nil {
		return fmt.Errorf("failed to create job order: %w", err)
	}
	return nil
}

// provision creates the AAA user. Failures are reported on the result and
// never undo the committed onboarding.
func (uc *ApproveApplicationUseCase) provision(ctx context.Context, result *ApproveApplicationResult, actor string) {
	settings := uc.settings.GetAAASettings(ctx)

	outcome := connectivity.NetworkSucceeded
	code := connectivity.ResultSuccess
	result.ProvisioningStatus = ProvisioningStatusProvisioned

	if err := uc.network.Upsert(ctx, settings, result.Username, result.PlanName, result.Secret); err != nil {
		uc.logger.Warnw("aaa provisioning failed after onboarding",
			"account_no", result.AccountNo,
			"username", result.Username,
			"error", err,
		)
		outcome = connectivity.NetworkFailed
		code = connectivity.ResultFailed
		result.ProvisioningStatus = ProvisioningStatusFailed
		result.Detail = err.Error()
	}

	event := connectivity.NewEvent(result.AccountNo, connectivity.TransitionProvision, code, outcome, result.Detail, actor)
	if err := uc.repos.Events.Append(ctx, event); err != nil {
		uc.logger.Errorw("failed to append connectivity event", "account_no", result.AccountNo, "error", err)
	}
}

func parseInstallationFee(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero, nil
	}
	fee, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.NewValidationError("invalid installation fee", raw)
	}
	if fee.IsNegative() {
		return decimal.Zero, errors.NewValidationError("installation fee cannot be negative", raw)
	}
	return fee, nil
}
