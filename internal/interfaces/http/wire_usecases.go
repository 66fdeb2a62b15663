package http

import (
	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	onboardingUsecases "github.com/fiberops/subcore/internal/application/onboarding/usecases"
	provisioningUsecases "github.com/fiberops/subcore/internal/application/provisioning/usecases"
	sequenceUsecases "github.com/fiberops/subcore/internal/application/sequence/usecases"
	settingUsecases "github.com/fiberops/subcore/internal/application/setting/usecases"
	"github.com/fiberops/subcore/internal/infrastructure/auth"
)

// allUseCases holds every use case served over HTTP.
type allUseCases struct {
	allocateAccountNumber *sequenceUsecases.AllocateAccountNumberUseCase
	getAccountSequence    *sequenceUsecases.GetAccountSequenceUseCase
	updateAccountSequence *sequenceUsecases.UpdateAccountSequenceUseCase
	deleteAccountSequence *sequenceUsecases.DeleteAccountSequenceUseCase

	getCredentialPattern    *credentialUsecases.GetCredentialPatternUseCase
	updateCredentialPattern *credentialUsecases.UpdateCredentialPatternUseCase

	getAAASettings    *settingUsecases.GetAAASettingsUseCase
	updateAAASettings *settingUsecases.UpdateAAASettingsUseCase

	approveApplication *onboardingUsecases.ApproveApplicationUseCase

	reconnect         *provisioningUsecases.ReconnectUseCase
	disconnect        *provisioningUsecases.DisconnectUseCase
	suspend           *provisioningUsecases.DisconnectUseCase
	pullout           *provisioningUsecases.PulloutUseCase
	migrate           *provisioningUsecases.MigrateUseCase
	updateCredentials *provisioningUsecases.UpdateCredentialsUseCase
	listEvents        *provisioningUsecases.ListConnectivityEventsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos

	allocator := sequenceUsecases.NewAccountNumberAllocator(r.sequenceConfigRepo, r.sequenceLockRepo, c.txMgr, c.log)
	synthesizer := credentialUsecases.NewSynthesizer(r.patternRepo, r.identityRepo, nil, c.cfg.Provisioning.UsernameRetryLimit, c.log)
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	deps := provisioningUsecases.Dependencies{
		Accounts:    r.accountRepo,
		Identities:  r.identityRepo,
		Customers:   r.customerRepo,
		Events:      r.eventRepo,
		Publisher:   c.publisher,
		Network:     c.aaaClient,
		Settings:    c.settingProvider,
		Credentials: synthesizer,
		Locker:      c.locker,
		TxMgr:       c.txMgr,
		Logger:      c.log,
	}

	c.ucs = &allUseCases{
		allocateAccountNumber: sequenceUsecases.NewAllocateAccountNumberUseCase(allocator, c.log),
		getAccountSequence:    sequenceUsecases.NewGetAccountSequenceUseCase(r.sequenceConfigRepo, c.log),
		updateAccountSequence: sequenceUsecases.NewUpdateAccountSequenceUseCase(r.sequenceConfigRepo, c.log),
		deleteAccountSequence: sequenceUsecases.NewDeleteAccountSequenceUseCase(r.sequenceConfigRepo, c.log),

		getCredentialPattern:    credentialUsecases.NewGetCredentialPatternUseCase(r.patternRepo, c.log),
		updateCredentialPattern: credentialUsecases.NewUpdateCredentialPatternUseCase(r.patternRepo, c.log),

		getAAASettings:    settingUsecases.NewGetAAASettingsUseCase(c.settingProvider),
		updateAAASettings: settingUsecases.NewUpdateAAASettingsUseCase(r.settingRepo, c.settingProvider, c.settingProvider, c.log),

		approveApplication: onboardingUsecases.NewApproveApplicationUseCase(
			onboardingUsecases.Repositories{
				Applications:  r.applicationRepo,
				Customers:     r.customerRepo,
				Plans:         r.planRepo,
				Locations:     r.locationRepo,
				Accounts:      r.accountRepo,
				Identities:    r.identityRepo,
				JobOrders:     r.jobOrderRepo,
				SessionStatus: r.sessionStatusRepo,
				LoginAccounts: r.loginAccountRepo,
				Events:        r.eventRepo,
			},
			allocator, synthesizer, hasher, c.aaaClient, c.settingProvider, c.txMgr, c.log,
		),

		reconnect:         provisioningUsecases.NewReconnectUseCase(deps),
		disconnect:        provisioningUsecases.NewDisconnectUseCase(deps),
		suspend:           provisioningUsecases.NewSuspendUseCase(deps),
		pullout:           provisioningUsecases.NewPulloutUseCase(deps),
		migrate:           provisioningUsecases.NewMigrateUseCase(deps, synthesizer),
		updateCredentials: provisioningUsecases.NewUpdateCredentialsUseCase(deps),
		listEvents:        provisioningUsecases.NewListConnectivityEventsUseCase(r.eventRepo, c.log),
	}
}
