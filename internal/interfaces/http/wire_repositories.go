package http

import (
	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/domain/sequence"
	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/repository"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	settingRepo        setting.Repository
	sequenceConfigRepo sequence.ConfigRepository
	sequenceLockRepo   sequence.LockRepository
	patternRepo        credential.PatternRepository
	accountRepo        account.Repository
	identityRepo       network.Repository
	eventRepo          connectivity.Repository
	applicationRepo    onboarding.ApplicationRepository
	customerRepo       onboarding.CustomerRepository
	planRepo           onboarding.PlanRepository
	locationRepo       onboarding.LocationRepository
	jobOrderRepo       onboarding.JobOrderRepository
	sessionStatusRepo  onboarding.SessionStatusRepository
	loginAccountRepo   onboarding.LoginAccountRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	settingRepo := repository.NewSystemSettingRepository(db, log)
	return &repositories{
		settingRepo:        settingRepo,
		sequenceConfigRepo: repository.NewSequenceConfigRepository(settingRepo),
		sequenceLockRepo:   repository.NewSequenceLockRepository(db, log),
		patternRepo:        repository.NewCredentialPatternRepository(db, log),
		accountRepo:        repository.NewSubscriberAccountRepository(db, log),
		identityRepo:       repository.NewNetworkIdentityRepository(db, log),
		eventRepo:          repository.NewConnectivityEventRepository(db, log),
		applicationRepo:    repository.NewApplicationRepository(db, log),
		customerRepo:       repository.NewCustomerRepository(db, log),
		planRepo:           repository.NewPlanRepository(db, log),
		locationRepo:       repository.NewLocationRepository(db, log),
		jobOrderRepo:       repository.NewJobOrderRepository(db, log),
		sessionStatusRepo:  repository.NewSessionStatusRepository(db, log),
		loginAccountRepo:   repository.NewLoginAccountRepository(db, log),
	}
}
