package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/mappers"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/biztime"
	"github.com/fiberops/subcore/internal/shared/db"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// SubscriberAccountRepositoryImpl implements account.Repository
type SubscriberAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriberAccountMapper
	logger logger.Interface
}

func NewSubscriberAccountRepository(db *gorm.DB, logger logger.Interface) account.Repository {
	return &SubscriberAccountRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriberAccountMapper(),
		logger: logger,
	}
}

func (r *SubscriberAccountRepositoryImpl) Create(ctx context.Context, a *account.SubscriberAccount) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return sharedErrors.NewConflictError("account number already exists", a.AccountNo())
		}
		r.logger.Errorw("failed to create subscriber account", "account_no", a.AccountNo(), "error", err)
		return fmt.Errorf("failed to create subscriber account: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *SubscriberAccountRepositoryImpl) GetByAccountNo(ctx context.Context, accountNo string) (*account.SubscriberAccount, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), accountNo)
}

func (r *SubscriberAccountRepositoryImpl) GetByAccountNoForUpdate(ctx context.Context, accountNo string) (*account.SubscriberAccount, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), accountNo)
}

func (r *SubscriberAccountRepositoryImpl) get(query *gorm.DB, accountNo string) (*account.SubscriberAccount, error) {
	var model models.SubscriberAccountModel
	if err := query.Where("account_no = ?", accountNo).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscriber account", "account_no", accountNo, "error", err)
		return nil, fmt.Errorf("failed to get subscriber account: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscriber account: %w", err)
	}
	return entity, nil
}

func (r *SubscriberAccountRepositoryImpl) UpdateConnectivityStatus(ctx context.Context, accountNo string, status account.ConnectivityStatus) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriberAccountModel{}).
		Where("account_no = ?", accountNo).
		Updates(map[string]interface{}{
			"connectivity_status": status.String(),
			"updated_at":          biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update connectivity status", "account_no", accountNo, "status", status, "error", result.Error)
		return fmt.Errorf("failed to update connectivity status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return sharedErrors.NewNotFoundError("subscriber account not found", accountNo)
	}
	return nil
}
