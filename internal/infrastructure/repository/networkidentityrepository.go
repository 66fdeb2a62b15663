package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/mappers"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// NetworkIdentityRepositoryImpl implements network.Repository
type NetworkIdentityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NetworkIdentityMapper
	logger logger.Interface
}

func NewNetworkIdentityRepository(db *gorm.DB, logger logger.Interface) network.Repository {
	return &NetworkIdentityRepositoryImpl{
		db:     db,
		mapper: mappers.NewNetworkIdentityMapper(),
		logger: logger,
	}
}

func (r *NetworkIdentityRepositoryImpl) Create(ctx context.Context, identity *network.Identity) error {
	model := r.mapper.ToModel(identity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return sharedErrors.NewConflictError("network identity already exists", identity.Username())
		}
		r.logger.Errorw("failed to create network identity", "account_no", identity.AccountNo(), "error", err)
		return fmt.Errorf("failed to create network identity: %w", err)
	}

	identity.SetID(model.ID)
	return nil
}

// Update writes every column, so cleared location fields become NULL.
func (r *NetworkIdentityRepositoryImpl) Update(ctx context.Context, identity *network.Identity) error {
	model := r.mapper.ToModel(identity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NetworkIdentityModel{}).
		Where("id = ?", model.ID).
		Select("username", "secret", "source_lcp", "source_nap", "source_port", "vlan", "ip_address", "hardware_serial", "updated_at").
		Updates(model)
	if result.Error != nil {
		if sharedErrors.IsDuplicateError(result.Error) {
			return sharedErrors.NewConflictError("username already taken", identity.Username())
		}
		r.logger.Errorw("failed to update network identity", "account_no", identity.AccountNo(), "error", result.Error)
		return fmt.Errorf("failed to update network identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return sharedErrors.NewNotFoundError("network identity not found", identity.AccountNo())
	}
	return nil
}

func (r *NetworkIdentityRepositoryImpl) GetByAccountNo(ctx context.Context, accountNo string) (*network.Identity, error) {
	var model models.NetworkIdentityModel

	err := db.GetTxFromContext(ctx, r.db).Where("account_no = ?", accountNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get network identity", "account_no", accountNo, "error", err)
		return nil, fmt.Errorf("failed to get network identity: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *NetworkIdentityRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NetworkIdentityModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check username", "username", username, "error", err)
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}
