package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type LoginAccountRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLoginAccountRepository(db *gorm.DB, logger logger.Interface) onboarding.LoginAccountRepository {
	return &LoginAccountRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *LoginAccountRepositoryImpl) Create(ctx context.Context, login *onboarding.LoginAccount) error {
	model := &models.LoginAccountModel{
		AccountNo:         login.AccountNo,
		PasswordHash:      login.PasswordHash,
		MustResetPassword: login.MustResetPassword,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return sharedErrors.NewConflictError("login account already exists", login.AccountNo)
		}
		r.logger.Errorw("failed to create login account", "account_no", login.AccountNo, "error", err)
		return fmt.Errorf("failed to create login account: %w", err)
	}

	login.ID = model.ID
	return nil
}
