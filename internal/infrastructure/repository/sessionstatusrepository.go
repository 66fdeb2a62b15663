package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type SessionStatusRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSessionStatusRepository(db *gorm.DB, logger logger.Interface) onboarding.SessionStatusRepository {
	return &SessionStatusRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SessionStatusRepositoryImpl) Create(ctx context.Context, status *onboarding.SessionStatus) error {
	model := &models.SessionStatusModel{
		AccountNo:   status.AccountNo,
		Username:    status.Username,
		Online:      status.Online,
		LastSeenAt:  status.LastSeenAt,
		BytesIn:     status.BytesIn,
		BytesOut:    status.BytesOut,
		SessionTime: status.SessionTime,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create session status", "account_no", status.AccountNo, "error", err)
		return fmt.Errorf("failed to create session status: %w", err)
	}

	status.ID = model.ID
	return nil
}
