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

type JobOrderRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewJobOrderRepository(db *gorm.DB, logger logger.Interface) onboarding.JobOrderRepository {
	return &JobOrderRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *JobOrderRepositoryImpl) Create(ctx context.Context, order *onboarding.JobOrder) error {
	model := &models.JobOrderModel{
		ApplicationID:  order.ApplicationID,
		AccountNo:      order.AccountNo,
		Username:       order.Username,
		Secret:         order.Secret,
		Port:           order.Port,
		HardwareSerial: order.HardwareSerial,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create job order", "account_no", order.AccountNo, "error", err)
		return fmt.Errorf("failed to create job order: %w", err)
	}

	order.ID = model.ID
	return nil
}
