package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/biztime"
	"github.com/fiberops/subcore/internal/shared/db"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type ApplicationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewApplicationRepository(db *gorm.DB, logger logger.Interface) onboarding.ApplicationRepository {
	return &ApplicationRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ApplicationRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*onboarding.Application, error) {
	var model models.ApplicationModel

	err := db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get application", "application_id", id, "error", err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &onboarding.Application{
		ID:          model.ID,
		FirstName:   model.FirstName,
		MiddleName:  model.MiddleName,
		LastName:    model.LastName,
		Mobile:      model.Mobile,
		Email:       model.Email,
		Address:     model.Address,
		DesiredPlan: model.DesiredPlan,
		LCP:         model.LCP,
		NAP:         model.NAP,
		Status:      onboarding.ApplicationStatus(model.Status),
		CustomerID:  model.CustomerID,
		ApprovedAt:  model.ApprovedAt,
	}, nil
}

func (r *ApplicationRepositoryImpl) MarkApproved(ctx context.Context, id uint, customerID uint) error {
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ApplicationModel{}).
		Where("id = ? AND status <> ?", id, string(onboarding.ApplicationStatusApproved)).
		Updates(map[string]interface{}{
			"status":      string(onboarding.ApplicationStatusApproved),
			"customer_id": customerID,
			"approved_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to mark application approved", "application_id", id, "error", result.Error)
		return fmt.Errorf("failed to mark application approved: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return sharedErrors.NewConflictError("application already approved", fmt.Sprintf("application_id=%d", id))
	}
	return nil
}
