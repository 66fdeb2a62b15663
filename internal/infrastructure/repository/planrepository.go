package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) onboarding.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// FindByNameAndPrice matches the name in SQL and the price with decimal
// equality, so "1299" and "1299.00" are the same plan.
func (r *PlanRepositoryImpl) FindByNameAndPrice(ctx context.Context, name string, price decimal.Decimal) (*onboarding.Plan, error) {
	var planModels []*models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("name = ?", strings.TrimSpace(name)).
		Order("id ASC").
		Find(&planModels).Error
	if err != nil {
		r.logger.Errorw("failed to find plan", "name", name, "price", price.String(), "error", err)
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	for _, model := range planModels {
		if model.Price.Equal(price) {
			return &onboarding.Plan{
				ID:    model.ID,
				Name:  model.Name,
				Price: model.Price,
			}, nil
		}
	}
	return nil, nil
}
