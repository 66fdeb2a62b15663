package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/mappers"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const defaultEventListLimit = 50

// ConnectivityEventRepositoryImpl implements connectivity.Repository
type ConnectivityEventRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConnectivityEventMapper
	logger logger.Interface
}

func NewConnectivityEventRepository(db *gorm.DB, logger logger.Interface) connectivity.Repository {
	return &ConnectivityEventRepositoryImpl{
		db:     db,
		mapper: mappers.NewConnectivityEventMapper(),
		logger: logger,
	}
}

func (r *ConnectivityEventRepositoryImpl) Append(ctx context.Context, event *connectivity.Event) error {
	model := r.mapper.ToModel(event)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append connectivity event",
			"account_no", event.AccountNo,
			"transition", event.Transition,
			"error", err,
		)
		return fmt.Errorf("failed to append connectivity event: %w", err)
	}
	return nil
}

// ListByAccountNo returns the newest events first.
func (r *ConnectivityEventRepositoryImpl) ListByAccountNo(ctx context.Context, accountNo string, limit int) ([]*connectivity.Event, error) {
	if limit <= 0 {
		limit = defaultEventListLimit
	}

	var modelList []*models.ConnectivityEventModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("account_no = ?", accountNo).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list connectivity events", "account_no", accountNo, "error", err)
		return nil, fmt.Errorf("failed to list connectivity events: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}
