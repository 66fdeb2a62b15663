package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/mappers"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// CredentialPatternRepositoryImpl implements credential.PatternRepository
type CredentialPatternRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CredentialPatternMapper
	logger logger.Interface
}

func NewCredentialPatternRepository(db *gorm.DB, logger logger.Interface) credential.PatternRepository {
	return &CredentialPatternRepositoryImpl{
		db:     db,
		mapper: mappers.NewCredentialPatternMapper(),
		logger: logger,
	}
}

func (r *CredentialPatternRepositoryImpl) GetActive(ctx context.Context, kind credential.PatternKind) (*credential.Pattern, error) {
	var model models.CredentialPatternModel

	err := db.GetTxFromContext(ctx, r.db).Where("kind = ?", string(kind)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get credential pattern", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to get credential pattern: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CredentialPatternRepositoryImpl) Save(ctx context.Context, pattern *credential.Pattern) error {
	model, err := r.mapper.ToModel(pattern)
	if err != nil {
		return err
	}

	err = db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"tokens", "updated_by", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save credential pattern", "kind", pattern.Kind, "error", err)
		return fmt.Errorf("failed to save credential pattern: %w", err)
	}
	return nil
}
