package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/mappers"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// settingUpsertColumns are rewritten when a (category, setting_key) row exists.
var settingUpsertColumns = []string{"value", "value_type", "updated_by", "version", "updated_at"}

// SystemSettingRepository stores operator overrides for AAA endpoint fields
// and the account number seed.
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SystemSettingMapper
}

func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSystemSettingMapper(),
	}
}

func byKey(category, key string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("category = ? AND setting_key = ?", category, key)
	}
}

func (r *SystemSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	var row models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(byKey(category, key)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, setting.ErrSettingNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to read setting", "setting", category+"."+key, "error", err)
		return nil, fmt.Errorf("failed to read setting %s.%s: %w", category, key, err)
	}
	return r.mapper.ToEntity(&row), nil
}

// GetByCategory returns the known keys of a category ordered by key. Stale
// rows left behind by removed keys are skipped.
func (r *SystemSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var rows []*models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category).
		Order("setting_key").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to read setting category", "category", category, "error", err)
		return nil, fmt.Errorf("failed to read settings in %s: %w", category, err)
	}

	entities := r.mapper.ToEntities(rows)
	if skipped := len(rows) - len(entities); skipped > 0 {
		r.logger.Debugw("ignoring settings outside the catalog", "category", category, "count", skipped)
	}
	return entities, nil
}

func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	row := r.mapper.ToModel(s)
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns(settingUpsertColumns),
	}).Create(row).Error
	if err != nil {
		r.logger.Errorw("failed to write setting",
			"setting", s.Category()+"."+s.Key(),
			"updated_by", s.UpdatedBy(),
			"error", err)
		return fmt.Errorf("failed to write setting %s.%s: %w", s.Category(), s.Key(), err)
	}

	if s.ID() == 0 {
		s.SetID(row.ID)
	}
	return nil
}

func (r *SystemSettingRepository) Delete(ctx context.Context, category, key string) error {
	result := db.GetTxFromContext(ctx, r.db).Scopes(byKey(category, key)).Delete(&models.SystemSettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "setting", category+"."+key, "error", result.Error)
		return fmt.Errorf("failed to delete setting %s.%s: %w", category, key, result.Error)
	}
	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}
	return nil
}
