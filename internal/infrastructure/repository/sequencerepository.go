package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fiberops/subcore/internal/domain/sequence"
	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// SequenceConfigRepository stores the account sequence seed as a system setting.
type SequenceConfigRepository struct {
	settings setting.Repository
}

// NewSequenceConfigRepository creates a new SequenceConfigRepository
func NewSequenceConfigRepository(settings setting.Repository) sequence.ConfigRepository {
	return &SequenceConfigRepository{settings: settings}
}

func (r *SequenceConfigRepository) Get(ctx context.Context) (*sequence.Config, error) {
	s, err := r.settings.GetByKey(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sequence.Config{
		Prefix:    s.Value(),
		UpdatedBy: s.UpdatedBy(),
		UpdatedAt: s.UpdatedAt(),
	}, nil
}

func (r *SequenceConfigRepository) Save(ctx context.Context, cfg *sequence.Config) error {
	s, err := r.settings.GetByKey(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return err
		}
		s, err = setting.NewSystemSetting(constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
		if err != nil {
			return err
		}
	}

	if err := s.SetStringValue(cfg.Prefix, cfg.UpdatedBy); err != nil {
		return err
	}
	if err := r.settings.Upsert(ctx, s); err != nil {
		return err
	}

	cfg.UpdatedAt = s.UpdatedAt()
	return nil
}

func (r *SequenceConfigRepository) Delete(ctx context.Context) error {
	err := r.settings.Delete(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil
	}
	return err
}

// SequenceLockRepository serializes account number allocation with row locks.
type SequenceLockRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSequenceLockRepository creates a new SequenceLockRepository
func NewSequenceLockRepository(db *gorm.DB, logger logger.Interface) sequence.LockRepository {
	return &SequenceLockRepository{
		db:     db,
		logger: logger,
	}
}

// LockSequence takes SELECT ... FOR UPDATE on the account_no sequence row,
// creating the row first if a fresh database lacks it.
func (r *SequenceLockRepository) LockSequence(ctx context.Context) error {
	if !db.InTransaction(ctx) {
		return db.ErrNoTransaction
	}
	txDB := db.GetTxFromContext(ctx, r.db)

	var lock models.SequenceLockModel
	err := txDB.Scopes(db.ForUpdate()).
		Where("name = ?", constants.SequenceLockAccountNo).
		First(&lock).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("failed to lock account sequence", "error", err)
		return fmt.Errorf("failed to lock account sequence: %w", err)
	}

	if err := txDB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SequenceLockModel{Name: constants.SequenceLockAccountNo}).Error; err != nil {
		return fmt.Errorf("failed to create account sequence lock row: %w", err)
	}

	if err := txDB.Scopes(db.ForUpdate()).
		Where("name = ?", constants.SequenceLockAccountNo).
		First(&lock).Error; err != nil {
		r.logger.Errorw("failed to lock account sequence", "error", err)
		return fmt.Errorf("failed to lock account sequence: %w", err)
	}
	return nil
}

// ListCandidates returns the account numbers starting with prefix, locked for update.
func (r *SequenceLockRepository) ListCandidates(ctx context.Context, prefix string) ([]string, error) {
	var accountNos []string

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriberAccountModel{}).
		Scopes(db.ForUpdate(), db.HasPrefix("account_no", prefix))

	if err := query.Pluck("account_no", &accountNos).Error; err != nil {
		r.logger.Errorw("failed to scan account numbers", "prefix", prefix, "error", err)
		return nil, fmt.Errorf("failed to scan account numbers: %w", err)
	}

	return accountNos, nil
}
