package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiberops/subcore/internal/application/sequence/dto"
	"github.com/fiberops/subcore/internal/domain/sequence"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// GetAccountSequenceUseCase reports the stored seed and the sequence in effect.
type GetAccountSequenceUseCase struct {
	configRepo sequence.ConfigRepository
	logger     logger.Interface
}

func NewGetAccountSequenceUseCase(configRepo sequence.ConfigRepository, logger logger.Interface) *GetAccountSequenceUseCase {
	return &GetAccountSequenceUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (uc *GetAccountSequenceUseCase) Execute(ctx context.Context) (*dto.AccountSequenceDTO, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get account sequence config", "error", err)
		return nil, fmt.Errorf("failed to get account sequence config: %w", err)
	}

	seed, seedErr := sequence.SeedFor(cfg)
	result := &dto.AccountSequenceDTO{
		EffectivePrefix: seed.Prefix,
		StartValue:      seed.Start,
		MinWidth:        seed.Width,
	}
	if cfg != nil {
		updatedAt := cfg.UpdatedAt
		result.Configured = true
		result.Prefix = cfg.Prefix
		result.UpdatedBy = cfg.UpdatedBy
		result.UpdatedAt = &updatedAt
	}
	if seedErr != nil {
		result.Warning = seedErr.Error()
	}
	return result, nil
}

// UpdateAccountSequenceUseCase stores a new seed after validating it.
type UpdateAccountSequenceUseCase struct {
	configRepo sequence.ConfigRepository
	logger     logger.Interface
}

func NewUpdateAccountSequenceUseCase(configRepo sequence.ConfigRepository, logger logger.Interface) *UpdateAccountSequenceUseCase {
	return &UpdateAccountSequenceUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (uc *UpdateAccountSequenceUseCase) Execute(ctx context.Context, req dto.UpdateAccountSequenceRequest, updatedBy string) error {
	prefix := strings.TrimSpace(req.Prefix)
	if _, err := sequence.ParseSeed(prefix); err != nil {
		return errors.NewValidationError("invalid account sequence prefix", err.Error())
	}

	if err := uc.configRepo.Save(ctx, &sequence.Config{Prefix: prefix, UpdatedBy: updatedBy}); err != nil {
		uc.logger.Errorw("failed to save account sequence config", "prefix", prefix, "error", err)
		return fmt.Errorf("failed to save account sequence config: %w", err)
	}

	uc.logger.Infow("account sequence config updated", "prefix", prefix, "updated_by", updatedBy)
	return nil
}

// DeleteAccountSequenceUseCase reverts to the default numeric sequence.
type DeleteAccountSequenceUseCase struct {
	configRepo sequence.ConfigRepository
	logger     logger.Interface
}

func NewDeleteAccountSequenceUseCase(configRepo sequence.ConfigRepository, logger logger.Interface) *DeleteAccountSequenceUseCase {
	return &DeleteAccountSequenceUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (uc *DeleteAccountSequenceUseCase) Execute(ctx context.Context, deletedBy string) error {
	if err := uc.configRepo.Delete(ctx); err != nil {
		uc.logger.Errorw("failed to delete account sequence config", "error", err)
		return fmt.Errorf("failed to delete account sequence config: %w", err)
	}

	uc.logger.Infow("account sequence config deleted", "deleted_by", deletedBy)
	return nil
}
