package usecases

import (
	"context"
	"fmt"

	"github.com/fiberops/subcore/internal/application/credential/dto"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// GetCredentialPatternUseCase returns the pattern in effect for a kind.
type GetCredentialPatternUseCase struct {
	patternRepo credential.PatternRepository
	logger      logger.Interface
}

func NewGetCredentialPatternUseCase(patternRepo credential.PatternRepository, logger logger.Interface) *GetCredentialPatternUseCase {
	return &GetCredentialPatternUseCase{
		patternRepo: patternRepo,
		logger:      logger,
	}
}

func (uc *GetCredentialPatternUseCase) Execute(ctx context.Context, kind string) (*dto.CredentialPatternDTO, error) {
	patternKind, err := credential.ParsePatternKind(kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid credential pattern kind", err.Error())
	}

	pattern, err := uc.patternRepo.GetActive(ctx, patternKind)
	if err != nil {
		uc.logger.Errorw("failed to get credential pattern", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to get credential pattern: %w", err)
	}
	if pattern == nil {
		return dto.FromPattern(credential.DefaultPattern(patternKind), true), nil
	}
	return dto.FromPattern(*pattern, false), nil
}

// UpdateCredentialPatternUseCase replaces the active pattern for a kind.
type UpdateCredentialPatternUseCase struct {
	patternRepo credential.PatternRepository
	logger      logger.Interface
}

func NewUpdateCredentialPatternUseCase(patternRepo credential.PatternRepository, logger logger.Interface) *UpdateCredentialPatternUseCase {
	return &UpdateCredentialPatternUseCase{
		patternRepo: patternRepo,
		logger:      logger,
	}
}

func (uc *UpdateCredentialPatternUseCase) Execute(ctx context.Context, kind string, req dto.UpdateCredentialPatternRequest, updatedBy string) (*dto.CredentialPatternDTO, error) {
	patternKind, err := credential.ParsePatternKind(kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid credential pattern kind", err.Error())
	}

	pattern, err := credential.NewPattern(patternKind, dto.ToTokens(req.Tokens), updatedBy)
	if err != nil {
		return nil, errors.NewValidationError("invalid credential pattern", err.Error())
	}

	if err := uc.patternRepo.Save(ctx, pattern); err != nil {
		uc.logger.Errorw("failed to save credential pattern", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to save credential pattern: %w", err)
	}

	uc.logger.Infow("credential pattern updated", "kind", kind, "tokens", len(pattern.Tokens), "updated_by", updatedBy)
	return dto.FromPattern(*pattern, false), nil
}
