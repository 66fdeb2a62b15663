package usecases

import (
	"context"

	"github.com/fiberops/subcore/internal/application/setting/dto"
	"github.com/fiberops/subcore/internal/domain/setting"
)

// AAASettingsSource resolves the AAA settings in effect.
type AAASettingsSource interface {
	GetAAASettings(ctx context.Context) setting.AAASettings
}

// GetAAASettingsUseCase returns the merged AAA settings with secrets masked.
type GetAAASettingsUseCase struct {
	source AAASettingsSource
}

// NewGetAAASettingsUseCase creates a new GetAAASettingsUseCase
func NewGetAAASettingsUseCase(source AAASettingsSource) *GetAAASettingsUseCase {
	return &GetAAASettingsUseCase{source: source}
}

func (uc *GetAAASettingsUseCase) Execute(ctx context.Context) *dto.AAASettingsResponse {
	return dto.ToAAASettingsResponse(uc.source.GetAAASettings(ctx))
}
