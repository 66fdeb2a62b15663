package handlers

import (
	"context"

	credentialDto "github.com/fiberops/subcore/internal/application/credential/dto"
	sequenceDto "github.com/fiberops/subcore/internal/application/sequence/dto"
	settingDto "github.com/fiberops/subcore/internal/application/setting/dto"
)

// Use case interfaces for SettingHandler

type getAccountSequenceUseCase interface {
	Execute(ctx context.Context) (*sequenceDto.AccountSequenceDTO, error)
}

type updateAccountSequenceUseCase interface {
	Execute(ctx context.Context, req sequenceDto.UpdateAccountSequenceRequest, updatedBy string) error
}

type deleteAccountSequenceUseCase interface {
	Execute(ctx context.Context, deletedBy string) error
}

type getCredentialPatternUseCase interface {
	Execute(ctx context.Context, kind string) (*credentialDto.CredentialPatternDTO, error)
}

type updateCredentialPatternUseCase interface {
	Execute(ctx context.Context, kind string, req credentialDto.UpdateCredentialPatternRequest, updatedBy string) (*credentialDto.CredentialPatternDTO, error)
}

type getAAASettingsUseCase interface {
	Execute(ctx context.Context) *settingDto.AAASettingsResponse
}

type updateAAASettingsUseCase interface {
	Execute(ctx context.Context, req settingDto.UpdateAAASettingsRequest, updatedBy string) (*settingDto.AAASettingsResponse, error)
}
