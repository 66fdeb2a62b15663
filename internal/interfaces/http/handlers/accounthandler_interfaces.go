package handlers

import (
	"context"

	provisioningDto "github.com/fiberops/subcore/internal/application/provisioning/dto"
	provisioningUsecases "github.com/fiberops/subcore/internal/application/provisioning/usecases"
	sequenceDto "github.com/fiberops/subcore/internal/application/sequence/dto"
)

// Use case interfaces for AccountHandler

type allocateAccountNumberUseCase interface {
	Execute(ctx context.Context) (*sequenceDto.AllocationDTO, error)
}

type reconnectUseCase interface {
	Execute(ctx context.Context, cmd provisioningUsecases.ReconnectCommand) (*provisioningUsecases.TransitionResult, error)
}

type disconnectUseCase interface {
	Execute(ctx context.Context, cmd provisioningUsecases.DisconnectCommand) (*provisioningUsecases.TransitionResult, error)
}

type pulloutUseCase interface {
	Execute(ctx context.Context, cmd provisioningUsecases.PulloutCommand) (*provisioningUsecases.TransitionResult, error)
}

type migrateUseCase interface {
	Execute(ctx context.Context, cmd provisioningUsecases.MigrateCommand) (*provisioningUsecases.TransitionResult, error)
}

type updateCredentialsUseCase interface {
	Execute(ctx context.Context, cmd provisioningUsecases.UpdateCredentialsCommand) (*provisioningUsecases.TransitionResult, error)
}

type listConnectivityEventsUseCase interface {
	Execute(ctx context.Context, accountNo string, limit int) ([]*provisioningDto.ConnectivityEventDTO, error)
}
