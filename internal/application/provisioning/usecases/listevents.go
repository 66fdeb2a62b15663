package usecases

import (
	"context"
	"fmt"

	"github.com/fiberops/subcore/internal/application/provisioning/dto"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const maxEventLimit = 200

type ListConnectivityEventsUseCase struct {
	eventRepo connectivity.Repository
	logger    logger.Interface
}

func NewListConnectivityEventsUseCase(eventRepo connectivity.Repository, logger logger.Interface) *ListConnectivityEventsUseCase {
	return &ListConnectivityEventsUseCase{eventRepo: eventRepo, logger: logger}
}

// Execute returns the newest events first.
func (uc *ListConnectivityEventsUseCase) Execute(ctx context.Context, accountNo string, limit int) ([]*dto.ConnectivityEventDTO, error) {
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events, err := uc.eventRepo.ListByAccountNo(ctx, accountNo, limit)
	if err != nil {
		uc.logger.Errorw("failed to list connectivity events", "account_no", accountNo, "error", err)
		return nil, fmt.Errorf("failed to list connectivity events: %w", err)
	}

	return dto.ToConnectivityEventDTOs(events), nil
}
