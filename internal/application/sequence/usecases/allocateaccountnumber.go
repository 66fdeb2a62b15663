package usecases

import (
	"context"

	"github.com/fiberops/subcore/internal/application/sequence/dto"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// AllocateAccountNumberUseCase previews the next account number.
type AllocateAccountNumberUseCase struct {
	allocator *AccountNumberAllocator
	logger    logger.Interface
}

func NewAllocateAccountNumberUseCase(allocator *AccountNumberAllocator, logger logger.Interface) *AllocateAccountNumberUseCase {
	return &AllocateAccountNumberUseCase{
		allocator: allocator,
		logger:    logger,
	}
}

// Execute computes the number in its own transaction. Two previews may return
// the same value; only account creation claims a number.
func (uc *AllocateAccountNumberUseCase) Execute(ctx context.Context) (*dto.AllocationDTO, error) {
	accountNo, err := uc.allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AllocationDTO{AccountNo: accountNo, Reserved: false}, nil
}
