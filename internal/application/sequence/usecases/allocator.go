package usecases

import (
	"context"
	"fmt"

	"github.com/fiberops/subcore/internal/domain/sequence"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// AccountNumberAllocator computes the next account number under the sequence lock.
type AccountNumberAllocator struct {
	configRepo sequence.ConfigRepository
	lockRepo   sequence.LockRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewAccountNumberAllocator(
	configRepo sequence.ConfigRepository,
	lockRepo sequence.LockRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AccountNumberAllocator {
	return &AccountNumberAllocator{
		configRepo: configRepo,
		lockRepo:   lockRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Allocate returns the next account number. When ctx carries a transaction
// the sequence lock is held until that transaction ends, so the caller must
// persist the number before committing. Otherwise the number is computed in a
// short transaction of its own and nothing is reserved.
func (a *AccountNumberAllocator) Allocate(ctx context.Context) (string, error) {
	var accountNo string

	err := a.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := a.lockRepo.LockSequence(txCtx); err != nil {
			return err
		}

		seed := a.resolveSeed(txCtx)

		existing, err := a.lockRepo.ListCandidates(txCtx, seed.Prefix)
		if err != nil {
			return err
		}

		next, err := sequence.Next(seed, existing)
		if err != nil {
			return err
		}
		accountNo = next
		return nil
	})
	if err != nil {
		a.logger.Errorw("failed to allocate account number", "error", err)
		return "", fmt.Errorf("failed to allocate account number: %w", err)
	}

	a.logger.Debugw("account number allocated", "account_no", accountNo)
	return accountNo, nil
}

// resolveSeed never fails: unreadable or malformed configuration degrades to
// the default numeric sequence.
func (a *AccountNumberAllocator) resolveSeed(ctx context.Context) sequence.Seed {
	cfg, err := a.configRepo.Get(ctx)
	if err != nil {
		a.logger.Warnw("failed to read account sequence config, using default sequence", "error", err)
		return sequence.DefaultSeed
	}

	seed, err := sequence.SeedFor(cfg)
	if err != nil {
		a.logger.Warnw("malformed account sequence config, using default sequence",
			"prefix", cfg.Prefix,
			"error", err,
		)
	}
	return seed
}
