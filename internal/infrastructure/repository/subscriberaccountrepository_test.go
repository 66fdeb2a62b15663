package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	"github.com/fiberops/subcore/internal/shared/db"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

func TestSubscriberAccountRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewSubscriberAccountRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	planID := uint(3)
	acct, err := account.NewSubscriberAccount("ATS1000", 7, &planID, "Fiber 50", decimal.RequireFromString("1500.50"))
	require.NoError(t, err)

	t.Run("create and read back", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, acct))
		assert.NotZero(t, acct.ID())

		got, err := repo.GetByAccountNo(ctx, "ATS1000")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(7), got.CustomerID())
		assert.Equal(t, "Fiber 50", got.PlanName())
		assert.True(t, got.Balance().Equal(decimal.RequireFromString("1500.5")))
		assert.Equal(t, account.StatusActive, got.ConnectivityStatus())
	})

	t.Run("duplicate account number conflicts", func(t *testing.T) {
		dup, err := account.NewSubscriberAccount("ATS1000", 8, nil, "", decimal.Zero)
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.True(t, sharedErrors.IsConflictError(err))
	})

	t.Run("missing account is nil", func(t *testing.T) {
		got, err := repo.GetByAccountNo(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("status update inside transaction", func(t *testing.T) {
		txm := db.NewTransactionManager(gdb)
		err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
			locked, err := repo.GetByAccountNoForUpdate(ctx, "ATS1000")
			require.NoError(t, err)
			require.NotNil(t, locked)
			return repo.UpdateConnectivityStatus(ctx, locked.AccountNo(), account.StatusDisconnected)
		})
		require.NoError(t, err)

		got, err := repo.GetByAccountNo(ctx, "ATS1000")
		require.NoError(t, err)
		assert.Equal(t, account.StatusDisconnected, got.ConnectivityStatus())
	})

	t.Run("status update of unknown account", func(t *testing.T) {
		err := repo.UpdateConnectivityStatus(ctx, "NOPE", account.StatusActive)
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})
}
