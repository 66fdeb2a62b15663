package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
)

func TestReconnect_ShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		seed seedAccount
		want connectivity.ResultCode
	}{
		{
			name: "positive balance",
			seed: seedAccount{accountNo: "0001", balance: 50, plan: "Fiber 50", status: account.StatusDisconnected, username: "juan", secret: "s"},
			want: connectivity.ResultBalancePositive,
		},
		{
			name: "already active",
			seed: seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusActive, username: "juan", secret: "s"},
			want: connectivity.ResultAlreadyActive,
		},
		{
			name: "no username",
			seed: seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended},
			want: connectivity.ResultNoUsername,
		},
		{
			name: "no plan",
			seed: seedAccount{accountNo: "0001", status: account.StatusSuspended, username: "juan", secret: "s"},
			want: connectivity.ResultNoPlan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProvisioningFixture(t)
			f.seed(t, tt.seed)

			result, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001", Actor: "ops"})
			require.NoError(t, err)

			assert.Equal(t, tt.want, result.Code)
			assert.Equal(t, tt.seed.status, f.status(t, "0001"))
			f.network.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

			events := f.events(t, "0001")
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Result)
			assert.Equal(t, connectivity.NetworkNotAttempted, events[0].NetworkOutcome)
			assert.Equal(t, "ops", events[0].Actor)
		})
	}
}

func TestReconnect_Success(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan", secret: "abc"})
	f.network.On("Upsert", mock.Anything, mock.Anything, "juan", "Fiber 50", "abc").Return(nil).Once()

	result, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	require.NoError(t, err)

	assert.Equal(t, connectivity.ResultSuccess, result.Code)
	assert.Equal(t, account.StatusActive, result.ConnectivityStatus)
	assert.Equal(t, account.StatusActive, f.status(t, "0001"))

	published := f.published(t)
	assert.Equal(t, connectivity.TransitionReconnect, published.Transition)
	assert.True(t, published.Succeeded())
}

func TestReconnect_FillsMissingSecret(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan"})
	f.credentials.On("EnsureCredentials", mock.Anything, mock.MatchedBy(func(p credential.Profile) bool {
		return p.FirstName == "Juan" && p.Mobile == "09171234567"
	}), "juan", "").Return(&credentialUsecases.Credentials{Username: "juan", Secret: "4567dc", GeneratedSecret: true}, nil).Once()
	f.network.On("Upsert", mock.Anything, mock.Anything, "juan", "Fiber 50", "4567dc").Return(nil).Once()

	result, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	require.NoError(t, err)

	assert.Equal(t, connectivity.ResultSuccess, result.Code)
	identity := f.identity(t, "0001")
	assert.Equal(t, "juan", identity.Username())
	assert.Equal(t, "4567dc", identity.Secret())
}

func TestReconnect_KeepsExistingSecret(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan", secret: "abc"})
	f.network.On("Upsert", mock.Anything, mock.Anything, "juan", "Fiber 50", "abc").Return(nil).Once()

	_, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	require.NoError(t, err)
	f.credentials.AssertNotCalled(t, "EnsureCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconnect_SecretSynthesisFails(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan"})
	f.credentials.On("EnsureCredentials", mock.Anything, mock.Anything, "juan", "").Return(nil, errors.New("pattern store down")).Once()

	_, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	require.Error(t, err)

	assert.Equal(t, account.StatusSuspended, f.status(t, "0001"))
	assert.Empty(t, f.identity(t, "0001").Secret())
	f.network.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconnect_NetworkFailureKeepsPreWrite(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusDisconnected, username: "juan", secret: "abc"})
	f.network.On("Upsert", mock.Anything, mock.Anything, "juan", "Fiber 50", "abc").Return(errors.New("timeout")).Once()

	result, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	require.NoError(t, err)

	assert.True(t, result.Failed())
	assert.Equal(t, "timeout", result.Detail)
	assert.Equal(t, account.StatusActive, f.status(t, "0001"))

	events := f.events(t, "0001")
	require.Len(t, events, 1)
	assert.Equal(t, connectivity.NetworkFailed, events[0].NetworkOutcome)
}

func TestReconnect_NotFound(t *testing.T) {
	f := newProvisioningFixture(t)

	result, err := NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "9999"})
	require.NoError(t, err)
	assert.Equal(t, connectivity.ResultNotFound, result.Code)
}

func TestTransition_LockHeld(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan", secret: "abc"})

	release, ok, err := f.locker.TryAcquire(context.Background(), lockKeyPrefix+"0001")
	require.NoError(t, err)
	require.True(t, ok)
	defer release()

	_, err = NewReconnectUseCase(f.deps).Execute(context.Background(), ReconnectCommand{AccountNo: "0001"})
	assert.True(t, sharedErrors.IsConflictError(err))
	assert.Empty(t, f.events(t, "0001"))
}

func TestWriteStatus_RejectsUnknownStatus(t *testing.T) {
	f := newProvisioningFixture(t)
	f.seed(t, seedAccount{accountNo: "0001", plan: "Fiber 50", status: account.StatusSuspended, username: "juan", secret: "abc"})

	err := newTransitionRunner(f.deps).writeStatus(context.Background(), "0001", account.ConnectivityStatus("gone"), nil)
	assert.True(t, sharedErrors.IsValidationError(err))
	assert.Equal(t, account.StatusSuspended, f.status(t, "0001"))
}
