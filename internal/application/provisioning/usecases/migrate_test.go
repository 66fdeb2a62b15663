package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/network"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
)

func seedMigratable(t *testing.T, f *provisioningFixture) {
	f.seed(t, seedAccount{
		accountNo: "0001",
		plan:      "Fiber 50",
		username:  "lcp01-juan",
		secret:    "S3cr#t!",
		location:  network.Location{LCP: "LCP01", NAP: "NAP02", Port: "3", HardwareSerial: "OLD1"},
	})
}

func TestMigrate_PreservesSecret(t *testing.T) {
	f := newProvisioningFixture(t)
	seedMigratable(t, f)

	builder := &mockUsernameBuilder{}
	builder.On("BuildUsernameFor", mock.Anything, mock.MatchedBy(func(p credential.Profile) bool {
		return p.LCP == "LCP07" && p.NAP == "NAP02" && p.Port == "3" && p.FirstName == "Juan"
	}), "lcp01-juan").Return("lcp07-juan", nil).Once()
	f.network.On("Rename", mock.Anything, mock.Anything, "lcp01-juan", "lcp07-juan", "Fiber 50", "S3cr#t!").Return(nil).Once()

	uc := NewMigrateUseCase(f.deps, builder)
	result, err := uc.Execute(context.Background(), MigrateCommand{AccountNo: "0001", NewHardwareID: "NEW9", LCP: "LCP07"})
	require.NoError(t, err)

	assert.Equal(t, connectivity.ResultSuccess, result.Code)
	identity := f.identity(t, "0001")
	assert.Equal(t, "lcp07-juan", identity.Username())
	assert.Equal(t, "S3cr#t!", identity.Secret())
	assert.Equal(t, "NEW9", identity.Location().HardwareSerial)
	assert.Equal(t, "LCP07", identity.Location().LCP)
	builder.AssertExpectations(t)
}

func TestMigrate_NetworkFailureKeepsUsername(t *testing.T) {
	f := newProvisioningFixture(t)
	seedMigratable(t, f)

	builder := &mockUsernameBuilder{}
	builder.On("BuildUsernameFor", mock.Anything, mock.Anything, "lcp01-juan").Return("lcp07-juan", nil).Once()
	f.network.On("Rename", mock.Anything, mock.Anything, "lcp01-juan", "lcp07-juan", "Fiber 50", "S3cr#t!").Return(errors.New("timeout")).Once()

	result, err := NewMigrateUseCase(f.deps, builder).Execute(context.Background(), MigrateCommand{AccountNo: "0001", NewHardwareID: "NEW9", LCP: "LCP07"})
	require.NoError(t, err)

	assert.True(t, result.Failed())
	identity := f.identity(t, "0001")
	assert.Equal(t, "lcp01-juan", identity.Username())
	assert.Equal(t, "OLD1", identity.Location().HardwareSerial)
	assert.Equal(t, "LCP01", identity.Location().LCP)
}

func TestMigrate_SameUsernameSkipsNetwork(t *testing.T) {
	f := newProvisioningFixture(t)
	seedMigratable(t, f)

	builder := &mockUsernameBuilder{}
	builder.On("BuildUsernameFor", mock.Anything, mock.Anything, "lcp01-juan").Return("lcp01-juan", nil).Once()

	result, err := NewMigrateUseCase(f.deps, builder).Execute(context.Background(), MigrateCommand{AccountNo: "0001", NewHardwareID: "NEW9"})
	require.NoError(t, err)

	assert.Equal(t, connectivity.ResultSuccess, result.Code)
	assert.Equal(t, "NEW9", f.identity(t, "0001").Location().HardwareSerial)
	f.network.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	events := f.events(t, "0001")
	require.Len(t, events, 1)
	assert.Equal(t, connectivity.NetworkNotAttempted, events[0].NetworkOutcome)
}

func TestMigrate_RequiresHardwareID(t *testing.T) {
	f := newProvisioningFixture(t)

	_, err := NewMigrateUseCase(f.deps, &mockUsernameBuilder{}).Execute(context.Background(), MigrateCommand{AccountNo: "0001"})
	assert.True(t, sharedErrors.IsValidationError(err))
}
