package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/application/setting/dto"
	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	"github.com/fiberops/subcore/internal/infrastructure/repository"
	sharedConfig "github.com/fiberops/subcore/internal/shared/config"
	"github.com/fiberops/subcore/internal/shared/constants"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type recordingSubscriber struct {
	calls []map[string]any
}

func (r *recordingSubscriber) OnSettingChange(_ context.Context, category string, changes map[string]any) error {
	if category == constants.SettingCategoryAAA {
		r.calls = append(r.calls, changes)
	}
	return nil
}

func newProviderFixture(t *testing.T) (setting.Repository, *SettingProvider) {
	t.Helper()
	gdb := testutil.NewTestDB(t)
	log := logger.NewNopLogger()
	repo := repository.NewSystemSettingRepository(gdb, log)
	provider := NewSettingProvider(repo, sharedConfig.AAAConfig{
		Scheme:         "https",
		Host:           "10.0.0.5",
		Port:           8443,
		Username:       "api",
		Password:       "from-file",
		TimeoutSeconds: 5,
		DisconnectMode: "REST",
	}, log)
	return repo, provider
}

func TestSettingProvider_ConfigFallback(t *testing.T) {
	_, provider := newProviderFixture(t)

	got := provider.GetAAASettings(context.Background())
	assert.Equal(t, "10.0.0.5", got.Host)
	assert.Equal(t, 8443, got.Port)
	assert.Equal(t, setting.DisconnectModeREST, got.DisconnectMode)
	assert.Equal(t, "https://10.0.0.5:8443/rest/user-manage/user", got.BaseURL())
}

func TestUpdateAAASettingsUseCase(t *testing.T) {
	repo, provider := newProviderFixture(t)
	sub := &recordingSubscriber{}
	provider.Subscribe(sub)

	uc := NewUpdateAAASettingsUseCase(repo, provider, provider, logger.NewNopLogger())
	ctx := context.Background()

	host := "aaa.isp.local"
	port := 9443
	password := "n3w-secret-pass"
	resp, err := uc.Execute(ctx, dto.UpdateAAASettingsRequest{
		Host:     &host,
		Port:     &port,
		Password: &password,
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "aaa.isp.local", resp.Host)
	assert.Equal(t, 9443, resp.Port)
	assert.True(t, resp.PasswordSet)
	assert.NotContains(t, resp.Password, "n3w")
	assert.Equal(t, "https://aaa.isp.local:9443/rest/user-manage/user", resp.Endpoint)

	merged := provider.GetAAASettings(ctx)
	assert.Equal(t, "n3w-secret-pass", merged.Password)
	assert.Equal(t, "api", merged.Username)

	row, err := repo.GetByKey(ctx, constants.SettingCategoryAAA, setting.AAAKeyHost)
	require.NoError(t, err)
	assert.Equal(t, "alice", row.UpdatedBy())

	require.Len(t, sub.calls, 1)
	assert.Equal(t, "***...***", sub.calls[0][setting.AAAKeyPassword])
	assert.Equal(t, 9443, sub.calls[0][setting.AAAKeyPort])
}

func TestUpdateAAASettingsUseCase_RejectsInvalid(t *testing.T) {
	repo, provider := newProviderFixture(t)
	uc := NewUpdateAAASettingsUseCase(repo, provider, nil, logger.NewNopLogger())

	mode := "telnet"
	_, err := uc.Execute(context.Background(), dto.UpdateAAASettingsRequest{DisconnectMode: &mode}, "alice")
	assert.True(t, sharedErrors.IsValidationError(err))

	rows, err := repo.GetByCategory(context.Background(), constants.SettingCategoryAAA)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetAAASettingsUseCase_MasksSecrets(t *testing.T) {
	_, provider := newProviderFixture(t)
	uc := NewGetAAASettingsUseCase(provider)

	resp := uc.Execute(context.Background())
	assert.True(t, resp.Configured)
	assert.True(t, resp.PasswordSet)
	assert.Equal(t, "***...***", resp.Password)
	assert.False(t, resp.RadiusSecretSet)
}

func TestUpdateAAASettingsUseCase_RadiusModeNeedsNAS(t *testing.T) {
	repo, provider := newProviderFixture(t)
	uc := NewUpdateAAASettingsUseCase(repo, provider, nil, logger.NewNopLogger())
	ctx := context.Background()

	mode := "radius"
	_, err := uc.Execute(ctx, dto.UpdateAAASettingsRequest{DisconnectMode: &mode}, "alice")
	assert.True(t, sharedErrors.IsValidationError(err))

	secret := "testing123"
	addr := "10.0.0.9:3799"
	_, err = uc.Execute(ctx, dto.UpdateAAASettingsRequest{DisconnectMode: &mode, RadiusSecret: &secret, RadiusNASAddr: &addr}, "alice")
	require.NoError(t, err)
	assert.True(t, provider.GetAAASettings(ctx).UsesRADIUSDisconnect())
}
