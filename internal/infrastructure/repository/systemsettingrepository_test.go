package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/logger"
)

func TestSystemSettingRepository_UpsertAndRead(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewSystemSettingRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	_, err := repo.GetByKey(ctx, constants.SettingCategoryAAA, setting.AAAKeyHost)
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	host, err := setting.NewSystemSetting(constants.SettingCategoryAAA, setting.AAAKeyHost)
	require.NoError(t, err)
	require.NoError(t, host.SetStringValue("aaa.internal", "ops1"))
	require.NoError(t, repo.Upsert(ctx, host))
	assert.NotZero(t, host.ID())

	again, err := setting.NewSystemSetting(constants.SettingCategoryAAA, setting.AAAKeyHost)
	require.NoError(t, err)
	require.NoError(t, again.SetStringValue("aaa2.internal", "ops2"))
	require.NoError(t, repo.Upsert(ctx, again))

	got, err := repo.GetByKey(ctx, constants.SettingCategoryAAA, setting.AAAKeyHost)
	require.NoError(t, err)
	assert.Equal(t, "aaa2.internal", got.Value())
	assert.Equal(t, "ops2", got.UpdatedBy())

	var count int64
	require.NoError(t, gdb.Model(&models.SystemSettingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSystemSettingRepository_GetByCategorySkipsUnknownKeys(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewSystemSettingRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, gdb.Create(&models.SystemSettingModel{
		Category: constants.SettingCategoryAAA, SettingKey: "legacy_realm", Value: "x", ValueType: "string",
	}).Error)
	port, err := setting.NewSystemSetting(constants.SettingCategoryAAA, setting.AAAKeyPort)
	require.NoError(t, err)
	require.NoError(t, port.SetIntValue(8443, "ops1"))
	require.NoError(t, repo.Upsert(ctx, port))

	list, err := repo.GetByCategory(ctx, constants.SettingCategoryAAA)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, setting.AAAKeyPort, list[0].Key())
	assert.Equal(t, 8443, list[0].DisplayValue())
}

func TestSystemSettingRepository_Delete(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewSystemSettingRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	assert.ErrorIs(t, repo.Delete(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix), setting.ErrSettingNotFound)

	prefix, err := setting.NewSystemSetting(constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
	require.NoError(t, err)
	require.NoError(t, prefix.SetStringValue("ATS1000", "ops1"))
	require.NoError(t, repo.Upsert(ctx, prefix))

	require.NoError(t, repo.Delete(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix))
	_, err = repo.GetByKey(ctx, constants.SettingCategoryAccountSequence, setting.SequenceKeyPrefix)
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
}
