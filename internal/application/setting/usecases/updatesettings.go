package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fiberops/subcore/internal/application/setting/dto"
	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/shared/constants"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// SettingChangeNotifier defines the interface for notifying setting changes
type SettingChangeNotifier interface {
	NotifyChange(ctx context.Context, category string, changes map[string]any) error
}

// UpdateAAASettingsUseCase stores operator overrides of the AAA settings.
type UpdateAAASettingsUseCase struct {
	settingRepo setting.Repository
	source      AAASettingsSource
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

// NewUpdateAAASettingsUseCase creates a new UpdateAAASettingsUseCase
func NewUpdateAAASettingsUseCase(
	settingRepo setting.Repository,
	source AAASettingsSource,
	notifier SettingChangeNotifier,
	logger logger.Interface,
) *UpdateAAASettingsUseCase {
	return &UpdateAAASettingsUseCase{
		settingRepo: settingRepo,
		source:      source,
		notifier:    notifier,
		logger:      logger,
	}
}

type settingUpdate struct {
	key string
	str string
	num int
}

// Execute validates the merged result before writing any row, then upserts
// one row per supplied field.
func (uc *UpdateAAASettingsUseCase) Execute(ctx context.Context, req dto.UpdateAAASettingsRequest, updatedBy string) (*dto.AAASettingsResponse, error) {
	merged := uc.source.GetAAASettings(ctx)
	var updates []settingUpdate

	str := func(key string, v *string, apply func(string)) {
		if v == nil {
			return
		}
		value := strings.TrimSpace(*v)
		apply(value)
		updates = append(updates, settingUpdate{key: key, str: value})
	}
	num := func(key string, v *int, apply func(int)) {
		if v == nil {
			return
		}
		apply(*v)
		updates = append(updates, settingUpdate{key: key, num: *v})
	}

	str(setting.AAAKeyScheme, req.Scheme, func(v string) { merged.Scheme = v })
	str(setting.AAAKeyHost, req.Host, func(v string) { merged.Host = v })
	num(setting.AAAKeyPort, req.Port, func(v int) { merged.Port = v })
	str(setting.AAAKeyUsername, req.Username, func(v string) { merged.Username = v })
	str(setting.AAAKeyPassword, req.Password, func(v string) { merged.Password = v })
	num(setting.AAAKeyTimeoutSeconds, req.TimeoutSeconds, func(v int) { merged.TimeoutSeconds = v })
	str(setting.AAAKeyDisconnectMode, req.DisconnectMode, func(v string) { merged.DisconnectMode = setting.DisconnectMode(v) })
	str(setting.AAAKeyRadiusSecret, req.RadiusSecret, func(v string) { merged.RadiusSecret = v })
	str(setting.AAAKeyRadiusNASAddr, req.RadiusNASAddr, func(v string) { merged.RadiusNASAddr = v })

	if err := merged.Validate(); err != nil {
		return nil, sharedErrors.NewValidationError("invalid aaa settings", err.Error())
	}
	if len(updates) == 0 {
		return dto.ToAAASettingsResponse(merged), nil
	}

	changes := make(map[string]any, len(updates))
	for _, u := range updates {
		s, err := uc.upsert(ctx, u, updatedBy)
		if err != nil {
			uc.logger.Errorw("failed to update aaa setting", "key", u.key, "error", err)
			return nil, fmt.Errorf("failed to update setting %s.%s: %w", constants.SettingCategoryAAA, u.key, err)
		}
		changes[u.key] = s.DisplayValue()
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChange(ctx, constants.SettingCategoryAAA, changes); err != nil {
			uc.logger.Warnw("failed to notify setting changes",
				"category", constants.SettingCategoryAAA,
				"error", err,
			)
		}
	}

	uc.logger.Infow("aaa settings updated", "keys", len(updates), "updated_by", updatedBy)
	return dto.ToAAASettingsResponse(uc.source.GetAAASettings(ctx)), nil
}

func (uc *UpdateAAASettingsUseCase) upsert(ctx context.Context, u settingUpdate, updatedBy string) (*setting.SystemSetting, error) {
	s, err := uc.settingRepo.GetByKey(ctx, constants.SettingCategoryAAA, u.key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return nil, err
		}
		s, err = setting.NewSystemSetting(constants.SettingCategoryAAA, u.key)
		if err != nil {
			return nil, err
		}
	}

	if s.ValueType() == setting.ValueTypeInt {
		err = s.SetIntValue(u.num, updatedBy)
	} else {
		err = s.SetStringValue(u.str, updatedBy)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
