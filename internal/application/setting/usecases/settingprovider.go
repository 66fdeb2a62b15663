package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fiberops/subcore/internal/domain/setting"
	sharedConfig "github.com/fiberops/subcore/internal/shared/config"
	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// SettingChangeSubscriber defines the interface for setting change subscribers
type SettingChangeSubscriber interface {
	OnSettingChange(ctx context.Context, category string, changes map[string]any) error
}

// SettingProvider resolves settings database first, config file second.
// Nothing is cached: every call reads the current rows.
type SettingProvider struct {
	settingRepo setting.Repository
	aaaConfig   sharedConfig.AAAConfig
	logger      logger.Interface

	subscribers []SettingChangeSubscriber
	mu          sync.RWMutex
}

// NewSettingProvider creates a new SettingProvider
func NewSettingProvider(
	settingRepo setting.Repository,
	aaaConfig sharedConfig.AAAConfig,
	logger logger.Interface,
) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		aaaConfig:   aaaConfig,
		logger:      logger,
		subscribers: make([]SettingChangeSubscriber, 0),
	}
}

// Subscribe registers a subscriber for setting changes
func (p *SettingProvider) Subscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber)
}

// NotifyChange notifies all subscribers of configuration changes
func (p *SettingProvider) NotifyChange(ctx context.Context, category string, changes map[string]any) error {
	p.mu.RLock()
	subscribers := make([]SettingChangeSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	var errs []error
	for _, subscriber := range subscribers {
		if err := subscriber.OnSettingChange(ctx, category, changes); err != nil {
			p.logger.Errorw("subscriber failed to handle setting change",
				"category", category,
				"subscriber", fmt.Sprintf("%T", subscriber),
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to notify %d/%d subscribers, first error: %w", len(errs), len(subscribers), errs[0])
	}

	return nil
}

// GetAAASettings returns the AAA settings for one operation.
// Database values take precedence over the config file.
func (p *SettingProvider) GetAAASettings(ctx context.Context) setting.AAASettings {
	settings := p.aaaFromConfig()

	rows, err := p.settingRepo.GetByCategory(ctx, constants.SettingCategoryAAA)
	if err != nil {
		p.logger.Warnw("failed to get aaa settings from database, using config file",
			"error", err,
		)
		return settings
	}

	for _, s := range rows {
		if !s.HasValue() {
			continue
		}
		switch s.Key() {
		case setting.AAAKeyScheme:
			settings.Scheme = s.Value()
		case setting.AAAKeyHost:
			settings.Host = s.Value()
		case setting.AAAKeyPort:
			if v, err := s.IntValue(); err == nil {
				settings.Port = v
			} else {
				p.logger.Warnw("ignoring invalid aaa port setting", "value", s.Value(), "error", err)
			}
		case setting.AAAKeyUsername:
			settings.Username = s.Value()
		case setting.AAAKeyPassword:
			settings.Password = s.Value()
		case setting.AAAKeyTimeoutSeconds:
			if v, err := s.IntValue(); err == nil {
				settings.TimeoutSeconds = v
			} else {
				p.logger.Warnw("ignoring invalid aaa timeout setting", "value", s.Value(), "error", err)
			}
		case setting.AAAKeyDisconnectMode:
			settings.DisconnectMode = setting.DisconnectMode(strings.ToLower(s.Value()))
		case setting.AAAKeyRadiusSecret:
			settings.RadiusSecret = s.Value()
		case setting.AAAKeyRadiusNASAddr:
			settings.RadiusNASAddr = s.Value()
		}
	}

	return settings
}

func (p *SettingProvider) aaaFromConfig() setting.AAASettings {
	return setting.AAASettings{
		Scheme:         p.aaaConfig.Scheme,
		Host:           p.aaaConfig.Host,
		Port:           p.aaaConfig.Port,
		Username:       p.aaaConfig.Username,
		Password:       p.aaaConfig.Password,
		TimeoutSeconds: p.aaaConfig.TimeoutSeconds,
		DisconnectMode: setting.DisconnectMode(strings.ToLower(p.aaaConfig.DisconnectMode)),
		RadiusSecret:   p.aaaConfig.RadiusSecret,
		RadiusNASAddr:  p.aaaConfig.RadiusNASAddr,
	}
}
