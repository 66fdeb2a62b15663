package setting

import "context"

// Repository stores operator overrides, one row per category and key.
type Repository interface {
	// GetByKey returns ErrSettingNotFound when no row exists.
	GetByKey(ctx context.Context, category, key string) (*SystemSetting, error)
	GetByCategory(ctx context.Context, category string) ([]*SystemSetting, error)
	Upsert(ctx context.Context, setting *SystemSetting) error
	// Delete returns ErrSettingNotFound when no row exists.
	Delete(ctx context.Context, category, key string) error
}
