package usecases

import (
	"context"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/setting"
)

// AccountAllocator hands out the next account number. Called with a
// transaction in ctx, the number stays locked until that transaction ends.
type AccountAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

type CredentialSynthesizer interface {
	EnsureCredentials(ctx context.Context, p credential.Profile, existingUsername, existingSecret string) (*credentialUsecases.Credentials, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// NetworkProvisioner creates the AAA user once onboarding has committed.
type NetworkProvisioner interface {
	Upsert(ctx context.Context, settings setting.AAASettings, username, group, secret string) error
}

type AAASettingsSource interface {
	GetAAASettings(ctx context.Context) setting.AAASettings
}
