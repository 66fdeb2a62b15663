package usecases

import (
	"context"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/setting"
)

// NetworkClient is the AAA provisioning surface the transitions drive.
type NetworkClient interface {
	Upsert(ctx context.Context, settings setting.AAASettings, username, group, secret string) error
	KillSession(ctx context.Context, settings setting.AAASettings, username string) error
	Rename(ctx context.Context, settings setting.AAASettings, oldUsername, newUsername, group, secret string) error
}

// AAASettingsSource resolves the AAA settings for one operation.
type AAASettingsSource interface {
	GetAAASettings(ctx context.Context) setting.AAASettings
}

// TransitionLocker serializes transitions on the same account. TryAcquire
// reports acquired=false without blocking when another holder has the key.
type TransitionLocker interface {
	TryAcquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}

// UsernameBuilder derives a unique username, treating ownUsername as free.
type UsernameBuilder interface {
	BuildUsernameFor(ctx context.Context, p credential.Profile, ownUsername string) (string, error)
}

// CredentialFiller fills whichever of username and secret is empty from the
// active credential patterns.
type CredentialFiller interface {
	EnsureCredentials(ctx context.Context, p credential.Profile, existingUsername, existingSecret string) (*credentialUsecases.Credentials, error)
}
