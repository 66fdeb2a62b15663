package usecases

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/domain/setting"
)

type mockNetworkClient struct {
	mock.Mock
}

func (m *mockNetworkClient) Upsert(ctx context.Context, settings setting.AAASettings, username, group, secret string) error {
	args := m.Called(ctx, settings, username, group, secret)
	return args.Error(0)
}

func (m *mockNetworkClient) KillSession(ctx context.Context, settings setting.AAASettings, username string) error {
	args := m.Called(ctx, settings, username)
	return args.Error(0)
}

func (m *mockNetworkClient) Rename(ctx context.Context, settings setting.AAASettings, oldUsername, newUsername, group, secret string) error {
	args := m.Called(ctx, settings, oldUsername, newUsername, group, secret)
	return args.Error(0)
}

type mockUsernameBuilder struct {
	mock.Mock
}

func (m *mockUsernameBuilder) BuildUsernameFor(ctx context.Context, p credential.Profile, ownUsername string) (string, error) {
	args := m.Called(ctx, p, ownUsername)
	return args.String(0), args.Error(1)
}

type mockCredentialFiller struct {
	mock.Mock
}

func (m *mockCredentialFiller) EnsureCredentials(ctx context.Context, p credential.Profile, existingUsername, existingSecret string) (*credentialUsecases.Credentials, error) {
	args := m.Called(ctx, p, existingUsername, existingSecret)
	if creds := args.Get(0); creds != nil {
		return creds.(*credentialUsecases.Credentials), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticSettings setting.AAASettings

func (s staticSettings) GetAAASettings(context.Context) setting.AAASettings {
	return setting.AAASettings(s)
}

// keyLocker is a non-blocking in-memory TransitionLocker.
type keyLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newKeyLocker() *keyLocker {
	return &keyLocker{held: make(map[string]bool)}
}

func (l *keyLocker) TryAcquire(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}, true, nil
}

// channelPublisher hands published events to the test.
type channelPublisher struct {
	events chan *connectivity.Event
}

func newChannelPublisher() *channelPublisher {
	return &channelPublisher{events: make(chan *connectivity.Event, 16)}
}

func (p *channelPublisher) Publish(_ context.Context, event *connectivity.Event) error {
	p.events <- event
	return nil
}
