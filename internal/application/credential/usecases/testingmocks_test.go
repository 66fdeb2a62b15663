package usecases

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/fiberops/subcore/internal/domain/credential"
)

type mockPatternRepository struct {
	mock.Mock
}

func (m *mockPatternRepository) GetActive(ctx context.Context, kind credential.PatternKind) (*credential.Pattern, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Pattern), args.Error(1)
}

func (m *mockPatternRepository) Save(ctx context.Context, pattern *credential.Pattern) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

// takenUsernames is an in-memory UsernameChecker.
type takenUsernames map[string]bool

func (t takenUsernames) UsernameExists(_ context.Context, username string) (bool, error) {
	return t[username], nil
}

// fixedRandom returns the first length characters of a repeated seed string.
type fixedRandom struct {
	seed string
}

func (f fixedRandom) Random(_ string, length int) (string, error) {
	return strings.Repeat(f.seed, length)[:length], nil
}
