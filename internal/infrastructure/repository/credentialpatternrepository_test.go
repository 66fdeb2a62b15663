package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	"github.com/fiberops/subcore/internal/shared/logger"
)

func TestCredentialPatternRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewCredentialPatternRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	t.Run("missing pattern is nil", func(t *testing.T) {
		p, err := repo.GetActive(ctx, credential.PatternKindUsername)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("save replaces the active row", func(t *testing.T) {
		first, err := credential.NewPattern(credential.PatternKindUsername, []credential.Token{
			{Kind: credential.TokenFirstName},
			{Kind: credential.TokenLastInitial},
		}, "alice")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := credential.NewPattern(credential.PatternKindUsername, []credential.Token{
			{Kind: credential.TokenLCP},
			{Kind: credential.TokenLiteral, Value: "-"},
			{Kind: credential.TokenRandomDigits, Length: 4},
		}, "bob")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		got, err := repo.GetActive(ctx, credential.PatternKindUsername)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, second.Tokens, got.Tokens)
		assert.Equal(t, "bob", got.UpdatedBy)
	})

	t.Run("kinds are independent", func(t *testing.T) {
		p, err := repo.GetActive(ctx, credential.PatternKindSecret)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}
