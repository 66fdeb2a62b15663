package usecases

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/shared/biztime"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/id"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const (
	// DefaultUsernameRetryLimit bounds the counter suffixes tried before the
	// timestamp suffix.
	DefaultUsernameRetryLimit = 20

	fallbackLength = 6
)

// UsernameChecker reports whether a username is already held by an identity.
type UsernameChecker interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// Credentials is a synthesized PPPoE identity.
type Credentials struct {
	Username          string
	Secret            string
	GeneratedUsername bool
	GeneratedSecret   bool
}

// Synthesizer builds usernames and secrets from the active credential patterns.
type Synthesizer struct {
	patternRepo credential.PatternRepository
	usernames   UsernameChecker
	random      credential.RandomSource
	retryLimit  int
	now         func() time.Time
	logger      logger.Interface
}

func NewSynthesizer(
	patternRepo credential.PatternRepository,
	usernames UsernameChecker,
	random credential.RandomSource,
	retryLimit int,
	logger logger.Interface,
) *Synthesizer {
	if random == nil {
		random = credential.CryptoRandom{}
	}
	if retryLimit <= 0 {
		retryLimit = DefaultUsernameRetryLimit
	}
	return &Synthesizer{
		patternRepo: patternRepo,
		usernames:   usernames,
		random:      random,
		retryLimit:  retryLimit,
		now:         biztime.NowUTC,
		logger:      logger,
	}
}

// BuildUsername renders the username pattern for p and disambiguates it until
// no identity holds it.
func (s *Synthesizer) BuildUsername(ctx context.Context, p credential.Profile) (string, error) {
	return s.BuildUsernameFor(ctx, p, "")
}

// BuildUsernameFor is BuildUsername for an identity that already holds
// ownUsername; that value counts as available.
func (s *Synthesizer) BuildUsernameFor(ctx context.Context, p credential.Profile, ownUsername string) (string, error) {
	base := s.render(ctx, credential.PatternKindUsername, p)
	if base == "" {
		s.logger.Warnw("username pattern rendered empty, using random username")
		random, err := s.random.Random(id.Alphanumeric, fallbackLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate username: %w", err)
		}
		base = random
	}
	return s.unique(ctx, base, ownUsername)
}

// BuildSecret renders the secret pattern for p.
func (s *Synthesizer) BuildSecret(ctx context.Context, p credential.Profile) (string, error) {
	secret := s.render(ctx, credential.PatternKindSecret, p)
	if secret != "" {
		return secret, nil
	}

	s.logger.Warnw("secret pattern rendered empty, using random secret")
	secret, err := s.random.Random(id.Alphanumeric, fallbackLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

// EnsureCredentials fills whichever of username and secret is missing.
func (s *Synthesizer) EnsureCredentials(ctx context.Context, p credential.Profile, existingUsername, existingSecret string) (*Credentials, error) {
	creds := &Credentials{Username: existingUsername, Secret: existingSecret}

	if creds.Username == "" {
		username, err := s.BuildUsername(ctx, p)
		if err != nil {
			return nil, err
		}
		creds.Username = username
		creds.GeneratedUsername = true
	}

	if creds.Secret == "" {
		secret, err := s.BuildSecret(ctx, p)
		if err != nil {
			return nil, err
		}
		creds.Secret = secret
		creds.GeneratedSecret = true
	}

	return creds, nil
}

// render falls back to the built-in default when the stored pattern is
// missing or cannot be rendered.
func (s *Synthesizer) render(ctx context.Context, kind credential.PatternKind, p credential.Profile) string {
	pattern := s.activePattern(ctx, kind)

	out, err := credential.Render(pattern.Tokens, p, s.random)
	if err == nil {
		return out
	}

	s.logger.Warnw("failed to render credential pattern, using default", "kind", kind, "error", err)
	out, err = credential.Render(credential.DefaultPattern(kind).Tokens, p, s.random)
	if err != nil {
		s.logger.Errorw("failed to render default credential pattern", "kind", kind, "error", err)
		return ""
	}
	return out
}

func (s *Synthesizer) activePattern(ctx context.Context, kind credential.PatternKind) credential.Pattern {
	pattern, err := s.patternRepo.GetActive(ctx, kind)
	if err != nil {
		s.logger.Warnw("failed to load credential pattern, using default", "kind", kind, "error", err)
		return credential.DefaultPattern(kind)
	}
	if pattern == nil || len(pattern.Tokens) == 0 {
		s.logger.Warnw("no credential pattern configured, using default", "kind", kind)
		return credential.DefaultPattern(kind)
	}
	return *pattern
}

// unique tries base, then base1..baseN, then base plus a base-36 timestamp.
func (s *Synthesizer) unique(ctx context.Context, base, ownUsername string) (string, error) {
	candidates := make([]string, 0, s.retryLimit+2)
	candidates = append(candidates, base)
	for i := 1; i <= s.retryLimit; i++ {
		candidates = append(candidates, base+strconv.Itoa(i))
	}
	candidates = append(candidates, base+strconv.FormatInt(s.now().UnixNano(), 36))

	for _, candidate := range candidates {
		if ownUsername != "" && candidate == ownUsername {
			return candidate, nil
		}
		exists, err := s.usernames.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	s.logger.Warnw("username candidates exhausted", "base", base, "attempts", len(candidates))
	return "", errors.NewConflictError("no unique username available", base)
}
