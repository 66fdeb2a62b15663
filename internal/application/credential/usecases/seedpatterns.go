package usecases

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// patternSeedFile is the layout of a credential pattern seed document:
//
//	patterns:
//	  username:
//	    - kind: first_initial
//	    - kind: last_name
//	  secret:
//	    - kind: random_alphanumeric
//	      length: 6
type patternSeedFile struct {
	Patterns map[string][]credential.Token `yaml:"patterns"`
}

// SeedCredentialPatternsUseCase replaces active patterns from a YAML document.
// Every pattern is validated before any is saved.
type SeedCredentialPatternsUseCase struct {
	patternRepo credential.PatternRepository
	logger      logger.Interface
}

func NewSeedCredentialPatternsUseCase(patternRepo credential.PatternRepository, logger logger.Interface) *SeedCredentialPatternsUseCase {
	return &SeedCredentialPatternsUseCase{
		patternRepo: patternRepo,
		logger:      logger,
	}
}

// Execute returns the kinds that were saved, in name order.
func (uc *SeedCredentialPatternsUseCase) Execute(ctx context.Context, data []byte, updatedBy string) ([]credential.PatternKind, error) {
	var file patternSeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.NewValidationError("invalid credential pattern seed file", err.Error())
	}
	if len(file.Patterns) == 0 {
		return nil, errors.NewValidationError("credential pattern seed file has no patterns")
	}

	names := make([]string, 0, len(file.Patterns))
	for name := range file.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	patterns := make([]*credential.Pattern, 0, len(names))
	for _, name := range names {
		kind, err := credential.ParsePatternKind(name)
		if err != nil {
			return nil, errors.NewValidationError("invalid credential pattern kind", err.Error())
		}
		pattern, err := credential.NewPattern(kind, file.Patterns[name], updatedBy)
		if err != nil {
			return nil, errors.NewValidationError("invalid credential pattern", fmt.Sprintf("%s: %v", name, err))
		}
		patterns = append(patterns, pattern)
	}

	saved := make([]credential.PatternKind, 0, len(patterns))
	for _, pattern := range patterns {
		if err := uc.patternRepo.Save(ctx, pattern); err != nil {
			uc.logger.Errorw("failed to seed credential pattern", "kind", pattern.Kind, "error", err)
			return saved, fmt.Errorf("failed to save credential pattern %s: %w", pattern.Kind, err)
		}
		saved = append(saved, pattern.Kind)
	}

	uc.logger.Infow("credential patterns seeded", "kinds", saved, "updated_by", updatedBy)
	return saved, nil
}
