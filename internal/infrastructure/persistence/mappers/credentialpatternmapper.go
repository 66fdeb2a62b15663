package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/fiberops/subcore/internal/domain/credential"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

type CredentialPatternMapper interface {
	ToEntity(model *models.CredentialPatternModel) (*credential.Pattern, error)
	ToModel(entity *credential.Pattern) (*models.CredentialPatternModel, error)
}

type CredentialPatternMapperImpl struct{}

func NewCredentialPatternMapper() CredentialPatternMapper {
	return &CredentialPatternMapperImpl{}
}

func (m *CredentialPatternMapperImpl) ToEntity(model *models.CredentialPatternModel) (*credential.Pattern, error) {
	if model == nil {
		return nil, nil
	}

	var tokens []credential.Token
	if err := json.Unmarshal(model.Tokens, &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pattern tokens: %w", err)
	}

	return &credential.Pattern{
		Kind:      credential.PatternKind(model.Kind),
		Tokens:    tokens,
		UpdatedBy: model.UpdatedBy,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (m *CredentialPatternMapperImpl) ToModel(entity *credential.Pattern) (*models.CredentialPatternModel, error) {
	if entity == nil {
		return nil, nil
	}

	tokens, err := json.Marshal(entity.Tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pattern tokens: %w", err)
	}

	return &models.CredentialPatternModel{
		Kind:      string(entity.Kind),
		Tokens:    datatypes.JSON(tokens),
		UpdatedBy: entity.UpdatedBy,
		UpdatedAt: entity.UpdatedAt,
	}, nil
}
