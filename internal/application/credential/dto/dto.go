package dto

import (
	"time"

	"github.com/fiberops/subcore/internal/domain/credential"
)

type TokenDTO struct {
	Kind   string `json:"kind" binding:"required"`
	Length int    `json:"length,omitempty"`
	Value  string `json:"value,omitempty"`
}

type CredentialPatternDTO struct {
	Kind      string     `json:"kind"`
	Tokens    []TokenDTO `json:"tokens"`
	IsDefault bool       `json:"is_default"`
	UpdatedBy string     `json:"updated_by,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UpdateCredentialPatternRequest struct {
	Tokens []TokenDTO `json:"tokens" binding:"required,min=1,dive"`
}

func ToTokens(in []TokenDTO) []credential.Token {
	out := make([]credential.Token, len(in))
	for i, t := range in {
		out[i] = credential.Token{Kind: credential.TokenKind(t.Kind), Length: t.Length, Value: t.Value}
	}
	return out
}

func FromPattern(p credential.Pattern, isDefault bool) *CredentialPatternDTO {
	tokens := make([]TokenDTO, len(p.Tokens))
	for i, t := range p.Tokens {
		tokens[i] = TokenDTO{Kind: string(t.Kind), Length: t.Length, Value: t.Value}
	}

	result := &CredentialPatternDTO{
		Kind:      string(p.Kind),
		Tokens:    tokens,
		IsDefault: isDefault,
		UpdatedBy: p.UpdatedBy,
	}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		result.UpdatedAt = &updatedAt
	}
	return result
}
