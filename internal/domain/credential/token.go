package credential

import (
	"fmt"
)

// TokenKind is one step of a credential pattern.
type TokenKind string

const (
	TokenFirstName          TokenKind = "first_name"
	TokenFirstInitial       TokenKind = "first_initial"
	TokenMiddleName         TokenKind = "middle_name"
	TokenMiddleInitial      TokenKind = "middle_initial"
	TokenLastName           TokenKind = "last_name"
	TokenLastInitial        TokenKind = "last_initial"
	TokenMobileLast4        TokenKind = "mobile_last4"
	TokenMobileLast6        TokenKind = "mobile_last6"
	TokenLCP                TokenKind = "lcp"
	TokenNAP                TokenKind = "nap"
	TokenPort               TokenKind = "port"
	TokenLiteral            TokenKind = "literal"
	TokenRandomDigits       TokenKind = "random_digits"
	TokenRandomLetters      TokenKind = "random_letters"
	TokenRandomAlphanumeric TokenKind = "random_alphanumeric"
)

var validTokenKinds = map[TokenKind]bool{
	TokenFirstName:          true,
	TokenFirstInitial:       true,
	TokenMiddleName:         true,
	TokenMiddleInitial:      true,
	TokenLastName:           true,
	TokenLastInitial:        true,
	TokenMobileLast4:        true,
	TokenMobileLast6:        true,
	TokenLCP:                true,
	TokenNAP:                true,
	TokenPort:               true,
	TokenLiteral:            true,
	TokenRandomDigits:       true,
	TokenRandomLetters:      true,
	TokenRandomAlphanumeric: true,
}

// IsRandom reports whether the kind draws random material.
func (k TokenKind) IsRandom() bool {
	return k == TokenRandomDigits || k == TokenRandomLetters || k == TokenRandomAlphanumeric
}

// Token is a single pattern element. Length applies to random kinds (4 or 6)
// and Value to literals.
type Token struct {
	Kind   TokenKind `json:"kind" yaml:"kind"`
	Length int       `json:"length,omitempty" yaml:"length,omitempty"`
	Value  string    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Validate rejects unknown kinds and unsupported random lengths.
func (t Token) Validate() error {
	if !validTokenKinds[t.Kind] {
		return fmt.Errorf("%w: %q", ErrUnknownTokenKind, t.Kind)
	}
	if t.Kind.IsRandom() && t.Length != 4 && t.Length != 6 {
		return fmt.Errorf("%w: %s length must be 4 or 6, got %d", ErrInvalidToken, t.Kind, t.Length)
	}
	if t.Kind == TokenLiteral && t.Value == "" {
		return fmt.Errorf("%w: literal value is required", ErrInvalidToken)
	}
	return nil
}
