package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fiberops/subcore/internal/shared/biztime"
)

// OperatorClaims identify the CRM operator behind a request.
type OperatorClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Actor is the name recorded on audit fields, falling back to the subject.
func (c *OperatorClaims) Actor() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return c.Subject
}

// OperatorTokenVerifier checks HS256 tokens issued by the CRM. Login and
// session handling stay in the CRM.
type OperatorTokenVerifier struct {
	secret []byte
}

func NewOperatorTokenVerifier(secret string) *OperatorTokenVerifier {
	return &OperatorTokenVerifier{secret: []byte(secret)}
}

// Issue signs a token for subject. Used by tooling and tests.
func (v *OperatorTokenVerifier) Issue(subject, name string, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()
	claims := &OperatorClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign operator token: %w", err)
	}
	return signed, nil
}

func (v *OperatorTokenVerifier) Verify(tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Actor() == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}
