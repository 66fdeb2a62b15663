package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/infrastructure/auth"
	"github.com/fiberops/subcore/internal/shared/constants"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

// OperatorMiddleware resolves the CRM operator behind a request from a
// bearer token and stores the actor name in the gin context. Unless tokens
// are required, a missing or unverifiable token runs as the default operator.
type OperatorMiddleware struct {
	verifier *auth.OperatorTokenVerifier
	require  bool
	logger   logger.Interface
}

// NewOperatorMiddleware builds the middleware. A nil verifier disables token
// checks and every request runs as the default operator.
func NewOperatorMiddleware(verifier *auth.OperatorTokenVerifier, require bool, logger logger.Interface) *OperatorMiddleware {
	return &OperatorMiddleware{
		verifier: verifier,
		require:  require && verifier != nil,
		logger:   logger,
	}
}

func (m *OperatorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verifier == nil {
			c.Set(constants.ContextKeyOperator, constants.DefaultOperator)
			c.Next()
			return
		}

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			if m.require {
				utils.ErrorResponseWithError(c, sharedErrors.NewUnauthorizedError("missing operator token"))
				c.Abort()
				return
			}
			c.Set(constants.ContextKeyOperator, constants.DefaultOperator)
			c.Next()
			return
		}

		claims, err := m.verify(authHeader)
		if err != nil {
			m.logger.Warnw("failed to verify operator token", "error", err, "required", m.require)
			if m.require {
				utils.ErrorResponseWithError(c, sharedErrors.NewUnauthorizedError("invalid or expired operator token"))
				c.Abort()
				return
			}
			c.Set(constants.ContextKeyOperator, constants.DefaultOperator)
			c.Next()
			return
		}

		c.Set(constants.ContextKeyOperator, claims.Actor())
		c.Next()
	}
}

func (m *OperatorMiddleware) verify(authHeader string) (*auth.OperatorClaims, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}
	return m.verifier.Verify(parts[1])
}
