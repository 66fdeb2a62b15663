package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/errors"
)

// ParseAccountNoParam reads the account number path parameter.
func ParseAccountNoParam(c *gin.Context) (string, error) {
	accountNo := strings.TrimSpace(c.Param("accountNo"))
	if accountNo == "" {
		return "", errors.NewValidationError("account number is required")
	}
	return accountNo, nil
}

// ParseUintParam parses a positive numeric path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName), raw)
	}
	return uint(v), nil
}

// ParseIntQuery parses an optional integer query parameter, returning def
// when it is absent.
func ParseIntQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s parameter", name), raw)
	}
	return v, nil
}

// OperatorFromContext returns the operator recorded by the operator
// middleware, or the default actor.
func OperatorFromContext(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyOperator); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return constants.DefaultOperator
}
