package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/shared/constants"
	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 envelope. A client that hung up
// mid-response is only logged.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(constants.ContextKeyRequestID),
		}

		if err, ok := recovered.(error); ok && isBrokenConnection(err) {
			log.Warnw("client went away", append(fields, "error", err)...)
			c.Abort()
			return
		}

		log.Errorw("panic recovered", append(fields,
			"headers", redactHeaders(c.Request.Header),
			"panic", recovered,
			"stack", string(debug.Stack()))...)

		utils.ErrorResponseWithError(c, sharedErrors.NewInternalError("internal server error"))
		c.Abort()
	})
}

func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if name == constants.HeaderAuthorization || strings.EqualFold(name, "Cookie") {
			out[name] = "***"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func isBrokenConnection(err error) bool {
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}
	return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
}
