package middleware

import (
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

// Recovery turns panics into 500 responses and logs the stack. Broken-pipe
// panics are logged without a response body since the client is gone.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if isBrokenConnection(recovered) {
			log.Warnw("connection broken by client",
				"path", c.Request.URL.Path,
				"error", recovered,
			)
			c.Abort()
			return
		}

		request, _ := httputil.DumpRequest(c.Request, false)
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"error", recovered,
			"request", sanitizeRequestDump(string(request)),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		c.Abort()
	})
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr.Err, &sysErr) {
		return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
	}
	return false
}

// sanitizeRequestDump redacts the Authorization header before the dump
// reaches the log output.
func sanitizeRequestDump(dump string) string {
	lines := strings.Split(dump, "\r\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "authorization:") {
			lines[i] = "Authorization: [REDACTED]"
		}
	}
	return strings.Join(lines, "\r\n")
}
