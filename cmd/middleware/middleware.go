package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"barkday/internal/dto"
)

func LoggingMiddleware() func(c *ginext.Context) {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()
		zlog.Logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}

// AdminGuard checks the shared admin secret from the x-admin-pass header,
// falling back to the pass query parameter. Plain equality, no timing
// guarantees; this is a low-stakes shared secret.
func AdminGuard(pass string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		provided := c.GetHeader("x-admin-pass")
		if provided == "" {
			provided = c.Query("pass")
		}
		if provided == "" || provided != pass {
			dto.UnauthorizedError(c)
			return
		}
		c.Next()
	}
}
