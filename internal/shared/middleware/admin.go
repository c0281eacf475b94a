package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/shared/response"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards admin routes with a shared secret compared by exact string
// equality. When secret is empty the guard lets every request through: admin
// access is open until ADMIN_KEY is configured.
func AdminKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		if c.GetHeader(AdminKeyHeader) != secret {
			log.Warn().
				Str("request_id", c.GetString(ContextKeyRequestID)).
				Str("path", c.Request.URL.Path).
				Str("ip", c.ClientIP()).
				Msg("Rejected admin request")

			response.Unauthorized(c, "Invalid admin key")
			c.Abort()
			return
		}

		c.Next()
	}
}
