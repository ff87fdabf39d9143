package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/communityday/registrations/pkg/response"
)

// CORS sets the fixed cross-origin headers on every response, including
// 404s and recovered panics. Preflight answers are left to the route handlers.
func CORS() gin.HandlerFunc {
	headers := response.CORSHeaders()
	return func(c *gin.Context) {
		for k, v := range headers {
			c.Header(k, v)
		}
		c.Next()
	}
}
