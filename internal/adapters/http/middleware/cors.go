package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const wildcardOrigin = "*"

var (
	corsAllowMethods  = strings.Join([]string{http.MethodGet, http.MethodOptions}, ", ")
	corsAllowHeaders  = strings.Join([]string{"Content-Type", HeaderRequestID, HeaderCorrelationID}, ", ")
	corsExposeHeaders = strings.Join([]string{HeaderRequestID, HeaderCorrelationID}, ", ")
)

// CORS returns middleware that allows cross-origin reads from the given origins.
// A "*" entry allows every origin. Preflight OPTIONS requests end with 204.
func CORS(origins []string) gin.HandlerFunc {
	allowAll := lo.Contains(origins, wildcardOrigin)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", wildcardOrigin)
		case origin != "" && lo.Contains(origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Expose-Headers", corsExposeHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
