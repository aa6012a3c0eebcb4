package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
	AllowAll       bool
}

// DefaultCORSConfig returns the CORS policy for an environment. Production is
// strict; everything else allows localhost development origins.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins: []string{},
		}
	}
	return CORSConfig{
		AllowAll: true,
	}
}

// CORS applies the given policy and answers preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (cfg.AllowAll || originAllowed(cfg.AllowedOrigins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, o := range allowed {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
