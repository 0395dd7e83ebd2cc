package middleware

import (
	"net/http"

	"datavault360/internal/config"

	"github.com/gin-gonic/gin"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Methods":     "GET, POST, PATCH, DELETE, OPTIONS",
	"Access-Control-Allow-Headers":     "Authorization, Content-Type",
	"Access-Control-Expose-Headers":    "Content-Disposition",
	"Access-Control-Max-Age":           "86400",
}

// CORS admits the dashboard origins listed in config.
// Preflight requests end here whether or not the origin is allowed.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			for k, v := range corsHeaders {
				h.Set(k, v)
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
