package middleware

import (
	"strings"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests that do not carry a valid bearer token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches claims when a valid token is present but lets
// anonymous requests through untouched.
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, cfg); ok {
			c.Set("user", claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, cfg *config.Config) (*util.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}
