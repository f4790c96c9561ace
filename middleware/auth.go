package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/invicta-fest/festival-backend/config"
)

// AdminContext is the authenticated admin identity extracted from the
// bearer token. The role claim is embedded in the token itself; no
// database lookup happens on the request path.
type AdminContext struct {
	AdminID uint
	Role    string
}

const adminContextKey = "admin_context"

// AuthMiddleware validates the bearer token and stores the admin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		adminIDFloat, ok := claims["admin_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin_id missing in token"})
			return
		}
		role, _ := claims["role"].(string)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role missing in token"})
			return
		}

		c.Set(adminContextKey, AdminContext{
			AdminID: uint(adminIDFloat),
			Role:    role,
		})

		c.Next()
	}
}

// AdminFromContext retrieves the authenticated admin identity.
func AdminFromContext(c *gin.Context) (AdminContext, bool) {
	raw, exists := c.Get(adminContextKey)
	if !exists {
		return AdminContext{}, false
	}
	ctx, ok := raw.(AdminContext)
	return ctx, ok
}
