package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/server/http/dto"
)

const (
	// IdentityContextKey is a gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	// TokenContextKey is a gin context key for the raw bearer token, kept
	// for forwarding to the catalog service.
	TokenContextKey = "token"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Identity, error)
}

// AuthRequired ensures the request carries a valid bearer token before
// reaching the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "authorization required"))
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "the token is invalid or expired"))
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// RequireRole rejects authenticated identities whose role is not listed.
// Must run after AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(IdentityContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "authorization required"))
			return
		}
		identity, _ := val.(pkgAuth.Identity)
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Failure(http.StatusForbidden, "the operation is not allowed for this role"))
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
