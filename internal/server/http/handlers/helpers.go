package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/feriago/orders/internal/domain/errors"
	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/server/http/dto"
	"github.com/feriago/orders/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) pkgAuth.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return pkgAuth.Identity{}
	}
	identity, _ := val.(pkgAuth.Identity)
	return identity
}

// CurrentToken extracts the raw bearer token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

// respondError translates domain errors into the response envelope.
// Anything without a known kind becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case domainErrors.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, dto.Failure(http.StatusBadRequest, err.Error()))
	case domainErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.Failure(http.StatusNotFound, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusInternalServerError, "internal error"))
	}
}
