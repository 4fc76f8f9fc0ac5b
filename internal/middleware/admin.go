package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// AdminOnly restricts a route to accounts carrying the admin flag. It must
// run after JWT so the claims are present.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok || !claims.IsAdmin {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
