package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/middleware"
	"github.com/gurumithuru/transfer-match-api/internal/models"
)

// currentClaims extracts the JWT claims stored by the auth middleware.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
