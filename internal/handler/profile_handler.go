package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/service"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// ProfileHandler exposes the logged-in teacher's profile endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Me godoc
// @Summary Get the current user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	profile, err := h.profiles.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Update godoc
// @Summary Save the current user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body service.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profile/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	profile, err := h.profiles.Update(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}
