package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/match"
	"github.com/gurumithuru/transfer-match-api/internal/service"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// MatchHandler exposes the mutual-match search endpoint.
type MatchHandler struct {
	matches *service.MatchService
}

// NewMatchHandler constructs MatchHandler.
func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// Find godoc
// @Summary Find mutual transfer matches for the current user
// @Tags Matches
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param province query string false "Filter by province, either side"
// @Param district query string false "Filter by district, either side"
// @Param zone query string false "Filter by zone, either side"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /matches [get]
func (h *MatchHandler) Find(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	// Hierarchy order matters: setting a broader level clears the narrower
	// ones, so province applies before district before zone.
	var filter match.Filter
	if province := strings.TrimSpace(c.Query("province")); province != "" {
		filter.SetProvince(province)
	}
	if district := strings.TrimSpace(c.Query("district")); district != "" {
		filter.SetDistrict(district)
	}
	if zone := strings.TrimSpace(c.Query("zone")); zone != "" {
		filter.SetZone(zone)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		filter.SetSubject(subject)
	}

	result, err := h.matches.Find(c.Request.Context(), claims.UserID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
