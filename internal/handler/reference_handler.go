package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/reference"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// ReferenceHandler serves the static lookup data driving the profile form:
// the provincial education hierarchy and the profile enumerations.
type ReferenceHandler struct{}

// NewReferenceHandler constructs ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Provinces godoc
// @Summary List provinces
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/provinces [get]
func (h *ReferenceHandler) Provinces(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Provinces(), nil)
}

// Districts godoc
// @Summary List districts of a province
// @Tags Reference
// @Produce json
// @Param province query string true "Province name"
// @Success 200 {object} response.Envelope
// @Router /reference/districts [get]
func (h *ReferenceHandler) Districts(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Districts(c.Query("province")), nil)
}

// Zones godoc
// @Summary List zonal education divisions of a district
// @Tags Reference
// @Produce json
// @Param province query string true "Province name"
// @Param district query string true "District name"
// @Success 200 {object} response.Envelope
// @Router /reference/zones [get]
func (h *ReferenceHandler) Zones(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Zones(c.Query("province"), c.Query("district")), nil)
}

// Options godoc
// @Summary Profile form enumerations
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/options [get]
func (h *ReferenceHandler) Options(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"subjects":     reference.Subjects(),
		"grades":       reference.Grades(),
		"mediums":      reference.Mediums(),
		"school_types": reference.SchoolTypes(),
	}, nil)
}
