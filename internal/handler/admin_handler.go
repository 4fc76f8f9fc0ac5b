package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	"github.com/gurumithuru/transfer-match-api/internal/service"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// AdminHandler exposes the admin dashboard endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Overview godoc
// @Summary Platform overview counters
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.admin.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// Users godoc
// @Summary List registered accounts
// @Tags Admin
// @Produce json
// @Param search query string false "Search by name or email"
// @Param subject query string false "Filter by subject"
// @Param completed query bool false "Filter by profile completion"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	var filter models.ProfileFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Subject = c.Query("subject")
	if completed := c.Query("completed"); completed != "" {
		if completed == "true" {
			v := true
			filter.Completed = &v
		} else if completed == "false" {
			v := false
			filter.Completed = &v
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	rows, pagination, err := h.admin.ListUsers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, pagination)
}

// Export godoc
// @Summary Export the completed-profile roster
// @Tags Admin
// @Produce octet-stream
// @Param format query string true "Export format, csv or pdf"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.admin.ExportRoster(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("teachers-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
