package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurumithuru/transfer-match-api/internal/service"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
	"github.com/gurumithuru/transfer-match-api/pkg/response"
)

// TestimonialHandler exposes testimonial submission and moderation endpoints.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

// NewTestimonialHandler constructs TestimonialHandler.
func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// ListApproved godoc
// @Summary List published testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /testimonials [get]
func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	testimonials, err := h.testimonials.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonials, nil)
}

// Submit godoc
// @Summary Submit a testimonial for moderation
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param payload body service.SubmitTestimonialRequest true "Testimonial payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /testimonials [post]
func (h *TestimonialHandler) Submit(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	testimonial, err := h.testimonials.Submit(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, testimonial)
}

// ListAll godoc
// @Summary List every testimonial for moderation
// @Tags Testimonials
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/testimonials [get]
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	testimonials, err := h.testimonials.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonials, nil)
}

// Approve godoc
// @Summary Publish a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/testimonials/{id}/approve [post]
func (h *TestimonialHandler) Approve(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	testimonial, err := h.testimonials.Approve(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonial, nil)
}

// Reject godoc
// @Summary Remove a testimonial
// @Tags Testimonials
// @Param id path string true "Testimonial ID"
// @Success 204
// @Security BearerAuth
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Reject(c *gin.Context) {
	if err := h.testimonials.Reject(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
