package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

type testimonialRepository interface {
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	FindByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) error
	Approve(ctx context.Context, id, adminID string, approvedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type testimonialAuthorRepository interface {
	FindByID(ctx context.Context, id string) (*models.TeacherProfile, error)
}

// SubmitTestimonialRequest is the user-facing submission payload.
type SubmitTestimonialRequest struct {
	Message string `json:"message" validate:"required,min=20,max=1000"`
}

// TestimonialService handles submission and moderation of testimonials.
type TestimonialService struct {
	repo      testimonialRepository
	profiles  testimonialAuthorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTestimonialService constructs a TestimonialService.
func NewTestimonialService(repo testimonialRepository, profiles testimonialAuthorRepository, validate *validator.Validate, logger *zap.Logger) *TestimonialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestimonialService{repo: repo, profiles: profiles, validator: validate, logger: logger}
}

// ListApproved returns publicly visible testimonials.
func (s *TestimonialService) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	return testimonials, nil
}

// ListAll returns every testimonial for the moderation queue.
func (s *TestimonialService) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	return testimonials, nil
}

// Submit files a testimonial pending moderation. The author snapshot (name,
// initials, school, district, zone) is denormalised at submission time so a
// later profile edit does not rewrite published stories.
func (s *TestimonialService) Submit(ctx context.Context, userID string, req SubmitTestimonialRequest) (*models.Testimonial, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid testimonial payload")
	}

	author, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	if !author.ProfileComplete {
		return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, "")
	}

	testimonial := &models.Testimonial{
		UserID:       author.ID,
		UserName:     author.FullName,
		UserInitials: initials(author.FullName),
		UserSchool:   author.CurrentSchool,
		UserDistrict: author.CurrentDistrict,
		UserZone:     author.CurrentZone,
		Message:      strings.TrimSpace(req.Message),
		IsApproved:   false,
	}
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit testimonial")
	}
	return testimonial, nil
}

// Approve publishes a testimonial.
func (s *TestimonialService) Approve(ctx context.Context, id, adminID string) (*models.Testimonial, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "testimonial not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load testimonial")
	}
	if err := s.repo.Approve(ctx, id, adminID, time.Now().UTC()); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to approve testimonial")
	}
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload testimonial")
	}
	return testimonial, nil
}

// Reject removes a testimonial from the queue.
func (s *TestimonialService) Reject(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "testimonial not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load testimonial")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reject testimonial")
	}
	return nil
}

func initials(fullName string) string {
	var b strings.Builder
	for _, part := range strings.Fields(fullName) {
		runes := []rune(part)
		if len(runes) > 0 {
			b.WriteRune(runes[0])
		}
	}
	return strings.ToUpper(b.String())
}
