package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	"github.com/gurumithuru/transfer-match-api/internal/reference"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

type profileRepository interface {
	FindByID(ctx context.Context, id string) (*models.TeacherProfile, error)
	Update(ctx context.Context, profile *models.TeacherProfile) error
}

// UpdateProfileRequest carries the profile editor payload. Every field is
// sent on each save, mirroring the single-page form.
type UpdateProfileRequest struct {
	FullName        string   `json:"full_name" validate:"required,max=200"`
	Phone           *string  `json:"phone" validate:"omitempty,max=20"`
	Subject         string   `json:"subject" validate:"required"`
	Medium          string   `json:"medium_of_instruction" validate:"required"`
	CurrentProvince string   `json:"current_province" validate:"required"`
	CurrentDistrict string   `json:"current_district" validate:"required"`
	CurrentZone     string   `json:"current_zone" validate:"required"`
	CurrentSchool   string   `json:"current_school" validate:"required,max=200"`
	DesiredProvince string   `json:"desired_province" validate:"required"`
	DesiredDistrict string   `json:"desired_district" validate:"required"`
	DesiredZones    []string `json:"desired_zones" validate:"required,min=1"`
	GradeTaught     string   `json:"grade_taught" validate:"required"`
	SchoolType      string   `json:"school_type" validate:"required"`
	WhatsAppNumber  string   `json:"whatsapp_number" validate:"required,max=20"`
	HideContact     bool     `json:"hide_contact"`
}

// ProfileService orchestrates profile reads and writes.
type ProfileService struct {
	repo      profileRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Get returns the profile for the given user.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// Update saves the profile editor payload. Enumerated fields are checked
// against the fixed reference lists; desired zones are deduplicated keeping
// first occurrence. A successful save marks the profile completed and
// invalidates the user's cached dashboard.
func (s *ProfileService) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*models.TeacherProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	if err := validateEnumerations(req); err != nil {
		return nil, err
	}

	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}

	desiredZones := dedupeZones(req.DesiredZones)
	if len(desiredZones) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one desired zone is required")
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Phone = req.Phone
	profile.Subject = req.Subject
	profile.Medium = req.Medium
	profile.CurrentProvince = req.CurrentProvince
	profile.CurrentDistrict = req.CurrentDistrict
	profile.CurrentZone = req.CurrentZone
	profile.CurrentSchool = strings.TrimSpace(req.CurrentSchool)
	profile.DesiredProvince = req.DesiredProvince
	profile.DesiredDistrict = req.DesiredDistrict
	profile.DesiredZones = desiredZones
	// Keep the legacy field in lockstep for anything still reading it.
	profile.DesiredZone = desiredZones[0]
	profile.GradeTaught = req.GradeTaught
	profile.SchoolType = req.SchoolType
	profile.WhatsAppNumber = strings.TrimSpace(req.WhatsAppNumber)
	profile.HideContact = req.HideContact
	profile.ProfileComplete = true

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}

	if s.cache != nil {
		if err := s.cache.InvalidateUser(ctx, userID); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return profile, nil
}

func validateEnumerations(req UpdateProfileRequest) error {
	if !reference.ValidSubject(req.Subject) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown subject")
	}
	if !reference.ValidMedium(req.Medium) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown medium of instruction")
	}
	if !reference.ValidGrade(req.GradeTaught) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown grade range")
	}
	if !reference.ValidSchoolType(req.SchoolType) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown school type")
	}
	return nil
}

func dedupeZones(zones []string) []string {
	seen := make(map[string]struct{}, len(zones))
	result := make([]string, 0, len(zones))
	for _, zone := range zones {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			continue
		}
		if _, ok := seen[zone]; ok {
			continue
		}
		seen[zone] = struct{}{}
		result = append(result, zone)
	}
	return result
}
