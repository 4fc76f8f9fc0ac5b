package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/dto"
	"github.com/gurumithuru/transfer-match-api/internal/match"
	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
	"github.com/gurumithuru/transfer-match-api/pkg/export"
)

type adminProfileRepository interface {
	List(ctx context.Context, filter models.ProfileFilter) ([]models.TeacherProfile, int, error)
	CompletionCounts(ctx context.Context) (total int, completed int, err error)
	SubjectBreakdown(ctx context.Context) (map[string]int, error)
}

type testimonialCounter interface {
	CountByApproval(ctx context.Context) (pending int, approved int, err error)
}

type rosterExporter interface {
	Render(data export.Dataset) ([]byte, error)
}

type rosterPDFExporter interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// AdminService backs the admin dashboard: platform overview, user table and
// roster exports.
type AdminService struct {
	profiles     adminProfileRepository
	testimonials testimonialCounter
	csv          rosterExporter
	pdf          rosterPDFExporter
	logger       *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(profiles adminProfileRepository, testimonials testimonialCounter, csv rosterExporter, pdf rosterPDFExporter, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{profiles: profiles, testimonials: testimonials, csv: csv, pdf: pdf, logger: logger}
}

// Overview aggregates platform counters for the admin landing page.
func (s *AdminService) Overview(ctx context.Context) (*dto.AdminOverviewResponse, error) {
	total, completed, err := s.profiles.CompletionCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count profiles")
	}

	pending, approved, err := s.testimonials.CountByApproval(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count testimonials")
	}

	breakdown, err := s.profiles.SubjectBreakdown(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build subject breakdown")
	}

	return &dto.AdminOverviewResponse{
		TotalUsers:           total,
		CompletedProfiles:    completed,
		IncompleteProfiles:   total - completed,
		PendingTestimonials:  pending,
		ApprovedTestimonials: approved,
		SubjectBreakdown:     breakdown,
	}, nil
}

// ListUsers returns the admin user table with pagination.
func (s *AdminService) ListUsers(ctx context.Context, filter models.ProfileFilter) ([]dto.AdminUserRow, *models.Pagination, error) {
	profiles, total, err := s.profiles.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}

	rows := make([]dto.AdminUserRow, 0, len(profiles))
	for _, profile := range profiles {
		rows = append(rows, dto.AdminUserRow{
			ID:              profile.ID,
			Email:           profile.Email,
			FullName:        profile.FullName,
			Subject:         profile.Subject,
			CurrentProvince: profile.CurrentProvince,
			CurrentDistrict: profile.CurrentDistrict,
			CurrentZone:     profile.CurrentZone,
			DesiredProvince: profile.DesiredProvince,
			DesiredDistrict: profile.DesiredDistrict,
			DesiredZones:    match.ResolvedDesiredZones(profile),
			WhatsAppNumber:  profile.WhatsAppNumber,
			HideContact:     profile.HideContact,
			Completed:       profile.ProfileComplete,
			CreatedAt:       profile.CreatedAt.Format(time.RFC3339),
		})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	return rows, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// ExportRoster renders the completed-profile roster as "csv" or "pdf".
func (s *AdminService) ExportRoster(ctx context.Context, format string) ([]byte, string, error) {
	completed := true
	profiles, _, err := s.profiles.List(ctx, models.ProfileFilter{Completed: &completed, PageSize: 100})
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	data := rosterDataset(profiles)
	switch format {
	case "csv":
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(data, "Registered Teachers")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func rosterDataset(profiles []models.TeacherProfile) export.Dataset {
	headers := []string{"Name", "Subject", "Medium", "Current Zone", "Current District", "Desired District", "Desired Zones", "School Type", "Completed"}
	rows := make([]map[string]string, 0, len(profiles))
	for _, profile := range profiles {
		rows = append(rows, map[string]string{
			"Name":             profile.FullName,
			"Subject":          profile.Subject,
			"Medium":           profile.Medium,
			"Current Zone":     profile.CurrentZone,
			"Current District": profile.CurrentDistrict,
			"Desired District": profile.DesiredDistrict,
			"Desired Zones":    strings.Join(match.ResolvedDesiredZones(profile), ", "),
			"School Type":      profile.SchoolType,
			"Completed":        strconv.FormatBool(profile.ProfileComplete),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
