package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/dto"
	"github.com/gurumithuru/transfer-match-api/internal/match"
	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

type candidateRepository interface {
	FindByID(ctx context.Context, id string) (*models.TeacherProfile, error)
	ListCandidates(ctx context.Context, excludeUserID string) ([]models.TeacherProfile, error)
}

// MatchService runs the mutual-match engine for a logged-in teacher.
type MatchService struct {
	repo     candidateRepository
	metrics  *MetricsService
	logger   *zap.Logger
	greeting string
}

// NewMatchService constructs a MatchService.
func NewMatchService(repo candidateRepository, metrics *MetricsService, logger *zap.Logger, greeting string) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{repo: repo, metrics: metrics, logger: logger, greeting: greeting}
}

// Find returns the mutual matches for the user, narrowed by the filter. The
// user must have completed their profile; the candidate pool is restricted to
// completed, non-admin profiles before the engine runs.
func (s *MatchService) Find(ctx context.Context, userID string, filter match.Filter) (*dto.MatchListResponse, error) {
	self, err := s.loadSelf(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListCandidates(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate pool")
	}

	start := time.Now()
	matched := match.FindMutualMatches(*self, candidates, filter)
	s.metrics.RecordMatchQuery(len(matched), time.Since(start))

	cards := make([]dto.MatchCard, 0, len(matched))
	for _, profile := range matched {
		cards = append(cards, s.buildCard(profile))
	}

	s.logger.Debug("match query served",
		zap.String("user_id", userID),
		zap.Int("pool_size", len(candidates)),
		zap.Int("matches", len(cards)),
	)

	return &dto.MatchListResponse{Matches: cards, Total: len(cards)}, nil
}

func (s *MatchService) loadSelf(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	return loadCompletedProfile(ctx, s.repo, userID)
}

// loadCompletedProfile fetches the acting user's profile and enforces the
// completion gate shared by matching and dashboard statistics.
func loadCompletedProfile(ctx context.Context, repo candidateRepository, userID string) (*models.TeacherProfile, error) {
	self, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	if !self.ProfileComplete {
		return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, "")
	}
	return self, nil
}

func (s *MatchService) buildCard(profile models.TeacherProfile) dto.MatchCard {
	card := dto.MatchCard{
		ID:              profile.ID,
		FullName:        profile.FullName,
		Subject:         profile.Subject,
		Medium:          profile.Medium,
		GradeTaught:     profile.GradeTaught,
		SchoolType:      profile.SchoolType,
		CurrentSchool:   profile.CurrentSchool,
		CurrentProvince: profile.CurrentProvince,
		CurrentDistrict: profile.CurrentDistrict,
		CurrentZone:     profile.CurrentZone,
		DesiredProvince: profile.DesiredProvince,
		DesiredDistrict: profile.DesiredDistrict,
		DesiredZones:    match.ResolvedDesiredZones(profile),
		ContactHidden:   profile.HideContact,
	}
	if !profile.HideContact {
		card.WhatsAppNumber = profile.WhatsAppNumber
		card.WhatsAppLink = whatsAppLink(profile.WhatsAppNumber, s.greeting)
	}
	return card
}

// whatsAppLink builds a wa.me deep link from a phone number, keeping digits
// only. Empty numbers yield no link.
func whatsAppLink(number, greeting string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	link := fmt.Sprintf("https://wa.me/%s", digits.String())
	if greeting != "" {
		link += "?text=" + url.QueryEscape(greeting)
	}
	return link
}
