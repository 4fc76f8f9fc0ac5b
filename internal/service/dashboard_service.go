package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/dto"
	"github.com/gurumithuru/transfer-match-api/internal/match"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

// DashboardService composes the per-teacher statistics card. The counters run
// over the raw candidate pool with no filter applied, so they always reflect
// the user's absolute opportunity count.
type DashboardService struct {
	repo     candidateRepository
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo candidateRepository, cache *CacheService, logger *zap.Logger, cacheTTL time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &DashboardService{repo: repo, cache: cache, logger: logger, cacheTTL: cacheTTL}
}

// Stats returns the dashboard counters for the user and indicates cache
// utilisation.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*dto.DashboardResponse, bool, error) {
	cacheKey := fmt.Sprintf("dash:%s:stats", userID)
	if s.cache != nil {
		var cached dto.DashboardResponse
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	self, err := loadCompletedProfile(ctx, s.repo, userID)
	if err != nil {
		return nil, false, err
	}

	candidates, err := s.repo.ListCandidates(ctx, userID)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate pool")
	}

	summary := &dto.DashboardResponse{
		UserID: userID,
		Stats:  match.ComputeStats(*self, candidates),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, summary, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return summary, false, nil
}
