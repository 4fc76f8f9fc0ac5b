package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

func TestDashboardServiceStats(t *testing.T) {
	self := seekerProfile("u1")
	mutual := counterpartProfile("u2")
	sameSubject := counterpartProfile("u3")
	sameSubject.DesiredDistrict = "Gampaha"
	otherSubject := counterpartProfile("u4")
	otherSubject.Subject = "Science"

	repo := &mockCandidateRepo{
		profiles:   map[string]models.TeacherProfile{"u1": self},
		candidates: []models.TeacherProfile{mutual, sameSubject, otherSubject},
	}
	svc := NewDashboardService(repo, nil, zap.NewNop(), time.Minute)

	summary, cached, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "u1", summary.UserID)
	assert.Equal(t, 4, summary.Stats.TotalTeachers)
	assert.Equal(t, 2, summary.Stats.MutualMatches)
	assert.Equal(t, 2, summary.Stats.SameSubject)
}

func TestDashboardServiceStatsIncompleteProfile(t *testing.T) {
	self := seekerProfile("u1")
	self.ProfileComplete = false
	repo := &mockCandidateRepo{profiles: map[string]models.TeacherProfile{"u1": self}}
	svc := NewDashboardService(repo, nil, zap.NewNop(), time.Minute)

	_, _, err := svc.Stats(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrProfileIncomplete.Code, appErrors.FromError(err).Code)
}

func TestDashboardServiceStatsEmptyPool(t *testing.T) {
	self := seekerProfile("u1")
	repo := &mockCandidateRepo{profiles: map[string]models.TeacherProfile{"u1": self}}
	svc := NewDashboardService(repo, nil, zap.NewNop(), time.Minute)

	summary, cached, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, summary.Stats.TotalTeachers)
	assert.Zero(t, summary.Stats.MutualMatches)
}
