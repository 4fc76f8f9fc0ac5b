package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

type mockTestimonialRepo struct {
	items   map[string]models.Testimonial
	deleted []string
}

func (m *mockTestimonialRepo) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	out := make([]models.Testimonial, 0, len(m.items))
	for _, item := range m.items {
		if item.IsApproved {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockTestimonialRepo) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	out := make([]models.Testimonial, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *mockTestimonialRepo) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	if item, ok := m.items[id]; ok {
		return &item, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTestimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = "t-generated"
	}
	if m.items == nil {
		m.items = make(map[string]models.Testimonial)
	}
	m.items[testimonial.ID] = *testimonial
	return nil
}

func (m *mockTestimonialRepo) Approve(ctx context.Context, id, adminID string, approvedAt time.Time) error {
	item, ok := m.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	item.IsApproved = true
	item.ApprovedAt = &approvedAt
	item.ApprovedBy = &adminID
	m.items[id] = item
	return nil
}

func (m *mockTestimonialRepo) Delete(ctx context.Context, id string) error {
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestTestimonialServiceSubmit(t *testing.T) {
	author := seekerProfile("u1")
	author.FullName = "Nimal perera"
	profiles := &mockProfileRepo{profiles: map[string]models.TeacherProfile{"u1": author}}
	repo := &mockTestimonialRepo{}
	svc := NewTestimonialService(repo, profiles, validator.New(), zap.NewNop())

	testimonial, err := svc.Submit(context.Background(), "u1", SubmitTestimonialRequest{
		Message: "  Found my transfer partner within two weeks of signing up.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", testimonial.UserID)
	assert.Equal(t, "NP", testimonial.UserInitials)
	assert.Equal(t, author.CurrentDistrict, testimonial.UserDistrict)
	assert.Equal(t, author.CurrentZone, testimonial.UserZone)
	assert.Equal(t, "Found my transfer partner within two weeks of signing up.", testimonial.Message)
	assert.False(t, testimonial.IsApproved)
}

func TestTestimonialServiceSubmitIncompleteProfile(t *testing.T) {
	author := seekerProfile("u1")
	author.ProfileComplete = false
	profiles := &mockProfileRepo{profiles: map[string]models.TeacherProfile{"u1": author}}
	svc := NewTestimonialService(&mockTestimonialRepo{}, profiles, validator.New(), zap.NewNop())

	_, err := svc.Submit(context.Background(), "u1", SubmitTestimonialRequest{
		Message: "This message is certainly long enough to pass validation.",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrProfileIncomplete.Code, appErrors.FromError(err).Code)
}

func TestTestimonialServiceSubmitShortMessage(t *testing.T) {
	profiles := &mockProfileRepo{profiles: map[string]models.TeacherProfile{"u1": seekerProfile("u1")}}
	svc := NewTestimonialService(&mockTestimonialRepo{}, profiles, validator.New(), zap.NewNop())

	_, err := svc.Submit(context.Background(), "u1", SubmitTestimonialRequest{Message: "too short"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTestimonialServiceApprove(t *testing.T) {
	repo := &mockTestimonialRepo{items: map[string]models.Testimonial{
		"t1": {ID: "t1", UserID: "u1", Message: "A story worth telling about transfers."},
	}}
	svc := NewTestimonialService(repo, &mockProfileRepo{}, validator.New(), zap.NewNop())

	testimonial, err := svc.Approve(context.Background(), "t1", "admin-1")
	require.NoError(t, err)
	assert.True(t, testimonial.IsApproved)
	require.NotNil(t, testimonial.ApprovedBy)
	assert.Equal(t, "admin-1", *testimonial.ApprovedBy)
	assert.NotNil(t, testimonial.ApprovedAt)
}

func TestTestimonialServiceApproveMissing(t *testing.T) {
	svc := NewTestimonialService(&mockTestimonialRepo{}, &mockProfileRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Approve(context.Background(), "ghost", "admin-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTestimonialServiceReject(t *testing.T) {
	repo := &mockTestimonialRepo{items: map[string]models.Testimonial{
		"t1": {ID: "t1", UserID: "u1", Message: "Pending story that did not make the cut."},
	}}
	svc := NewTestimonialService(repo, &mockProfileRepo{}, validator.New(), zap.NewNop())

	require.NoError(t, svc.Reject(context.Background(), "t1"))
	assert.Equal(t, []string{"t1"}, repo.deleted)
	assert.Empty(t, repo.items)
}

func TestTestimonialServiceListApproved(t *testing.T) {
	now := time.Now()
	repo := &mockTestimonialRepo{items: map[string]models.Testimonial{
		"t1": {ID: "t1", IsApproved: true, ApprovedAt: &now},
		"t2": {ID: "t2", IsApproved: false},
	}}
	svc := NewTestimonialService(repo, &mockProfileRepo{}, validator.New(), zap.NewNop())

	approved, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "t1", approved[0].ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "NP", initials("Nimal Perera"))
	assert.Equal(t, "A", initials("amara"))
	assert.Empty(t, initials("   "))
}
