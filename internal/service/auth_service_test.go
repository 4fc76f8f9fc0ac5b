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
	"golang.org/x/crypto/bcrypt"

	"github.com/gurumithuru/transfer-match-api/internal/models"
	appErrors "github.com/gurumithuru/transfer-match-api/pkg/errors"
)

type mockAuthRepo struct {
	byEmail map[string]models.TeacherProfile
	nics    map[string]bool
	created []models.TeacherProfile
}

func (m *mockAuthRepo) FindByEmail(ctx context.Context, email string) (*models.TeacherProfile, error) {
	if p, ok := m.byEmail[email]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockAuthRepo) ExistsByNIC(ctx context.Context, nic string) (bool, error) {
	return m.nics[nic], nil
}

func (m *mockAuthRepo) Create(ctx context.Context, profile *models.TeacherProfile) error {
	if profile.ID == "" {
		profile.ID = "generated"
	}
	if m.byEmail == nil {
		m.byEmail = make(map[string]models.TeacherProfile)
	}
	m.byEmail[profile.Email] = *profile
	m.created = append(m.created, *profile)
	return nil
}

func testAuthConfig() AuthConfig {
	return AuthConfig{TokenSecret: "test-secret", TokenExpiry: time.Hour, Issuer: "transfer-match-api"}
}

func TestAuthServiceRegister(t *testing.T) {
	repo := &mockAuthRepo{nics: make(map[string]bool)}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "teacher@example.lk",
		Password:  "s3cret-pass",
		NICNumber: "912345678V",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "teacher@example.lk", resp.Email)
	assert.False(t, resp.Completed)
	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "s3cret-pass", repo.created[0].PasswordHash)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := &mockAuthRepo{
		byEmail: map[string]models.TeacherProfile{"taken@example.lk": {ID: "u1", Email: "taken@example.lk"}},
		nics:    make(map[string]bool),
	}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "taken@example.lk",
		Password:  "s3cret-pass",
		NICNumber: "912345678V",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRegisterDuplicateNIC(t *testing.T) {
	repo := &mockAuthRepo{nics: map[string]bool{"912345678V": true}}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "new@example.lk",
		Password:  "s3cret-pass",
		NICNumber: "912345678V",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "NIC")
	assert.Empty(t, repo.created)
}

func TestAuthServiceRegisterInvalidPayload(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "not-an-email",
		Password:  "short",
		NICNumber: "1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockAuthRepo{
		byEmail: map[string]models.TeacherProfile{
			"teacher@example.lk": {ID: "u1", Email: "teacher@example.lk", PasswordHash: string(hash), ProfileComplete: true},
		},
	}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "teacher@example.lk", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)
	assert.True(t, resp.Completed)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "teacher@example.lk", claims.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockAuthRepo{
		byEmail: map[string]models.TeacherProfile{
			"teacher@example.lk": {ID: "u1", Email: "teacher@example.lk", PasswordHash: string(hash)},
		},
	}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "teacher@example.lk", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.lk", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)

	other := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), AuthConfig{TokenSecret: "different", TokenExpiry: time.Hour})
	resp, err := other.issueToken(&models.TeacherProfile{ID: "u1", Email: "a@b.lk"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.Error(t, err)
}
