package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurumithuru/transfer-match-api/internal/models"
)

func newProfileRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func profileRowColumns() []string {
	return []string{
		"id", "email", "phone", "nic_number", "password_hash", "full_name", "subject",
		"medium_of_instruction", "current_province", "current_district", "current_zone", "current_school",
		"desired_province", "desired_district", "desired_zone", "desired_zones", "grade_taught", "school_type",
		"whatsapp_number", "hide_contact", "is_admin", "profile_completed", "created_at", "updated_at",
	}
}

func addProfileRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, id+"@example.com", nil, "901234567V", "hash", "Teacher "+id, "Mathematics",
		"Sinhala", "Western", "Colombo", "Colombo", "Colombo Central College",
		"Central", "Kandy", "", "{Kandy,Gampola}", "Secondary (6-11)", "National",
		"+94771234567", false, false, true, now, now)
}

func TestProfileRepositoryListCandidatesExcludesUser(t *testing.T) {
	db, mock, cleanup := newProfileRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	rows := addProfileRow(sqlmock.NewRows(profileRowColumns()), "p1")
	mock.ExpectQuery(`SELECT (.|\s)+ FROM profiles\s+WHERE profile_completed = TRUE AND is_admin = FALSE AND id <> \$1\s+ORDER BY created_at`).
		WithArgs("self-id").
		WillReturnRows(rows)

	candidates, err := repo.ListCandidates(context.Background(), "self-id")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "p1", candidates[0].ID)
	assert.Equal(t, []string{"Kandy", "Gampola"}, []string(candidates[0].DesiredZones))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryListWithFilter(t *testing.T) {
	db, mock, cleanup := newProfileRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	completed := true
	rows := addProfileRow(sqlmock.NewRows(profileRowColumns()), "p1")
	mock.ExpectQuery(`SELECT (.|\s)+ FROM profiles WHERE 1=1 AND profile_completed = \$1 AND subject = \$2 ORDER BY created_at DESC LIMIT 20 OFFSET 0`).
		WithArgs(true, "Mathematics").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM profiles WHERE 1=1 AND profile_completed = $1 AND subject = $2")).
		WithArgs(true, "Mathematics").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.ProfileFilter{Completed: &completed, Subject: "Mathematics"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryExistsByNIC(t *testing.T) {
	db, mock, cleanup := newProfileRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM profiles WHERE nic_number = $1 LIMIT 1")).
		WithArgs("901234567V").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByNIC(context.Background(), "901234567V")
	require.NoError(t, err)
	assert.True(t, exists)

	blank, err := repo.ExistsByNIC(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, blank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newProfileRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec("INSERT INTO profiles").
		WillReturnResult(sqlmock.NewResult(1, 1))

	profile := &models.TeacherProfile{Email: "new@example.com", NICNumber: "901234567V", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), profile))
	assert.NotEmpty(t, profile.ID)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryCompletionCounts(t *testing.T) {
	db, mock, cleanup := newProfileRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COUNT\(\*\) FILTER \(WHERE profile_completed\) FROM profiles`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "completed"}).AddRow(10, 7))

	total, completed, err := repo.CompletionCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Equal(t, 7, completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
