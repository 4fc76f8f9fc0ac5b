package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gurumithuru/transfer-match-api/internal/models"
)

const profileColumns = `id, email, phone, nic_number, password_hash, full_name, subject,
	medium_of_instruction, current_province, current_district, current_zone, current_school,
	desired_province, desired_district, desired_zone, desired_zones, grade_taught, school_type,
	whatsapp_number, hide_contact, is_admin, profile_completed, created_at, updated_at`

// ProfileRepository manages persistence for teacher profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs a ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ListCandidates returns every completed, non-admin profile except the
// querying user's own, in creation order. This is the candidate pool the
// match engine and dashboard statistics run over.
func (r *ProfileRepository) ListCandidates(ctx context.Context, excludeUserID string) ([]models.TeacherProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles
		WHERE profile_completed = TRUE AND is_admin = FALSE AND id <> $1
		ORDER BY created_at`, profileColumns)
	var profiles []models.TeacherProfile
	if err := r.db.SelectContext(ctx, &profiles, query, excludeUserID); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return profiles, nil
}

// List returns profiles matching the admin filter along with total count.
func (r *ProfileRepository) List(ctx context.Context, filter models.ProfileFilter) ([]models.TeacherProfile, int, error) {
	base := "FROM profiles WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("profile_completed = $%d", len(args)+1))
		args = append(args, *filter.Completed)
	}
	if filter.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("subject = $%d", len(args)+1))
		args = append(args, filter.Subject)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		conditions = append(conditions, fmt.Sprintf("(LOWER(full_name) LIKE $%d OR LOWER(email) LIKE $%d OR LOWER(current_school) LIKE $%d)", len(args)+1, len(args)+1, len(args)+1))
		args = append(args, search)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	allowedSorts := map[string]string{
		"full_name":  "full_name",
		"email":      "email",
		"subject":    "subject",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "created_at"
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", profileColumns, base, column, order, size, offset)
	var profiles []models.TeacherProfile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	return profiles, total, nil
}

// FindByID fetches a profile by ID.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.TeacherProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM profiles WHERE id = $1", profileColumns)
	var profile models.TeacherProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail fetches a profile by email.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.TeacherProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM profiles WHERE LOWER(email) = LOWER($1)", profileColumns)
	var profile models.TeacherProfile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ExistsByEmail checks whether an account already uses the email.
func (r *ProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM profiles WHERE LOWER(email) = LOWER($1) LIMIT 1", email)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check profile email: %w", err)
	}
	return true, nil
}

// ExistsByNIC checks whether an account is already registered with the NIC
// number. NIC comparison is exact; it is the duplicate-registration guard.
func (r *ProfileRepository) ExistsByNIC(ctx context.Context, nic string) (bool, error) {
	if strings.TrimSpace(nic) == "" {
		return false, nil
	}
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM profiles WHERE nic_number = $1 LIMIT 1", nic)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check profile nic: %w", err)
	}
	return true, nil
}

// Create inserts a new profile record.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.TeacherProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	const query = `INSERT INTO profiles (id, email, phone, nic_number, password_hash, full_name, subject,
		medium_of_instruction, current_province, current_district, current_zone, current_school,
		desired_province, desired_district, desired_zone, desired_zones, grade_taught, school_type,
		whatsapp_number, hide_contact, is_admin, profile_completed, created_at, updated_at)
		VALUES (:id, :email, :phone, :nic_number, :password_hash, :full_name, :subject,
		:medium_of_instruction, :current_province, :current_district, :current_zone, :current_school,
		:desired_province, :desired_district, :desired_zone, :desired_zones, :grade_taught, :school_type,
		:whatsapp_number, :hide_contact, :is_admin, :profile_completed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// Update persists profile changes. CreatedAt, NIC and the admin flag are
// never touched here.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.TeacherProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	const query = `UPDATE profiles SET phone = :phone, full_name = :full_name, subject = :subject,
		medium_of_instruction = :medium_of_instruction, current_province = :current_province,
		current_district = :current_district, current_zone = :current_zone, current_school = :current_school,
		desired_province = :desired_province, desired_district = :desired_district,
		desired_zone = :desired_zone, desired_zones = :desired_zones, grade_taught = :grade_taught,
		school_type = :school_type, whatsapp_number = :whatsapp_number, hide_contact = :hide_contact,
		profile_completed = :profile_completed, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// CompletionCounts returns the total number of accounts and how many have
// completed their profile.
func (r *ProfileRepository) CompletionCounts(ctx context.Context) (total int, completed int, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT COUNT(*), COUNT(*) FILTER (WHERE profile_completed) FROM profiles")
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("completion counts: %w", err)
	}
	return total, completed, nil
}

// SubjectBreakdown returns the number of accounts per subject, skipping
// profiles that have not picked one yet.
func (r *ProfileRepository) SubjectBreakdown(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryxContext(ctx, "SELECT subject, COUNT(*) FROM profiles WHERE subject <> '' GROUP BY subject")
	if err != nil {
		return nil, fmt.Errorf("subject breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var subject string
		var count int
		if err := rows.Scan(&subject, &count); err != nil {
			return nil, fmt.Errorf("scan subject breakdown: %w", err)
		}
		breakdown[subject] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("subject breakdown rows: %w", err)
	}
	return breakdown, nil
}
