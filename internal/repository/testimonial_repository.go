package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gurumithuru/transfer-match-api/internal/models"
)

const testimonialColumns = `id, user_id, user_name, user_initials, user_school, user_district,
	user_zone, message, is_approved, created_at, approved_at, approved_by`

// TestimonialRepository manages persistence for testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository constructs a TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// ListApproved returns approved testimonials, most recently approved first.
func (r *TestimonialRepository) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	query := fmt.Sprintf("SELECT %s FROM testimonials WHERE is_approved = TRUE ORDER BY approved_at DESC", testimonialColumns)
	var testimonials []models.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}
	return testimonials, nil
}

// ListAll returns every testimonial for moderation, newest first.
func (r *TestimonialRepository) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	query := fmt.Sprintf("SELECT %s FROM testimonials ORDER BY created_at DESC", testimonialColumns)
	var testimonials []models.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// FindByID fetches a testimonial by ID.
func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	query := fmt.Sprintf("SELECT %s FROM testimonials WHERE id = $1", testimonialColumns)
	var testimonial models.Testimonial
	if err := r.db.GetContext(ctx, &testimonial, query, id); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Create inserts a new testimonial awaiting moderation.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = uuid.NewString()
	}
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO testimonials (id, user_id, user_name, user_initials, user_school,
		user_district, user_zone, message, is_approved, created_at)
		VALUES (:id, :user_id, :user_name, :user_initials, :user_school,
		:user_district, :user_zone, :message, :is_approved, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, testimonial); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

// Approve marks a testimonial approved by the given admin.
func (r *TestimonialRepository) Approve(ctx context.Context, id, adminID string, approvedAt time.Time) error {
	const query = `UPDATE testimonials SET is_approved = TRUE, approved_at = $2, approved_by = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, approvedAt, adminID); err != nil {
		return fmt.Errorf("approve testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial. Rejection is deletion; nothing is archived.
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

// CountByApproval returns pending and approved testimonial counts.
func (r *TestimonialRepository) CountByApproval(ctx context.Context) (pending int, approved int, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT COUNT(*) FILTER (WHERE NOT is_approved), COUNT(*) FILTER (WHERE is_approved) FROM testimonials")
	if err := row.Scan(&pending, &approved); err != nil {
		return 0, 0, fmt.Errorf("count testimonials: %w", err)
	}
	return pending, approved, nil
}
