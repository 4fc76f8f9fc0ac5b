package models

import "time"

// Testimonial is a user-submitted story shown publicly after moderation.
type Testimonial struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	UserName     string     `db:"user_name" json:"user_name"`
	UserInitials string     `db:"user_initials" json:"user_initials"`
	UserSchool   string     `db:"user_school" json:"user_school"`
	UserDistrict string     `db:"user_district" json:"user_district"`
	UserZone     string     `db:"user_zone" json:"user_zone,omitempty"`
	Message      string     `db:"message" json:"message"`
	IsApproved   bool       `db:"is_approved" json:"is_approved"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ApprovedAt   *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	ApprovedBy   *string    `db:"approved_by" json:"approved_by,omitempty"`
}
