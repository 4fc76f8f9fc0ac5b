package models

import (
	"time"

	"github.com/lib/pq"
)

// Medium of instruction options.
const (
	MediumSinhala = "Sinhala"
	MediumTamil   = "Tamil"
	MediumEnglish = "English"
)

// School type options.
const (
	SchoolTypeNational   = "National"
	SchoolTypeProvincial = "Provincial"
)

// TeacherProfile represents one registered teacher and their transfer wishes.
// DesiredZone is the legacy single-valued field kept for records written
// before multi-zone support; DesiredZones supersedes it.
type TeacherProfile struct {
	ID              string         `db:"id" json:"id"`
	Email           string         `db:"email" json:"email,omitempty"`
	Phone           *string        `db:"phone" json:"phone,omitempty"`
	NICNumber       string         `db:"nic_number" json:"-"`
	PasswordHash    string         `db:"password_hash" json:"-"`
	FullName        string         `db:"full_name" json:"full_name"`
	Subject         string         `db:"subject" json:"subject"`
	Medium          string         `db:"medium_of_instruction" json:"medium_of_instruction"`
	CurrentProvince string         `db:"current_province" json:"current_province"`
	CurrentDistrict string         `db:"current_district" json:"current_district"`
	CurrentZone     string         `db:"current_zone" json:"current_zone"`
	CurrentSchool   string         `db:"current_school" json:"current_school"`
	DesiredProvince string         `db:"desired_province" json:"desired_province"`
	DesiredDistrict string         `db:"desired_district" json:"desired_district"`
	DesiredZone     string         `db:"desired_zone" json:"desired_zone,omitempty"`
	DesiredZones    pq.StringArray `db:"desired_zones" json:"desired_zones,omitempty"`
	GradeTaught     string         `db:"grade_taught" json:"grade_taught"`
	SchoolType      string         `db:"school_type" json:"school_type"`
	WhatsAppNumber  string         `db:"whatsapp_number" json:"whatsapp_number,omitempty"`
	HideContact     bool           `db:"hide_contact" json:"hide_contact"`
	IsAdmin         bool           `db:"is_admin" json:"is_admin,omitempty"`
	ProfileComplete bool           `db:"profile_completed" json:"profile_completed"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Eligible reports whether the profile may appear in another user's candidate
// pool: completed, not an admin and not the querying user themself.
func (p TeacherProfile) Eligible(queryingUserID string) bool {
	return p.ProfileComplete && !p.IsAdmin && p.ID != queryingUserID
}

// ProfileFilter captures filtering options for the admin user listing.
type ProfileFilter struct {
	Search    string
	Completed *bool
	Subject   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
