package dto

// AdminOverviewResponse summarises platform health for the admin dashboard.
type AdminOverviewResponse struct {
	TotalUsers           int            `json:"total_users"`
	CompletedProfiles    int            `json:"completed_profiles"`
	IncompleteProfiles   int            `json:"incomplete_profiles"`
	PendingTestimonials  int            `json:"pending_testimonials"`
	ApprovedTestimonials int            `json:"approved_testimonials"`
	SubjectBreakdown     map[string]int `json:"subject_breakdown"`
}

// AdminUserRow is the admin table view of one account. Contact details are
// visible to admins regardless of hide_contact; the NIC stays internal.
type AdminUserRow struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name"`
	Subject         string   `json:"subject"`
	CurrentProvince string   `json:"current_province"`
	CurrentDistrict string   `json:"current_district"`
	CurrentZone     string   `json:"current_zone"`
	DesiredProvince string   `json:"desired_province"`
	DesiredDistrict string   `json:"desired_district"`
	DesiredZones    []string `json:"desired_zones"`
	WhatsAppNumber  string   `json:"whatsapp_number"`
	HideContact     bool     `json:"hide_contact"`
	Completed       bool     `json:"profile_completed"`
	CreatedAt       string   `json:"created_at"`
}
