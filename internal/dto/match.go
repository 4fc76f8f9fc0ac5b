package dto

// MatchCard is the teacher-facing rendering of one mutual match. Contact
// fields are blanked when the matched teacher chose to hide them; the NIC
// number is never included.
type MatchCard struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Subject         string   `json:"subject"`
	Medium          string   `json:"medium_of_instruction"`
	GradeTaught     string   `json:"grade_taught"`
	SchoolType      string   `json:"school_type"`
	CurrentSchool   string   `json:"current_school"`
	CurrentProvince string   `json:"current_province"`
	CurrentDistrict string   `json:"current_district"`
	CurrentZone     string   `json:"current_zone"`
	DesiredProvince string   `json:"desired_province"`
	DesiredDistrict string   `json:"desired_district"`
	DesiredZones    []string `json:"desired_zones"`
	ContactHidden   bool     `json:"contact_hidden"`
	WhatsAppNumber  string   `json:"whatsapp_number,omitempty"`
	WhatsAppLink    string   `json:"whatsapp_link,omitempty"`
}

// MatchListResponse wraps the match result set.
type MatchListResponse struct {
	Matches []MatchCard `json:"matches"`
	Total   int         `json:"total"`
}
