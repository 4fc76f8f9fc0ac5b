package dto

import "github.com/gurumithuru/transfer-match-api/internal/match"

// DashboardResponse carries the per-teacher statistics card.
type DashboardResponse struct {
	UserID string      `json:"user_id"`
	Stats  match.Stats `json:"stats"`
}
