package match

import "github.com/gurumithuru/transfer-match-api/internal/models"

// Stats are the dashboard counters shown to a teacher after login. They are
// computed over the raw candidate pool, never over a filtered match result:
// MutualMatches is the user's absolute opportunity count.
type Stats struct {
	TotalTeachers int `json:"total_teachers"`
	MutualMatches int `json:"mutual_matches"`
	SameSubject   int `json:"same_subject"`
	SameZone      int `json:"same_zone"`
}

// ComputeStats derives the dashboard counters for self against the candidate
// pool. The querying user counts themself in TotalTeachers. SameZone tests
// zone overlap in both directions using the resolved desired-zone lists, so
// multi-zone profiles are counted the same way the match predicate sees them.
func ComputeStats(self models.TeacherProfile, candidates []models.TeacherProfile) Stats {
	stats := Stats{TotalTeachers: len(candidates) + 1}
	selfDesired := ResolvedDesiredZones(self)
	for _, candidate := range candidates {
		if candidate.ID == self.ID {
			continue
		}
		if IsMutualMatch(self, candidate) {
			stats.MutualMatches++
		}
		if candidate.Subject == self.Subject {
			stats.SameSubject++
		}
		if sharesZone(self, selfDesired, candidate) {
			stats.SameZone++
		}
	}
	return stats
}

func sharesZone(self models.TeacherProfile, selfDesired []string, candidate models.TeacherProfile) bool {
	candidateDesired := ResolvedDesiredZones(candidate)
	if candidate.CurrentZone != "" && candidate.CurrentZone == self.CurrentZone {
		return true
	}
	if containsZone(selfDesired, candidate.CurrentZone) {
		return true
	}
	if containsZone(candidateDesired, self.CurrentZone) {
		return true
	}
	for _, zone := range candidateDesired {
		if containsZone(selfDesired, zone) {
			return true
		}
	}
	return false
}
