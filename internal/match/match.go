// Package match implements the mutual-transfer rule engine: the predicate
// deciding whether two teacher profiles can swap postings, the optional
// narrowing filter, and the dashboard counters derived from the same
// comparisons. Everything here is a pure computation over in-memory
// snapshots; all location and subject comparisons are case-sensitive exact
// string equality.
package match

import "github.com/gurumithuru/transfer-match-api/internal/models"

// ResolvedDesiredZones normalises the two desired-zone shapes a stored
// profile may carry. Profiles written under the multi-zone schema use
// DesiredZones; older records carry a single DesiredZone. The returned slice
// is the single source of truth for every zone comparison.
func ResolvedDesiredZones(p models.TeacherProfile) []string {
	if len(p.DesiredZones) > 0 {
		return p.DesiredZones
	}
	if p.DesiredZone == "" {
		return nil
	}
	return []string{p.DesiredZone}
}

// IsMutualMatch reports whether candidate's current posting satisfies self's
// wishes and vice versa, down to zone level. Zone comparison is membership,
// not equality: the candidate's current zone needs only to be one of self's
// desired zones.
func IsMutualMatch(self, candidate models.TeacherProfile) bool {
	return candidate.CurrentProvince == self.DesiredProvince &&
		candidate.CurrentDistrict == self.DesiredDistrict &&
		containsZone(ResolvedDesiredZones(self), candidate.CurrentZone) &&
		candidate.DesiredProvince == self.CurrentProvince &&
		candidate.DesiredDistrict == self.CurrentDistrict &&
		containsZone(ResolvedDesiredZones(candidate), self.CurrentZone)
}

// Filter narrows a candidate pool by subject and location. Unset fields match
// everything. Mutate it through the setters so the cascading reset holds:
// choosing a province invalidates any narrower selection.
type Filter struct {
	Subject  string `json:"subject,omitempty" form:"subject"`
	Province string `json:"province,omitempty" form:"province"`
	District string `json:"district,omitempty" form:"district"`
	Zone     string `json:"zone,omitempty" form:"zone"`
}

// SetProvince selects a province and clears the district and zone selections.
func (f *Filter) SetProvince(province string) {
	f.Province = province
	f.District = ""
	f.Zone = ""
}

// SetDistrict selects a district and clears the zone selection.
func (f *Filter) SetDistrict(district string) {
	f.District = district
	f.Zone = ""
}

// SetZone selects a zone.
func (f *Filter) SetZone(zone string) {
	f.Zone = zone
}

// SetSubject selects a subject.
func (f *Filter) SetSubject(subject string) {
	f.Subject = subject
}

// Matches reports whether the candidate passes every set field. Location
// fields match against either side of the candidate's transfer, so a filter
// on "Kandy" finds both teachers posted there and teachers who want to go
// there.
func (f Filter) Matches(candidate models.TeacherProfile) bool {
	if f.Subject != "" && candidate.Subject != f.Subject {
		return false
	}
	if f.Province != "" &&
		candidate.CurrentProvince != f.Province &&
		candidate.DesiredProvince != f.Province {
		return false
	}
	if f.District != "" &&
		candidate.CurrentDistrict != f.District &&
		candidate.DesiredDistrict != f.District {
		return false
	}
	if f.Zone != "" &&
		candidate.CurrentZone != f.Zone &&
		!containsZone(ResolvedDesiredZones(candidate), f.Zone) {
		return false
	}
	return true
}

// FindMutualMatches returns the candidates that mutually match self and pass
// the filter, preserving candidate order. Callers provide a pool already
// restricted to completed, non-admin profiles; self is excluded here again by
// id in case it slipped in. An incomplete self yields no matches.
func FindMutualMatches(self models.TeacherProfile, candidates []models.TeacherProfile, filter Filter) []models.TeacherProfile {
	if !self.ProfileComplete {
		return nil
	}
	var matched []models.TeacherProfile
	for _, candidate := range candidates {
		if candidate.ID == self.ID {
			continue
		}
		if IsMutualMatch(self, candidate) && filter.Matches(candidate) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

func containsZone(zones []string, zone string) bool {
	if zone == "" {
		return false
	}
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}
