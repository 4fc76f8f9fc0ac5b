package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurumithuru/transfer-match-api/internal/models"
)

func completedProfile(id string) models.TeacherProfile {
	return models.TeacherProfile{
		ID:              id,
		FullName:        "Teacher " + id,
		Subject:         "Mathematics",
		CurrentProvince: "Western",
		CurrentDistrict: "Colombo",
		CurrentZone:     "Colombo",
		DesiredProvince: "Central",
		DesiredDistrict: "Kandy",
		DesiredZones:    []string{"Kandy"},
		ProfileComplete: true,
	}
}

func reciprocalProfile(id string) models.TeacherProfile {
	return models.TeacherProfile{
		ID:              id,
		FullName:        "Teacher " + id,
		Subject:         "Mathematics",
		CurrentProvince: "Central",
		CurrentDistrict: "Kandy",
		CurrentZone:     "Kandy",
		DesiredProvince: "Western",
		DesiredDistrict: "Colombo",
		DesiredZones:    []string{"Colombo"},
		ProfileComplete: true,
	}
}

func TestResolvedDesiredZonesPrefersList(t *testing.T) {
	p := models.TeacherProfile{DesiredZones: []string{"A", "B"}, DesiredZone: "A"}
	assert.Equal(t, []string{"A", "B"}, ResolvedDesiredZones(p))
}

func TestResolvedDesiredZonesFallsBackToLegacyField(t *testing.T) {
	p := models.TeacherProfile{DesiredZone: "Kandy"}
	assert.Equal(t, []string{"Kandy"}, ResolvedDesiredZones(p))
}

func TestResolvedDesiredZonesEmpty(t *testing.T) {
	assert.Empty(t, ResolvedDesiredZones(models.TeacherProfile{}))
}

func TestExactMutualMatch(t *testing.T) {
	self := completedProfile("self")
	candidate := reciprocalProfile("other")

	matches := FindMutualMatches(self, []models.TeacherProfile{candidate}, Filter{})
	require.Len(t, matches, 1)
	assert.Equal(t, "other", matches[0].ID)
}

func TestOneSidedMatchExcluded(t *testing.T) {
	self := completedProfile("self")
	candidate := reciprocalProfile("other")
	candidate.DesiredDistrict = "Matale"

	assert.Empty(t, FindMutualMatches(self, []models.TeacherProfile{candidate}, Filter{}))
}

func TestMutualMatchIsSymmetric(t *testing.T) {
	a := completedProfile("a")
	b := reciprocalProfile("b")

	forward := FindMutualMatches(a, []models.TeacherProfile{b}, Filter{})
	backward := FindMutualMatches(b, []models.TeacherProfile{a}, Filter{})
	assert.Equal(t, len(forward), len(backward))

	// Break one direction and both must fail.
	b.DesiredZones = []string{"Homagama"}
	assert.Empty(t, FindMutualMatches(a, []models.TeacherProfile{b}, Filter{}))
	assert.Empty(t, FindMutualMatches(b, []models.TeacherProfile{a}, Filter{}))
}

func TestSelfNeverMatchesItself(t *testing.T) {
	self := completedProfile("self")
	pool := []models.TeacherProfile{self, reciprocalProfile("other")}

	matches := FindMutualMatches(self, pool, Filter{})
	for _, m := range matches {
		assert.NotEqual(t, "self", m.ID)
	}
}

func TestIncompleteSelfYieldsNoMatches(t *testing.T) {
	self := completedProfile("self")
	self.ProfileComplete = false

	assert.Nil(t, FindMutualMatches(self, []models.TeacherProfile{reciprocalProfile("other")}, Filter{}))
}

func TestMultiZoneDesiredSatisfiedByMembership(t *testing.T) {
	self := completedProfile("self")
	self.DesiredZones = []string{"Kandy", "Gampola"}

	candidate := reciprocalProfile("other")
	candidate.CurrentZone = "Gampola"

	matches := FindMutualMatches(self, []models.TeacherProfile{candidate}, Filter{})
	assert.Len(t, matches, 1)
}

func TestLegacySingleZoneCandidateStillMatches(t *testing.T) {
	self := completedProfile("self")

	candidate := reciprocalProfile("other")
	candidate.DesiredZones = nil
	candidate.DesiredZone = "Colombo"

	matches := FindMutualMatches(self, []models.TeacherProfile{candidate}, Filter{})
	assert.Len(t, matches, 1)
}

func TestMissingZoneFieldsExcludeCandidate(t *testing.T) {
	self := completedProfile("self")
	candidate := reciprocalProfile("other")
	candidate.CurrentZone = ""

	assert.Empty(t, FindMutualMatches(self, []models.TeacherProfile{candidate}, Filter{}))
}

func TestEmptyFilterIsIdentity(t *testing.T) {
	self := completedProfile("self")
	pool := []models.TeacherProfile{
		reciprocalProfile("m1"),
		reciprocalProfile("m2"),
		completedProfile("nonmatch"),
	}

	unfiltered := FindMutualMatches(self, pool, Filter{})
	require.Len(t, unfiltered, 2)
	assert.Equal(t, "m1", unfiltered[0].ID)
	assert.Equal(t, "m2", unfiltered[1].ID)
}

func TestFilterNarrowsMutualMatches(t *testing.T) {
	self := completedProfile("self")
	maths := reciprocalProfile("maths")
	science := reciprocalProfile("science")
	science.Subject = "Science"

	pool := []models.TeacherProfile{maths, science}

	matches := FindMutualMatches(self, pool, Filter{Subject: "Mathematics"})
	require.Len(t, matches, 1)
	assert.Equal(t, "maths", matches[0].ID)
}

func TestFilterDoesNotAdmitNonMutualCandidates(t *testing.T) {
	self := completedProfile("self")
	// Same subject as the filter but no reciprocal location interest.
	stranger := completedProfile("stranger")

	assert.Empty(t, FindMutualMatches(self, []models.TeacherProfile{stranger}, Filter{Subject: "Mathematics"}))
}

func TestFilterLocationMatchesEitherSide(t *testing.T) {
	candidate := reciprocalProfile("c")

	byCurrent := Filter{Province: "Central"}
	assert.True(t, byCurrent.Matches(candidate))

	byDesired := Filter{Province: "Western"}
	assert.True(t, byDesired.Matches(candidate))

	neither := Filter{Province: "Uva"}
	assert.False(t, neither.Matches(candidate))
}

func TestFilterZoneUsesDesiredZoneMembership(t *testing.T) {
	candidate := reciprocalProfile("c")
	candidate.DesiredZones = []string{"Homagama", "Colombo"}

	f := Filter{Zone: "Homagama"}
	assert.True(t, f.Matches(candidate))

	f.Zone = "Negombo"
	assert.False(t, f.Matches(candidate))
}

func TestFilterCascadingReset(t *testing.T) {
	var f Filter
	f.SetProvince("Western")
	f.SetDistrict("Colombo")
	f.SetZone("Homagama")

	f.SetDistrict("Gampaha")
	assert.Equal(t, "", f.Zone)
	assert.Equal(t, "Gampaha", f.District)

	f.SetZone("Negombo")
	f.SetProvince("Central")
	assert.Equal(t, "", f.District)
	assert.Equal(t, "", f.Zone)
	assert.Equal(t, "Central", f.Province)
}

func TestResultPreservesCandidateOrder(t *testing.T) {
	self := completedProfile("self")
	pool := []models.TeacherProfile{
		reciprocalProfile("z"),
		reciprocalProfile("a"),
		reciprocalProfile("m"),
	}

	matches := FindMutualMatches(self, pool, Filter{})
	require.Len(t, matches, 3)
	assert.Equal(t, "z", matches[0].ID)
	assert.Equal(t, "a", matches[1].ID)
	assert.Equal(t, "m", matches[2].ID)
}
