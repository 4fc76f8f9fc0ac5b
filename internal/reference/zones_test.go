package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvincesAuthoredOrder(t *testing.T) {
	provinces := Provinces()
	require.Len(t, provinces, 9)
	assert.Equal(t, "Western", provinces[0])
	assert.Equal(t, "Sabaragamuwa", provinces[8])
}

func TestDistricts(t *testing.T) {
	districts := Districts("Central")
	assert.Equal(t, []string{"Kandy", "Matale", "Nuwara Eliya"}, districts)
}

func TestZones(t *testing.T) {
	zones := Zones("Central", "Kandy")
	assert.Equal(t, []string{"Denuwara", "Gampola", "Kandy", "Katugastota", "Teldeniya", "Waththegama"}, zones)
}

func TestUnknownLookupsReturnEmpty(t *testing.T) {
	assert.Empty(t, Districts("Atlantis"))
	assert.Empty(t, Districts(""))
	assert.Empty(t, Zones("Western", "Kandy"))
	assert.Empty(t, Zones("", ""))
	// Lookups are case-sensitive by contract.
	assert.Empty(t, Districts("western"))
}

func TestLookupResultsAreCopies(t *testing.T) {
	zones := Zones("Western", "Colombo")
	require.NotEmpty(t, zones)
	zones[0] = "mutated"
	assert.Equal(t, "Colombo", Zones("Western", "Colombo")[0])
}

func TestEnumerations(t *testing.T) {
	assert.True(t, ValidSubject("Combined Mathematics"))
	assert.False(t, ValidSubject("combined mathematics"))
	assert.True(t, ValidGrade("Primary (1-5)"))
	assert.False(t, ValidGrade("Primary"))
	assert.True(t, ValidMedium("Tamil"))
	assert.True(t, ValidSchoolType("National"))
	assert.False(t, ValidSchoolType("Private"))
}
