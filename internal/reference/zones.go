// Package reference holds the static lookup data the platform validates and
// renders against: the provincial education hierarchy and the profile
// enumerations. The data is authored in place and never mutated at runtime.
package reference

// The hierarchy is kept as ordered slices rather than maps so that lookups
// return provinces, districts and zones in authored order. All names are
// case-sensitive exact strings; no normalisation is applied anywhere.
type zoneDistrict struct {
	name  string
	zones []string
}

type zoneProvince struct {
	name      string
	districts []zoneDistrict
}

var zonalEducationData = []zoneProvince{
	{"Western", []zoneDistrict{
		{"Colombo", []string{"Colombo", "Homagama", "Piliyandala", "Sri Jayawardenepura"}},
		{"Gampaha", []string{"Gampaha", "Kelaniya", "Minuwangoda", "Negombo"}},
		{"Kalutara", []string{"Horana", "Kalutara", "Matugama"}},
	}},
	{"Central", []zoneDistrict{
		{"Kandy", []string{"Denuwara", "Gampola", "Kandy", "Katugastota", "Teldeniya", "Waththegama"}},
		{"Matale", []string{"Galewela", "Matale", "Naula", "Wilgamuwa"}},
		{"Nuwara Eliya", []string{"Hanguranketha", "Hatton", "Kotmale", "Nuwara Eliya", "Walapane"}},
	}},
	{"Southern", []zoneDistrict{
		{"Galle", []string{"Ambalangoda", "Elpitiya", "Galle", "Udugama"}},
		{"Hambantota", []string{"Hambantota", "Tangalle", "Walasmulla"}},
		{"Matara", []string{"Akuressa", "Matara", "Morawaka", "Mulatiyana (Hakmana)"}},
	}},
	{"Northern", []zoneDistrict{
		{"Jaffna", []string{"Islands", "Jaffna", "Thenmarachchi", "Vadamarachchi", "Valikamam"}},
		{"Kilinochchi", []string{"Kilinochchi"}},
		{"Mannar", []string{"Madhu", "Mannar"}},
		{"Mullaitivu", []string{"Mullaitivu", "Thunukkai"}},
		{"Vavuniya", []string{"Vavuniya", "Vavuniya North"}},
	}},
	{"Eastern", []zoneDistrict{
		{"Ampara", []string{"Akkaraipattu", "Ampara", "Dehiattakandiya", "Kalmunai", "Mahaoya", "Sammanthurai", "Thirukkovil"}},
		{"Batticaloa", []string{"Batticaloa", "Batticaloa Central", "Batticaloa West", "Kalkudah", "Paddirippu"}},
		{"Trincomalee", []string{"Kantalai", "Kinniya", "Mutur", "Trincomalee", "Trincomalee North"}},
	}},
	{"North Western", []zoneDistrict{
		{"Kurunegala", []string{"Giriulla", "Ibbagamuwa", "Kuliyapitiya", "Kurunegala", "Maho", "Nikaweratiya"}},
		{"Puttalam", []string{"Chilaw", "Puttalam"}},
	}},
	{"North Central", []zoneDistrict{
		{"Anuradhapura", []string{"Anuradhapura", "Galenbindunuwewa", "Kebithigollewa", "Kekirawa", "Tambuttegama"}},
		{"Polonnaruwa", []string{"Dimbulagala", "Hingurakgoda", "Polonnaruwa"}},
	}},
	{"Uva", []zoneDistrict{
		{"Badulla", []string{"Badulla", "Bandarawela", "Viyaluwa", "Mahiyanganaya", "Passara", "Welimada"}},
		{"Monaragala", []string{"Bibile", "Monaragala", "Wellawaya"}},
	}},
	{"Sabaragamuwa", []zoneDistrict{
		{"Kegalle", []string{"Dehiowita", "Kegalle", "Mawanella"}},
		{"Ratnapura", []string{"Balangoda", "Embilipitiya", "Nivitigala", "Ratnapura"}},
	}},
}

// Provinces returns all province names in authored order.
func Provinces() []string {
	names := make([]string, 0, len(zonalEducationData))
	for _, p := range zonalEducationData {
		names = append(names, p.name)
	}
	return names
}

// Districts returns the district names of a province in authored order.
// Unknown or empty provinces yield an empty slice, never an error: a profile
// written before the hierarchy was extended must not break later lookups.
func Districts(province string) []string {
	for _, p := range zonalEducationData {
		if p.name != province {
			continue
		}
		names := make([]string, 0, len(p.districts))
		for _, d := range p.districts {
			names = append(names, d.name)
		}
		return names
	}
	return []string{}
}

// Zones returns the zonal education divisions of a district in authored
// order. Unknown or empty arguments yield an empty slice, never an error.
func Zones(province, district string) []string {
	for _, p := range zonalEducationData {
		if p.name != province {
			continue
		}
		for _, d := range p.districts {
			if d.name == district {
				return append([]string{}, d.zones...)
			}
		}
		return []string{}
	}
	return []string{}
}
