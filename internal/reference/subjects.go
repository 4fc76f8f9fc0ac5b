package reference

// Subjects taught in the national curriculum, in the order they are offered
// in the profile form.
var subjects = []string{
	"Sinhala", "Tamil", "English", "Mathematics", "Science", "Social Studies",
	"Buddhism", "Christianity", "Islam", "Hinduism", "History", "Geography",
	"Civic Education", "Health & Physical Education", "Art", "Music", "Dance",
	"Technology", "Commerce", "Accounting", "Economics", "Biology", "Physics",
	"Chemistry", "Combined Mathematics", "ICT", "Media Studies",
}

var grades = []string{
	"Primary (1-5)", "Secondary (6-11)", "Advanced Level (12-13)",
}

var mediums = []string{"Sinhala", "Tamil", "English"}

var schoolTypes = []string{"National", "Provincial"}

// Subjects returns the fixed subject enumeration.
func Subjects() []string {
	return append([]string{}, subjects...)
}

// Grades returns the grade-range options.
func Grades() []string {
	return append([]string{}, grades...)
}

// Mediums returns the medium-of-instruction options.
func Mediums() []string {
	return append([]string{}, mediums...)
}

// SchoolTypes returns the school type options.
func SchoolTypes() []string {
	return append([]string{}, schoolTypes...)
}

// ValidSubject reports whether the subject is part of the enumeration.
func ValidSubject(subject string) bool {
	return contains(subjects, subject)
}

// ValidGrade reports whether the grade range is a known option.
func ValidGrade(grade string) bool {
	return contains(grades, grade)
}

// ValidMedium reports whether the medium is a known option.
func ValidMedium(medium string) bool {
	return contains(mediums, medium)
}

// ValidSchoolType reports whether the school type is a known option.
func ValidSchoolType(schoolType string) bool {
	return contains(schoolTypes, schoolType)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
