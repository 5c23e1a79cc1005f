package survey

// Role values of the survey's "mentor or mentee?" multiple-choice
// question. Rows with any other value (including the header row) are
// ignored.
const (
	RoleMentor = "Mentor"
	RoleMentee = "Mentee"
)

// yearRanks maps each cohort-year label to an ordinal rank used for the
// seniority gate. Masters students deliberately tie with seniors.
var yearRanks = map[string]int{
	"Freshman":  1,
	"Sophomore": 2,
	"Junior":    3,
	"Senior":    4,
	"Masters":   4,
	"Alum":      5,
}

// YearRank returns the ordinal rank of a cohort-year label
func YearRank(label string) (int, bool) {
	rank, ok := yearRanks[label]
	return rank, ok
}

// MaxCapacity caps how many mentees a single mentor can take on when
// capacity is derived from hours available.
const MaxCapacity = 3

// CapacityFromHours converts a mentor's weekly hours available into a
// mentee capacity: one mentee per hour up to two hours, clamped at
// MaxCapacity beyond that.
func CapacityFromHours(hours int) int {
	switch {
	case hours <= 0:
		return 0
	case hours <= 2:
		return hours
	default:
		return MaxCapacity
	}
}

// Participant holds the survey fields shared by both roles. Participants
// are built once from an input row and never mutated.
type Participant struct {
	Email string
	Name  string
	Year  string

	// GMT offset of the participant's time zone
	TimeZone int
}

// YearRank returns the participant's seniority rank
func (p *Participant) YearRank() int {
	rank := yearRanks[p.Year]
	return rank
}

// Mentee is a participant looking to be matched with a mentor
type Mentee struct {
	Participant

	// Career fields the mentee wants to learn about
	InterestedFields TagSet

	// Recruitment topics the mentee wants help with
	DesiredTopics TagSet

	Hobbies TagSet

	// Hours per week the mentee can dedicate
	AvailableTime int

	// Years of prior CS experience
	Experience int

	PrefersGender bool
	Gender        string
	PrefersRace   bool
	Race          string
}

// Mentor is a participant offering to take on mentees
type Mentor struct {
	Participant

	// Career fields the mentor has interned or built projects in
	ExperiencedFields TagSet

	// Recruitment topics the mentor is comfortable helping with
	KnowledgeableTopics TagSet

	Hobbies TagSet

	// Hours per week the mentor can dedicate
	AvailableTime int

	// Years of prior CS experience
	Experience int

	PrefersGender bool
	Gender        string
	PrefersRace   bool
	Race          string

	// Maximum number of mentees this mentor can take on
	Capacity int
}
