package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/campuscs/mentormatch/internal/config"
)

// Roster holds the participants parsed from one survey response file
type Roster struct {
	Mentees []*Mentee
	Mentors []*Mentor

	// Rows whose role column matched neither recognized value. The
	// header row always lands here.
	SkippedRows int
}

// TotalCapacity returns the sum of all mentor capacities
func (r *Roster) TotalCapacity() int {
	total := 0
	for _, mentor := range r.Mentors {
		total += mentor.Capacity
	}
	return total
}

// ZeroCapacityMentors returns mentors who cannot take on any mentee.
// They participate in no matching and must be surfaced to the operator
// rather than silently dropped.
func (r *Roster) ZeroCapacityMentors() []*Mentor {
	var out []*Mentor
	for _, mentor := range r.Mentors {
		if mentor.Capacity == 0 {
			out = append(out, mentor)
		}
	}
	return out
}

// MenteesWithoutInterests returns mentees who declared no career-field
// interests. Their interest-overlap fraction is defined as zero, so they
// match on the remaining criteria only.
func (r *Roster) MenteesWithoutInterests() []*Mentee {
	var out []*Mentee
	for _, mentee := range r.Mentees {
		if len(mentee.InterestedFields) == 0 {
			out = append(out, mentee)
		}
	}
	return out
}

// ReadFile parses a survey response CSV file into a Roster
func ReadFile(path string, cfg config.SurveyConfig) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey file: %w", err)
	}
	defer f.Close()

	roster, err := Read(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return roster, nil
}

// Read parses survey response rows into a Roster. Rows with an
// unrecognized role are counted and skipped; rows with malformed
// required fields abort with a MalformedRecordError.
func Read(r io.Reader, cfg config.SurveyConfig) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // survey exports have ragged rows

	roster := &Roster{}
	line := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read survey row: %w", err)
		}
		line++

		p := rowParser{row: row, line: line, cfg: cfg}

		switch p.field(cfg.Columns.Role) {
		case RoleMentee:
			mentee, err := p.mentee()
			if err != nil {
				return nil, err
			}
			roster.Mentees = append(roster.Mentees, mentee)
		case RoleMentor:
			mentor, err := p.mentor()
			if err != nil {
				return nil, err
			}
			roster.Mentors = append(roster.Mentors, mentor)
		default:
			roster.SkippedRows++
		}
	}

	return roster, nil
}

// rowParser extracts typed fields from one survey row
type rowParser struct {
	row  []string
	line int
	cfg  config.SurveyConfig
}

// field returns the trimmed cell at the given column, or "" when the
// row is too short
func (p *rowParser) field(col int) string {
	if col < 0 || col >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[col])
}

// requiredField returns the cell or a MalformedRecordError when empty
func (p *rowParser) requiredField(col int, name string) (string, error) {
	value := p.field(col)
	if value == "" {
		return "", &MalformedRecordError{Line: p.line, Field: name, Reason: "required field is empty"}
	}
	return value, nil
}

// intField parses the cell as an integer, substituting the documented
// fallback when the answer is missing or unparseable. The form never
// validated numeric answers, so this path is routine, not exceptional.
func (p *rowParser) intField(col, fallback int) int {
	value := p.field(col)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func (p *rowParser) tags(col int) TagSet {
	return ParseTags(p.field(col), p.cfg.TagDelimiter)
}

// yesNo parses the form's "Yes" / "No preference" answers; anything but
// an explicit "Yes" means no preference
func (p *rowParser) yesNo(col int) bool {
	return p.field(col) == "Yes"
}

// participant parses the fields shared by both roles
func (p *rowParser) participant() (Participant, error) {
	cols := p.cfg.Columns

	email, err := p.requiredField(cols.Email, "email")
	if err != nil {
		return Participant{}, err
	}

	year, err := p.requiredField(cols.Year, "year")
	if err != nil {
		return Participant{}, err
	}
	if _, ok := YearRank(year); !ok {
		return Participant{}, &MalformedRecordError{
			Line: p.line, Field: "year", Value: year,
			Reason: "not a recognized cohort year label",
		}
	}

	return Participant{
		Email:    email,
		Name:     p.field(cols.Name),
		Year:     year,
		TimeZone: p.intField(cols.TimeZone, p.cfg.FallbackTimeZone),
	}, nil
}

func (p *rowParser) mentee() (*Mentee, error) {
	base, err := p.participant()
	if err != nil {
		return nil, err
	}

	cols := p.cfg.Columns
	return &Mentee{
		Participant:      base,
		InterestedFields: p.tags(cols.MenteeFields),
		DesiredTopics:    p.tags(cols.MenteeTopics),
		Hobbies:          p.tags(cols.MenteeHobbies),
		AvailableTime:    p.intField(cols.MenteeAvailableTime, p.cfg.FallbackHours),
		Experience:       p.intField(cols.MenteeExperience, p.cfg.FallbackExperience),
		PrefersGender:    p.yesNo(cols.MenteePreferGender),
		Gender:           p.field(cols.MenteeGender),
		PrefersRace:      p.yesNo(cols.MenteePreferRace),
		Race:             p.field(cols.MenteeRace),
	}, nil
}

func (p *rowParser) mentor() (*Mentor, error) {
	base, err := p.participant()
	if err != nil {
		return nil, err
	}

	cols := p.cfg.Columns
	mentor := &Mentor{
		Participant:         base,
		ExperiencedFields:   p.tags(cols.MentorFields),
		KnowledgeableTopics: p.tags(cols.MentorTopics),
		Hobbies:             p.tags(cols.MentorHobbies),
		AvailableTime:       p.intField(cols.MentorAvailableTime, p.cfg.FallbackHours),
		Experience:          p.intField(cols.MentorExperience, p.cfg.FallbackExperience),
		PrefersGender:       p.yesNo(cols.MentorPreferGender),
		Gender:              p.field(cols.MentorGender),
		PrefersRace:         p.yesNo(cols.MentorPreferRace),
		Race:                p.field(cols.MentorRace),
	}

	switch p.cfg.CapacitySource {
	case config.CapacityFromHours:
		mentor.Capacity = CapacityFromHours(p.intField(cols.MentorAvailableTime, p.cfg.FallbackHours))
	default:
		capacity := p.intField(cols.MentorCapacity, CapacityFromHours(p.cfg.FallbackHours))
		if capacity < 0 {
			capacity = 0
		}
		mentor.Capacity = capacity
	}

	return mentor, nil
}
