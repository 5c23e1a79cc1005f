package config

// Config represents the application configuration
type Config struct {
	Survey   SurveyConfig   `toml:"survey"`
	Weights  WeightsConfig  `toml:"weights"`
	Database DatabaseConfig `toml:"database"`
	Sheets   SheetsConfig   `toml:"sheets"`
	Output   OutputConfig   `toml:"output"`
}

// CapacitySource selects how a mentor's capacity is determined
type CapacitySource string

const (
	// CapacityFromColumn reads the capacity straight from the survey column
	CapacityFromColumn CapacitySource = "column"
	// CapacityFromHours derives capacity from the hours-available column
	CapacityFromHours CapacitySource = "hours"
)

// SurveyConfig describes the layout of the survey response spreadsheet
// and the fallback values used when a numeric answer fails to parse.
// The sign-up form didn't validate numeric answers, so those columns are
// known to be dirty; the fallbacks are deliberate configuration rather
// than per-field hacks buried in parse code.
type SurveyConfig struct {
	TagDelimiter   string         `toml:"tag_delimiter"`
	CapacitySource CapacitySource `toml:"capacity_source"`

	FallbackHours      int `toml:"fallback_hours"`
	FallbackTimeZone   int `toml:"fallback_time_zone"`
	FallbackExperience int `toml:"fallback_experience"`

	Columns ColumnsConfig `toml:"columns"`
}

// ColumnsConfig holds the zero-based column index of every survey field.
// Defaults match the spring-2021 sign-up form; older forms can remap
// columns here instead of editing parse code.
type ColumnsConfig struct {
	Email    int `toml:"email"`
	Role     int `toml:"role"`
	Name     int `toml:"name"`
	Year     int `toml:"year"`
	TimeZone int `toml:"time_zone"`

	MentorPreferGender  int `toml:"mentor_prefer_gender"`
	MentorGender        int `toml:"mentor_gender"`
	MentorPreferRace    int `toml:"mentor_prefer_race"`
	MentorRace          int `toml:"mentor_race"`
	MentorCapacity      int `toml:"mentor_capacity"`
	MentorAvailableTime int `toml:"mentor_available_time"`
	MentorExperience    int `toml:"mentor_experience"`
	MentorFields        int `toml:"mentor_fields"`
	MentorTopics        int `toml:"mentor_topics"`
	MentorHobbies       int `toml:"mentor_hobbies"`

	MenteeExperience    int `toml:"mentee_experience"`
	MenteePreferGender  int `toml:"mentee_prefer_gender"`
	MenteeGender        int `toml:"mentee_gender"`
	MenteePreferRace    int `toml:"mentee_prefer_race"`
	MenteeRace          int `toml:"mentee_race"`
	MenteeAvailableTime int `toml:"mentee_available_time"`
	MenteeTopics        int `toml:"mentee_topics"`
	MenteeFields        int `toml:"mentee_fields"`
	MenteeHobbies       int `toml:"mentee_hobbies"`
}

// WeightsConfig holds every multiplier, bonus, penalty, and threshold
// used by the edge scorer. Coordinators are expected to recalibrate
// these per cohort, so none of them live in code.
type WeightsConfig struct {
	InterestsMultiplier float64 `toml:"interests_multiplier"`
	TopicsMultiplier    float64 `toml:"topics_multiplier"`
	HobbiesMultiplier   float64 `toml:"hobbies_multiplier"`

	// Gate penalties must dominate every other term combined so that a
	// mentor younger or less experienced than the mentee is chosen only
	// when no feasible alternative exists.
	SeniorityGatePenalty  float64 `toml:"seniority_gate_penalty"`
	ExperienceGatePenalty float64 `toml:"experience_gate_penalty"`

	CloseInYearBonus float64 `toml:"close_in_year_bonus"`

	// Charged once per extra slot of the same mentor, so the solver
	// spreads mentees across distinct mentors before doubling anyone up.
	SharedMentorPenalty float64 `toml:"shared_mentor_penalty"`

	GenderMatchBonus float64 `toml:"gender_match_bonus"`
	RaceMatchBonus   float64 `toml:"race_match_bonus"`

	TimeZoneGapPenalty   float64 `toml:"time_zone_gap_penalty"`
	TimeZoneGapThreshold int     `toml:"time_zone_gap_threshold"`

	AvailabilityGapPenalty   float64 `toml:"availability_gap_penalty"`
	AvailabilityGapThreshold int     `toml:"availability_gap_threshold"`
}

// DatabaseConfig contains roster database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SheetsConfig contains Google Sheets download settings
type SheetsConfig struct {
	CredentialsPath string `toml:"credentials_path"`
	TokenPath       string `toml:"token_path"`
	Range           string `toml:"range"`
}

// OutputConfig contains matches-file output settings
type OutputConfig struct {
	// Debug adds per-criterion breakdown columns to the matches file and
	// prints aggregate statistics after a run. The terse output (debug
	// off) is the version to share with students.
	Debug bool `toml:"debug"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Survey: SurveyConfig{
			TagDelimiter:       ";",
			CapacitySource:     CapacityFromColumn,
			FallbackHours:      1,
			FallbackTimeZone:   0,
			FallbackExperience: 0,
			Columns: ColumnsConfig{
				Email:    1,
				Role:     2,
				Name:     3,
				Year:     4,
				TimeZone: 5,

				MentorPreferGender:  6,
				MentorGender:        7,
				MentorPreferRace:    8,
				MentorRace:          9,
				MentorCapacity:      10,
				MentorAvailableTime: 11,
				MentorExperience:    12,
				MentorFields:        13,
				MentorTopics:        14,
				MentorHobbies:       15,

				MenteeExperience:    17,
				MenteePreferGender:  18,
				MenteeGender:        19,
				MenteePreferRace:    20,
				MenteeRace:          21,
				MenteeAvailableTime: 22,
				MenteeTopics:        23,
				MenteeFields:        24,
				MenteeHobbies:       25,
			},
		},
		Weights: WeightsConfig{
			InterestsMultiplier: 5,
			TopicsMultiplier:    3,
			HobbiesMultiplier:   1.5,

			SeniorityGatePenalty:  10000000,
			ExperienceGatePenalty: 10000000,

			CloseInYearBonus: 1,

			SharedMentorPenalty: 100,

			GenderMatchBonus: 20,
			RaceMatchBonus:   20,

			TimeZoneGapPenalty:   5,
			TimeZoneGapThreshold: 5,

			AvailabilityGapPenalty:   20,
			AvailabilityGapThreshold: 2,
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/mentormatch/roster.db",
		},
		Sheets: SheetsConfig{
			CredentialsPath: "~/.config/mentormatch/credentials.json",
			TokenPath:       "~/.config/mentormatch/token.json",
			Range:           "Form Responses 1",
		},
		Output: OutputConfig{
			Debug: false,
		},
	}
}
