package matching

import (
	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/survey"
)

// Breakdown keys, one per scoring criterion. These names appear in the
// debug output columns and the aggregate report.
const (
	CritInterests       = "interests_overlap_fraction"
	CritTopics          = "topics_overlap_fraction"
	CritYearDifference  = "year_difference"
	CritHobbies         = "hobbies_overlap_fraction"
	CritGenderDeclared  = "gender_preference_declared"
	CritGenderSatisfied = "gender_preference_satisfied"
	CritRaceDeclared    = "race_preference_declared"
	CritRaceSatisfied   = "race_preference_satisfied"
	CritTimeZoneGap     = "time_zone_difference"
	CritAvailabilityGap = "availability_difference"
	CritExperienceGap   = "experience_difference"
)

// Criteria lists every breakdown key in output order
var Criteria = []string{
	CritInterests,
	CritTopics,
	CritYearDifference,
	CritHobbies,
	CritGenderDeclared,
	CritGenderSatisfied,
	CritRaceDeclared,
	CritRaceSatisfied,
	CritTimeZoneGap,
	CritAvailabilityGap,
	CritExperienceGap,
}

// ScoredEdge is one (mentee, mentor-slot) pair with its computed weight
// and per-criterion breakdown, frozen at first computation.
type ScoredEdge struct {
	Mentee    *survey.Mentee
	Slot      Slot
	Weight    float64
	Breakdown map[string]float64
}

// Mentor returns the mentor owning the edge's slot
func (e *ScoredEdge) Mentor() *survey.Mentor {
	return e.Slot.Mentor
}

type edgeKey struct {
	mentee *survey.Mentee
	mentor *survey.Mentor
	slot   int
}

// Scorer computes edge weights. Scoring is pure and deterministic; the
// cache guarantees each pair is computed at most once and every later
// lookup sees the same frozen edge.
type Scorer struct {
	weights config.WeightsConfig
	cache   map[edgeKey]*ScoredEdge
}

// NewScorer creates a Scorer with the given weight configuration
func NewScorer(weights config.WeightsConfig) *Scorer {
	return &Scorer{
		weights: weights,
		cache:   make(map[edgeKey]*ScoredEdge),
	}
}

// Score returns the weighted edge for a (mentee, slot) pair, computing
// it on first use and serving the cached edge afterwards.
func (s *Scorer) Score(mentee *survey.Mentee, slot Slot) *ScoredEdge {
	key := edgeKey{mentee: mentee, mentor: slot.Mentor, slot: slot.Index}
	if edge, ok := s.cache[key]; ok {
		return edge
	}
	edge := s.compute(mentee, slot)
	s.cache[key] = edge
	return edge
}

func (s *Scorer) compute(mentee *survey.Mentee, slot Slot) *ScoredEdge {
	w := s.weights
	mentor := slot.Mentor

	weight := 0.0
	breakdown := make(map[string]float64, len(Criteria))

	// 1. Career-field interests
	weight += w.InterestsMultiplier * overlapFraction(mentee.InterestedFields, mentor.ExperiencedFields, breakdown, CritInterests)

	// 2. Recruitment topics
	weight += w.TopicsMultiplier * overlapFraction(mentee.DesiredTopics, mentor.KnowledgeableTopics, breakdown, CritTopics)

	// 3. Seniority. The mentor must be older; rather than excluding the
	// pair we charge a penalty large enough to dominate every other term
	// combined, so the pairing survives as an absolute last resort.
	yearDiff := mentor.YearRank() - mentee.YearRank()
	breakdown[CritYearDifference] = float64(yearDiff)
	if yearDiff <= 0 {
		weight -= w.SeniorityGatePenalty
	}
	// Prefer mentors close in year; a freshman paired with a masters
	// student gets less relevant advice.
	if yearDiff == 1 || yearDiff == 2 {
		weight += w.CloseInYearBonus
	}

	// 4. Hobbies
	weight += w.HobbiesMultiplier * overlapFraction(mentee.Hobbies, mentor.Hobbies, breakdown, CritHobbies)

	// 5. Gender preference, granted only when both sides opt in and match
	weight += preferenceBonus(
		mentee.PrefersGender && mentor.PrefersGender,
		mentee.Gender, mentor.Gender,
		w.GenderMatchBonus,
		breakdown, CritGenderDeclared, CritGenderSatisfied,
	)

	// 6. Race preference
	weight += preferenceBonus(
		mentee.PrefersRace && mentor.PrefersRace,
		mentee.Race, mentor.Race,
		w.RaceMatchBonus,
		breakdown, CritRaceDeclared, CritRaceSatisfied,
	)

	// 7. Time zones: a step penalty once the gap gets unworkable
	tzGap := absInt(mentor.TimeZone - mentee.TimeZone)
	breakdown[CritTimeZoneGap] = float64(tzGap)
	if tzGap >= w.TimeZoneGapThreshold {
		weight -= w.TimeZoneGapPenalty
	}

	// 8. Available time
	availGap := absInt(mentor.AvailableTime - mentee.AvailableTime)
	breakdown[CritAvailabilityGap] = float64(availGap)
	if availGap > w.AvailabilityGapThreshold {
		weight -= w.AvailabilityGapPenalty
	}

	// 9. Experience, gated like seniority
	expDiff := mentor.Experience - mentee.Experience
	breakdown[CritExperienceGap] = float64(expDiff)
	if expDiff < 0 {
		weight -= w.ExperienceGatePenalty
	}

	// Later slots of the same mentor score lower, so the solver fills
	// every mentor's first slot before giving anyone a second mentee.
	weight -= w.SharedMentorPenalty * float64(slot.Index)

	return &ScoredEdge{
		Mentee:    mentee,
		Slot:      slot,
		Weight:    weight,
		Breakdown: breakdown,
	}
}

// overlapFraction records and returns |wanted ∩ offered| / |wanted|.
// A mentee who declared nothing gets 0, not a division by zero.
func overlapFraction(wanted, offered survey.TagSet, breakdown map[string]float64, criterion string) float64 {
	fraction := 0.0
	if len(wanted) > 0 {
		fraction = float64(wanted.OverlapCount(offered)) / float64(len(wanted))
	}
	breakdown[criterion] = fraction
	return fraction
}

// preferenceBonus awards the bonus only when both sides declared the
// preference and their values agree. Declared and satisfied are recorded
// separately so the report can distinguish "nobody asked" from "asked
// and missed".
func preferenceBonus(declared bool, menteeValue, mentorValue string, bonus float64, breakdown map[string]float64, declaredKey, satisfiedKey string) float64 {
	breakdown[declaredKey] = boolValue(declared)

	satisfied := declared && menteeValue != "" && menteeValue == mentorValue
	breakdown[satisfiedKey] = boolValue(satisfied)

	if satisfied {
		return bonus
	}
	return 0
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
