package matching

import "github.com/campuscs/mentormatch/internal/survey"

// Slot is one unit of a mentor's matching capacity. A mentor with
// capacity k appears as k slots in the bipartite graph, which lets a
// strictly one-to-one matcher realize many-to-one assignment. Slots are
// index records referencing the owning mentor, built fresh per run and
// discarded after solving.
type Slot struct {
	Mentor *survey.Mentor

	// Index runs 0..capacity-1. It carries no attribute data; the scorer
	// uses it only to bias the solver toward first slots.
	Index int
}

// ExpandMentors replicates each mentor into one slot per unit of
// capacity. Capacity-zero mentors contribute nothing; surfacing them is
// the caller's job.
func ExpandMentors(mentors []*survey.Mentor) []Slot {
	var slots []Slot
	for _, mentor := range mentors {
		for i := 0; i < mentor.Capacity; i++ {
			slots = append(slots, Slot{Mentor: mentor, Index: i})
		}
	}
	return slots
}
