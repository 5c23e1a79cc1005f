package matching

import (
	"fmt"
	"math"

	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/survey"
)

// InfeasibleError reports that the mentor pool cannot absorb every
// mentee: fewer slots than mentees means no complete assignment exists.
type InfeasibleError struct {
	Mentees int
	Slots   int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("infeasible assignment: %d mentees but only %d mentor slots", e.Mentees, e.Slots)
}

// Assignment is the solver's output: exactly one winning edge per
// mentee, with no mentor holding more mentees than its capacity.
type Assignment struct {
	// Edges holds one winning edge per mentee, in mentee input order
	Edges []*ScoredEdge

	// TotalWeight is the sum of the winning edges' weights; no other
	// complete assignment scores strictly higher.
	TotalWeight float64
}

// Solve expands the mentor pool into slots, scores the complete
// bipartite graph, and returns the maximum-total-weight assignment of
// every mentee to a distinct slot. Surplus slots staying empty is
// expected; a slot deficit is an InfeasibleError. For a fixed input
// ordering the result is deterministic, including between equal-weight
// optima.
func Solve(mentees []*survey.Mentee, mentors []*survey.Mentor, weights config.WeightsConfig) (*Assignment, error) {
	slots := ExpandMentors(mentors)
	if len(slots) < len(mentees) {
		return nil, &InfeasibleError{Mentees: len(mentees), Slots: len(slots)}
	}
	if len(mentees) == 0 {
		return &Assignment{}, nil
	}

	scorer := NewScorer(weights)

	// The assignment algorithm minimizes cost, so weights go in negated.
	cost := make([][]float64, len(mentees))
	for i, mentee := range mentees {
		cost[i] = make([]float64, len(slots))
		for j, slot := range slots {
			cost[i][j] = -scorer.Score(mentee, slot).Weight
		}
	}

	assigned := assignMinCost(cost)

	result := &Assignment{Edges: make([]*ScoredEdge, len(mentees))}
	for i, mentee := range mentees {
		edge := scorer.Score(mentee, slots[assigned[i]])
		result.Edges[i] = edge
		result.TotalWeight += edge.Weight
	}
	return result, nil
}

// assignMinCost solves the rectangular assignment problem for an n x m
// cost matrix with n <= m using the Jonker-Volgenant shortest augmenting
// path method with dual potentials, O(n^2 * m). Returns the column
// assigned to each row. Iteration order is fixed and all comparisons are
// strict, so ties resolve the same way on every run.
func assignMinCost(cost [][]float64) []int {
	n := len(cost)
	m := len(cost[0])
	inf := math.Inf(1)

	// 1-based internally: p[j] is the row matched to column j, 0 = free.
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				reduced := cost[i0-1][j-1] - u[i0] - v[j]
				if reduced < minv[j] {
					minv[j] = reduced
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Walk the augmenting path back, flipping matches.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assigned := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] > 0 {
			assigned[p[j]-1] = j - 1
		}
	}
	return assigned
}
