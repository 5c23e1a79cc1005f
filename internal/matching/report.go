package matching

import "math"

// CriterionStats aggregates one scoring criterion across the winning
// edges. Diagnostic only; nothing feeds back into scoring or solving.
type CriterionStats struct {
	Criterion string
	Mean      float64

	// StdDev is the sample standard deviation. It is undefined for fewer
	// than two edges; HasStdDev reports whether it holds a value.
	StdDev    float64
	HasStdDev bool
}

// Summarize computes the mean and sample standard deviation of every
// scoring criterion across the given edges, in Criteria order.
func Summarize(edges []*ScoredEdge) []CriterionStats {
	if len(edges) == 0 {
		return nil
	}

	stats := make([]CriterionStats, 0, len(Criteria))
	for _, criterion := range Criteria {
		values := make([]float64, len(edges))
		for i, edge := range edges {
			values[i] = edge.Breakdown[criterion]
		}

		cs := CriterionStats{Criterion: criterion, Mean: mean(values)}
		if len(values) >= 2 {
			cs.StdDev = sampleStdDev(values, cs.Mean)
			cs.HasStdDev = true
		}
		stats = append(stats, cs)
	}
	return stats
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleStdDev(values []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
