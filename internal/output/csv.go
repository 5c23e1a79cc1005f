package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/campuscs/mentormatch/internal/matching"
)

// WriteMatchesFile writes the final assignment to a CSV file. Callers
// solve before calling this, so a failed run never leaves a partial
// matches file behind.
func WriteMatchesFile(path string, edges []*matching.ScoredEdge, debug bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}

	if err := WriteMatches(f, edges, debug); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write matches file: %w", err)
	}
	return nil
}

// WriteMatches writes one row per assignment. Terse mode carries
// identity fields only and is the version to share with students; debug
// mode appends every criterion's breakdown value and the total weight.
func WriteMatches(w io.Writer, edges []*matching.ScoredEdge, debug bool) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"mentee_email", "mentee_name", "mentor_email", "mentor_name"}
	if debug {
		header = append(header, matching.Criteria...)
		header = append(header, "weight")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, edge := range edges {
		mentor := edge.Mentor()
		record := []string{
			edge.Mentee.Email,
			edge.Mentee.Name,
			mentor.Email,
			mentor.Name,
		}
		if debug {
			for _, criterion := range matching.Criteria {
				record = append(record, formatFloat(edge.Breakdown[criterion]))
			}
			record = append(record, formatFloat(edge.Weight))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
