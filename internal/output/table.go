package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/campuscs/mentormatch/internal/database"
	"github.com/campuscs/mentormatch/internal/matching"
)

// CriterionStatsTable renders the per-criterion mean/stddev report
func CriterionStatsTable(w io.Writer, stats []matching.CriterionStats) error {
	table := tablewriter.NewTable(w)
	table.Header("Criterion", "Mean", "Std Dev")

	for _, s := range stats {
		stddev := "n/a"
		if s.HasStdDev {
			stddev = formatStat(s.StdDev)
		}
		if err := table.Append([]string{s.Criterion, formatStat(s.Mean), stddev}); err != nil {
			return err
		}
	}

	return table.Render()
}

// AssignmentTable renders the final pairings for the terminal
func AssignmentTable(w io.Writer, edges []*matching.ScoredEdge) error {
	table := tablewriter.NewTable(w)
	table.Header("Mentee", "Year", "Mentor", "Year", "Slot")

	for _, edge := range edges {
		mentor := edge.Mentor()
		row := []string{
			edge.Mentee.Email,
			edge.Mentee.Year,
			mentor.Email,
			mentor.Year,
			strconv.Itoa(edge.Slot.Index),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

// ParticipantsTable renders stored roster participants
func ParticipantsTable(w io.Writer, participants []database.Participant) error {
	if len(participants) == 0 {
		fmt.Fprintln(w, "No participants found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("Email", "Role", "Year", "Capacity", "Fields")

	for _, p := range participants {
		capacity := ""
		if p.Capacity != nil {
			capacity = strconv.Itoa(*p.Capacity)
		}
		row := []string{p.Email, p.Role, p.Year, capacity, truncate(p.Fields, 40)}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

// BatchesTable renders roster import batches
func BatchesTable(w io.Writer, batches []database.ImportBatch) error {
	if len(batches) == 0 {
		fmt.Fprintln(w, "No imports found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("Imported", "Source", "Mentees", "Mentors")

	for _, b := range batches {
		row := []string{
			b.ImportedAt.Format("2006-01-02 15:04"),
			b.SourceFile,
			strconv.Itoa(b.MenteeCount),
			strconv.Itoa(b.MentorCount),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
