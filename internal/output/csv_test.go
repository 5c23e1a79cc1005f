package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campuscs/mentormatch/internal/matching"
	"github.com/campuscs/mentormatch/internal/survey"
)

func testEdges() []*matching.ScoredEdge {
	mentor := &survey.Mentor{
		Participant: survey.Participant{Email: "mentor@u.example", Name: "Mentor Name"},
	}
	mentee := &survey.Mentee{
		Participant: survey.Participant{Email: "mentee@u.example", Name: "Mentee Name"},
	}

	breakdown := make(map[string]float64, len(matching.Criteria))
	for _, criterion := range matching.Criteria {
		breakdown[criterion] = 0
	}
	breakdown[matching.CritInterests] = 0.5
	breakdown[matching.CritYearDifference] = 2

	return []*matching.ScoredEdge{
		{
			Mentee:    mentee,
			Slot:      matching.Slot{Mentor: mentor, Index: 0},
			Weight:    3.5,
			Breakdown: breakdown,
		},
	}
}

func TestWriteMatchesTerse(t *testing.T) {
	var sb strings.Builder
	if err := WriteMatches(&sb, testEdges(), false); err != nil {
		t.Fatalf("WriteMatches() error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1 match", len(records))
	}

	wantHeader := []string{"mentee_email", "mentee_name", "mentor_email", "mentor_name"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if len(records[0]) != len(wantHeader) {
		t.Errorf("terse header has %d columns, want %d", len(records[0]), len(wantHeader))
	}

	row := records[1]
	if row[0] != "mentee@u.example" || row[2] != "mentor@u.example" {
		t.Errorf("match row = %v", row)
	}
}

func TestWriteMatchesDebug(t *testing.T) {
	var sb strings.Builder
	if err := WriteMatches(&sb, testEdges(), true); err != nil {
		t.Fatalf("WriteMatches() error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	header := records[0]
	wantCols := 4 + len(matching.Criteria) + 1
	if len(header) != wantCols {
		t.Fatalf("debug header has %d columns, want %d", len(header), wantCols)
	}
	if header[len(header)-1] != "weight" {
		t.Errorf("last column = %q, want %q", header[len(header)-1], "weight")
	}

	row := records[1]
	col := func(name string) string {
		t.Helper()
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("column %q missing from header", name)
		return ""
	}

	if got := col(matching.CritInterests); got != "0.5" {
		t.Errorf("interests column = %q, want %q", got, "0.5")
	}
	if got := col(matching.CritYearDifference); got != "2" {
		t.Errorf("year difference column = %q, want %q", got, "2")
	}
	if got := col("weight"); got != "3.5" {
		t.Errorf("weight column = %q, want %q", got, "3.5")
	}
}

func TestWriteMatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")

	if err := WriteMatchesFile(path, testEdges(), false); err != nil {
		t.Fatalf("WriteMatchesFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read matches file: %v", err)
	}
	if !strings.HasPrefix(string(data), "mentee_email,") {
		t.Errorf("file starts with %q", string(data[:20]))
	}
}

func TestWriteMatchesDeterministic(t *testing.T) {
	edges := testEdges()

	var a, b strings.Builder
	if err := WriteMatches(&a, edges, true); err != nil {
		t.Fatalf("WriteMatches() error: %v", err)
	}
	if err := WriteMatches(&b, edges, true); err != nil {
		t.Fatalf("WriteMatches() error: %v", err)
	}

	if a.String() != b.String() {
		t.Error("identical edges produced different output")
	}
}
