package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/campuscs/mentormatch/internal/survey"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "roster.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func testRoster() *survey.Roster {
	return &survey.Roster{
		Mentees: []*survey.Mentee{
			{
				Participant: survey.Participant{
					Email:    "mentee@u.example",
					Name:     "Mentee Name",
					Year:     "Freshman",
					TimeZone: -6,
				},
				InterestedFields: survey.ParseTags("ML;Security", ";"),
				DesiredTopics:    survey.ParseTags("Resumes", ";"),
				Hobbies:          survey.ParseTags("Chess", ";"),
				AvailableTime:    2,
				Experience:       1,
			},
		},
		Mentors: []*survey.Mentor{
			{
				Participant: survey.Participant{
					Email:    "mentor@u.example",
					Name:     "Mentor Name",
					Year:     "Senior",
					TimeZone: -6,
				},
				ExperiencedFields:   survey.ParseTags("ML", ";"),
				KnowledgeableTopics: survey.ParseTags("Resumes;Interviews", ";"),
				Hobbies:             survey.ParseTags("Climbing", ";"),
				AvailableTime:       3,
				Experience:          4,
				Capacity:            2,
			},
			{
				Participant: survey.Participant{
					Email: "busy@u.example",
					Name:  "Busy Mentor",
					Year:  "Alum",
				},
				ExperiencedFields:   survey.ParseTags("Web", ";"),
				KnowledgeableTopics: survey.ParseTags("Interviews", ";"),
				Capacity:            0,
			},
		},
	}
}

func TestOpenAndMigrate(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error: %v", err)
	}

	// opening again must not re-run the migration
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&count)
	if err != nil {
		t.Fatalf("participants table missing after migration: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh database holds %d participants, want 0", count)
	}
}

func TestImportRoster(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	batch, err := db.ImportRoster(ctx, "responses.csv", ";", testRoster())
	if err != nil {
		t.Fatalf("ImportRoster() error: %v", err)
	}

	if batch.ID == "" {
		t.Error("batch ID is empty")
	}
	if batch.MenteeCount != 1 || batch.MentorCount != 2 {
		t.Errorf("batch counts = %d/%d, want 1/2", batch.MenteeCount, batch.MentorCount)
	}

	participants, err := db.ListParticipants(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListParticipants() error: %v", err)
	}
	if len(participants) != 3 {
		t.Fatalf("got %d participants, want 3", len(participants))
	}

	// ordered by role then email, so mentees come first
	mentee := participants[0]
	if mentee.Role != survey.RoleMentee || mentee.Email != "mentee@u.example" {
		t.Errorf("first participant = %s/%s, want Mentee/mentee@u.example", mentee.Role, mentee.Email)
	}
	if mentee.Capacity != nil {
		t.Error("mentee capacity should be NULL")
	}
	if mentee.Fields != "ML;Security" {
		t.Errorf("mentee fields = %q, want %q", mentee.Fields, "ML;Security")
	}

	mentor := participants[1]
	if mentor.Email != "busy@u.example" {
		t.Errorf("second participant = %s, want busy@u.example", mentor.Email)
	}
	if mentor.Capacity == nil || *mentor.Capacity != 0 {
		t.Errorf("busy mentor capacity = %v, want 0", mentor.Capacity)
	}
}

func TestListParticipantsFiltered(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.ImportRoster(ctx, "first.csv", ";", testRoster())
	if err != nil {
		t.Fatalf("ImportRoster() error: %v", err)
	}
	if _, err := db.ImportRoster(ctx, "second.csv", ";", testRoster()); err != nil {
		t.Fatalf("ImportRoster() error: %v", err)
	}

	mentors, err := db.ListParticipants(ctx, ListOptions{Role: survey.RoleMentor})
	if err != nil {
		t.Fatalf("ListParticipants() error: %v", err)
	}
	if len(mentors) != 4 {
		t.Errorf("got %d mentors across both batches, want 4", len(mentors))
	}
	for _, p := range mentors {
		if p.Role != survey.RoleMentor {
			t.Errorf("role filter leaked a %s", p.Role)
		}
	}

	batchOnly, err := db.ListParticipants(ctx, ListOptions{BatchID: first.ID})
	if err != nil {
		t.Fatalf("ListParticipants() error: %v", err)
	}
	if len(batchOnly) != 3 {
		t.Errorf("got %d participants in first batch, want 3", len(batchOnly))
	}
}

func TestListBatches(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.ImportRoster(ctx, "responses.csv", ";", testRoster()); err != nil {
		t.Fatalf("ImportRoster() error: %v", err)
	}

	batches, err := db.ListBatches(ctx)
	if err != nil {
		t.Fatalf("ListBatches() error: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	if batches[0].SourceFile != "responses.csv" {
		t.Errorf("source file = %q, want %q", batches[0].SourceFile, "responses.csv")
	}
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.ImportRoster(ctx, "responses.csv", ";", testRoster()); err != nil {
		t.Fatalf("ImportRoster() error: %v", err)
	}

	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error: %v", err)
	}

	if stats.Batches != 1 {
		t.Errorf("Batches = %d, want 1", stats.Batches)
	}
	if stats.Mentees != 1 || stats.Mentors != 2 {
		t.Errorf("counts = %d/%d, want 1/2", stats.Mentees, stats.Mentors)
	}
	if stats.TotalCapacity != 2 {
		t.Errorf("TotalCapacity = %d, want 2", stats.TotalCapacity)
	}
	if stats.ZeroCapacityMentors != 1 {
		t.Errorf("ZeroCapacityMentors = %d, want 1", stats.ZeroCapacityMentors)
	}
}
